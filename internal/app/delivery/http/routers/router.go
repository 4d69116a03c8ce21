package routers

import (
	"medora-portal/internal/app/config"
	"medora-portal/internal/app/delivery/http/controllers"
	"medora-portal/internal/app/delivery/http/middlewares"
	"medora-portal/internal/pkg/constvars"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Page    *controllers.PageController
	Auth    *controllers.AuthController
	Profile *controllers.ProfileController
	Patient *controllers.PatientController
	User    *controllers.UserController
	Health  *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	generalLimiter, authLimiter := middlewares.CreateRateLimiters()
	router.Use(generalLimiter)

	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middleware.RequestSize(int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20))

	router.Get("/healthz", ctrls.Health.Liveness)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.ClientIdentity)

		attachPageRoutes(r, ctrls.Page)
		attachAuthRoutes(r, authLimiter, ctrls.Auth)
		attachProfileRoutes(r, ctrls.Profile)

		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, ctrls.Patient)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, ctrls.User)
		})
	})
}

func allowedOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
