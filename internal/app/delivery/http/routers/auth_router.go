package routers

import (
	"medora-portal/internal/app/delivery/http/controllers"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, limiter func(http.Handler) http.Handler, authController *controllers.AuthController) {
	router.With(limiter).Post("/login", authController.Login)
	router.With(limiter).Post("/register", authController.Register)
	router.Post("/logout", authController.Logout)
}
