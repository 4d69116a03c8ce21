package routers

import (
	"medora-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Post("/profile", profileController.Update)
	router.Post("/profile/refresh", profileController.Refresh)
}
