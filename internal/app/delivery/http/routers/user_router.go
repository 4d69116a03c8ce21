package routers

import (
	"medora-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *controllers.UserController) {
	router.Get("/", userController.List)
	router.Post("/{id}/deactivate", userController.Deactivate)
}
