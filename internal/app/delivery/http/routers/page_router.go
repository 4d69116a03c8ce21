package routers

import (
	"medora-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, pageController *controllers.PageController) {
	router.Get("/", pageController.Home)
	router.Get("/pages/{page}", pageController.Page)
	router.Post("/refresh", pageController.Refresh)
}
