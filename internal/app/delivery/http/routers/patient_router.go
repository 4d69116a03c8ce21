package routers

import (
	"medora-portal/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/search", patientController.Search)
	router.Post("/form", patientController.Form)
	router.Post("/", patientController.Create)
	router.Post("/{id}", patientController.Update)
	router.Post("/{id}/delete", patientController.Delete)
}
