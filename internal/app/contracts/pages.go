package contracts

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/views"
)

// PageService holds the page loaders and the record actions behind them.
// It is stateless; the caller supplies the bearer token. Errors carry the
// message to show the user.
type PageService interface {
	Loaders() map[models.Page]PageLoader
	PatientForm(values map[string]string) *views.PatientForm
	CreatePatient(ctx context.Context, token string, values map[string]string, form *requests.PatientForm) (*models.Patient, error)
	UpdatePatient(ctx context.Context, token string, patientID int, values map[string]string, form *requests.PatientForm) (*models.Patient, error)
	DeletePatient(ctx context.Context, token string, patientID int) error
	DeactivateUser(ctx context.Context, token string, userID int) error
}
