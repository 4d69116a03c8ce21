package contracts

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/responses"
)

// MedoraClient is the REST backend. Every method returns either a
// *exceptions.NetworkFailure or a *exceptions.RequestRejected on failure.
type MedoraClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Auth, error)
	Register(ctx context.Context, request *requests.Register) (*responses.Auth, error)
	FetchProfile(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, fields models.ProfileFields) (*models.User, error)

	Dashboard(ctx context.Context, token string) (*models.Dashboard, error)
	ListAppointments(ctx context.Context, token string) ([]models.Appointment, error)

	ListPatients(ctx context.Context, token string, pagination *requests.Pagination) (*responses.Patients, error)
	SearchPatients(ctx context.Context, token, query string) ([]models.Patient, error)
	MyPatient(ctx context.Context, token string) (*models.Patient, error)
	CreatePatient(ctx context.Context, token string, payload interface{}) (*responses.Patient, error)
	UpdatePatient(ctx context.Context, token string, patientID int, payload interface{}) (*responses.Patient, error)
	DeletePatient(ctx context.Context, token string, patientID int) error

	ListUsers(ctx context.Context, token string, pagination *requests.Pagination) (*responses.Users, error)
	DeactivateUser(ctx context.Context, token string, userID int) error
}
