package mocks

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MockMedoraClient struct {
	mock.Mock
}

func (m *MockMedoraClient) Login(ctx context.Context, request *requests.Login) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	auth, _ := args.Get(0).(*responses.Auth)
	return auth, args.Error(1)
}

func (m *MockMedoraClient) Register(ctx context.Context, request *requests.Register) (*responses.Auth, error) {
	args := m.Called(ctx, request)
	auth, _ := args.Get(0).(*responses.Auth)
	return auth, args.Error(1)
}

func (m *MockMedoraClient) FetchProfile(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockMedoraClient) UpdateProfile(ctx context.Context, token string, fields models.ProfileFields) (*models.User, error) {
	args := m.Called(ctx, token, fields)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockMedoraClient) Dashboard(ctx context.Context, token string) (*models.Dashboard, error) {
	args := m.Called(ctx, token)
	dashboard, _ := args.Get(0).(*models.Dashboard)
	return dashboard, args.Error(1)
}

func (m *MockMedoraClient) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	args := m.Called(ctx, token)
	appointments, _ := args.Get(0).([]models.Appointment)
	return appointments, args.Error(1)
}

func (m *MockMedoraClient) ListPatients(ctx context.Context, token string, pagination *requests.Pagination) (*responses.Patients, error) {
	args := m.Called(ctx, token, pagination)
	patients, _ := args.Get(0).(*responses.Patients)
	return patients, args.Error(1)
}

func (m *MockMedoraClient) SearchPatients(ctx context.Context, token, query string) ([]models.Patient, error) {
	args := m.Called(ctx, token, query)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *MockMedoraClient) MyPatient(ctx context.Context, token string) (*models.Patient, error) {
	args := m.Called(ctx, token)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockMedoraClient) CreatePatient(ctx context.Context, token string, payload interface{}) (*responses.Patient, error) {
	args := m.Called(ctx, token, payload)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockMedoraClient) UpdatePatient(ctx context.Context, token string, patientID int, payload interface{}) (*responses.Patient, error) {
	args := m.Called(ctx, token, patientID, payload)
	patient, _ := args.Get(0).(*responses.Patient)
	return patient, args.Error(1)
}

func (m *MockMedoraClient) DeletePatient(ctx context.Context, token string, patientID int) error {
	args := m.Called(ctx, token, patientID)
	return args.Error(0)
}

func (m *MockMedoraClient) ListUsers(ctx context.Context, token string, pagination *requests.Pagination) (*responses.Users, error) {
	args := m.Called(ctx, token, pagination)
	users, _ := args.Get(0).(*responses.Users)
	return users, args.Error(1)
}

func (m *MockMedoraClient) DeactivateUser(ctx context.Context, token string, userID int) error {
	args := m.Called(ctx, token, userID)
	return args.Error(0)
}
