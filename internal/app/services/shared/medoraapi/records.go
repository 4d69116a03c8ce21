package medoraapi

import (
	"context"
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/dto/responses"
	"strconv"
)

func (c *medoraClient) Dashboard(ctx context.Context, token string) (*models.Dashboard, error) {
	result := new(models.Dashboard)
	err := c.do(ctx, call{method: constvars.MethodGet, path: pathDashboard, token: token}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *medoraClient) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	result := new(responses.Appointments)
	err := c.do(ctx, call{method: constvars.MethodGet, path: pathAppointments, token: token}, result)
	if err != nil {
		return nil, err
	}
	return result.Appointments, nil
}

func (c *medoraClient) ListPatients(ctx context.Context, token string, pagination *requests.Pagination) (*responses.Patients, error) {
	result := new(responses.Patients)
	err := c.do(ctx, call{
		method: constvars.MethodGet,
		path:   pathPatients,
		token:  token,
		query:  paginationQuery(pagination),
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *medoraClient) SearchPatients(ctx context.Context, token, query string) ([]models.Patient, error) {
	result := new(responses.Patients)
	err := c.do(ctx, call{
		method: constvars.MethodGet,
		path:   pathPatientsSearch,
		token:  token,
		query:  map[string]string{"q": query},
	}, result)
	if err != nil {
		return nil, err
	}
	return result.Patients, nil
}

// MyPatient returns the record linked to a user or patient account. A
// missing record comes back as a 404 rejection.
func (c *medoraClient) MyPatient(ctx context.Context, token string) (*models.Patient, error) {
	result := new(responses.Patient)
	err := c.do(ctx, call{method: constvars.MethodGet, path: pathMyPatient, token: token}, result)
	if err != nil {
		return nil, err
	}
	return result.Patient, nil
}

func (c *medoraClient) CreatePatient(ctx context.Context, token string, payload interface{}) (*responses.Patient, error) {
	result := new(responses.Patient)
	err := c.do(ctx, call{method: constvars.MethodPost, path: pathPatients, token: token, body: payload}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *medoraClient) UpdatePatient(ctx context.Context, token string, patientID int, payload interface{}) (*responses.Patient, error) {
	result := new(responses.Patient)
	err := c.do(ctx, call{
		method:     constvars.MethodPut,
		path:       pathPatientByID,
		token:      token,
		pathParams: idParam(patientID),
		body:       payload,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *medoraClient) DeletePatient(ctx context.Context, token string, patientID int) error {
	return c.do(ctx, call{
		method:     constvars.MethodDelete,
		path:       pathPatientByID,
		token:      token,
		pathParams: idParam(patientID),
	}, nil)
}

func (c *medoraClient) ListUsers(ctx context.Context, token string, pagination *requests.Pagination) (*responses.Users, error) {
	result := new(responses.Users)
	err := c.do(ctx, call{
		method: constvars.MethodGet,
		path:   pathUsers,
		token:  token,
		query:  paginationQuery(pagination),
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DeactivateUser is a DELETE on the backend, which only flips is_active.
func (c *medoraClient) DeactivateUser(ctx context.Context, token string, userID int) error {
	return c.do(ctx, call{
		method:     constvars.MethodDelete,
		path:       pathUserByID,
		token:      token,
		pathParams: idParam(userID),
	}, nil)
}

func idParam(id int) map[string]string {
	return map[string]string{"id": strconv.Itoa(id)}
}

func paginationQuery(pagination *requests.Pagination) map[string]string {
	if pagination == nil {
		return nil
	}
	query := make(map[string]string, 2)
	if pagination.Page > 0 {
		query["page"] = strconv.Itoa(pagination.Page)
	}
	if pagination.PerPage > 0 {
		query["per_page"] = strconv.Itoa(pagination.PerPage)
	}
	return query
}
