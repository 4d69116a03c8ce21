package responses

import "medora-portal/internal/app/models"

// Bodies returned by the Medora backend.

type Auth struct {
	Message      string       `json:"message"`
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"`
}

type Profile struct {
	Message string       `json:"message,omitempty"`
	User    *models.User `json:"user"`
}

type Patients struct {
	Patients   []models.Patient   `json:"patients"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

type Patient struct {
	Message string          `json:"message,omitempty"`
	Patient *models.Patient `json:"patient"`
}

type Users struct {
	Users      []models.User      `json:"users"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

type Appointments struct {
	Appointments []models.Appointment `json:"appointments"`
}

type Message struct {
	Message string `json:"message"`
}
