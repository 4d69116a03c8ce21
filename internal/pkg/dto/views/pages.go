package views

import (
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/dto/requests"
)

// Data shown by each page. Loaders build these; templates and JSON
// clients read them.

type Dashboard struct {
	FirstName            string               `json:"first_name"`
	Statistics           models.Statistics    `json:"statistics"`
	RecentPatients       []models.Patient     `json:"recent_patients"`
	UpcomingAppointments []models.Appointment `json:"upcoming_appointments"`
	ShowDoctorActions    bool                 `json:"show_doctor_actions"`
}

type Patients struct {
	Patients   []models.Patient   `json:"patients"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
	Query      string             `json:"query,omitempty"`
	Filter     string             `json:"filter,omitempty"`
}

type PatientForm struct {
	PatientIDPreview string               `json:"patient_id_preview"`
	Progress         int                  `json:"progress"`
	Required         []requests.FormField `json:"-"`
	Optional         []requests.FormField `json:"-"`
	Values           map[string]string    `json:"values,omitempty"`
	Missing          []string             `json:"missing,omitempty"`
	BMI              *float64             `json:"bmi,omitempty"`
	BMICategory      string               `json:"bmi_category,omitempty"`
}

// PatientView is nil-patient when the account has no linked record.
type PatientView struct {
	Patient *models.Patient `json:"patient,omitempty"`
}

type Users struct {
	Users      []models.User      `json:"users"`
	Stats      models.UserStats   `json:"stats"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

type Appointments struct {
	Appointments []models.Appointment `json:"appointments"`
}

type Profile struct {
	User *models.User `json:"user"`
}
