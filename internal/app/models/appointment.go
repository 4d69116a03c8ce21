package models

type Appointment struct {
	ID              int    `json:"id"`
	PatientID       int    `json:"patient_id"`
	PatientName     string `json:"patient_name,omitempty"`
	DoctorName      string `json:"doctor_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentType string `json:"appointment_type,omitempty"`
	Symptoms        string `json:"symptoms,omitempty"`
	Diagnosis       string `json:"diagnosis,omitempty"`
	Prescription    string `json:"prescription,omitempty"`
	Notes           string `json:"notes,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}
