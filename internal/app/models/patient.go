package models

import (
	"math"
	"strings"
)

type Patient struct {
	ID                           int      `json:"id"`
	PatientID                    string   `json:"patient_id"`
	UserID                       int      `json:"user_id,omitempty"`
	FirstName                    string   `json:"first_name"`
	LastName                     string   `json:"last_name"`
	FullName                     string   `json:"full_name,omitempty"`
	DateOfBirth                  string   `json:"date_of_birth"`
	Age                          *int     `json:"age,omitempty"`
	Gender                       string   `json:"gender"`
	Phone                        string   `json:"phone,omitempty"`
	Email                        string   `json:"email,omitempty"`
	Address                      string   `json:"address,omitempty"`
	MedicalHistory               string   `json:"medical_history,omitempty"`
	CurrentMedications           string   `json:"current_medications,omitempty"`
	Allergies                    string   `json:"allergies,omitempty"`
	BloodType                    string   `json:"blood_type,omitempty"`
	Height                       *float64 `json:"height,omitempty"`
	Weight                       *float64 `json:"weight,omitempty"`
	BMI                          *float64 `json:"bmi,omitempty"`
	BMICategory                  string   `json:"bmi_category,omitempty"`
	EmergencyContactName         string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone        string   `json:"emergency_contact_phone,omitempty"`
	EmergencyContactRelationship string   `json:"emergency_contact_relationship,omitempty"`
	InsuranceProvider            string   `json:"insurance_provider,omitempty"`
	InsuranceNumber              string   `json:"insurance_number,omitempty"`
	IsActive                     bool     `json:"is_active"`
	CreatedAt                    string   `json:"created_at,omitempty"`
	UpdatedAt                    string   `json:"updated_at,omitempty"`
}

func (p Patient) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// CompleteBMI fills BMI and BMICategory from height (cm) and weight (kg)
// when the backend left them out.
func (p *Patient) CompleteBMI() {
	if p.BMI == nil {
		if p.Height == nil || p.Weight == nil {
			return
		}
		bmi, ok := CalculateBMI(*p.Height, *p.Weight)
		if !ok {
			return
		}
		p.BMI = &bmi
	}
	if p.BMICategory == "" {
		p.BMICategory = BMICategory(*p.BMI)
	}
}

// CalculateBMI rounds to one decimal place.
func CalculateBMI(heightCm, weightKg float64) (float64, bool) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, false
	}
	heightM := heightCm / 100
	return math.Round(weightKg/(heightM*heightM)*10) / 10, true
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

// FilterPatients keeps patients whose first name, last name or patient id
// contains term, ignoring case. An empty term keeps everything.
func FilterPatients(patients []Patient, term string) []Patient {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return patients
	}
	filtered := make([]Patient, 0, len(patients))
	for _, p := range patients {
		if strings.Contains(strings.ToLower(p.FirstName), term) ||
			strings.Contains(strings.ToLower(p.LastName), term) ||
			strings.Contains(strings.ToLower(p.PatientID), term) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
