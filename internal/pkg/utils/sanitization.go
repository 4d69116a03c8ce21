package utils

import (
	"medora-portal/internal/pkg/dto/requests"
	"strings"
)

func trimPointer(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Username = strings.TrimSpace(input.Username)
}

func SanitizeRegisterRequest(input *requests.Register) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.FirstName = trimPointer(input.FirstName)
	input.LastName = trimPointer(input.LastName)
	input.Phone = trimPointer(input.Phone)
}

func SanitizePatientForm(input *requests.PatientForm) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
	input.EmergencyContactName = strings.TrimSpace(input.EmergencyContactName)
	input.EmergencyContactPhone = strings.TrimSpace(input.EmergencyContactPhone)
	input.EmergencyContactRelationship = strings.TrimSpace(input.EmergencyContactRelationship)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
	input.MedicalHistory = strings.TrimSpace(input.MedicalHistory)
	input.CurrentMedications = strings.TrimSpace(input.CurrentMedications)
	input.Allergies = strings.TrimSpace(input.Allergies)
	input.InsuranceProvider = strings.TrimSpace(input.InsuranceProvider)
	input.InsuranceNumber = strings.TrimSpace(input.InsuranceNumber)
}

func SanitizeSearchRequest(input *requests.Search) {
	input.Query = strings.TrimSpace(input.Query)
}
