package utils

import (
	"medora-portal/internal/pkg/dto/requests"
	"medora-portal/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPatientForm() *requests.PatientForm {
	return &requests.PatientForm{
		FirstName:             "John",
		LastName:              "Doe",
		DateOfBirth:           "1990-01-01",
		Gender:                "Male",
		Phone:                 "123-456-7890",
		Address:               "123 Test Street",
		EmergencyContactName:  "Jane Doe",
		EmergencyContactPhone: "(555) 123 4567",
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"+15551234567", true},
		{"123-456-7890", true},
		{"(555) 123 4567", true},
		{"0123456789", false},
		{"+1234567890123456789", false},
		{"abc", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidPhone(tt.phone))
		})
	}
}

func TestValidatePatientForm(t *testing.T) {
	nowFunc = func() time.Time { return time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC) }
	defer func() { nowFunc = time.Now }()

	t.Run("Valid Form", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validPatientForm()))
	})

	t.Run("Short First Name", func(t *testing.T) {
		form := validPatientForm()
		form.FirstName = "J"

		err := ValidateStruct(form)

		assert.Error(t, err)
		assert.Equal(t, "first_name must be at least 2 characters long", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Future Date Of Birth", func(t *testing.T) {
		form := validPatientForm()
		form.DateOfBirth = "2024-06-02"

		err := ValidateStruct(form)

		assert.Equal(t, "date_of_birth must not be in the future or before 1900-01-01", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Date Before 1900", func(t *testing.T) {
		form := validPatientForm()
		form.DateOfBirth = "1899-12-31"

		assert.Error(t, ValidateStruct(form))
	})

	t.Run("Today Is Allowed", func(t *testing.T) {
		form := validPatientForm()
		form.DateOfBirth = "2024-06-01"

		assert.NoError(t, ValidateStruct(form))
	})

	t.Run("Invalid Emergency Phone", func(t *testing.T) {
		form := validPatientForm()
		form.EmergencyContactPhone = "call me"

		err := ValidateStruct(form)

		assert.Equal(t, "emergency_contact_phone must be a valid phone number", exceptions.FormatFirstValidationError(err))
	})
}

func TestValidateRegister(t *testing.T) {
	request := &requests.Register{
		Username:  "doc1",
		Email:     "doc1@medora.test",
		Password:  "secret1",
		FirstName: "Gregory",
		LastName:  "House",
		Role:      "surgeon",
	}

	err := ValidateStruct(request)

	assert.Equal(t, "role must be one of admin, doctor, user or patient", exceptions.FormatFirstValidationError(err))
}
