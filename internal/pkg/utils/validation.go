package utils

import (
	"medora-portal/internal/app/models"
	"medora-portal/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate           *validator.Validate
	phoneRegex         = regexp.MustCompile(constvars.RegexMedoraPhone)
	phoneSeparatorsReg = regexp.MustCompile(constvars.RegexPhoneSeparators)
	usernameRegex      = regexp.MustCompile(constvars.RegexUsernameCharacter)

	// nowFunc is swapped in tests that pin the calendar.
	nowFunc = time.Now
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("medora_phone", validateMedoraPhone)
	validate.RegisterValidation("medora_role", validateMedoraRole)
	validate.RegisterValidation("medora_username", validateMedoraUsername)
	validate.RegisterValidation("past_date", validatePastDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// IsValidPhone strips spaces, dashes and parentheses before matching.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phoneSeparatorsReg.ReplaceAllString(phone, ""))
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateMedoraPhone(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func validateMedoraRole(fl validator.FieldLevel) bool {
	return models.Role(fl.Field().String()).IsValid()
}

func validateMedoraUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

func validatePastDate(fl validator.FieldLevel) bool {
	date, err := time.Parse("2006-01-02", fl.Field().String())
	if err != nil {
		return false
	}
	minimum, _ := time.Parse("2006-01-02", constvars.MinimumDateOfBirth)
	now := nowFunc()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !date.After(today) && !date.Before(minimum)
}
