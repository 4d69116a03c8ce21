package utils

import (
	"fmt"
	"math"
	"medora-portal/internal/pkg/constvars"
	"medora-portal/internal/pkg/dto/requests"
	"strings"

	"github.com/spf13/cast"
)

// FormProgress gives full credit for each filled required field and half
// credit for each filled optional field, as a percentage of all fields.
func FormProgress(values map[string]string, required, optional []requests.FormField) int {
	total := len(required) + len(optional)
	if total == 0 {
		return 0
	}
	completed := 0.0
	for _, field := range required {
		if strings.TrimSpace(values[field.Name]) != "" {
			completed++
		}
	}
	for _, field := range optional {
		if strings.TrimSpace(values[field.Name]) != "" {
			completed += 0.5
		}
	}
	progress := int(math.Round(completed / float64(total) * 100))
	if progress > 100 {
		return 100
	}
	return progress
}

// MissingFields returns the labels of required fields left blank.
func MissingFields(values map[string]string, required []requests.FormField) []string {
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(values[field.Name]) == "" {
			missing = append(missing, field.Label)
		}
	}
	return missing
}

func MissingFieldsMessage(missing []string) string {
	return fmt.Sprintf(constvars.MsgMissingRequiredFields, strings.Join(missing, ", "))
}

// FormStrings converts decoded form values back to plain strings. JSON
// numbers keep their digits, so a numeric phone stays 15551234567.
func FormStrings(values map[string]interface{}) map[string]string {
	result := make(map[string]string, len(values))
	for key, value := range values {
		text, err := cast.ToStringE(value)
		if err != nil {
			text = fmt.Sprint(value)
		}
		result[key] = text
	}
	return result
}
