package utils

import (
	"odontocare-client/internal/pkg/dto/requests"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(input.Email)
}

// SanitizeRegistrationForm trims the free-text fields. Passwords are sent as typed.
func SanitizeRegistrationForm(input *requests.RegistrationForm) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
}

// SanitizePatientPatch trims the fields being changed. A field left blank
// counts as not changed.
func SanitizePatientPatch(input *requests.PatientPatch) {
	input.Name = trimOptional(input.Name)
	input.Phone = trimOptional(input.Phone)
	input.Address = trimOptional(input.Address)
	input.BirthDate = trimOptional(input.BirthDate)
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
