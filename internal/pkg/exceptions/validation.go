package exceptions

import (
	"errors"
	"odontocare-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FormatFirstValidationError reports the highest-priority failing rule, so a
// form with several problems always yields the same message.
func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failed[fieldErr.Tag()] = true
	}
	for _, tag := range constvars.ValidationTagPriority {
		if failed[tag] {
			return constvars.CustomValidationErrorMessages[tag]
		}
	}

	if message, ok := constvars.CustomValidationErrorMessages[validationErrors[0].Tag()]; ok {
		return message
	}
	return validationErrors[0].Field() + " is invalid"
}
