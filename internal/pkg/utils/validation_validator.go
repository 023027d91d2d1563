package utils

import (
	"odontocare-client/internal/pkg/constvars"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	validate           *validator.Validate
	emailShapeRegex    = regexp.MustCompile(constvars.RegexEmailShape)
	brazilianDateRegex = regexp.MustCompile(constvars.RegexBrazilianDate)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("email_shape", validateEmailShape)
	validate.RegisterValidation("br_date", validateBrazilianDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateEmailShape only checks for something@something.something; the
// backend owns real address validation.
func validateEmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

func validateBrazilianDate(fl validator.FieldLevel) bool {
	return brazilianDateRegex.MatchString(fl.Field().String())
}
