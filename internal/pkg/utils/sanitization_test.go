package utils

import (
	"odontocare-client/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegistrationForm(t *testing.T) {
	t.Run("Free Text Fields Trimmed", func(t *testing.T) {
		form := &requests.RegistrationForm{
			Name:      "  Maria Souza ",
			Email:     "  maria@example.com  ",
			Phone:     " (11) 91234-5678 ",
			BirthDate: " 05/03/1990 ",
		}

		SanitizeRegistrationForm(form)

		assert.Equal(t, "Maria Souza", form.Name)
		assert.Equal(t, "maria@example.com", form.Email)
		assert.Equal(t, "(11) 91234-5678", form.Phone)
		assert.Equal(t, "05/03/1990", form.BirthDate)
	})

	t.Run("Passwords Untouched", func(t *testing.T) {
		form := &requests.RegistrationForm{Password: " secret ", ConfirmPassword: " secret "}

		SanitizeRegistrationForm(form)

		assert.Equal(t, " secret ", form.Password, "password should be sent as typed")
		assert.Equal(t, " secret ", form.ConfirmPassword)
	})
}

func TestSanitizePatientPatch(t *testing.T) {
	phone := "  99999-0000 "
	blank := "   "
	patch := &requests.PatientPatch{Phone: &phone, Address: &blank}

	SanitizePatientPatch(patch)

	assert.Nil(t, patch.Name, "absent fields should stay absent")
	if assert.NotNil(t, patch.Phone) {
		assert.Equal(t, "99999-0000", *patch.Phone)
	}
	assert.Equal(t, "  99999-0000 ", phone, "caller's string should not be modified")
	assert.Nil(t, patch.Address, "blank fields count as unchanged")
}
