package screens

import (
	"context"
	"net/http"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"strconv"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validForm() requests.RegistrationForm {
	return requests.RegistrationForm{
		Name:            "Bruno Costa",
		Email:           "bruno@example.com",
		Password:        "s3nha",
		ConfirmPassword: "s3nha",
		BirthDate:       "20/05/1990",
		Phone:           "(21) 98888-7777",
	}
}

func TestRegistrationController_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(form *requests.RegistrationForm)
		message string
	}{
		{"Mismatched Passwords", func(form *requests.RegistrationForm) { form.ConfirmPassword = "outra" }, constvars.ErrClientPasswordsDoNotMatch},
		{"Missing Name", func(form *requests.RegistrationForm) { form.Name = "   " }, constvars.ErrClientRequiredFields},
		{"Missing Confirmation", func(form *requests.RegistrationForm) { form.ConfirmPassword = "" }, constvars.ErrClientRequiredFields},
		{"Email Shape", func(form *requests.RegistrationForm) { form.Email = "bruno.example.com" }, constvars.ErrClientInvalidEmail},
		{"Birth Date Format", func(form *requests.RegistrationForm) { form.BirthDate = "1990-05-20" }, constvars.ErrClientInvalidBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			authAPIClient := new(MockAuthAPIClient)
			controller := NewRegistrationController(h.deps(), authAPIClient, h.patientAPIClient())

			form := validForm()
			tt.mutate(&form)

			require.Error(t, controller.Submit(ctx, form))
			assert.Equal(t, tt.message, h.notifier.Last().Message)
			authAPIClient.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
			assert.Empty(t, h.backend.Requests())
		})
	}
}

func TestRegistrationController_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates User Then Patient Then Logs In", func(t *testing.T) {
		h := newHarness(t)
		controller := NewRegistrationController(h.deps(), h.authAPIClient(), h.patientAPIClient())

		require.NoError(t, controller.Submit(ctx, validForm()))

		user, ok := h.backend.UserByEmail("bruno@example.com")
		require.True(t, ok)
		assert.Equal(t, constvars.UserRolePatient, user.Role)

		puts := h.backend.RequestsTo(http.MethodPut, "/api/pacientes/"+strconv.FormatInt(user.ID, 10))
		require.Len(t, puts, 1)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(puts[0].Body), &body))
		assert.EqualValues(t, user.ID, body["usuarioId"])
		assert.Equal(t, "Bruno Costa", body["nome"])
		assert.Equal(t, "1990-05-20", body["dataNascimento"])
		assert.Equal(t, "(21) 98888-7777", body["telefone"])
		assert.EqualValues(t, 0, body["pontos"])

		current := h.session.Current()
		require.NotNil(t, current)
		assert.Equal(t, user.ID, current.User.ID)
		require.NotNil(t, current.Patient)
		assert.Equal(t, user.ID, current.Patient.ID)

		assert.Equal(t, models.NotificationSuccess, h.notifier.Last().Level)
		h.navigator.AssertCalled(t, "Navigate", constvars.RouteHome)
	})

	t.Run("Birth Date Is Optional", func(t *testing.T) {
		h := newHarness(t)
		controller := NewRegistrationController(h.deps(), h.authAPIClient(), h.patientAPIClient())

		form := validForm()
		form.BirthDate = ""
		require.NoError(t, controller.Submit(ctx, form))

		user, _ := h.backend.UserByEmail("bruno@example.com")
		puts := h.backend.RequestsTo(http.MethodPut, "/api/pacientes/"+strconv.FormatInt(user.ID, 10))
		require.Len(t, puts, 1)
		assert.Contains(t, puts[0].Body, `"dataNascimento":null`)
	})

	t.Run("Backend Message Is Shown", func(t *testing.T) {
		h := newHarness(t)
		controller := NewRegistrationController(h.deps(), h.authAPIClient(), h.patientAPIClient())

		form := validForm()
		form.Email = "ana@example.com"
		require.Error(t, controller.Submit(ctx, form))

		assert.Equal(t, "email já cadastrado", h.notifier.Last().Message)
		assert.Empty(t, h.backend.RequestsTo(http.MethodPost, "/api/auth/login"))
		assert.Nil(t, h.session.Current())
		h.navigator.AssertNotCalled(t, "Navigate", constvars.RouteHome)
	})

	t.Run("Profile Failure Stops Before Login", func(t *testing.T) {
		h := newHarness(t)
		controller := NewRegistrationController(h.deps(), h.authAPIClient(), h.patientAPIClient())

		h.backend.FailNext(http.MethodPut, "/api/pacientes/1002", http.StatusInternalServerError)

		require.Error(t, controller.Submit(ctx, validForm()))
		assert.Equal(t, models.NotificationError, h.notifier.Last().Level)
		assert.Empty(t, h.backend.RequestsTo(http.MethodPost, "/api/auth/login"))
		assert.False(t, controller.State().Loading)
	})
}
