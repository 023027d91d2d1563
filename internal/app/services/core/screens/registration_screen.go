package screens

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/exceptions"
	"odontocare-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type RegistrationState struct {
	Loading bool
}

type RegistrationController struct {
	screen
	AuthAPIClient    contracts.AuthAPIClient
	PatientAPIClient contracts.PatientAPIClient

	mu    sync.Mutex
	state RegistrationState
}

func NewRegistrationController(deps Dependencies, authAPIClient contracts.AuthAPIClient, patientAPIClient contracts.PatientAPIClient) *RegistrationController {
	c := &RegistrationController{
		AuthAPIClient:    authAPIClient,
		PatientAPIClient: patientAPIClient,
	}
	c.setup(deps, constvars.RouteRegister)
	return c
}

func (c *RegistrationController) State() RegistrationState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *RegistrationController) Focus(ctx context.Context) error {
	c.enter()
	return nil
}

// Submit validates the form locally, then creates the user, its patient
// profile with zero points, and logs in with the same credentials. Nothing
// is sent when validation fails.
func (c *RegistrationController) Submit(ctx context.Context, form requests.RegistrationForm) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	utils.SanitizeRegistrationForm(&form)
	if err := utils.ValidateStruct(&form); err != nil {
		validationErr := exceptions.ErrInputValidation(err)
		c.fail(ctx, generation, validationErr, validationErr.ClientMessage)
		return validationErr
	}

	var birthDate *string
	if form.BirthDate != "" {
		iso, ok := utils.BrazilianDateToISO(form.BirthDate)
		if !ok {
			err := exceptions.ErrClientCustomMessage(nil, constvars.ErrClientInvalidBirthDate)
			c.fail(ctx, generation, err, err.ClientMessage)
			return err
		}
		birthDate = &iso
	}

	c.setLoading(generation, true)
	defer c.setLoading(generation, false)

	user, err := c.AuthAPIClient.Register(ctx, &requests.RegisterUser{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     constvars.UserRolePatient,
	})
	if err != nil {
		c.fail(ctx, generation, err, registrationMessage(err))
		return err
	}

	// The patient record shares the user's id.
	_, err = c.PatientAPIClient.UpdatePatient(ctx, user.ID, &requests.UpsertPatient{
		UserID:    user.ID,
		Name:      form.Name,
		BirthDate: birthDate,
		Phone:     form.Phone,
		Points:    0,
	})
	if err != nil {
		c.fail(ctx, generation, err, registrationMessage(err))
		return err
	}

	_, err = c.Session.Login(ctx, form.Email, form.Password)
	if err != nil {
		c.fail(ctx, generation, err, registrationMessage(err))
		return err
	}

	c.Log.Info("RegistrationController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	c.notifySuccess(generation, constvars.SuccessRegistration)
	c.navigate(generation, constvars.RouteHome)
	return nil
}

func (c *RegistrationController) OpenLogin() {
	c.navigate(c.currentGeneration(), constvars.RouteLogin)
}

func (c *RegistrationController) setLoading(generation uint64, loading bool) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	c.state.Loading = loading
	c.mu.Unlock()
}

// registrationMessage prefers the backend's own explanation, e.g. a
// duplicate email.
func registrationMessage(err error) string {
	if message, ok := httpclient.BackendMessage(err); ok {
		return message
	}
	return constvars.ErrClientRegistrationFailed
}
