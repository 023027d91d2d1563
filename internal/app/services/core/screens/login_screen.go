package screens

import (
	"context"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/exceptions"
	"odontocare-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type LoginState struct {
	Loading bool
}

type LoginController struct {
	screen

	mu    sync.Mutex
	state LoginState
}

func NewLoginController(deps Dependencies) *LoginController {
	c := &LoginController{}
	c.setup(deps, constvars.RouteLogin)
	return c
}

func (c *LoginController) State() LoginState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Focus skips the form when a restored session is already available.
func (c *LoginController) Focus(ctx context.Context) error {
	generation := c.enter()

	select {
	case <-c.Session.Ready():
	case <-ctx.Done():
		return ctx.Err()
	}
	if c.Session.Current() != nil {
		c.navigate(generation, constvars.RouteHome)
	}
	return nil
}

func (c *LoginController) Submit(ctx context.Context, email, password string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctx, generation, cancel := c.active(ctx)
	defer cancel()

	input := requests.Login{Email: email, Password: password}
	utils.SanitizeLoginRequest(&input)
	if input.Email == "" || input.Password == "" {
		err := exceptions.ErrLoginFieldsRequired()
		c.fail(ctx, generation, err, err.ClientMessage)
		return err
	}

	c.setLoading(generation, true)
	defer c.setLoading(generation, false)

	_, err := c.Session.Login(ctx, input.Email, input.Password)
	if err != nil {
		c.fail(ctx, generation, err, constvars.ErrClientInvalidEmailOrPassword)
		return err
	}

	c.Log.Info("LoginController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	c.navigate(generation, constvars.RouteHome)
	return nil
}

func (c *LoginController) OpenRegistration() {
	c.navigate(c.currentGeneration(), constvars.RouteRegister)
}

func (c *LoginController) setLoading(generation uint64, loading bool) {
	if !c.isCurrent(generation) {
		return
	}
	c.mu.Lock()
	c.state.Loading = loading
	c.mu.Unlock()
}
