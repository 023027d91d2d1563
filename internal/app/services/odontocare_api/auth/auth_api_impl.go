package auth

import (
	"context"
	"odontocare-client/internal/app/contracts"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/app/services/shared/httpclient"
	"odontocare-client/internal/pkg/constvars"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/dto/responses"
	"odontocare-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type authAPIClient struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewAuthAPIClient(client *httpclient.Client, logger *zap.Logger) contracts.AuthAPIClient {
	return &authAPIClient{
		Client: client,
		Log:    logger,
	}
}

// Login maps a 401 from the backend to ErrInvalidCredentials; every other
// failure keeps its transport or resource error.
func (c *authAPIClient) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Login)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.EndpointAuthLogin,
		Resource: constvars.ResourceAuth,
		Body:     request,
	}, response)
	if err != nil {
		c.Log.Error("authAPIClient.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		switch exceptions.StatusCode(err) {
		case constvars.StatusUnauthorized, constvars.StatusForbidden:
			return nil, exceptions.ErrInvalidCredentials(err)
		}
		return nil, err
	}

	if response.Token == "" {
		c.Log.Error("authAPIClient.Login response carries no token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	c.Log.Info("authAPIClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, response.ID),
		zap.String(constvars.LoggingUserRoleKey, response.Role),
	)
	return response, nil
}

func (c *authAPIClient) Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("authAPIClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := new(models.User)
	err := c.Client.Do(ctx, httpclient.Request{
		Method:   constvars.MethodPost,
		Path:     constvars.EndpointAuthRegister,
		Resource: constvars.ResourceAuth,
		Body:     request,
	}, user)
	if err != nil {
		c.Log.Error("authAPIClient.Register error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("authAPIClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}
