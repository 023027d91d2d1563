package contracts

import (
	"context"
	"odontocare-client/internal/app/models"
	"odontocare-client/internal/pkg/dto/requests"
	"odontocare-client/internal/pkg/dto/responses"
)

type AuthAPIClient interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Register(ctx context.Context, request *requests.RegisterUser) (*models.User, error)
}
