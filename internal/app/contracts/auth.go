package contracts

import (
	"context"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Register, error)
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.Login, error)
	Logout(ctx context.Context, sessionData string) error
}
