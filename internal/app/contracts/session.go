package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSessionData(ctx context.Context, sessionID string) (string, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
}
