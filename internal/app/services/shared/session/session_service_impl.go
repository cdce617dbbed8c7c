package session

import (
	"context"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
}

func NewSessionService(redisRepository contracts.RedisRepository) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
		}
	})
	return sessionServiceInstance
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	key := fmt.Sprintf(constvars.SessionKeyFormat, session.SessionID)
	return svc.RedisRepository.Set(ctx, key, session, time.Until(session.ExpiresAt))
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	sessionData, err := svc.RedisRepository.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.SessionKeyFormat, sessionID)
	return svc.RedisRepository.Delete(ctx, key)
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}
