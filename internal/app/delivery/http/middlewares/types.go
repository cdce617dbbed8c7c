package middlewares

import (
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Logger         *zap.Logger
}

func NewMiddlewares(sessionService contracts.SessionService, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Logger:         logger,
	}
}
