package utils

import (
	"medibook-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogSecurityEvent records operator-facing events (payment callbacks,
// integrity alerts) on a dedicated marker so they can be alerted on without
// scraping ordinary request logs.
func LogSecurityEvent(log *zap.Logger, event, requestID, severity string, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("security_event", event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("severity", severity),
	}
	base = append(base, fields...)

	switch severity {
	case "error", "critical":
		log.Error("security event", base...)
	case "warn":
		log.Warn("security event", base...)
	default:
		log.Info("security event", base...)
	}
}
