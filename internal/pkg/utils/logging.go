package utils

import (
	"context"
	"hospital-booking-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogBusinessEvent records a state change worth auditing. Request and session
// ids are taken from ctx when present.
func LogBusinessEvent(ctx context.Context, logger *zap.Logger, event string, fields ...zap.Field) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID, _ := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	logger.Info("Business event occurred", append([]zap.Field{
		zap.String(constvars.LoggingBusinessEventKey, event),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	}, fields...)...)
}
