package contracts

import (
	"context"
	"hospital-booking-service/internal/app/models"
)

// SessionService stores who registered or logged in. Tokens carry only the
// session id; the session body lives in Redis.
type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) (token string, err error)
	// LookupSessionData returns the stored JSON for sessionID. Middleware
	// places it in the request context for usecases to parse.
	LookupSessionData(ctx context.Context, sessionID string) (sessionData string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
