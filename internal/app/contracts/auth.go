package contracts

import (
	"context"
	"hospital-booking-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	// CurrentSession reports who the bearer token belongs to.
	CurrentSession(ctx context.Context, sessionData string) (*responses.Session, error)
	Logout(ctx context.Context, sessionData string) error
}
