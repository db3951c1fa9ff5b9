package auth

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type authUsecase struct {
	SessionService contracts.SessionService
	Log            *zap.Logger
}

func NewAuthUsecase(sessionService contracts.SessionService, logger *zap.Logger) contracts.AuthUsecase {
	return &authUsecase{
		SessionService: sessionService,
		Log:            logger,
	}
}

func (uc *authUsecase) CurrentSession(ctx context.Context, sessionData string) (*responses.Session, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	return &responses.Session{
		Role:        session.Role,
		DoctorID:    session.DoctorID,
		PatientID:   session.PatientID,
		HospitalPin: session.HospitalPin,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingRoleKey, session.Role),
	)

	err = uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
