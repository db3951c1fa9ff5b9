package contracts

import (
	"context"
	"hospital-booking-service/internal/pkg/dto/responses"
)

type EarningsUsecase interface {
	GetDoctorEarnings(ctx context.Context, sessionData string) (*responses.DoctorEarnings, error)
	GetHospitalEarnings(ctx context.Context, sessionData string) (*responses.HospitalEarnings, error)
	ExportDoctorEarnings(ctx context.Context, sessionData string) (*responses.EarningsExport, error)
	// ExportAllHospitalEarnings uploads one report per hospital and returns how many were written.
	ExportAllHospitalEarnings(ctx context.Context) (int, error)
}
