package contracts

import (
	"context"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/dto/responses"
)

type HospitalRepository interface {
	FindAll(ctx context.Context) ([]models.Hospital, error)
	FindByPin(ctx context.Context, hospitalPin string) (*models.Hospital, error)
	// Create fails with a conflict when the pin is already registered.
	Create(ctx context.Context, hospital *models.Hospital) error
}

type HospitalUsecase interface {
	RegisterHospital(ctx context.Context, request *requests.RegisterHospital) (*responses.Auth, error)
	ListHospitals(ctx context.Context) ([]responses.Hospital, error)
	FindHospitalByPin(ctx context.Context, hospitalPin string) (*responses.Hospital, error)
	ListHospitalDoctors(ctx context.Context, hospitalPin string) ([]responses.Doctor, error)
}
