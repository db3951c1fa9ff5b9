package contracts

import (
	"context"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByUniqueID(ctx context.Context, uniqueID string) (*models.Patient, error)
	Create(ctx context.Context, patient *models.Patient) error
}

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, request *requests.RegisterPatient) (*responses.Auth, error)
	ListPatients(ctx context.Context) ([]responses.Patient, error)
	ListMyAppointments(ctx context.Context, sessionData string) ([]responses.Appointment, error)
}
