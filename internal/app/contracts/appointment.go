package contracts

import (
	"context"
	"hospital-booking-service/internal/app/models"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindAll(ctx context.Context) ([]models.Appointment, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error)
	FindByHospitalPin(ctx context.Context, hospitalPin string) ([]models.Appointment, error)
}
