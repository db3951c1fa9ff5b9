package appointments

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
)

type AppointmentStoreRepository struct {
	Store contracts.RecordStore
}

func NewAppointmentStoreRepository(store contracts.RecordStore) contracts.AppointmentRepository {
	return &AppointmentStoreRepository{Store: store}
}

func (r *AppointmentStoreRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	var appointments []models.Appointment
	return r.Store.UpdateCollection(ctx, constvars.RecordCollectionAppointments, &appointments, func() error {
		appointments = append(appointments, *appointment)
		return nil
	})
}

func (r *AppointmentStoreRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.Store.LoadCollection(ctx, constvars.RecordCollectionAppointments, &appointments)
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentStoreRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.filter(ctx, func(a *models.Appointment) bool { return a.PatientID == patientID })
}

func (r *AppointmentStoreRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.filter(ctx, func(a *models.Appointment) bool { return a.DoctorID == doctorID })
}

func (r *AppointmentStoreRepository) FindByHospitalPin(ctx context.Context, hospitalPin string) ([]models.Appointment, error) {
	return r.filter(ctx, func(a *models.Appointment) bool { return a.HospitalPin == hospitalPin })
}

func (r *AppointmentStoreRepository) filter(ctx context.Context, keep func(a *models.Appointment) bool) ([]models.Appointment, error) {
	appointments, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Appointment, 0, len(appointments))
	for i := range appointments {
		if keep(&appointments[i]) {
			result = append(result, appointments[i])
		}
	}
	return result, nil
}
