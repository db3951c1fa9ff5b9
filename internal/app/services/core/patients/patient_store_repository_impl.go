package patients

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
)

type PatientStoreRepository struct {
	Store contracts.RecordStore
}

func NewPatientStoreRepository(store contracts.RecordStore) contracts.PatientRepository {
	return &PatientStoreRepository{Store: store}
}

func (r *PatientStoreRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.Store.LoadCollection(ctx, constvars.RecordCollectionPatients, &patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *PatientStoreRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.find(ctx, func(p *models.Patient) bool { return p.ID == patientID })
}

func (r *PatientStoreRepository) FindByUniqueID(ctx context.Context, uniqueID string) (*models.Patient, error) {
	return r.find(ctx, func(p *models.Patient) bool { return p.UniqueID == uniqueID })
}

func (r *PatientStoreRepository) Create(ctx context.Context, patient *models.Patient) error {
	var patients []models.Patient
	return r.Store.UpdateCollection(ctx, constvars.RecordCollectionPatients, &patients, func() error {
		for _, existing := range patients {
			if existing.UniqueID == patient.UniqueID {
				return exceptions.ErrPatientAlreadyRegistered(nil)
			}
		}
		patients = append(patients, *patient)
		return nil
	})
}

func (r *PatientStoreRepository) find(ctx context.Context, match func(p *models.Patient) bool) (*models.Patient, error) {
	patients, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range patients {
		if match(&patients[i]) {
			return &patients[i], nil
		}
	}
	return nil, nil
}
