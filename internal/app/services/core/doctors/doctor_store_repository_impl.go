package doctors

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
)

// DoctorStoreRepository keeps doctors in the "doctors" record collection.
// Every write goes through RecordStore.UpdateCollection so the check and
// the change see the same snapshot.
type DoctorStoreRepository struct {
	Store contracts.RecordStore
}

func NewDoctorStoreRepository(store contracts.RecordStore) contracts.DoctorRepository {
	return &DoctorStoreRepository{Store: store}
}

func (r *DoctorStoreRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.Store.LoadCollection(ctx, constvars.RecordCollectionDoctors, &doctors)
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *DoctorStoreRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctors, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return findDoctor(doctors, doctorID), nil
}

func (r *DoctorStoreRepository) FindByNameAndQualifications(ctx context.Context, name, qualifications string) (*models.Doctor, error) {
	doctors, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doctors {
		if doctors[i].IsSameDoctor(name, qualifications) {
			return &doctors[i], nil
		}
	}
	return nil, nil
}

func (r *DoctorStoreRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	if doctor.Associations == nil {
		doctor.Associations = []models.Association{}
	}
	var doctors []models.Doctor
	return r.Store.UpdateCollection(ctx, constvars.RecordCollectionDoctors, &doctors, func() error {
		doctors = append(doctors, *doctor)
		return nil
	})
}

func (r *DoctorStoreRepository) AddAssociation(ctx context.Context, doctorID string, association models.Association) error {
	return r.update(ctx, doctorID, func(doctor *models.Doctor) error {
		held := doctor.HeldSlots()
		for _, slot := range association.TimeSlots {
			if _, ok := held[slot]; ok {
				return exceptions.ErrTimeSlotConflict(nil)
			}
		}
		doctor.Associations = append(doctor.Associations, association)
		return nil
	})
}

func (r *DoctorStoreRepository) UpdateAssociationFee(ctx context.Context, doctorID string, key models.AssociationKey, fee float64) error {
	return r.update(ctx, doctorID, func(doctor *models.Doctor) error {
		association, ok := doctor.FindAssociation(key)
		if !ok {
			return exceptions.ErrAssociationNotFound(nil)
		}
		association.Fee = fee
		return nil
	})
}

func (r *DoctorStoreRepository) RemoveSlot(ctx context.Context, doctorID string, key models.AssociationKey, slot string) error {
	return r.update(ctx, doctorID, func(doctor *models.Doctor) error {
		if !doctor.RemoveSlot(key, slot) {
			return exceptions.ErrSlotUnavailable(nil)
		}
		return nil
	})
}

func (r *DoctorStoreRepository) RestoreSlot(ctx context.Context, doctorID string, key models.AssociationKey, slot string) error {
	return r.update(ctx, doctorID, func(doctor *models.Doctor) error {
		if !doctor.RestoreSlot(key, slot) {
			return exceptions.ErrAssociationNotFound(nil)
		}
		return nil
	})
}

func (r *DoctorStoreRepository) update(ctx context.Context, doctorID string, change func(doctor *models.Doctor) error) error {
	var doctors []models.Doctor
	return r.Store.UpdateCollection(ctx, constvars.RecordCollectionDoctors, &doctors, func() error {
		doctor := findDoctor(doctors, doctorID)
		if doctor == nil {
			return exceptions.ErrDoctorNotFound(nil)
		}
		if err := change(doctor); err != nil {
			return err
		}
		doctor.SetUpdatedAt()
		return nil
	})
}

func findDoctor(doctors []models.Doctor, doctorID string) *models.Doctor {
	for i := range doctors {
		if doctors[i].ID == doctorID {
			return &doctors[i]
		}
	}
	return nil
}
