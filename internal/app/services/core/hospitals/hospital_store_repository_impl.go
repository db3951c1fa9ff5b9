package hospitals

import (
	"context"
	"hospital-booking-service/internal/app/contracts"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/constvars"
	"hospital-booking-service/internal/pkg/exceptions"
)

// HospitalStoreRepository keeps hospitals in the "admins" record collection.
type HospitalStoreRepository struct {
	Store contracts.RecordStore
}

func NewHospitalStoreRepository(store contracts.RecordStore) contracts.HospitalRepository {
	return &HospitalStoreRepository{Store: store}
}

func (r *HospitalStoreRepository) FindAll(ctx context.Context) ([]models.Hospital, error) {
	var hospitals []models.Hospital
	err := r.Store.LoadCollection(ctx, constvars.RecordCollectionAdmins, &hospitals)
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *HospitalStoreRepository) FindByPin(ctx context.Context, hospitalPin string) (*models.Hospital, error) {
	hospitals, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range hospitals {
		if hospitals[i].Pin == hospitalPin {
			return &hospitals[i], nil
		}
	}
	return nil, nil
}

func (r *HospitalStoreRepository) Create(ctx context.Context, hospital *models.Hospital) error {
	var hospitals []models.Hospital
	return r.Store.UpdateCollection(ctx, constvars.RecordCollectionAdmins, &hospitals, func() error {
		for _, existing := range hospitals {
			if existing.Pin == hospital.Pin {
				return exceptions.ErrHospitalPinAlreadyUsed(nil)
			}
		}
		hospitals = append(hospitals, *hospital)
		return nil
	})
}
