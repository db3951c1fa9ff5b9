package contracts

import (
	"context"
	"hospital-booking-service/internal/app/models"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/dto/responses"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByNameAndQualifications(ctx context.Context, name, qualifications string) (*models.Doctor, error)
	Create(ctx context.Context, doctor *models.Doctor) error
	// AddAssociation fails with a conflict when any of its slots is already
	// held by the doctor.
	AddAssociation(ctx context.Context, doctorID string, association models.Association) error
	UpdateAssociationFee(ctx context.Context, doctorID string, key models.AssociationKey, fee float64) error
	// RemoveSlot consumes slot only if it is still offered, otherwise it fails
	// with a conflict and nothing changes.
	RemoveSlot(ctx context.Context, doctorID string, key models.AssociationKey, slot string) error
	RestoreSlot(ctx context.Context, doctorID string, key models.AssociationKey, slot string) error
}

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, request *requests.RegisterDoctor) (*responses.Auth, error)
	FindDoctorByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	ListAssociableDepartments(ctx context.Context, sessionData, hospitalPin string) (*responses.AssociableDepartments, error)
	CreateAssociation(ctx context.Context, request *requests.CreateAssociation) (*responses.Doctor, error)
	UpdateAssociationFee(ctx context.Context, request *requests.UpdateAssociationFee) (*responses.Doctor, error)
}
