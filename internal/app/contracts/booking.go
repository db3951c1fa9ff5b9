package contracts

import (
	"context"
	"hospital-booking-service/internal/pkg/dto/requests"
	"hospital-booking-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	ListEligibleDepartments(ctx context.Context, hospitalPin string) (*responses.EligibleDepartments, error)
	ListEligibleDoctors(ctx context.Context, hospitalPin, department string) ([]responses.Doctor, error)
	ListAvailableSlots(ctx context.Context, request *requests.AssociationLookup) (*responses.AvailableSlots, error)
	GetConsultationFee(ctx context.Context, request *requests.AssociationLookup) (*responses.ConsultationFee, error)
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*responses.Appointment, error)
}
