package contracts

import (
	"context"
	"hospital-booking-service/internal/app/models"
)

type EventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, event *models.AppointmentBookedEvent) error
}
