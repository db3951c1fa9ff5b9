package routers

import (
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/services/core/booking"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	limiter func(http.Handler) http.Handler,
	bookingController *booking.BookingController,
) {
	router.With(limiter, middlewares.Authenticate).Post("/", bookingController.BookAppointment)
}
