package routers

import (
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/services/core/booking"
	"hospital-booking-service/internal/app/services/core/doctors"
	"hospital-booking-service/internal/app/services/core/earnings"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	doctorController *doctors.DoctorController,
	bookingController *booking.BookingController,
	earningsController *earnings.EarningsController,
) {
	router.Post("/", doctorController.RegisterDoctor)

	router.Route("/me", func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/departments", doctorController.ListAssociableDepartments)
		r.Post("/associations", doctorController.CreateAssociation)
		r.Put("/associations/fee", doctorController.UpdateAssociationFee)
		r.Get("/earnings", earningsController.GetDoctorEarnings)
		r.Post("/earnings/export", earningsController.ExportDoctorEarnings)
	})

	router.Get("/{doctorID}", doctorController.FindDoctorByID)
	router.Get("/{doctorID}/slots", bookingController.ListAvailableSlots)
	router.Get("/{doctorID}/fee", bookingController.GetConsultationFee)
}
