package routers

import (
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/services/core/booking"
	"hospital-booking-service/internal/app/services/core/earnings"
	"hospital-booking-service/internal/app/services/core/hospitals"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	hospitalController *hospitals.HospitalController,
	bookingController *booking.BookingController,
	earningsController *earnings.EarningsController,
) {
	router.Post("/", hospitalController.RegisterHospital)
	router.Get("/", hospitalController.ListHospitals)
	router.With(middlewares.Authenticate).Get("/me/earnings", earningsController.GetHospitalEarnings)
	router.Get("/{pin}", hospitalController.FindHospitalByPin)
	router.Get("/{pin}/doctors", hospitalController.ListHospitalDoctors)
	router.Get("/{pin}/departments/eligible", bookingController.ListEligibleDepartments)
	router.Get("/{pin}/departments/{department}/doctors", bookingController.ListEligibleDoctors)
}
