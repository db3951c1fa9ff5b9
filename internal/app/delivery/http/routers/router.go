package routers

import (
	"fmt"
	"hospital-booking-service/internal/app/config"
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/services/core/auth"
	"hospital-booking-service/internal/app/services/core/booking"
	"hospital-booking-service/internal/app/services/core/doctors"
	"hospital-booking-service/internal/app/services/core/earnings"
	"hospital-booking-service/internal/app/services/core/hospitals"
	"hospital-booking-service/internal/app/services/core/patients"
	"hospital-booking-service/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/sirupsen/logrus"
)

type Controllers struct {
	Auth     *auth.AuthController
	Hospital *hospitals.HospitalController
	Doctor   *doctors.DoctorController
	Patient  *patients.PatientController
	Booking  *booking.BookingController
	Earnings *earnings.EarningsController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	controllers Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.AllowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.RequestLogger(accessLog))
	router.Use(middlewares.ErrorHandler)

	bookingLimiter := middlewares.BookingRateLimiter()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, controllers.Auth)
			})

			r.Route("/hospitals", func(r chi.Router) {
				attachHospitalRoutes(r, middlewares, controllers.Hospital, controllers.Booking, controllers.Earnings)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, controllers.Doctor, controllers.Booking, controllers.Earnings)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, controllers.Patient)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, bookingLimiter, controllers.Booking)
			})
		})
	})
}
