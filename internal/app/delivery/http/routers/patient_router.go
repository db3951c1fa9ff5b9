package routers

import (
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/services/core/patients"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *patients.PatientController) {
	router.Post("/", patientController.RegisterPatient)
	router.Get("/", patientController.ListPatients)
	router.With(middlewares.Authenticate).Get("/me/appointments", patientController.ListMyAppointments)
}
