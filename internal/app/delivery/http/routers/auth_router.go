package routers

import (
	"hospital-booking-service/internal/app/delivery/http/middlewares"
	"hospital-booking-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/me", authController.CurrentSession)
		r.Post("/logout", authController.Logout)
	})
}
