package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate)
	router.Get("/", appointmentController.FindAll)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Post("/", appointmentController.BookAppointment)
	router.Post("/{appointmentID}/cancel", appointmentController.Cancel)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).Post("/{appointmentID}/confirm", appointmentController.Confirm)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).Post("/{appointmentID}/complete", appointmentController.Complete)
}
