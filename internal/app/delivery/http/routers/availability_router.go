package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAvailabilityRoutes(router chi.Router, middlewares *middlewares.Middlewares, availabilityController *controllers.AvailabilityController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor)).Post("/", availabilityController.DeclareSlot)
	router.With(middlewares.RequireRoles(constvars.RoleDoctor, constvars.RoleAdmin)).Delete("/{slotID}", availabilityController.RetractSlot)
}
