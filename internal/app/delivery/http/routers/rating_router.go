package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachRatingRoutes(router chi.Router, middlewares *middlewares.Middlewares, ratingController *controllers.RatingController) {
	router.Use(middlewares.Authenticate)
	router.With(middlewares.RequireRoles(constvars.RolePatient)).Post("/", ratingController.SubmitRating)
}
