package routers

import (
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	availabilityController *controllers.AvailabilityController,
	appointmentController *controllers.AppointmentController,
	ratingController *controllers.RatingController,
	paymentController *controllers.PaymentController,
	userController *controllers.UserController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestBodyLimit(internalConfig.App.RequestBodyLimitInMegabyte))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Logger))

	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(versionPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, availabilityController, ratingController)
		})

		r.Route("/availability", func(r chi.Router) {
			attachAvailabilityRoutes(r, middlewares, availabilityController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})

		r.Route("/ratings", func(r chi.Router) {
			attachRatingRoutes(r, middlewares, ratingController)
		})

		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, paymentController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})
	})
}
