package routers

import (
	"medibook-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

// Public read endpoints hung off the doctor resource. No session required to
// browse a doctor's open slots or rating.
func attachDoctorRoutes(router chi.Router, availabilityController *controllers.AvailabilityController, ratingController *controllers.RatingController) {
	router.Get("/{doctorID}/availability", availabilityController.ListOpenSlots)
	router.Get("/{doctorID}/rating", ratingController.DoctorRating)
	router.Get("/{doctorID}/ratings", ratingController.DoctorRatings)
}
