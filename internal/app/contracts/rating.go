package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type RatingRepository interface {
	UpsertRating(ctx context.Context, rating *models.Rating) (ratingID string, err error)
	ListForDoctor(ctx context.Context, doctorID string) ([]models.Rating, error)
	SummaryForDoctor(ctx context.Context, doctorID string) (*models.RatingSummary, error)
}

type RatingUsecase interface {
	SubmitRating(ctx context.Context, sessionData string, request *requests.SubmitRatingRequest) (*responses.Rating, error)
	DoctorRating(ctx context.Context, doctorID string) (*responses.DoctorRating, error)
	DoctorRatings(ctx context.Context, doctorID string) ([]responses.Rating, error)
}
