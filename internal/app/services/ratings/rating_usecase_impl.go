package ratings

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"go.uber.org/zap"
)

var (
	ratingUsecaseInstance contracts.RatingUsecase
	onceRatingUsecase     sync.Once
)

type ratingUsecase struct {
	RatingRepository      contracts.RatingRepository
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	SessionService        contracts.SessionService
	Logger                *zap.Logger
}

func NewRatingUsecase(
	ratingRepository contracts.RatingRepository,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
) contracts.RatingUsecase {
	onceRatingUsecase.Do(func() {
		ratingUsecaseInstance = &ratingUsecase{
			RatingRepository:      ratingRepository,
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			SessionService:        sessionService,
			Logger:                logger,
		}
	})
	return ratingUsecaseInstance
}

// SubmitRating accepts a score only from a patient who actually shares an
// appointment with the doctor. Strangers get a 403, not a validation error.
func (uc *ratingUsecase) SubmitRating(ctx context.Context, sessionData string, request *requests.SubmitRatingRequest) (*responses.Rating, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	shared, err := uc.AppointmentRepository.ExistsForPatientAndDoctor(ctx, session.PatientID, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if !shared {
		return nil, exceptions.ErrRatingNotAllowed(nil)
	}

	rating := &models.Rating{
		PatientID:     session.PatientID,
		DoctorID:      request.DoctorID,
		AppointmentID: request.AppointmentID,
		Score:         request.Score,
		Comment:       request.Comment,
	}
	ratingID, err := uc.RatingRepository.UpsertRating(ctx, rating)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("rating submitted",
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
		zap.Int("score", request.Score),
	)

	return &responses.Rating{
		ID:        ratingID,
		DoctorID:  request.DoctorID,
		PatientID: session.PatientID,
		Score:     request.Score,
		Comment:   request.Comment,
	}, nil
}

func (uc *ratingUsecase) DoctorRating(ctx context.Context, doctorID string) (*responses.DoctorRating, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	summary, err := uc.RatingRepository.SummaryForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	return &responses.DoctorRating{
		DoctorID: doctorID,
		Average:  summary.Average,
		Count:    summary.Count,
	}, nil
}

// DoctorRatings lists the individual reviews behind the average.
func (uc *ratingUsecase) DoctorRatings(ctx context.Context, doctorID string) ([]responses.Rating, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	ratings, err := uc.RatingRepository.ListForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Rating, 0, len(ratings))
	for i := range ratings {
		result = append(result, responses.Rating{
			ID:        ratings[i].ID,
			DoctorID:  ratings[i].DoctorID,
			PatientID: ratings[i].PatientID,
			Score:     ratings[i].Score,
			Comment:   ratings[i].Comment,
		})
	}
	return result, nil
}
