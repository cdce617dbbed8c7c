package ratings

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	patientSessionData = `{"session_id":"sess-1","user_id":"user-1","role":"patient","patient_id":"patient-1"}`
	doctorSessionData  = `{"session_id":"sess-2","user_id":"user-2","role":"doctor","doctor_id":"doctor-1"}`
)

type stubSessionService struct{}

func (s *stubSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return nil
}

func (s *stubSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	return "", nil
}

func (s *stubSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (s *stubSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

type fakeRatingRepository struct {
	ratings map[string]*models.Rating
	nextID  int
}

func newFakeRatingRepository() *fakeRatingRepository {
	return &fakeRatingRepository{ratings: make(map[string]*models.Rating)}
}

func pairKey(patientID, doctorID string) string {
	return patientID + "/" + doctorID
}

func (r *fakeRatingRepository) UpsertRating(ctx context.Context, rating *models.Rating) (string, error) {
	key := pairKey(rating.PatientID, rating.DoctorID)
	existing, ok := r.ratings[key]
	if ok {
		existing.Score = rating.Score
		existing.Comment = rating.Comment
		return existing.ID, nil
	}
	r.nextID++
	rating.ID = fmt.Sprintf("rating-%d", r.nextID)
	copied := *rating
	r.ratings[key] = &copied
	return rating.ID, nil
}

func (r *fakeRatingRepository) ListForDoctor(ctx context.Context, doctorID string) ([]models.Rating, error) {
	var result []models.Rating
	for _, rating := range r.ratings {
		if rating.DoctorID == doctorID {
			result = append(result, *rating)
		}
	}
	return result, nil
}

func (r *fakeRatingRepository) SummaryForDoctor(ctx context.Context, doctorID string) (*models.RatingSummary, error) {
	summary := &models.RatingSummary{DoctorID: doctorID}
	total := 0
	for _, rating := range r.ratings {
		if rating.DoctorID == doctorID {
			total += rating.Score
			summary.Count++
		}
	}
	if summary.Count > 0 {
		summary.Average = float64(total) / float64(summary.Count)
	}
	return summary, nil
}

type fakeAppointmentRepository struct {
	sharedPairs map[string]bool
}

func (r *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) FindByDoctorAndWindow(ctx context.Context, doctorID, date, startTime string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID string, from, to models.AppointmentStatus) error {
	return nil
}

func (r *fakeAppointmentRepository) ListForPatient(ctx context.Context, patientID string, params *requests.QueryParams) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) ListForDoctor(ctx context.Context, doctorID string, params *requests.QueryParams) ([]models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) CountForPatient(ctx context.Context, patientID string) (int64, error) {
	return 0, nil
}

func (r *fakeAppointmentRepository) CountForDoctor(ctx context.Context, doctorID string) (int64, error) {
	return 0, nil
}

func (r *fakeAppointmentRepository) ExistsForPatientAndDoctor(ctx context.Context, patientID, doctorID string) (bool, error) {
	return r.sharedPairs[pairKey(patientID, doctorID)], nil
}

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
}

func (r *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	return doctor.ID, nil
}

func (r *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	doctor, ok := r.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	return doctor, nil
}

func newRatingFixture() (*ratingUsecase, *fakeRatingRepository, *fakeAppointmentRepository) {
	ratingRepo := newFakeRatingRepository()
	appointmentRepo := &fakeAppointmentRepository{sharedPairs: map[string]bool{
		pairKey("patient-1", "doctor-1"): true,
	}}
	usecase := &ratingUsecase{
		RatingRepository:      ratingRepo,
		AppointmentRepository: appointmentRepo,
		DoctorRepository: &fakeDoctorRepository{doctors: map[string]*models.Doctor{
			"doctor-1": {ID: "doctor-1"},
		}},
		SessionService: &stubSessionService{},
		Logger:         zap.NewNop(),
	}
	return usecase, ratingRepo, appointmentRepo
}

func TestSubmitRating(t *testing.T) {
	ctx := context.Background()

	t.Run("patient with shared appointment submits rating", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		response, err := usecase.SubmitRating(ctx, patientSessionData, &requests.SubmitRatingRequest{
			DoctorID: "doctor-1",
			Score:    4,
			Comment:  "helpful and on time",
		})

		assert.NoError(t, err)
		assert.Equal(t, 4, response.Score)
		assert.Equal(t, "patient-1", response.PatientID)
	})

	t.Run("patient without shared appointment is forbidden", func(t *testing.T) {
		usecase, _, appointmentRepo := newRatingFixture()
		appointmentRepo.sharedPairs = map[string]bool{}

		_, err := usecase.SubmitRating(ctx, patientSessionData, &requests.SubmitRatingRequest{
			DoctorID: "doctor-1",
			Score:    5,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("doctor cannot submit a rating", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		_, err := usecase.SubmitRating(ctx, doctorSessionData, &requests.SubmitRatingRequest{
			DoctorID: "doctor-1",
			Score:    5,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusForbidden, customErr.StatusCode)
	})

	t.Run("unknown doctor yields not found", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		_, err := usecase.SubmitRating(ctx, patientSessionData, &requests.SubmitRatingRequest{
			DoctorID: "doctor-missing",
			Score:    3,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("resubmission replaces the previous score", func(t *testing.T) {
		usecase, ratingRepo, _ := newRatingFixture()

		_, err := usecase.SubmitRating(ctx, patientSessionData, &requests.SubmitRatingRequest{
			DoctorID: "doctor-1",
			Score:    2,
		})
		assert.NoError(t, err)

		_, err = usecase.SubmitRating(ctx, patientSessionData, &requests.SubmitRatingRequest{
			DoctorID: "doctor-1",
			Score:    5,
		})
		assert.NoError(t, err)

		ratings, err := ratingRepo.ListForDoctor(ctx, "doctor-1")
		assert.NoError(t, err)
		assert.Len(t, ratings, 1)
		assert.Equal(t, 5, ratings[0].Score)
	})
}

func TestDoctorRating(t *testing.T) {
	ctx := context.Background()

	t.Run("average over submitted scores", func(t *testing.T) {
		usecase, ratingRepo, _ := newRatingFixture()
		_, err := ratingRepo.UpsertRating(ctx, &models.Rating{PatientID: "patient-1", DoctorID: "doctor-1", Score: 4})
		assert.NoError(t, err)
		_, err = ratingRepo.UpsertRating(ctx, &models.Rating{PatientID: "patient-2", DoctorID: "doctor-1", Score: 2})
		assert.NoError(t, err)

		response, err := usecase.DoctorRating(ctx, "doctor-1")

		assert.NoError(t, err)
		assert.Equal(t, 2, response.Count)
		assert.InDelta(t, 3.0, response.Average, 0.0001)
	})

	t.Run("doctor with no ratings reports count zero", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		response, err := usecase.DoctorRating(ctx, "doctor-1")

		assert.NoError(t, err)
		assert.Equal(t, 0, response.Count)
		assert.Zero(t, response.Average)
	})

	t.Run("unknown doctor yields not found", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		_, err := usecase.DoctorRating(ctx, "doctor-missing")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestDoctorRatings(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the individual reviews", func(t *testing.T) {
		usecase, ratingRepo, _ := newRatingFixture()
		_, err := ratingRepo.UpsertRating(ctx, &models.Rating{PatientID: "patient-1", DoctorID: "doctor-1", Score: 4, Comment: "helpful"})
		assert.NoError(t, err)
		_, err = ratingRepo.UpsertRating(ctx, &models.Rating{PatientID: "patient-2", DoctorID: "doctor-1", Score: 2})
		assert.NoError(t, err)
		_, err = ratingRepo.UpsertRating(ctx, &models.Rating{PatientID: "patient-1", DoctorID: "doctor-2", Score: 5})
		assert.NoError(t, err)

		result, err := usecase.DoctorRatings(ctx, "doctor-1")

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		for _, rating := range result {
			assert.Equal(t, "doctor-1", rating.DoctorID)
		}
	})

	t.Run("doctor with no ratings yields an empty list", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		result, err := usecase.DoctorRatings(ctx, "doctor-1")

		assert.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("unknown doctor yields not found", func(t *testing.T) {
		usecase, _, _ := newRatingFixture()

		_, err := usecase.DoctorRatings(ctx, "doctor-missing")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
