package auth

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeUserRepository struct {
	users  map[string]*models.User
	nextID int
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*models.User)}
}

func (r *fakeUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	if _, exists := r.users[user.Email]; exists {
		return "", exceptions.ErrEmailAlreadyExist(nil)
	}
	r.nextID++
	user.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *user
	r.users[user.Email] = &copied
	return user.ID, nil
}

func (r *fakeUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *fakeUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	r.users[user.Email] = user
	return nil
}

type fakeDoctorRepository struct {
	created []*models.Doctor
}

func (r *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctor *models.Doctor) (string, error) {
	doctor.ID = fmt.Sprintf("doctor-%d", len(r.created)+1)
	r.created = append(r.created, doctor)
	return doctor.ID, nil
}

func (r *fakeDoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	for _, doctor := range r.created {
		if doctor.ID == doctorID {
			return doctor, nil
		}
	}
	return nil, nil
}

type fakePatientRepository struct {
	created []*models.Patient
}

func (r *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	patient.ID = fmt.Sprintf("patient-%d", len(r.created)+1)
	r.created = append(r.created, patient)
	return patient.ID, nil
}

func (r *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	for _, patient := range r.created {
		if patient.ID == patientID {
			return patient, nil
		}
	}
	return nil, nil
}

type fakeSessionService struct {
	sessions map[string]*models.Session
	deleted  []string
}

func newFakeSessionService() *fakeSessionService {
	return &fakeSessionService{sessions: make(map[string]*models.Session)}
}

func (s *fakeSessionService) CreateSession(ctx context.Context, session *models.Session) error {
	s.sessions[session.SessionID] = session
	return nil
}

func (s *fakeSessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	raw, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (s *fakeSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func (s *fakeSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	var session models.Session
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, exceptions.ErrSessionInvalid(err)
	}
	return &session, nil
}

func newAuthFixture() (*authUsecase, *fakeUserRepository, *fakeSessionService) {
	userRepo := newFakeUserRepository()
	sessionService := newFakeSessionService()
	usecase := &authUsecase{
		UserRepository:    userRepo,
		DoctorRepository:  &fakeDoctorRepository{},
		PatientRepository: &fakePatientRepository{},
		SessionService:    sessionService,
		InternalConfig: &config.InternalConfig{
			App: config.App{SessionExpiredTimeInHours: 24},
			JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 24},
		},
		Logger: zap.NewNop(),
	}
	return usecase, userRepo, sessionService
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("patient registration creates patient profile and user", func(t *testing.T) {
		usecase, userRepo, _ := newAuthFixture()

		result, err := usecase.Register(ctx, &requests.RegisterRequest{
			FullName: "Jane Roe",
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
			Role:     constvars.RolePatient,
		})

		assert.NoError(t, err)
		assert.Equal(t, constvars.RolePatient, result.Role)

		user, _ := userRepo.FindByEmail(ctx, "jane@example.com")
		assert.NotNil(t, user)
		assert.NotEmpty(t, user.PatientID)
		assert.Empty(t, user.DoctorID)
		assert.NotEqual(t, "Str0ngPass!", user.Password)
	})

	t.Run("doctor registration carries fee and specialization", func(t *testing.T) {
		usecase, userRepo, _ := newAuthFixture()
		doctorRepo := usecase.DoctorRepository.(*fakeDoctorRepository)

		_, err := usecase.Register(ctx, &requests.RegisterRequest{
			FullName:        "Gregory House",
			Email:           "house@example.com",
			Password:        "Str0ngPass!",
			Role:            constvars.RoleDoctor,
			Specialization:  "diagnostics",
			ConsultationFee: 250,
		})

		assert.NoError(t, err)
		assert.Len(t, doctorRepo.created, 1)
		assert.Equal(t, "diagnostics", doctorRepo.created[0].Specialization)
		assert.InDelta(t, 250.0, doctorRepo.created[0].ConsultationFee, 0.001)

		user, _ := userRepo.FindByEmail(ctx, "house@example.com")
		assert.Equal(t, doctorRepo.created[0].ID, user.DoctorID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		usecase, _, _ := newAuthFixture()
		request := &requests.RegisterRequest{
			FullName: "Jane Roe",
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
			Role:     constvars.RolePatient,
		}
		_, err := usecase.Register(ctx, request)
		assert.NoError(t, err)

		_, err = usecase.Register(ctx, request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, usecase *authUsecase) {
		_, err := usecase.Register(ctx, &requests.RegisterRequest{
			FullName: "Jane Roe",
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
			Role:     constvars.RolePatient,
		})
		assert.NoError(t, err)
	}

	t.Run("valid credentials yield a token and session", func(t *testing.T) {
		usecase, _, sessionService := newAuthFixture()
		register(t, usecase)

		result, err := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, constvars.RolePatient, result.Role)
		assert.Len(t, sessionService.sessions, 1)

		sessionID, parseErr := utils.ParseSessionJWT(result.Token, usecase.InternalConfig.JWT.Secret)
		assert.NoError(t, parseErr)
		_, exists := sessionService.sessions[sessionID]
		assert.True(t, exists)
	})

	t.Run("wrong password is indistinguishable from unknown email", func(t *testing.T) {
		usecase, _, _ := newAuthFixture()
		register(t, usecase)

		_, wrongPassErr := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "jane@example.com",
			Password: "not-the-password",
		})
		_, unknownEmailErr := usecase.Login(ctx, &requests.LoginRequest{
			Email:    "nobody@example.com",
			Password: "Str0ngPass!",
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, wrongPassErr, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.ErrorAs(t, unknownEmailErr, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("logout removes the session", func(t *testing.T) {
		usecase, _, sessionService := newAuthFixture()
		_, err := usecase.Register(ctx, &requests.RegisterRequest{
			FullName: "Jane Roe",
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
			Role:     constvars.RolePatient,
		})
		assert.NoError(t, err)
		_, err = usecase.Login(ctx, &requests.LoginRequest{
			Email:    "jane@example.com",
			Password: "Str0ngPass!",
		})
		assert.NoError(t, err)

		var sessionID string
		for id := range sessionService.sessions {
			sessionID = id
		}
		sessionData, err := sessionService.GetSessionData(ctx, sessionID)
		assert.NoError(t, err)

		err = usecase.Logout(ctx, sessionData)

		assert.NoError(t, err)
		assert.Empty(t, sessionService.sessions)
		assert.Contains(t, sessionService.deleted, sessionID)
	})
}
