package auth

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	DoctorRepository  contracts.DoctorRepository
	PatientRepository contracts.PatientRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Logger            *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			DoctorRepository:  doctorRepository,
			PatientRepository: patientRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			Logger:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Register, error) {
	utils.SanitizeRegisterRequest(request)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Role:     request.Role,
		Email:    request.Email,
		FullName: request.FullName,
		Password: hashedPassword,
	}

	switch request.Role {
	case constvars.RoleDoctor:
		doctor := &models.Doctor{
			FullName:        request.FullName,
			Specialization:  request.Specialization,
			ClinicName:      request.ClinicName,
			ConsultationFee: request.ConsultationFee,
			Email:           request.Email,
		}
		doctor.SetCreatedAtUpdatedAt()
		doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
		if err != nil {
			return nil, err
		}
		user.DoctorID = doctorID
	case constvars.RolePatient:
		patient := &models.Patient{
			FullName: request.FullName,
			Email:    request.Email,
		}
		patient.SetCreatedAtUpdatedAt()
		patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
		if err != nil {
			return nil, err
		}
		user.PatientID = patientID
	}

	user.SetCreatedAtUpdatedAt()
	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("user registered",
		zap.String("user_id", userID),
		zap.String("role", request.Role),
	)

	return &responses.Register{
		UserID: userID,
		Role:   request.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.Login, error) {
	utils.SanitizeLoginRequest(request)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Role:      user.Role,
		DoctorID:  user.DoctorID,
		PatientID: user.PatientID,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour),
	}
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)

	return &responses.Login{
		Token: token,
		Role:  user.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionData string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}
