package users

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	StorageService contracts.StorageService
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Logger         *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	storageService contracts.StorageService,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			StorageService: storageService,
			SessionService: sessionService,
			InternalConfig: internalConfig,
			Logger:         logger,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) UploadProfilePicture(ctx context.Context, sessionData string, file multipart.File, header *multipart.FileHeader) (*responses.ProfilePicture, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	maxSize := uc.InternalConfig.Minio.ProfilePictureMaxUploadSizeInMB * 1024 * 1024
	if header.Size > maxSize {
		return nil, exceptions.ErrImageTooLarge(nil)
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	extension := strings.ToLower(filepath.Ext(header.Filename))
	if !isSupportedImage(contentType, extension) {
		return nil, exceptions.ErrImageValidation(nil)
	}

	objectName := utils.GenerateObjectName("profile", session.UserID, extension)
	err = uc.StorageService.UploadObject(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrSessionInvalid(nil)
	}
	user.ProfilePictureKey = objectName
	err = uc.UserRepository.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	expiry := time.Duration(uc.InternalConfig.Minio.PreSignedUrlObjectExpiryTimeInHours) * time.Hour
	url, err := uc.StorageService.PresignedGetURL(ctx, objectName, expiry)
	if err != nil {
		return nil, err
	}

	uc.Logger.Info("profile picture uploaded",
		zap.String("user_id", session.UserID),
		zap.String("object_name", objectName),
	)

	return &responses.ProfilePicture{URL: url}, nil
}

func isSupportedImage(contentType, extension string) bool {
	switch contentType {
	case constvars.MIMEImageJPEG, constvars.MIMEImagePNG:
	default:
		return false
	}
	switch extension {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}
