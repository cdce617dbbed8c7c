package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
	"mime/multipart"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (doctorID string, err error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
}

type UserUsecase interface {
	UploadProfilePicture(ctx context.Context, sessionData string, file multipart.File, header *multipart.FileHeader) (*responses.ProfilePicture, error)
}
