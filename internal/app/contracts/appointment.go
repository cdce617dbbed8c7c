package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// AppointmentRepository is the appointment store. The unique index on
// (doctorId, date, startTime) is the single concurrency-control primitive:
// CreateAppointment surfaces its violation as a conflict, and UpdateStatus
// only commits when the stored status still matches the expected one.
type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointment *models.Appointment) (appointmentID string, err error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByDoctorAndWindow(ctx context.Context, doctorID, date, startTime string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID string, from, to models.AppointmentStatus) error
	ListForPatient(ctx context.Context, patientID string, params *requests.QueryParams) ([]models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID string, params *requests.QueryParams) ([]models.Appointment, error)
	CountForPatient(ctx context.Context, patientID string) (int64, error)
	CountForDoctor(ctx context.Context, doctorID string) (int64, error)
	ExistsForPatientAndDoctor(ctx context.Context, patientID, doctorID string) (bool, error)
}

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error)
	FindAll(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Appointment, int, error)
	CancelAppointment(ctx context.Context, sessionData, appointmentID string) error
	ConfirmAppointment(ctx context.Context, sessionData, appointmentID string) error
	CompleteAppointment(ctx context.Context, sessionData, appointmentID string) error
}
