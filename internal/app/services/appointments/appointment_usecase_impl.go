package appointments

import (
	"context"
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
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

type appointmentUsecase struct {
	AppointmentRepository  contracts.AppointmentRepository
	AvailabilityRepository contracts.AvailabilityRepository
	DoctorRepository       contracts.DoctorRepository
	SessionService         contracts.SessionService
	PaymentUsecase         contracts.PaymentUsecase
	NotificationService    contracts.NotificationService
	Logger                 *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	availabilityRepository contracts.AvailabilityRepository,
	doctorRepository contracts.DoctorRepository,
	sessionService contracts.SessionService,
	paymentUsecase contracts.PaymentUsecase,
	notificationService contracts.NotificationService,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository:  appointmentRepository,
			AvailabilityRepository: availabilityRepository,
			DoctorRepository:       doctorRepository,
			SessionService:         sessionService,
			PaymentUsecase:         paymentUsecase,
			NotificationService:    notificationService,
			Logger:                 logger,
		}
	})
	return appointmentUsecaseInstance
}

// BookAppointment runs the booking sequence: validate the request against the
// slot, insert a pending appointment, then consume the slot with a conditional
// update. When the slot flip fails after the insert succeeded, the appointment
// is rolled back by cancelling it; losing that rollback too leaves the stores
// disagreeing, which is escalated as a data-integrity event.
func (uc *appointmentUsecase) BookAppointment(ctx context.Context, sessionData string, request *requests.CreateAppointmentRequest) (*responses.CreateAppointment, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	if !session.IsPatient() {
		return nil, exceptions.ErrRoleNotAllowed(nil)
	}

	if !utils.IsValidTimeRange(request.StartTime, request.EndTime) {
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}
	now := time.Now()
	if utils.IsPastDate(request.Date, now) {
		return nil, exceptions.ErrDateInPast(nil)
	}
	if utils.IsBeyondSchedulingHorizon(request.Date, now) {
		return nil, exceptions.ErrDateTooFarAhead(nil)
	}

	slot, err := uc.AvailabilityRepository.FindByID(ctx, request.SlotID)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, exceptions.ErrSlotNotFound(nil)
	}
	if slot.DoctorID != request.DoctorID ||
		slot.Date != request.Date ||
		slot.StartTime != request.StartTime ||
		slot.EndTime != request.EndTime {
		return nil, exceptions.ErrSlotNotBookable(nil)
	}
	if !slot.IsActive || slot.IsBooked {
		return nil, exceptions.ErrSlotNotBookable(nil)
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	// early conflict answer; the unique index still backs this up when two
	// requests pass the check at the same time
	conflicting, err := uc.AppointmentRepository.FindByDoctorAndWindow(ctx, request.DoctorID, request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	if conflicting != nil {
		return nil, exceptions.ErrAppointmentConflict(nil)
	}

	appointment := &models.Appointment{
		PatientID: session.PatientID,
		DoctorID:  request.DoctorID,
		SlotID:    request.SlotID,
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
		Status:    models.AppointmentPending,
		Fee:       doctor.ConsultationFee,
		Reason:    request.Reason,
	}
	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	err = uc.AvailabilityRepository.MarkBooked(ctx, request.SlotID)
	if err != nil {
		rollbackErr := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, models.AppointmentPending, models.AppointmentCancelled)
		if rollbackErr != nil {
			requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			utils.LogSecurityEvent(uc.Logger, "booking_rollback_failed", requestID, "critical",
				zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
				zap.String(constvars.LoggingSlotIDKey, request.SlotID),
				zap.Error(rollbackErr),
			)
			return nil, exceptions.ErrBookingIntegrity(rollbackErr)
		}
		uc.Logger.Warn("booking lost slot race, appointment rolled back",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.String(constvars.LoggingSlotIDKey, request.SlotID),
		)
		return nil, err
	}

	uc.NotificationService.Notify(ctx, request.DoctorID, constvars.RoleDoctor, constvars.NotificationAppointmentBooked, appointment)
	uc.NotificationService.Notify(ctx, session.PatientID, constvars.RolePatient, constvars.NotificationAppointmentBooked, appointment)

	response := &responses.CreateAppointment{
		AppointmentID: appointmentID,
		Status:        string(models.AppointmentPending),
	}

	paymentLink, err := uc.PaymentUsecase.CreatePaymentSession(ctx, appointment)
	if err != nil {
		// the appointment stands; the payer can be routed to checkout again
		uc.Logger.Error("failed to open payment session for booked appointment",
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return response, nil
	}
	response.PaymentLink = paymentLink

	uc.Logger.Info("appointment booked",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingPatientIDKey, session.PatientID),
	)
	return response, nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, sessionData string, params *requests.QueryParams) ([]responses.Appointment, int, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, 0, err
	}

	var (
		appointments []models.Appointment
		total        int64
	)
	switch {
	case session.IsPatient():
		appointments, err = uc.AppointmentRepository.ListForPatient(ctx, session.PatientID, params)
		if err == nil {
			total, err = uc.AppointmentRepository.CountForPatient(ctx, session.PatientID)
		}
	case session.IsDoctor():
		appointments, err = uc.AppointmentRepository.ListForDoctor(ctx, session.DoctorID, params)
		if err == nil {
			total, err = uc.AppointmentRepository.CountForDoctor(ctx, session.DoctorID)
		}
	default:
		return nil, 0, exceptions.ErrRoleNotAllowed(nil)
	}
	if err != nil {
		return nil, 0, err
	}

	now := time.Now()
	result := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		result = append(result, buildAppointmentResponse(&appointments[i], now))
	}
	return result, int(total), nil
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionData, appointmentID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if !uc.canActOn(session, appointment) {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	if !appointment.Status.CanTransitionTo(models.AppointmentCancelled) {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	err = uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, appointment.Status, models.AppointmentCancelled)
	if err != nil {
		return err
	}

	recipientID := appointment.DoctorID
	recipientRole := constvars.RoleDoctor
	if session.IsDoctor() {
		recipientID = appointment.PatientID
		recipientRole = constvars.RolePatient
	}
	uc.NotificationService.Notify(ctx, recipientID, recipientRole, constvars.NotificationAppointmentCancelled, appointment)

	uc.Logger.Info("appointment cancelled",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// ConfirmAppointment is the out-of-band confirmation path (cash settlement);
// card payments confirm through the gateway callback instead.
func (uc *appointmentUsecase) ConfirmAppointment(ctx context.Context, sessionData, appointmentID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if !session.IsAdmin() && !(session.IsDoctor() && session.DoctorID == appointment.DoctorID) {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	if !appointment.Status.CanTransitionTo(models.AppointmentConfirmed) {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	err = uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, appointment.Status, models.AppointmentConfirmed)
	if err != nil {
		return err
	}

	uc.NotificationService.Notify(ctx, appointment.PatientID, constvars.RolePatient, constvars.NotificationAppointmentConfirmed, appointment)

	uc.Logger.Info("appointment confirmed",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) CompleteAppointment(ctx context.Context, sessionData, appointmentID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	if !session.IsAdmin() && !(session.IsDoctor() && session.DoctorID == appointment.DoctorID) {
		return exceptions.ErrRoleNotAllowed(nil)
	}
	if !appointment.Status.CanTransitionTo(models.AppointmentCompleted) {
		return exceptions.ErrInvalidStatusTransition(nil)
	}

	err = uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, appointment.Status, models.AppointmentCompleted)
	if err != nil {
		return err
	}

	uc.Logger.Info("appointment completed",
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

func (uc *appointmentUsecase) canActOn(session *models.Session, appointment *models.Appointment) bool {
	if session.IsAdmin() {
		return true
	}
	if session.IsPatient() {
		return session.PatientID == appointment.PatientID
	}
	if session.IsDoctor() {
		return session.DoctorID == appointment.DoctorID
	}
	return false
}

func buildAppointmentResponse(appointment *models.Appointment, now time.Time) responses.Appointment {
	return responses.Appointment{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		Date:        appointment.Date,
		StartTime:   appointment.StartTime,
		EndTime:     appointment.EndTime,
		Status:      string(appointment.Status),
		IsConfirmed: appointment.IsConfirmed,
		IsOverdue:   appointment.IsOverdue(now),
		Fee:         appointment.Fee,
		Reason:      appointment.Reason,
		Notes:       appointment.Notes,
	}
}
