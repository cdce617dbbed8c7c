package payments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

type paymentUsecase struct {
	TransactionRepository contracts.TransactionRepository
	AppointmentRepository contracts.AppointmentRepository
	DoctorRepository      contracts.DoctorRepository
	PatientRepository     contracts.PatientRepository
	PaymentGateway        contracts.PaymentGatewayService
	NotificationService   contracts.NotificationService
	RedisRepository       contracts.RedisRepository
	InternalConfig        *config.InternalConfig
	Logger                *zap.Logger
}

func NewPaymentUsecase(
	transactionRepository contracts.TransactionRepository,
	appointmentRepository contracts.AppointmentRepository,
	doctorRepository contracts.DoctorRepository,
	patientRepository contracts.PatientRepository,
	paymentGateway contracts.PaymentGatewayService,
	notificationService contracts.NotificationService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		paymentUsecaseInstance = &paymentUsecase{
			TransactionRepository: transactionRepository,
			AppointmentRepository: appointmentRepository,
			DoctorRepository:      doctorRepository,
			PatientRepository:     patientRepository,
			PaymentGateway:        paymentGateway,
			NotificationService:   notificationService,
			RedisRepository:       redisRepository,
			InternalConfig:        internalConfig,
			Logger:                logger,
		}
	})
	return paymentUsecaseInstance
}

// CreatePaymentSession opens a payment-routing transaction at the gateway for
// a freshly booked appointment and records it locally. The partner trx id is
// the correlation key: the gateway echoes it back on the callback.
func (uc *paymentUsecase) CreatePaymentSession(ctx context.Context, appointment *models.Appointment) (string, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		return "", err
	}
	if doctor == nil {
		return "", exceptions.ErrDoctorNotFound(nil)
	}
	patient, err := uc.PatientRepository.FindByID(ctx, appointment.PatientID)
	if err != nil {
		return "", err
	}
	if patient == nil {
		return "", exceptions.ErrPaymentTrxUnknown(nil)
	}

	partnerTrxID := utils.GeneratePartnerTrxID()
	amount := int(appointment.Fee)

	paymentRequest := &requests.PaymentRequest{
		PartnerUserID:        appointment.PatientID,
		PartnerTransactionID: partnerTrxID,
		NeedFrontend:         true,
		SenderEmail:          patient.Email,
		ReceiveAmount:        amount,
		PaymentRouting: []requests.PaymentRouting{
			{
				RecipientBank:    doctor.BankCode,
				RecipientAccount: doctor.BankAccount,
				RecipientAmount:  amount,
				RecipientEmail:   doctor.Email,
			},
		},
	}

	paymentResponse, err := uc.PaymentGateway.CreatePaymentRouting(ctx, paymentRequest)
	if err != nil {
		return "", err
	}

	transaction := &models.Transaction{
		AppointmentID: appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		PartnerTrxID:  partnerTrxID,
		PaymentLink:   paymentResponse.PaymentInfo.PaymentCheckoutURL,
		Amount:        appointment.Fee,
		Currency:      uc.InternalConfig.App.DefaultCurrency,
		Status:        models.TransactionPending,
	}
	_, err = uc.TransactionRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		return "", err
	}

	// hot mapping for callback lookups while the checkout page is live
	sessionKey := fmt.Sprintf(constvars.PaymentSessionKeyFormat, partnerTrxID)
	ttl := time.Duration(uc.InternalConfig.App.PaymentSessionTTLInMinutes) * time.Minute
	err = uc.RedisRepository.Set(ctx, sessionKey, appointment.ID, ttl)
	if err != nil {
		uc.Logger.Warn("failed to cache payment session mapping",
			zap.String(constvars.LoggingTrxIDKey, partnerTrxID),
			zap.Error(err),
		)
	}

	uc.Logger.Info("payment session created",
		zap.String(constvars.LoggingTrxIDKey, partnerTrxID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Int("amount", amount),
	)
	return paymentResponse.PaymentInfo.PaymentCheckoutURL, nil
}

// PaymentCallback handles the gateway's asynchronous result. Replayed
// callbacks are absorbed: once the transaction left pending, later deliveries
// are acknowledged without touching the appointment again.
func (uc *paymentUsecase) PaymentCallback(ctx context.Context, request *requests.PaymentCallback) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	transaction, err := uc.TransactionRepository.FindByPartnerTrxID(ctx, request.PartnerTrxID)
	if err != nil {
		return err
	}
	if transaction == nil {
		utils.LogSecurityEvent(uc.Logger, "payment_callback_unknown_trx", requestID, "warn",
			zap.String(constvars.LoggingTrxIDKey, request.PartnerTrxID),
		)
		return exceptions.ErrPaymentTrxUnknown(nil)
	}
	if transaction.Status != models.TransactionPending {
		uc.Logger.Info("payment callback replayed, transaction already settled",
			zap.String(constvars.LoggingTrxIDKey, request.PartnerTrxID),
			zap.String("transaction_status", string(transaction.Status)),
		)
		return nil
	}

	switch request.PaymentStatus {
	case constvars.PaymentStatusComplete:
		err = uc.AppointmentRepository.UpdateStatus(ctx, transaction.AppointmentID, models.AppointmentPending, models.AppointmentConfirmed)
		if err != nil {
			utils.LogSecurityEvent(uc.Logger, "payment_callback_confirm_failed", requestID, "error",
				zap.String(constvars.LoggingTrxIDKey, request.PartnerTrxID),
				zap.String(constvars.LoggingAppointmentIDKey, transaction.AppointmentID),
				zap.Error(err),
			)
			return err
		}
		err = uc.TransactionRepository.UpdateStatus(ctx, transaction.ID, models.TransactionCompleted)
		if err != nil {
			return err
		}

		appointment, findErr := uc.AppointmentRepository.FindByID(ctx, transaction.AppointmentID)
		if findErr == nil && appointment != nil {
			uc.NotificationService.Notify(ctx, appointment.PatientID, constvars.RolePatient, constvars.NotificationAppointmentConfirmed, appointment)
			uc.NotificationService.Notify(ctx, appointment.DoctorID, constvars.RoleDoctor, constvars.NotificationAppointmentConfirmed, appointment)
		}

		uc.Logger.Info("payment completed, appointment confirmed",
			zap.String(constvars.LoggingTrxIDKey, request.PartnerTrxID),
			zap.String(constvars.LoggingAppointmentIDKey, transaction.AppointmentID),
		)
	case constvars.PaymentStatusFailed:
		err = uc.TransactionRepository.UpdateStatus(ctx, transaction.ID, models.TransactionFailed)
		if err != nil {
			return err
		}
		uc.Logger.Info("payment failed, appointment kept pending",
			zap.String(constvars.LoggingTrxIDKey, request.PartnerTrxID),
			zap.String(constvars.LoggingAppointmentIDKey, transaction.AppointmentID),
		)
	default:
		uc.Logger.Warn("payment callback with unrecognized status",
			zap.String(constvars.LoggingTrxIDKey, request.PartnerTrxID),
			zap.String("payment_status", request.PaymentStatus),
		)
	}

	sessionKey := fmt.Sprintf(constvars.PaymentSessionKeyFormat, request.PartnerTrxID)
	_ = uc.RedisRepository.Delete(ctx, sessionKey)

	return nil
}
