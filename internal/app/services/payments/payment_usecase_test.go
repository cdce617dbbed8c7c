package payments

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeTransactionRepository struct {
	transactions map[string]*models.Transaction
	nextID       int
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[string]*models.Transaction)}
}

func (r *fakeTransactionRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) (string, error) {
	r.nextID++
	transaction.ID = fmt.Sprintf("trx-%d", r.nextID)
	copied := *transaction
	r.transactions[transaction.ID] = &copied
	return transaction.ID, nil
}

func (r *fakeTransactionRepository) FindByPartnerTrxID(ctx context.Context, partnerTrxID string) (*models.Transaction, error) {
	for _, transaction := range r.transactions {
		if transaction.PartnerTrxID == partnerTrxID {
			copied := *transaction
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeTransactionRepository) UpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatus) error {
	transaction, ok := r.transactions[transactionID]
	if !ok {
		return exceptions.ErrMongoDBUpdateDocument(nil)
	}
	transaction.Status = status
	return nil
}

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
}

func (r *fakeAppointmentRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (r *fakeAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	appointment, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *appointment
	return &copied, nil
}

func (r *fakeAppointmentRepository) FindByDoctorAndWindow(ctx context.Context, doctorID, date, startTime string) (*models.Appointment, error) {
	return nil, nil
}

func (r *fakeAppointmentRepository) UpdateStatus(ctx context.Context, appointmentID string, from, to models.AppointmentStatus) error {
	appointment, ok := r.appointments[appointmentID]
	if !ok || appointment.Status != from {
		return exceptions.ErrInvalidStatusTransition(nil)
	}
	appointment.Status = to
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
	return false, nil
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

type fakePatientRepository struct {
	patients map[string]*models.Patient
}

func (r *fakePatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	return patient.ID, nil
}

func (r *fakePatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	patient, ok := r.patients[patientID]
	if !ok {
		return nil, nil
	}
	return patient, nil
}

type fakePaymentGateway struct {
	lastRequest *requests.PaymentRequest
	err         error
}

func (g *fakePaymentGateway) CreatePaymentRouting(ctx context.Context, request *requests.PaymentRequest) (*responses.PaymentResponse, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.lastRequest = request
	return &responses.PaymentResponse{
		TrxID:        "gw-trx-1",
		PartnerTrxID: request.PartnerTransactionID,
		PaymentInfo: responses.PaymentInfo{
			PaymentCheckoutURL: "https://pay.example/checkout/" + request.PartnerTransactionID,
		},
	}, nil
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) Notify(ctx context.Context, recipientID, recipientRole, eventType string, payload interface{}) {
	n.events = append(n.events, eventType)
}

type fakeRedisRepository struct {
	values map[string]bool
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	r.values[key] = true
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(r.values, key)
	return nil
}

func newPaymentFixture() (*paymentUsecase, *fakeTransactionRepository, *fakeAppointmentRepository, *recordingNotifier) {
	transactionRepo := newFakeTransactionRepository()
	appointmentRepo := &fakeAppointmentRepository{appointments: map[string]*models.Appointment{
		"appt-1": {
			ID:        "appt-1",
			PatientID: "patient-1",
			DoctorID:  "doctor-1",
			Status:    models.AppointmentPending,
			Fee:       150,
		},
	}}
	notifierService := &recordingNotifier{}
	usecase := &paymentUsecase{
		TransactionRepository: transactionRepo,
		AppointmentRepository: appointmentRepo,
		DoctorRepository: &fakeDoctorRepository{doctors: map[string]*models.Doctor{
			"doctor-1": {ID: "doctor-1", BankCode: "014", BankAccount: "1234567890", Email: "doc@example.com", ConsultationFee: 150},
		}},
		PatientRepository: &fakePatientRepository{patients: map[string]*models.Patient{
			"patient-1": {ID: "patient-1", Email: "pat@example.com"},
		}},
		PaymentGateway:      &fakePaymentGateway{},
		NotificationService: notifierService,
		RedisRepository:     &fakeRedisRepository{values: make(map[string]bool)},
		InternalConfig: &config.InternalConfig{
			App: config.App{DefaultCurrency: "IDR", PaymentSessionTTLInMinutes: 60},
		},
		Logger: zap.NewNop(),
	}
	return usecase, transactionRepo, appointmentRepo, notifierService
}

func TestCreatePaymentSession(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a gateway transaction and records it", func(t *testing.T) {
		usecase, transactionRepo, appointmentRepo, _ := newPaymentFixture()

		link, err := usecase.CreatePaymentSession(ctx, appointmentRepo.appointments["appt-1"])

		assert.NoError(t, err)
		assert.Contains(t, link, "https://pay.example/checkout/")
		assert.Len(t, transactionRepo.transactions, 1)
		for _, transaction := range transactionRepo.transactions {
			assert.Equal(t, models.TransactionPending, transaction.Status)
			assert.Equal(t, "appt-1", transaction.AppointmentID)
			assert.Equal(t, "IDR", transaction.Currency)
		}
	})

	t.Run("routes the fee to the doctor's account", func(t *testing.T) {
		usecase, _, appointmentRepo, _ := newPaymentFixture()
		gateway := usecase.PaymentGateway.(*fakePaymentGateway)

		_, err := usecase.CreatePaymentSession(ctx, appointmentRepo.appointments["appt-1"])

		assert.NoError(t, err)
		assert.Equal(t, 150, gateway.lastRequest.ReceiveAmount)
		assert.Len(t, gateway.lastRequest.PaymentRouting, 1)
		assert.Equal(t, "014", gateway.lastRequest.PaymentRouting[0].RecipientBank)
		assert.Equal(t, "pat@example.com", gateway.lastRequest.SenderEmail)
	})

	t.Run("gateway failure surfaces and records nothing", func(t *testing.T) {
		usecase, transactionRepo, appointmentRepo, _ := newPaymentFixture()
		usecase.PaymentGateway = &fakePaymentGateway{err: exceptions.ErrPaymentGateway(nil)}

		_, err := usecase.CreatePaymentSession(ctx, appointmentRepo.appointments["appt-1"])

		assert.Error(t, err)
		assert.Empty(t, transactionRepo.transactions)
	})
}

func TestPaymentCallback(t *testing.T) {
	ctx := context.Background()

	openSession := func(t *testing.T, usecase *paymentUsecase, appointmentRepo *fakeAppointmentRepository, transactionRepo *fakeTransactionRepository) string {
		_, err := usecase.CreatePaymentSession(ctx, appointmentRepo.appointments["appt-1"])
		assert.NoError(t, err)
		for _, transaction := range transactionRepo.transactions {
			return transaction.PartnerTrxID
		}
		t.Fatal("no transaction recorded")
		return ""
	}

	t.Run("complete callback confirms the appointment", func(t *testing.T) {
		usecase, transactionRepo, appointmentRepo, notifierService := newPaymentFixture()
		partnerTrxID := openSession(t, usecase, appointmentRepo, transactionRepo)

		err := usecase.PaymentCallback(ctx, &requests.PaymentCallback{
			PartnerTrxID:  partnerTrxID,
			PaymentStatus: constvars.PaymentStatusComplete,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentConfirmed, appointmentRepo.appointments["appt-1"].Status)
		for _, transaction := range transactionRepo.transactions {
			assert.Equal(t, models.TransactionCompleted, transaction.Status)
		}
		assert.Contains(t, notifierService.events, constvars.NotificationAppointmentConfirmed)
	})

	t.Run("replayed callback is absorbed", func(t *testing.T) {
		usecase, transactionRepo, appointmentRepo, _ := newPaymentFixture()
		partnerTrxID := openSession(t, usecase, appointmentRepo, transactionRepo)

		callback := &requests.PaymentCallback{
			PartnerTrxID:  partnerTrxID,
			PaymentStatus: constvars.PaymentStatusComplete,
		}
		assert.NoError(t, usecase.PaymentCallback(ctx, callback))
		assert.NoError(t, usecase.PaymentCallback(ctx, callback))

		assert.Equal(t, models.AppointmentConfirmed, appointmentRepo.appointments["appt-1"].Status)
	})

	t.Run("failed callback keeps appointment pending", func(t *testing.T) {
		usecase, transactionRepo, appointmentRepo, _ := newPaymentFixture()
		partnerTrxID := openSession(t, usecase, appointmentRepo, transactionRepo)

		err := usecase.PaymentCallback(ctx, &requests.PaymentCallback{
			PartnerTrxID:  partnerTrxID,
			PaymentStatus: constvars.PaymentStatusFailed,
		})

		assert.NoError(t, err)
		assert.Equal(t, models.AppointmentPending, appointmentRepo.appointments["appt-1"].Status)
		for _, transaction := range transactionRepo.transactions {
			assert.Equal(t, models.TransactionFailed, transaction.Status)
		}
	})

	t.Run("unknown partner trx id yields not found", func(t *testing.T) {
		usecase, _, _, _ := newPaymentFixture()

		err := usecase.PaymentCallback(ctx, &requests.PaymentCallback{
			PartnerTrxID:  "never-issued",
			PaymentStatus: constvars.PaymentStatusComplete,
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
