package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (transactionID string, err error)
	FindByPartnerTrxID(ctx context.Context, partnerTrxID string) (*models.Transaction, error)
	UpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatus) error
}

// PaymentGatewayService is the outbound boundary to the payment collaborator:
// one call opens a checkout session and returns the redirect URL.
type PaymentGatewayService interface {
	CreatePaymentRouting(ctx context.Context, request *requests.PaymentRequest) (*responses.PaymentResponse, error)
}

type PaymentUsecase interface {
	CreatePaymentSession(ctx context.Context, appointment *models.Appointment) (paymentLink string, err error)
	PaymentCallback(ctx context.Context, request *requests.PaymentCallback) error
}
