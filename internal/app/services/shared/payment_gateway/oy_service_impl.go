package payment_gateway

import (
	"bytes"
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

var (
	oyServiceInstance contracts.PaymentGatewayService
	onceOyService     sync.Once
)

// oyService talks to the OY payment-routing API. Outbound calls go through a
// client-side rate limiter so a burst of bookings cannot trip the partner's
// request quota.
type oyService struct {
	BaseUrl    string
	Username   string
	ApiKey     string
	HttpClient *http.Client
	Limiter    *rate.Limiter
}

func NewOyService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	onceOyService.Do(func() {
		oyServiceInstance = &oyService{
			BaseUrl:  internalConfig.PaymentGateway.BaseUrl,
			Username: internalConfig.PaymentGateway.Username,
			ApiKey:   internalConfig.PaymentGateway.ApiKey,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second,
			},
			Limiter: rate.NewLimiter(
				rate.Limit(internalConfig.PaymentGateway.MaxRequestsPerSecond),
				internalConfig.PaymentGateway.MaxRequestsPerSecond,
			),
		}
	})
	return oyServiceInstance
}

func (s *oyService) CreatePaymentRouting(ctx context.Context, request *requests.PaymentRequest) (*responses.PaymentResponse, error) {
	err := s.Limiter.Wait(ctx)
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseUrl+"/payment-routing/create-transaction", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set("X-Oy-Username", s.Username)
	httpRequest.Header.Set("X-Api-Key", s.ApiKey)

	httpResponse, err := s.HttpClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrPaymentGateway(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, exceptions.ErrPaymentGateway(nil)
	}

	paymentResponse := new(responses.PaymentResponse)
	err = json.NewDecoder(httpResponse.Body).Decode(paymentResponse)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return paymentResponse, nil
}
