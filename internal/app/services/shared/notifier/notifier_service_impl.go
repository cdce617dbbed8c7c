package notifier

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

var (
	notificationServiceInstance contracts.NotificationService
	onceNotificationService     sync.Once
)

// notificationEvent is the message body published to the notifications
// queue. A downstream worker owns channel selection and delivery.
type notificationEvent struct {
	RecipientID   string      `json:"recipient_id"`
	RecipientRole string      `json:"recipient_role"`
	EventType     string      `json:"event_type"`
	Payload       interface{} `json:"payload,omitempty"`
	EmittedAt     time.Time   `json:"emitted_at"`
}

type notificationService struct {
	Channel *amqp091.Channel
	Queue   string
	Logger  *zap.Logger
}

func NewNotificationService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.NotificationService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	onceNotificationService.Do(func() {
		notificationServiceInstance = &notificationService{
			Channel: channel,
			Queue:   queue,
			Logger:  logger,
		}
	})
	return notificationServiceInstance, nil
}

// Notify publishes fire-and-forget. A failed publish is logged and swallowed:
// notification delivery must never fail or roll back the operation that
// triggered it.
func (svc *notificationService) Notify(ctx context.Context, recipientID, recipientRole, eventType string, payload interface{}) {
	event := notificationEvent{
		RecipientID:   recipientID,
		RecipientRole: recipientRole,
		EventType:     eventType,
		Payload:       payload,
		EmittedAt:     time.Now(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		svc.Logger.Error("failed to marshal notification event",
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
		return
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = svc.Channel.PublishWithContext(ctx, "", svc.Queue, false, false, message)
	if err != nil {
		svc.Logger.Error("failed to publish notification event",
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.String("recipient_id", recipientID),
			zap.Error(err),
		)
		return
	}

	svc.Logger.Debug("notification event published",
		zap.String(constvars.LoggingEventTypeKey, eventType),
		zap.String("recipient_id", recipientID),
	)
}
