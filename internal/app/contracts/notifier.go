package contracts

import "context"

// NotificationService is the fire-and-forget boundary to the notification
// channel. Implementations log publish failures and never propagate them
// into the calling operation.
type NotificationService interface {
	Notify(ctx context.Context, recipientID, recipientRole, eventType string, payload interface{})
}
