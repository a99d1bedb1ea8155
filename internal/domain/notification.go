package domain

import "time"

// NotificationPayload is an outbound email queued for best-effort delivery.
type NotificationPayload struct {
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	QueuedAt  time.Time `json:"queued_at"`
}
