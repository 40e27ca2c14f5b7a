package notification

import "time"

// NotificationLog records an outbound notification. Actual delivery (mail,
// SMS) is an external collaborator; this backend only records what would be
// sent.
type NotificationLog struct {
	ID        string
	Recipient string
	Method    Method
	Subject   string
	Body      string
	Status    DeliveryStatus
	CreatedAt time.Time
}

type Method string

const (
	MethodEmail Method = "email"
	MethodUI    Method = "ui"
)

type DeliveryStatus string

const (
	DeliveryPending DeliveryStatus = "pending"
	DeliverySent    DeliveryStatus = "sent"
	DeliveryFailed  DeliveryStatus = "failed"
)

// AuditLog records who did what to which entity.
type AuditLog struct {
	ID         string
	Actor      string
	Action     string
	EntityName string
	EntityID   string
	Details    string
	CreatedAt  time.Time
}
