package notification

type NotificationLogResponse struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Method    string `json:"method"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type AuditLogResponse struct {
	ID         string `json:"id"`
	Actor      string `json:"actor"`
	Action     string `json:"action"`
	EntityName string `json:"entity_name"`
	EntityID   string `json:"entity_id"`
	Details    string `json:"details,omitempty"`
	CreatedAt  string `json:"created_at"`
}
