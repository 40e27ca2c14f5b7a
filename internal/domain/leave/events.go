package leave

import "time"

// Action describes what happened to a leave row.
type Action string

const (
	ActionCreated  Action = "created"
	ActionAmended  Action = "amended"
	ActionApproved Action = "approved"
	ActionRejected Action = "rejected"
)

// FieldChange carries the before/after values of one mutated field.
type FieldChange struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Event is emitted on every leave create or mutation. The audit and
// notification collaborators consume it asynchronously; the write path never
// blocks on them.
type Event struct {
	ID         string
	Actor      string
	Action     Action
	EmployeeID string
	EmpID      string
	Date       time.Time
	Changes    map[string]FieldChange
	OccurredAt time.Time
}

// Publisher decouples event emission from delivery. Implementations must not
// block the caller.
type Publisher interface {
	Publish(event Event)
}
