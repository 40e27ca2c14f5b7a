package leave

import "time"

// Leave is one row per leave-day, keyed by (employee, date). A multi-day
// leave is a set of rows, which allows non-contiguous patterns.
type Leave struct {
	ID         string
	EmployeeID string
	Date       time.Time
	LeaveType  LeaveType
	IsPaid     bool
	Status     Status
	Reason     string

	// Amended is set whenever a mutable field changes after creation. It
	// feeds the audit/notification collaborators, not payroll.
	Amended   bool
	AmendedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	EmployeeName *string
	EmpID        *string
}

type LeaveType string

const (
	TypeNormal    LeaveType = "normal"
	TypeSick      LeaveType = "sick"
	TypeEmergency LeaveType = "emergency"
	TypeOther     LeaveType = "other"
)

func (t LeaveType) Valid() bool {
	switch t {
	case TypeNormal, TypeSick, TypeEmergency, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
