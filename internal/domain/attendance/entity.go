package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one (employee, date) row of the attendance ledger.
// HoursWorked is derived from the clock times before every persist; it is
// never trusted as externally supplied truth. A nil value means
// "unspecified", which is distinct from zero hours worked.
type Attendance struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	HoursWorked *decimal.Decimal
	Status      Status
	Remarks     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
	EmpID        *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusHalfDay Status = "half_day"
	StatusLate    Status = "late"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay, StatusLate:
		return true
	}
	return false
}
