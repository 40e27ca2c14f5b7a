package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID          string
	EmpID       string
	FullName    string
	Email       string
	PhoneNumber *string

	EmploymentType EmploymentType

	// BaseSalary semantics depend on EmploymentType: monthly gross for
	// full_time, per-day rate for part_time, per-hour rate for hourly.
	BaseSalary    decimal.Decimal
	BonusAmount   decimal.Decimal
	BonusEligible bool

	ShiftStartTime *time.Time
	WorkingHours   decimal.Decimal
	PaidLeaveQuota int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type EmploymentType string

const (
	EmploymentTypeFullTime EmploymentType = "full_time"
	EmploymentTypePartTime EmploymentType = "part_time"
	EmploymentTypeHourly   EmploymentType = "hourly"
)

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeHourly:
		return true
	}
	return false
}

// DefaultPaidLeaveQuota returns the paid leave quota applied at creation
// when none is provided explicitly.
func (t EmploymentType) DefaultPaidLeaveQuota() int {
	switch t {
	case EmploymentTypeFullTime:
		return 22
	case EmploymentTypePartTime:
		return 11
	default:
		return 0
	}
}

// DefaultWorkingHours is the per-day working hours applied when an employee
// is created without one.
var DefaultWorkingHours = decimal.NewFromInt(8)
