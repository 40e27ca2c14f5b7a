package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryRecord is the finalized payroll snapshot for one employee-month,
// keyed by (employee, year, month). It carries no internal state: the engine
// recomputes it deterministically from the ledgers and overwrites prior
// values in place.
//
// All monetary fields are rounded to 2 decimal places, half away from zero.
type SalaryRecord struct {
	ID         string
	EmployeeID string
	Year       int
	Month      int

	GrossSalary       decimal.Decimal
	Deductions        decimal.Decimal
	BonusApplied      decimal.Decimal
	HalfDayDeductions decimal.Decimal
	UnpaidLeaveDays   decimal.Decimal
	NetSalary         decimal.Decimal

	GeneratedAt time.Time

	// DTO
	EmployeeName *string
	EmpID        *string
}
