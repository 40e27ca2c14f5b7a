package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/payroll"
)

var half = decimal.NewFromFloat(0.5)

// monthTally aggregates the ledger rows the pay rules consume.
type monthTally struct {
	presentDays  int64
	absentDays   int64
	halfDays     int64
	lateDays     int64
	totalHours   decimal.Decimal
	unpaidLeaves int64
}

func tallyMonth(atts []attendance.Attendance, leaves []leave.Leave) monthTally {
	t := monthTally{totalHours: decimal.Zero}
	for _, a := range atts {
		switch a.Status {
		case attendance.StatusPresent:
			t.presentDays++
		case attendance.StatusAbsent:
			t.absentDays++
		case attendance.StatusHalfDay:
			t.halfDays++
		case attendance.StatusLate:
			t.lateDays++
		}
		if a.HoursWorked != nil {
			t.totalHours = t.totalHours.Add(*a.HoursWorked)
		}
	}
	for _, l := range leaves {
		if !l.IsPaid {
			t.unpaidLeaves++
		}
	}
	return t
}

// computeMonth applies the employment-type pay rules and the bonus chain to
// one employee-month of ledger data. It is a pure function: identical inputs
// yield identical records, which is what makes recomputation idempotent.
//
// Rules, by employment type:
//   - full_time: flat monthly gross; unpaid approved leave days and absent
//     attendance days both deduct one daily rate, half-days deduct half.
//   - part_time: gross is earned per present day; unpaid leave and half-day
//     deductions apply against the per-day rate, but unpaid leave days are
//     not reported on the record (they only drive the deduction amount).
//   - hourly: gross is total worked hours x hourly rate. No leave deduction;
//     hourly pay is purely hours-driven.
//
// Bonus: eligible employees get their own bonus_amount when positive, else
// the global bonus. Any unpaid leave day or late mark in the month forces the
// bonus to zero.
func computeMonth(emp employee.Employee, year, month int, dailyRate, globalBonus decimal.Decimal, atts []attendance.Attendance, leaves []leave.Leave) payroll.SalaryRecord {
	t := tallyMonth(atts, leaves)

	gross := decimal.Zero
	deductions := decimal.Zero
	bonus := decimal.Zero
	unpaidLeaveDays := decimal.Zero
	halfDayDeductions := decimal.Zero

	switch emp.EmploymentType {
	case employee.EmploymentTypeFullTime:
		gross = emp.BaseSalary
		unpaidLeaveDays = decimal.NewFromInt(t.unpaidLeaves + t.absentDays)
		halfDayDeductions = decimal.NewFromInt(t.halfDays).Mul(dailyRate).Mul(half)
		deductions = unpaidLeaveDays.Mul(dailyRate).Add(halfDayDeductions)

	case employee.EmploymentTypePartTime:
		gross = dailyRate.Mul(decimal.NewFromInt(t.presentDays))
		halfDayDeductions = decimal.NewFromInt(t.halfDays).Mul(dailyRate.Mul(half))
		deductions = decimal.NewFromInt(t.unpaidLeaves).Mul(dailyRate).Add(halfDayDeductions)

	case employee.EmploymentTypeHourly:
		gross = t.totalHours.Mul(emp.BaseSalary)
	}

	if emp.BonusEligible {
		if emp.BonusAmount.IsPositive() {
			bonus = emp.BonusAmount
		} else {
			bonus = globalBonus
		}
		if unpaidLeaveDays.IsPositive() || t.lateDays > 0 {
			bonus = decimal.Zero
		}
	}

	net := gross.Sub(deductions).Add(bonus)

	return payroll.SalaryRecord{
		EmployeeID:        emp.ID,
		Year:              year,
		Month:             month,
		GrossSalary:       gross.Round(2),
		Deductions:        deductions.Round(2),
		BonusApplied:      bonus.Round(2),
		HalfDayDeductions: halfDayDeductions.Round(2),
		UnpaidLeaveDays:   unpaidLeaveDays.Round(2),
		NetSalary:         net.Round(2),
	}
}

// monthBounds returns the first and last calendar day of a month. The
// AddDate normalization handles month lengths and leap years.
func monthBounds(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}
