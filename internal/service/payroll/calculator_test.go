package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
)

func fullTimeEmployee(baseSalary string) employee.Employee {
	return employee.Employee{
		ID:             "emp-1",
		EmpID:          "EMP-001",
		EmploymentType: employee.EmploymentTypeFullTime,
		BaseSalary:     decimal.RequireFromString(baseSalary),
		BonusEligible:  true,
	}
}

func attRow(status attendance.Status) attendance.Attendance {
	return attendance.Attendance{Status: status}
}

func unpaidLeave() leave.Leave {
	return leave.Leave{IsPaid: false, Status: leave.StatusApproved}
}

func TestComputeMonthFullTime(t *testing.T) {
	emp := fullTimeEmployee("30000")
	emp.BonusEligible = false
	dailyRate := decimal.RequireFromString("1363.64") // 30000 / 22

	atts := []attendance.Attendance{
		attRow(attendance.StatusAbsent),
		attRow(attendance.StatusHalfDay),
	}
	leaves := []leave.Leave{unpaidLeave()}

	rec := computeMonth(emp, 2025, 3, dailyRate, decimal.Zero, atts, leaves)

	assert.Equal(t, "30000", rec.GrossSalary.String())
	// 1 unpaid leave + 1 absent = 2 days at the daily rate, plus half a day
	assert.Equal(t, "2", rec.UnpaidLeaveDays.String())
	assert.Equal(t, "681.82", rec.HalfDayDeductions.String())
	assert.Equal(t, "3409.1", rec.Deductions.String())
	assert.Equal(t, "0", rec.BonusApplied.String())
	assert.Equal(t, "26590.9", rec.NetSalary.String())
}

func TestComputeMonthFullTimeCleanMonthGetsBonus(t *testing.T) {
	emp := fullTimeEmployee("30000")
	emp.BonusAmount = decimal.RequireFromString("500")

	atts := []attendance.Attendance{
		attRow(attendance.StatusPresent),
		attRow(attendance.StatusPresent),
	}

	rec := computeMonth(emp, 2025, 3, decimal.RequireFromString("1363.64"), decimal.RequireFromString("250"), atts, nil)

	// Own bonus amount wins over the global bonus
	assert.Equal(t, "500", rec.BonusApplied.String())
	assert.Equal(t, "30500", rec.NetSalary.String())
}

func TestComputeMonthBonusFallsBackToGlobal(t *testing.T) {
	emp := fullTimeEmployee("30000")
	emp.BonusAmount = decimal.Zero

	rec := computeMonth(emp, 2025, 3, decimal.RequireFromString("1363.64"), decimal.RequireFromString("250"), nil, nil)

	assert.Equal(t, "250", rec.BonusApplied.String())
}

func TestComputeMonthLateEntryDisqualifiesBonus(t *testing.T) {
	emp := fullTimeEmployee("30000")
	emp.BonusAmount = decimal.RequireFromString("500")

	atts := []attendance.Attendance{
		attRow(attendance.StatusPresent),
		attRow(attendance.StatusLate),
	}

	rec := computeMonth(emp, 2025, 3, decimal.RequireFromString("1363.64"), decimal.Zero, atts, nil)

	assert.Equal(t, "0", rec.BonusApplied.String())
	assert.Equal(t, "30000", rec.NetSalary.String())
}

func TestComputeMonthUnpaidLeaveDisqualifiesBonus(t *testing.T) {
	emp := fullTimeEmployee("30000")
	emp.BonusAmount = decimal.RequireFromString("500")

	rec := computeMonth(emp, 2025, 3, decimal.RequireFromString("1363.64"), decimal.Zero, nil, []leave.Leave{unpaidLeave()})

	assert.Equal(t, "0", rec.BonusApplied.String())
}

func TestComputeMonthPaidLeaveKeepsBonus(t *testing.T) {
	emp := fullTimeEmployee("30000")
	emp.BonusAmount = decimal.RequireFromString("500")

	paid := leave.Leave{IsPaid: true, Status: leave.StatusApproved}
	rec := computeMonth(emp, 2025, 3, decimal.RequireFromString("1363.64"), decimal.Zero, nil, []leave.Leave{paid})

	assert.Equal(t, "0", rec.UnpaidLeaveDays.String())
	assert.Equal(t, "0", rec.Deductions.String())
	assert.Equal(t, "500", rec.BonusApplied.String())
}

func TestComputeMonthPartTime(t *testing.T) {
	emp := employee.Employee{
		ID:             "emp-2",
		EmpID:          "EMP-002",
		EmploymentType: employee.EmploymentTypePartTime,
		BaseSalary:     decimal.RequireFromString("1000"),
		BonusEligible:  true,
		BonusAmount:    decimal.RequireFromString("300"),
	}
	dailyRate := emp.BaseSalary

	atts := make([]attendance.Attendance, 0, 18)
	for i := 0; i < 18; i++ {
		atts = append(atts, attRow(attendance.StatusPresent))
	}

	rec := computeMonth(emp, 2025, 3, dailyRate, decimal.Zero, atts, []leave.Leave{unpaidLeave()})

	assert.Equal(t, "18000", rec.GrossSalary.String())
	assert.Equal(t, "1000", rec.Deductions.String())
	// Unpaid leave drives the deduction but is not reported on the record
	// for per-day earners, and therefore does not touch the bonus either.
	assert.Equal(t, "0", rec.UnpaidLeaveDays.String())
	assert.Equal(t, "300", rec.BonusApplied.String())
	assert.Equal(t, "17300", rec.NetSalary.String())
}

func TestComputeMonthHourly(t *testing.T) {
	emp := employee.Employee{
		ID:             "emp-3",
		EmpID:          "EMP-003",
		EmploymentType: employee.EmploymentTypeHourly,
		BaseSalary:     decimal.RequireFromString("25"),
	}

	h1 := decimal.RequireFromString("8")
	h2 := decimal.RequireFromString("6.5")
	atts := []attendance.Attendance{
		{Status: attendance.StatusPresent, HoursWorked: &h1},
		{Status: attendance.StatusPresent, HoursWorked: &h2},
	}

	rec := computeMonth(emp, 2025, 3, decimal.Zero, decimal.Zero, atts, []leave.Leave{unpaidLeave()})

	// 14.5 hours at 25/hour, leave entries never deduct from hourly pay
	assert.Equal(t, "362.5", rec.GrossSalary.String())
	assert.Equal(t, "0", rec.Deductions.String())
	assert.Equal(t, "362.5", rec.NetSalary.String())
}

func TestComputeMonthIsDeterministic(t *testing.T) {
	emp := fullTimeEmployee("30000")
	atts := []attendance.Attendance{attRow(attendance.StatusHalfDay), attRow(attendance.StatusAbsent)}
	leaves := []leave.Leave{unpaidLeave()}
	rate := decimal.RequireFromString("1363.64")

	first := computeMonth(emp, 2025, 3, rate, decimal.Zero, atts, leaves)
	second := computeMonth(emp, 2025, 3, rate, decimal.Zero, atts, leaves)

	assert.Equal(t, first, second)
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		year, month int
		lastDay     string
	}{
		{2025, 1, "2025-01-31"},
		{2025, 4, "2025-04-30"},
		{2025, 2, "2025-02-28"},
		{2024, 2, "2024-02-29"},
		{2025, 12, "2025-12-31"},
	}
	for _, c := range cases {
		first, last := monthBounds(c.year, c.month)
		assert.Equal(t, time.Date(c.year, time.Month(c.month), 1, 0, 0, 0, 0, time.UTC), first)
		assert.Equal(t, c.lastDay, last.Format("2006-01-02"))
	}
}
