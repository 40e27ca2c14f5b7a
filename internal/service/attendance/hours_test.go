package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
)

func clock(h, m int) *time.Time {
	t := time.Date(2025, 3, 10, h, m, 0, 0, time.UTC)
	return &t
}

func TestDeriveHoursFromClockTimes(t *testing.T) {
	emp := employee.Employee{EmploymentType: employee.EmploymentTypeFullTime}

	got := DeriveHours(emp, attendance.StatusPresent, clock(9, 0), clock(17, 30))
	require.NotNil(t, got)
	assert.Equal(t, "8.5", got.String())
}

func TestDeriveHoursOvernightShift(t *testing.T) {
	emp := employee.Employee{EmploymentType: employee.EmploymentTypeHourly}

	// 22:00 to 06:00 crosses midnight
	got := DeriveHours(emp, attendance.StatusPresent, clock(22, 0), clock(6, 0))
	require.NotNil(t, got)
	assert.Equal(t, "8", got.String())
}

func TestDeriveHoursDefaultsToWorkingHours(t *testing.T) {
	emp := employee.Employee{
		EmploymentType: employee.EmploymentTypeFullTime,
		WorkingHours:   decimal.RequireFromString("7.5"),
	}

	got := DeriveHours(emp, attendance.StatusPresent, nil, nil)
	require.NotNil(t, got)
	assert.Equal(t, "7.5", got.String())
}

func TestDeriveHoursNoDefaultForHourly(t *testing.T) {
	emp := employee.Employee{
		EmploymentType: employee.EmploymentTypeHourly,
		WorkingHours:   decimal.NewFromInt(8),
	}

	// Hourly pay is driven by recorded time only; absent clock times mean
	// unspecified, not a free day of pay.
	got := DeriveHours(emp, attendance.StatusPresent, nil, nil)
	assert.Nil(t, got)
}

func TestDeriveHoursNilForNonPresentStatuses(t *testing.T) {
	emp := employee.Employee{
		EmploymentType: employee.EmploymentTypeFullTime,
		WorkingHours:   decimal.NewFromInt(8),
	}

	for _, status := range []attendance.Status{
		attendance.StatusAbsent,
		attendance.StatusLeave,
		attendance.StatusHalfDay,
		attendance.StatusLate,
	} {
		assert.Nil(t, DeriveHours(emp, status, nil, nil), "status %s", status)
	}
}

func TestDeriveHoursPartialClockTimes(t *testing.T) {
	emp := employee.Employee{
		EmploymentType: employee.EmploymentTypePartTime,
		WorkingHours:   decimal.NewFromInt(6),
	}

	// Only one clock time present: fall through to the working-hours default
	got := DeriveHours(emp, attendance.StatusPresent, clock(9, 0), nil)
	require.NotNil(t, got)
	assert.Equal(t, "6", got.String())
}
