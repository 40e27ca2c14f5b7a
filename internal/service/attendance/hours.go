package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/attendance"
	"github.com/staffhq/attendance-backend-go/internal/domain/employee"
)

// DeriveHours computes hours_worked for an attendance row. It runs on every
// persist; stored hours are never trusted as externally supplied truth.
//
// With both clock times, the elapsed duration is used; a time_out earlier
// than time_in means the shift crossed midnight and gains 24 hours before
// differencing. Without times, full_time and part_time employees marked
// present default to their configured working hours. Everything else yields
// nil, which is "unspecified" rather than zero.
func DeriveHours(emp employee.Employee, status attendance.Status, timeIn, timeOut *time.Time) *decimal.Decimal {
	if timeIn != nil && timeOut != nil {
		elapsed := timeOut.Sub(*timeIn)
		if elapsed < 0 {
			elapsed += 24 * time.Hour
		}
		hours := decimal.NewFromFloat(elapsed.Hours()).Round(2)
		return &hours
	}

	if status == attendance.StatusPresent &&
		(emp.EmploymentType == employee.EmploymentTypeFullTime || emp.EmploymentType == employee.EmploymentTypePartTime) {
		hours := emp.WorkingHours
		return &hours
	}

	return nil
}
