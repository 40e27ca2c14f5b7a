package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts or replaces the row for (employee, date). Hours must
	// already be derived; the row becomes visible to readers fully formed.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance row by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the row for (employee, date), nil when absent
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// ListByEmployeeRange retrieves all rows for an employee within
	// [from, to], inclusive. This is the payroll engine's input query.
	ListByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)

	// List retrieves rows with filters and pagination
	List(ctx context.Context, filter ListAttendanceFilter) ([]Attendance, int64, error)
}
