package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	// Create creates a new leave entry; ErrLeaveExists when the
	// (employee, date) key is already taken
	Create(ctx context.Context, entry Leave) (Leave, error)

	// GetByID retrieves a leave entry by ID
	GetByID(ctx context.Context, id string) (Leave, error)

	// Update overwrites mutable fields of an existing entry
	Update(ctx context.Context, entry Leave) error

	// ListApprovedByEmployeeRange retrieves approved entries for an employee
	// within [from, to], inclusive. This is the payroll engine's input query.
	ListApprovedByEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)

	// List retrieves entries with filters and pagination
	List(ctx context.Context, filter ListLeaveFilter) ([]Leave, int64, error)
}
