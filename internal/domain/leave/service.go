package leave

import "context"

// LeaveService defines business logic for the leave ledger. Every mutation
// emits an Event; approval additionally triggers a payroll recompute for the
// affected employee-month.
type LeaveService interface {
	// Request creates a pending leave entry for one day
	Request(ctx context.Context, req RequestLeaveRequest) (LeaveResponse, error)

	// Update applies partial changes to an entry, marking it amended
	Update(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)

	// Approve marks an entry approved and recomputes the affected month
	Approve(ctx context.Context, id, actor string) (LeaveResponse, error)

	// Reject marks an entry rejected
	Reject(ctx context.Context, id, actor string) (LeaveResponse, error)

	// Get retrieves a single entry
	Get(ctx context.Context, id string) (LeaveResponse, error)

	// List retrieves entries with filters
	List(ctx context.Context, filter ListLeaveFilter) (ListLeaveResponse, error)
}
