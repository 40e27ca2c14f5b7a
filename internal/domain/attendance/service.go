package attendance

import "context"

// AttendanceService defines business logic for the attendance ledger
type AttendanceService interface {
	// Record creates or replaces the attendance row for (employee, date),
	// deriving hours worked before persisting
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)

	// Get retrieves a single attendance row
	Get(ctx context.Context, id string) (AttendanceResponse, error)

	// List retrieves rows with filters (admin surface)
	List(ctx context.Context, filter ListAttendanceFilter) (ListAttendanceResponse, error)
}
