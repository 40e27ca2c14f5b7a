package payroll

import "context"

// PayrollService is the payroll engine boundary. Calculation is synchronous,
// per employee-month, and idempotent: recomputation with unchanged ledger
// data yields identical field values.
type PayrollService interface {
	// CalculateForMonth computes and persists the salary record for one
	// employee-month, overwriting any prior record for that key.
	CalculateForMonth(ctx context.Context, employeeID string, year, month int) (SalaryRecordResponse, error)

	// CalculateForAll runs the engine for every active employee. Individual
	// failures are collected per employee and reported independently.
	CalculateForAll(ctx context.Context, year, month int) (BatchResultResponse, error)

	// GetRecord retrieves the persisted record for one employee-month
	GetRecord(ctx context.Context, employeeID string, year, month int) (SalaryRecordResponse, error)

	// ListByPeriod retrieves all records for a month
	ListByPeriod(ctx context.Context, year, month int) ([]SalaryRecordResponse, error)
}
