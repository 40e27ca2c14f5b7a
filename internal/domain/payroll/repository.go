package payroll

import "context"

type PayrollRepository interface {
	// Upsert atomically inserts or overwrites the record for its
	// (employee, year, month) key. The upsert is the per-key write
	// serialization point for racing recomputes.
	Upsert(ctx context.Context, record SalaryRecord) (SalaryRecord, error)

	// GetByEmployeePeriod retrieves the record for one employee-month
	GetByEmployeePeriod(ctx context.Context, employeeID string, year, month int) (SalaryRecord, error)

	// ListByPeriod retrieves all records for a month
	ListByPeriod(ctx context.Context, year, month int) ([]SalaryRecord, error)

	// ListByEmployee retrieves the most recent records for an employee
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]SalaryRecord, error)
}
