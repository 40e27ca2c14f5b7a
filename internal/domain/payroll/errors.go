package payroll

import "errors"

var (
	ErrSalaryRecordNotFound = errors.New("salary record not found")

	// ErrRecomputeConflict signals two recomputations raced on the same
	// (employee, year, month) key. The caller may retry.
	ErrRecomputeConflict = errors.New("concurrent payroll recompute detected, retry")

	ErrInvalidPeriod = errors.New("invalid payroll period")

	// ErrIncompleteEmployee is a data inconsistency: the employee row lacks
	// fields the engine needs. Not retried automatically.
	ErrIncompleteEmployee = errors.New("employee record is missing required payroll fields")
)
