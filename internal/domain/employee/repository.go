package employee

import "context"

type EmployeeRepository interface {
	// Create creates a new employee record
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by internal ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmpID retrieves an employee by employee code
	GetByEmpID(ctx context.Context, empID string) (Employee, error)

	// List retrieves employees with search and pagination
	List(ctx context.Context, filter ListEmployeeFilter) ([]Employee, int64, error)

	// ListActive retrieves all active employees, used by batch payroll runs
	ListActive(ctx context.Context) ([]Employee, error)

	// Update updates an existing employee record
	Update(ctx context.Context, emp Employee) error

	// SetActive toggles the active flag
	SetActive(ctx context.Context, id string, active bool) error
}
