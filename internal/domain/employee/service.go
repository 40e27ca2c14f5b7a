package employee

import "context"

// EmployeeService defines business logic for employee management
type EmployeeService interface {
	// Create creates an employee, defaulting paid leave quota and working
	// hours by employment type when not provided
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves an employee by internal ID
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByEmpID retrieves an employee by employee code
	GetByEmpID(ctx context.Context, empID string) (EmployeeResponse, error)

	// List retrieves employees with search and pagination
	List(ctx context.Context, filter ListEmployeeFilter) (ListEmployeeResponse, error)

	// Update applies partial updates to an employee record
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// ToggleActive flips the active flag
	ToggleActive(ctx context.Context, id string) (EmployeeResponse, error)
}
