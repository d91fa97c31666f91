package employee

import "context"

// Service defines business logic for the employee directory.
type Service interface {
	// CreateEmployee registers a new employee. The EmpID must be unique
	// across the directory.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves one employee by id.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees lists employees, optionally filtered by status.
	ListEmployees(ctx context.Context, status string) (ListEmployeesResponse, error)

	// UpdateEmployee updates an existing employee's profile fields.
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes an employee. Deletion is refused while
	// attendance records still reference the employee.
	DeleteEmployee(ctx context.Context, id string) error
}
