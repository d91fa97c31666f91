package employee

import "context"

// Repository defines data access for employee documents.
type Repository interface {
	// Create writes a new employee and returns its generated id.
	Create(ctx context.Context, emp Employee) (string, error)

	// GetByID returns one employee or ErrEmployeeNotFound.
	GetByID(ctx context.Context, id string) (Employee, error)

	// ExistsByEmpID reports whether any employee carries the code.
	ExistsByEmpID(ctx context.Context, empID string) (bool, error)

	// List returns employees sorted by name ascending, case-insensitive.
	// Only pass status filters the result to one status.
	List(ctx context.Context, status Status) ([]Employee, error)

	// Update overwrites an existing employee's fields.
	Update(ctx context.Context, id string, emp Employee) error

	// Delete removes an employee document.
	Delete(ctx context.Context, id string) error
}
