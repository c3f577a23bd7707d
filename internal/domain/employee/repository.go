package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	// GetByID reconstructs the employee variant together with its role
	// snapshot. A persisted type outside the known kinds surfaces as
	// ErrUnknownEmployeeKind.
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, updated Employee) (Employee, error)
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error)
}
