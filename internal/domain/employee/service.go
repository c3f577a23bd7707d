package employee

import "context"

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee validates the candidate salary against the target
	// role's band before anything is persisted.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// UpdateEmployee re-runs the salary-band gate; the employment kind is
	// fixed at creation and cannot be changed here.
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	DeleteEmployee(ctx context.Context, id string) error
}
