package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/role"
	"github.com/quillhr/hr-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// employeeRow carries the raw persisted columns before the variant is
// reconstructed through the domain factory.
type employeeRow struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Kind      string
	RoleID    string
	Salary    decimal.Decimal
	StartDate time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// toEntity rebuilds the tagged variant from persisted fields. Routing
// through employee.New means a corrupted type column surfaces as
// ErrUnknownEmployeeKind instead of producing a half-formed employee.
func (row employeeRow) toEntity() (employee.Employee, error) {
	emp, err := employee.New(employee.Kind(row.Kind), row.ID, row.FirstName, row.LastName, row.Email, row.RoleID, row.StartDate, row.Salary)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("employee %s: %w", row.ID, err)
	}
	emp.Status = employee.Status(row.Status)
	emp.CreatedAt = row.CreatedAt
	emp.UpdatedAt = row.UpdatedAt
	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	query := `
		INSERT INTO employees (id, first_name, last_name, email, type, role_id, salary, start_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, first_name, last_name, email, type, role_id, salary, start_date, status, created_at, updated_at
	`

	var row employeeRow
	err = q.QueryRow(ctx, query,
		id.String(),
		newEmployee.FirstName,
		newEmployee.LastName,
		newEmployee.Email,
		string(newEmployee.Kind),
		newEmployee.RoleID,
		newEmployee.Compensation(),
		newEmployee.StartDate,
		string(newEmployee.Status),
	).Scan(
		&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.Kind,
		&row.RoleID, &row.Salary, &row.StartDate, &row.Status,
		&row.CreatedAt, &row.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return row.toEntity()
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.first_name, e.last_name, e.email, e.type, e.role_id, e.salary, e.start_date, e.status, e.created_at, e.updated_at,
		       r.id, r.title, r.description, r.department, r.level, r.min_salary, r.max_salary, r.responsibilities
		FROM employees e
		JOIN roles r ON e.role_id = r.id
		WHERE e.id = $1
	`

	var row employeeRow
	var roleSnapshot role.Role
	err := q.QueryRow(ctx, query, id).Scan(
		&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.Kind,
		&row.RoleID, &row.Salary, &row.StartDate, &row.Status,
		&row.CreatedAt, &row.UpdatedAt,
		&roleSnapshot.ID, &roleSnapshot.Title, &roleSnapshot.Description,
		&roleSnapshot.Department, &roleSnapshot.Level,
		&roleSnapshot.MinSalary, &roleSnapshot.MaxSalary,
		&roleSnapshot.Responsibilities,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	emp, err := row.toEntity()
	if err != nil {
		return employee.Employee{}, err
	}
	emp.Role = &roleSnapshot

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.first_name, e.last_name, e.email, e.type, e.role_id, e.salary, e.start_date, e.status, e.created_at, e.updated_at,
		       r.id, r.title, r.description, r.department, r.level, r.min_salary, r.max_salary, r.responsibilities
		FROM employees e
		JOIN roles r ON e.role_id = r.id
		ORDER BY e.last_name ASC, e.first_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var row employeeRow
		var roleSnapshot role.Role
		err := rows.Scan(
			&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.Kind,
			&row.RoleID, &row.Salary, &row.StartDate, &row.Status,
			&row.CreatedAt, &row.UpdatedAt,
			&roleSnapshot.ID, &roleSnapshot.Title, &roleSnapshot.Description,
			&roleSnapshot.Department, &roleSnapshot.Level,
			&roleSnapshot.MinSalary, &roleSnapshot.MaxSalary,
			&roleSnapshot.Responsibilities,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}

		emp, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		emp.Role = &roleSnapshot
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET first_name = $1, last_name = $2, email = $3, role_id = $4,
		    salary = $5, start_date = $6, status = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, first_name, last_name, email, type, role_id, salary, start_date, status, created_at, updated_at
	`

	var row employeeRow
	err := q.QueryRow(ctx, query,
		updated.FirstName,
		updated.LastName,
		updated.Email,
		updated.RoleID,
		updated.Compensation(),
		updated.StartDate,
		string(updated.Status),
		updated.ID,
	).Scan(
		&row.ID, &row.FirstName, &row.LastName, &row.Email, &row.Kind,
		&row.RoleID, &row.Salary, &row.StartDate, &row.Status,
		&row.CreatedAt, &row.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return row.toEntity()
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM employees
			WHERE email = $1 AND ($2 = '' OR id != $2)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}
