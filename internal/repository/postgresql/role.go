package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quillhr/hr-backend-go/internal/domain/role"
	"github.com/quillhr/hr-backend-go/internal/pkg/database"
)

type roleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &roleRepositoryImpl{db: db}
}

// Create implements role.RoleRepository.
func (r *roleRepositoryImpl) Create(ctx context.Context, newRole role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return role.Role{}, fmt.Errorf("failed to generate role id: %w", err)
	}

	query := `
		INSERT INTO roles (id, title, description, department, level, min_salary, max_salary, responsibilities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, title, description, department, level, min_salary, max_salary, responsibilities, created_at, updated_at
	`

	var result role.Role
	err = q.QueryRow(ctx, query,
		id.String(),
		newRole.Title,
		newRole.Description,
		newRole.Department,
		newRole.Level,
		newRole.MinSalary,
		newRole.MaxSalary,
		newRole.Responsibilities,
	).Scan(
		&result.ID,
		&result.Title,
		&result.Description,
		&result.Department,
		&result.Level,
		&result.MinSalary,
		&result.MaxSalary,
		&result.Responsibilities,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return role.Role{}, role.ErrRoleTitleExists
		}
		return role.Role{}, fmt.Errorf("failed to create role: %w", err)
	}

	return result, nil
}

// GetByID implements role.RoleRepository.
func (r *roleRepositoryImpl) GetByID(ctx context.Context, id string) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, department, level, min_salary, max_salary, responsibilities, created_at, updated_at
		FROM roles
		WHERE id = $1
	`

	var result role.Role
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.Description,
		&result.Department,
		&result.Level,
		&result.MinSalary,
		&result.MaxSalary,
		&result.Responsibilities,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		return role.Role{}, fmt.Errorf("failed to get role: %w", err)
	}

	return result, nil
}

// List implements role.RoleRepository.
func (r *roleRepositoryImpl) List(ctx context.Context) ([]role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, description, department, level, min_salary, max_salary, responsibilities, created_at, updated_at
		FROM roles
		ORDER BY department ASC, level DESC, title ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []role.Role
	for rows.Next() {
		var item role.Role
		err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Department,
			&item.Level,
			&item.MinSalary,
			&item.MaxSalary,
			&item.Responsibilities,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// Update implements role.RoleRepository.
func (r *roleRepositoryImpl) Update(ctx context.Context, updated role.Role) (role.Role, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE roles
		SET title = $1, description = $2, department = $3, level = $4,
		    min_salary = $5, max_salary = $6, responsibilities = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, title, description, department, level, min_salary, max_salary, responsibilities, created_at, updated_at
	`

	var result role.Role
	err := q.QueryRow(ctx, query,
		updated.Title,
		updated.Description,
		updated.Department,
		updated.Level,
		updated.MinSalary,
		updated.MaxSalary,
		updated.Responsibilities,
		updated.ID,
	).Scan(
		&result.ID,
		&result.Title,
		&result.Description,
		&result.Department,
		&result.Level,
		&result.MinSalary,
		&result.MaxSalary,
		&result.Responsibilities,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return role.Role{}, role.ErrRoleNotFound
		}
		if isUniqueViolation(err) {
			return role.Role{}, role.ErrRoleTitleExists
		}
		return role.Role{}, fmt.Errorf("failed to update role: %w", err)
	}

	return result, nil
}

// Delete implements role.RoleRepository.
func (r *roleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM roles WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}

	return nil
}
