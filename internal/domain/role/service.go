package role

import "context"

// RoleService defines business logic for role operations
type RoleService interface {
	CreateRole(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	GetRole(ctx context.Context, id string) (RoleResponse, error)
	ListRoles(ctx context.Context) ([]RoleResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error)
	DeleteRole(ctx context.Context, id string) error

	AddResponsibility(ctx context.Context, roleID string, req ResponsibilityRequest) (RoleResponse, error)
	RemoveResponsibility(ctx context.Context, roleID string, req ResponsibilityRequest) (RoleResponse, error)
}
