package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, newRole Role) (Role, error)
	GetByID(ctx context.Context, id string) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, updated Role) (Role, error)
	Delete(ctx context.Context, id string) error
}
