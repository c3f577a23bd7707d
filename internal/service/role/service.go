package role

import (
	"context"

	"github.com/quillhr/hr-backend-go/internal/domain/role"
)

type RoleServiceImpl struct {
	roleRepo role.RoleRepository
}

func NewRoleService(roleRepo role.RoleRepository) role.RoleService {
	return &RoleServiceImpl{roleRepo: roleRepo}
}

func (s *RoleServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	newRole := role.Role{
		Title:       req.Title,
		Description: req.Description,
		Department:  req.Department,
		Level:       req.Level,
		MinSalary:   req.MinSalary,
		MaxSalary:   req.MaxSalary,
	}
	// Route through AddResponsibility so duplicates in the request are
	// suppressed the same way they are everywhere else.
	for _, item := range req.Responsibilities {
		newRole.AddResponsibility(item)
	}

	created, err := s.roleRepo.Create(ctx, newRole)
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *RoleServiceImpl) GetRole(ctx context.Context, id string) (role.RoleResponse, error) {
	found, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(found), nil
}

func (s *RoleServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		result = append(result, mapToResponse(r))
	}

	return result, nil
}

func (s *RoleServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	existing, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return role.RoleResponse{}, err
	}

	existing.Title = req.Title
	existing.Description = req.Description
	existing.Department = req.Department
	existing.Level = req.Level
	existing.MinSalary = req.MinSalary
	existing.MaxSalary = req.MaxSalary
	if req.Responsibilities != nil {
		existing.Responsibilities = nil
		for _, item := range req.Responsibilities {
			existing.AddResponsibility(item)
		}
	}

	updated, err := s.roleRepo.Update(ctx, existing)
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *RoleServiceImpl) DeleteRole(ctx context.Context, id string) error {
	return s.roleRepo.Delete(ctx, id)
}

func (s *RoleServiceImpl) AddResponsibility(ctx context.Context, roleID string, req role.ResponsibilityRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	existing, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return role.RoleResponse{}, err
	}

	existing.AddResponsibility(req.Responsibility)

	updated, err := s.roleRepo.Update(ctx, existing)
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(updated), nil
}

func (s *RoleServiceImpl) RemoveResponsibility(ctx context.Context, roleID string, req role.ResponsibilityRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	existing, err := s.roleRepo.GetByID(ctx, roleID)
	if err != nil {
		return role.RoleResponse{}, err
	}

	existing.RemoveResponsibility(req.Responsibility)

	updated, err := s.roleRepo.Update(ctx, existing)
	if err != nil {
		return role.RoleResponse{}, err
	}

	return mapToResponse(updated), nil
}

func mapToResponse(r role.Role) role.RoleResponse {
	return role.RoleResponse{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Department:       r.Department,
		Level:            r.Level,
		MinSalary:        r.MinSalary,
		MaxSalary:        r.MaxSalary,
		Responsibilities: r.ResponsibilityList(),
	}
}
