package role

import "errors"

var (
	ErrRoleNotFound    = errors.New("role not found")
	ErrRoleTitleExists = errors.New("role title already exists")
)
