package role

import (
	"github.com/quillhr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRoleRequest struct {
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Department       string          `json:"department"`
	Level            int             `json:"level"`
	MinSalary        decimal.Decimal `json:"min_salary"`
	MaxSalary        decimal.Decimal `json:"max_salary"`
	Responsibilities []string        `json:"responsibilities,omitempty"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Level <= 0 {
		errs = append(errs, validator.ValidationError{Field: "level", Message: "must be a positive integer"})
	}
	if r.MinSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_salary", Message: "must be non-negative"})
	}
	if r.MaxSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_salary", Message: "must be non-negative"})
	}
	if r.MinSalary.GreaterThan(r.MaxSalary) {
		errs = append(errs, validator.ValidationError{Field: "min_salary", Message: "must not exceed max_salary"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID               string
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Department       string          `json:"department"`
	Level            int             `json:"level"`
	MinSalary        decimal.Decimal `json:"min_salary"`
	MaxSalary        decimal.Decimal `json:"max_salary"`
	Responsibilities []string        `json:"responsibilities,omitempty"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if r.Level <= 0 {
		errs = append(errs, validator.ValidationError{Field: "level", Message: "must be a positive integer"})
	}
	if r.MinSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_salary", Message: "must be non-negative"})
	}
	if r.MaxSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "max_salary", Message: "must be non-negative"})
	}
	if r.MinSalary.GreaterThan(r.MaxSalary) {
		errs = append(errs, validator.ValidationError{Field: "min_salary", Message: "must not exceed max_salary"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ResponsibilityRequest struct {
	Responsibility string `json:"responsibility"`
}

func (r *ResponsibilityRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Responsibility) {
		errs = append(errs, validator.ValidationError{Field: "responsibility", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Department       string          `json:"department"`
	Level            int             `json:"level"`
	MinSalary        decimal.Decimal `json:"min_salary"`
	MaxSalary        decimal.Decimal `json:"max_salary"`
	Responsibilities []string        `json:"responsibilities"`
}
