package employee

import (
	"github.com/quillhr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	Type      string          `json:"type"` // "full-time" or "part-time"
	RoleID    string          `json:"role_id"`
	Salary    decimal.Decimal `json:"salary"`
	StartDate string          `json:"start_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsInSlice(r.Type, []string{string(KindFullTime), string(KindPartTime)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'full-time' or 'part-time'"})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID        string
	FirstName string          `json:"first_name"`
	LastName  string          `json:"last_name"`
	Email     string          `json:"email"`
	RoleID    string          `json:"role_id"`
	Salary    decimal.Decimal `json:"salary"`
	StartDate string          `json:"start_date"`
	Status    string          `json:"status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.RoleID) {
		errs = append(errs, validator.ValidationError{Field: "role_id", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be 'active' or 'inactive'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	Email             string          `json:"email"`
	Type              string          `json:"type"`
	RoleID            string          `json:"role_id"`
	RoleTitle         string          `json:"role_title,omitempty"`
	Salary            decimal.Decimal `json:"salary"`
	MonthlyBaseSalary decimal.Decimal `json:"monthly_base_salary"`
	BenefitsEligible  bool            `json:"benefits_eligible"`
	StartDate         string          `json:"start_date"`
	Status            string          `json:"status"`
}
