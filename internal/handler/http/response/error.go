package response

import (
	"errors"
	"net/http"

	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/quillhr/hr-backend-go/internal/domain/role"
	"github.com/quillhr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Salary-band rejection carries the permitted bounds in its message.
	var bandErr *employee.SalaryOutOfRangeError
	if errors.As(err, &bandErr) {
		BadRequest(w, bandErr.Error(), nil)
		return
	}

	switch {
	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleTitleExists):
		Conflict(w, "Role title already exists")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrUnknownEmployeeKind):
		UnprocessableEntity(w, "Unknown employee kind")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrUnknownEmployeeType):
		UnprocessableEntity(w, "Unknown employee type")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
