package payslip

import (
	"github.com/quillhr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CalculatePayslipRequest struct {
	EmployeeID    string          `json:"employee_id"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Deductions    decimal.Decimal `json:"deductions"`
}

// Validate rejects negative period inputs. The calculator itself does not
// guard them, so this is the only gate between the wire and the formulas.
func (r *CalculatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.HoursWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hours_worked", Message: "must be non-negative"})
	}
	if r.OvertimeHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_hours", Message: "must be non-negative"})
	}
	if r.Deductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "deductions", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID            string          `json:"id,omitempty"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	BasePay       decimal.Decimal `json:"base_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	GrossPay      decimal.Decimal `json:"gross_pay"`
	Deductions    decimal.Decimal `json:"deductions"`
	NetPay        decimal.Decimal `json:"net_pay"`
	HoursWorked   decimal.Decimal `json:"hours_worked"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	GeneratedAt   string          `json:"generated_at,omitempty"`
}
