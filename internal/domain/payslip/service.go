package payslip

import "context"

// PayslipService defines business logic for payslip operations
type PayslipService interface {
	// CalculatePayslip resolves the employee with its role snapshot, runs
	// the variant calculator and persists the resulting breakdown.
	CalculatePayslip(ctx context.Context, req CalculatePayslipRequest) (PayslipResponse, error)

	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)

	// RenderPayslipPDF renders a stored payslip as a PDF document.
	RenderPayslipPDF(ctx context.Context, id string) ([]byte, error)
}
