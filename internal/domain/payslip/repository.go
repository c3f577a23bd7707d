package payslip

import "context"

type PayslipRepository interface {
	Create(ctx context.Context, newPayslip Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
}
