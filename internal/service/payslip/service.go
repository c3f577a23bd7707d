package payslip

import (
	"context"
	"time"

	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/quillhr/hr-backend-go/internal/pkg/pdf"
)

type PayslipServiceImpl struct {
	payslipRepo  payslip.PayslipRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayslipService(
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *PayslipServiceImpl) CalculatePayslip(ctx context.Context, req payslip.CalculatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	calculator, err := NewCalculator(emp)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	result := calculator.Calculate(req.HoursWorked, req.OvertimeHours, req.Deductions)

	created, err := s.payslipRepo.Create(ctx, payslip.Payslip{
		EmployeeID:    emp.ID,
		BasePay:       result.BasePay,
		OvertimePay:   result.OvertimePay,
		GrossPay:      result.GrossPay,
		Deductions:    result.Deductions,
		NetPay:        result.NetPay,
		HoursWorked:   result.HoursWorked,
		OvertimeHours: result.OvertimeHours,
		GeneratedAt:   time.Now(),
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	name := emp.FullName()
	created.EmployeeName = &name

	return mapToResponse(created), nil
}

func (s *PayslipServiceImpl) GetPayslip(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return mapToResponse(slip), nil
}

func (s *PayslipServiceImpl) ListPayslipsByEmployee(ctx context.Context, employeeID string) ([]payslip.PayslipResponse, error) {
	// Resolve first so an unknown employee is a not-found, not an empty list.
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	slips, err := s.payslipRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	result := make([]payslip.PayslipResponse, 0, len(slips))
	for _, slip := range slips {
		result = append(result, mapToResponse(slip))
	}

	return result, nil
}

func (s *PayslipServiceImpl) RenderPayslipPDF(ctx context.Context, id string) ([]byte, error) {
	slip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return pdf.RenderPayslip(slip)
}

func mapToResponse(slip payslip.Payslip) payslip.PayslipResponse {
	employeeName := ""
	if slip.EmployeeName != nil {
		employeeName = *slip.EmployeeName
	}

	generatedAt := ""
	if !slip.GeneratedAt.IsZero() {
		generatedAt = slip.GeneratedAt.Format(time.RFC3339)
	}

	return payslip.PayslipResponse{
		ID:            slip.ID,
		EmployeeID:    slip.EmployeeID,
		EmployeeName:  employeeName,
		BasePay:       slip.BasePay,
		OvertimePay:   slip.OvertimePay,
		GrossPay:      slip.GrossPay,
		Deductions:    slip.Deductions,
		NetPay:        slip.NetPay,
		HoursWorked:   slip.HoursWorked,
		OvertimeHours: slip.OvertimeHours,
		GeneratedAt:   generatedAt,
	}
}
