package dashboard

import (
	"context"

	"github.com/quillhr/hr-backend-go/internal/domain/dashboard"
	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

type DashboardServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewDashboardService(employeeRepo employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{employeeRepo: employeeRepo}
}

// GetDashboard aggregates headcount and cost figures over active employees.
// The monthly cost is an estimate: part-time staff are priced at their
// default monthly hours, not actual worked hours.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	result := dashboard.DashboardResponse{
		EstimatedMonthlyCost: decimal.Zero,
	}

	for _, emp := range employees {
		if emp.Status != employee.StatusActive {
			continue
		}

		result.TotalEmployees++
		switch emp.Kind {
		case employee.KindFullTime:
			result.FullTimeCount++
		case employee.KindPartTime:
			result.PartTimeCount++
		}
		if emp.BenefitsEligible() {
			result.BenefitsEligible++
		}
		result.EstimatedMonthlyCost = result.EstimatedMonthlyCost.Add(emp.MonthlyBaseSalary())
	}

	return result, nil
}
