package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/role"
	"github.com/quillhr/hr-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	roleRepo     role.RoleRepository
	tx           database.Transactor
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	roleRepo role.RoleRepository,
	tx database.Transactor,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		roleRepo:     roleRepo,
		tx:           tx,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	targetRole, err := s.roleRepo.GetByID(ctx, req.RoleID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Admission gate: the candidate salary must sit inside the role's band
	// before anything reaches persistence.
	if !targetRole.IsSalaryInRange(req.Salary) {
		return employee.EmployeeResponse{}, &employee.SalaryOutOfRangeError{
			MinSalary: targetRole.MinSalary,
			MaxSalary: targetRole.MaxSalary,
		}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid start_date: %w", err)
	}

	newEmployee, err := employee.New(employee.Kind(req.Type), "", req.FirstName, req.LastName, req.Email, targetRole.ID, startDate, req.Salary)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// The uniqueness check and the insert share one transaction so a
	// concurrent create with the same email cannot slip between them.
	var created employee.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, "")
		if err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}

		created, err = s.employeeRepo.Create(ctx, newEmployee)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created.Role = &targetRole

	return mapToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return mapToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, mapToResponse(emp))
	}

	return result, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	targetRole, err := s.roleRepo.GetByID(ctx, req.RoleID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	// Updates re-run the band gate so a salary or role change cannot move
	// an employee outside the permitted range.
	if !targetRole.IsSalaryInRange(req.Salary) {
		return employee.EmployeeResponse{}, &employee.SalaryOutOfRangeError{
			MinSalary: targetRole.MinSalary,
			MaxSalary: targetRole.MaxSalary,
		}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("invalid start_date: %w", err)
	}

	// The employment kind is fixed at creation; rebuild the same variant
	// with the updated fields.
	updated, err := employee.New(existing.Kind, existing.ID, req.FirstName, req.LastName, req.Email, targetRole.ID, startDate, req.Salary)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	updated.Status = employee.Status(req.Status)

	var saved employee.Employee
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		exists, err := s.employeeRepo.ExistsByEmail(ctx, req.Email, req.ID)
		if err != nil {
			return fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if exists {
			return employee.ErrEmailExists
		}

		saved, err = s.employeeRepo.Update(ctx, updated)
		return err
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	saved.Role = &targetRole

	return mapToResponse(saved), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func mapToResponse(emp employee.Employee) employee.EmployeeResponse {
	roleTitle := ""
	if emp.Role != nil {
		roleTitle = emp.Role.Title
	}

	return employee.EmployeeResponse{
		ID:                emp.ID,
		FirstName:         emp.FirstName,
		LastName:          emp.LastName,
		Email:             emp.Email,
		Type:              string(emp.Kind),
		RoleID:            emp.RoleID,
		RoleTitle:         roleTitle,
		Salary:            emp.Compensation(),
		MonthlyBaseSalary: emp.MonthlyBaseSalary(),
		BenefitsEligible:  emp.BenefitsEligible(),
		StartDate:         emp.StartDate.Format("2006-01-02"),
		Status:            string(emp.Status),
	}
}
