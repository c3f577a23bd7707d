package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/quillhr/hr-backend-go/internal/pkg/database"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

// Create implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) Create(ctx context.Context, newPayslip payslip.Payslip) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to generate payslip id: %w", err)
	}

	query := `
		INSERT INTO payslips (id, employee_id, hours_worked, overtime_hours, base_pay, overtime_pay, gross_pay, deductions, net_pay, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, employee_id, hours_worked, overtime_hours, base_pay, overtime_pay, gross_pay, deductions, net_pay, generated_at
	`

	var result payslip.Payslip
	err = q.QueryRow(ctx, query,
		id.String(),
		newPayslip.EmployeeID,
		newPayslip.HoursWorked,
		newPayslip.OvertimeHours,
		newPayslip.BasePay,
		newPayslip.OvertimePay,
		newPayslip.GrossPay,
		newPayslip.Deductions,
		newPayslip.NetPay,
		newPayslip.GeneratedAt,
	).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.HoursWorked,
		&result.OvertimeHours,
		&result.BasePay,
		&result.OvertimePay,
		&result.GrossPay,
		&result.Deductions,
		&result.NetPay,
		&result.GeneratedAt,
	)

	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return result, nil
}

// GetByID implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.hours_worked, p.overtime_hours, p.base_pay, p.overtime_pay, p.gross_pay, p.deductions, p.net_pay, p.generated_at,
		       e.first_name || ' ' || e.last_name, e.email
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`

	var result payslip.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.HoursWorked,
		&result.OvertimeHours,
		&result.BasePay,
		&result.OvertimePay,
		&result.GrossPay,
		&result.Deductions,
		&result.NetPay,
		&result.GeneratedAt,
		&result.EmployeeName,
		&result.EmployeeEmail,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return result, nil
}

// ListByEmployee implements payslip.PayslipRepository.
func (r *payslipRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.employee_id, p.hours_worked, p.overtime_hours, p.base_pay, p.overtime_pay, p.gross_pay, p.deductions, p.net_pay, p.generated_at,
		       e.first_name || ' ' || e.last_name, e.email
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.employee_id = $1
		ORDER BY p.generated_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		var item payslip.Payslip
		err := rows.Scan(
			&item.ID,
			&item.EmployeeID,
			&item.HoursWorked,
			&item.OvertimeHours,
			&item.BasePay,
			&item.OvertimePay,
			&item.GrossPay,
			&item.Deductions,
			&item.NetPay,
			&item.GeneratedAt,
			&item.EmployeeName,
			&item.EmployeeEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payslips, nil
}
