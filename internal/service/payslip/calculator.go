package payslip

import (
	"fmt"

	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
)

var (
	overtimeMultiplier = decimal.RequireFromString("1.5")

	// 52 weeks * 40 hours: prices overtime for salaried staff.
	annualWorkHours = decimal.NewFromInt(52 * 40)
)

// Calculator produces a payslip breakdown for one employee. Inputs are
// expected non-negative; the request DTO rejects anything else before a
// calculator is ever selected.
type Calculator interface {
	Calculate(hoursWorked, overtimeHours, deductions decimal.Decimal) payslip.Result
}

// payFormula is the variant-specific half of the calculation; the shared
// aggregation lives in compose.
type payFormula interface {
	basePay(hoursWorked decimal.Decimal) decimal.Decimal
	overtimePay(overtimeHours decimal.Decimal) decimal.Decimal
}

// NewCalculator selects the calculator matching the employee's variant.
// An unrecognized variant is unreachable when employees come out of the
// domain factory, but a corrupted record must not silently pick a formula.
func NewCalculator(emp employee.Employee) (Calculator, error) {
	switch emp.Kind {
	case employee.KindFullTime:
		return &fullTimeCalculator{emp: emp}, nil
	case employee.KindPartTime:
		return &partTimeCalculator{emp: emp}, nil
	default:
		return nil, fmt.Errorf("%w: %q", payslip.ErrUnknownEmployeeType, emp.Kind)
	}
}

func compose(f payFormula, hoursWorked, overtimeHours, deductions decimal.Decimal) payslip.Result {
	basePay := f.basePay(hoursWorked)
	overtimePay := f.overtimePay(overtimeHours)
	grossPay := basePay.Add(overtimePay)

	return payslip.Result{
		BasePay:       basePay,
		OvertimePay:   overtimePay,
		GrossPay:      grossPay,
		Deductions:    deductions,
		NetPay:        grossPay.Sub(deductions),
		HoursWorked:   hoursWorked,
		OvertimeHours: overtimeHours,
	}
}

type fullTimeCalculator struct {
	emp employee.Employee
}

func (c *fullTimeCalculator) Calculate(hoursWorked, overtimeHours, deductions decimal.Decimal) payslip.Result {
	return compose(c, hoursWorked, overtimeHours, deductions)
}

// basePay for salaried staff is the fixed monthly salary; logged hours do
// not change it.
func (c *fullTimeCalculator) basePay(decimal.Decimal) decimal.Decimal {
	return c.emp.MonthlyBaseSalary()
}

// overtimePay derives an hourly-equivalent rate from the annual salary and
// pays time-and-a-half on it.
func (c *fullTimeCalculator) overtimePay(overtimeHours decimal.Decimal) decimal.Decimal {
	if overtimeHours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	hourlyEquivalent := c.emp.AnnualSalary.Div(annualWorkHours)
	return overtimeHours.Mul(hourlyEquivalent).Mul(overtimeMultiplier)
}

type partTimeCalculator struct {
	emp employee.Employee
}

func (c *partTimeCalculator) Calculate(hoursWorked, overtimeHours, deductions decimal.Decimal) payslip.Result {
	return compose(c, hoursWorked, overtimeHours, deductions)
}

// basePay for hourly staff follows the hours actually worked.
func (c *partTimeCalculator) basePay(hoursWorked decimal.Decimal) decimal.Decimal {
	return c.emp.PayForHours(hoursWorked)
}

func (c *partTimeCalculator) overtimePay(overtimeHours decimal.Decimal) decimal.Decimal {
	if overtimeHours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return overtimeHours.Mul(c.emp.HourlyRate).Mul(overtimeMultiplier)
}
