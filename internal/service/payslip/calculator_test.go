package payslip

import (
	"testing"
	"time"

	"github.com/quillhr/hr-backend-go/internal/domain/employee"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStartDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func fullTimeEmployee(t *testing.T, annualSalary string) employee.Employee {
	t.Helper()
	emp, err := employee.New(employee.KindFullTime, "emp-ft", "Ada", "Lovelace", "ada@example.com", "role-1", testStartDate, decimal.RequireFromString(annualSalary))
	require.NoError(t, err)
	return emp
}

func partTimeEmployee(t *testing.T, hourlyRate string) employee.Employee {
	t.Helper()
	emp, err := employee.New(employee.KindPartTime, "emp-pt", "Grace", "Hopper", "grace@example.com", "role-1", testStartDate, decimal.RequireFromString(hourlyRate))
	require.NoError(t, err)
	return emp
}

func TestNewCalculator_SelectsVariant(t *testing.T) {
	t.Parallel()

	ftCalc, err := NewCalculator(fullTimeEmployee(t, "96000"))
	require.NoError(t, err)
	assert.IsType(t, &fullTimeCalculator{}, ftCalc)

	ptCalc, err := NewCalculator(partTimeEmployee(t, "25"))
	require.NoError(t, err)
	assert.IsType(t, &partTimeCalculator{}, ptCalc)
}

func TestNewCalculator_UnknownType(t *testing.T) {
	t.Parallel()

	// A corrupted record can only come out of storage, never the factory.
	corrupted := employee.Employee{Kind: employee.Kind("contractor")}

	_, err := NewCalculator(corrupted)
	assert.ErrorIs(t, err, payslip.ErrUnknownEmployeeType)
}

func TestFullTime_BasePayIgnoresHours(t *testing.T) {
	t.Parallel()

	calc, err := NewCalculator(fullTimeEmployee(t, "96000"))
	require.NoError(t, err)

	for _, hours := range []string{"0", "80", "200"} {
		result := calc.Calculate(decimal.RequireFromString(hours), decimal.Zero, decimal.Zero)
		assert.True(t, result.BasePay.Equal(decimal.RequireFromString("8000")),
			"hours=%s got base %s", hours, result.BasePay)
		assert.True(t, result.OvertimePay.IsZero())
		assert.True(t, result.GrossPay.Equal(decimal.RequireFromString("8000")))
		assert.True(t, result.NetPay.Equal(decimal.RequireFromString("8000")))
	}
}

func TestFullTime_OvertimeAtHourlyEquivalent(t *testing.T) {
	t.Parallel()

	calc, err := NewCalculator(fullTimeEmployee(t, "96000"))
	require.NoError(t, err)

	result := calc.Calculate(decimal.NewFromInt(160), decimal.NewFromInt(10), decimal.Zero)

	// 96000 / 2080 = 46.1538...; 10 * eq * 1.5 ≈ 692.31 at two decimals.
	expected := decimal.RequireFromString("96000").
		Div(decimal.NewFromInt(2080)).
		Mul(decimal.NewFromInt(10)).
		Mul(decimal.RequireFromString("1.5"))
	assert.True(t, result.OvertimePay.Equal(expected), "got %s want %s", result.OvertimePay, expected)
	assert.Equal(t, "692.31", result.OvertimePay.StringFixed(2))
	assert.True(t, result.GrossPay.Equal(result.BasePay.Add(result.OvertimePay)))
}

func TestPartTime_HoursDrivePay(t *testing.T) {
	t.Parallel()

	calc, err := NewCalculator(partTimeEmployee(t, "25"))
	require.NoError(t, err)

	result := calc.Calculate(decimal.NewFromInt(80), decimal.NewFromInt(5), decimal.NewFromInt(50))

	assert.True(t, result.BasePay.Equal(decimal.NewFromInt(2000)), "got %s", result.BasePay)
	assert.True(t, result.OvertimePay.Equal(decimal.RequireFromString("187.5")), "got %s", result.OvertimePay)
	assert.True(t, result.GrossPay.Equal(decimal.RequireFromString("2187.5")))
	assert.True(t, result.Deductions.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.NetPay.Equal(decimal.RequireFromString("2137.5")))
	assert.True(t, result.HoursWorked.Equal(decimal.NewFromInt(80)))
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(5)))
}

func TestOvertime_ZeroOrNegativeYieldsZero(t *testing.T) {
	t.Parallel()

	calculators := map[string]Calculator{}
	ft, err := NewCalculator(fullTimeEmployee(t, "96000"))
	require.NoError(t, err)
	pt, err := NewCalculator(partTimeEmployee(t, "25"))
	require.NoError(t, err)
	calculators["full-time"] = ft
	calculators["part-time"] = pt

	for name, calc := range calculators {
		for _, ot := range []string{"0", "-1", "-0.5"} {
			result := calc.Calculate(decimal.NewFromInt(40), decimal.RequireFromString(ot), decimal.Zero)
			assert.True(t, result.OvertimePay.IsZero(), "%s overtime=%s got %s", name, ot, result.OvertimePay)
		}
	}
}

func TestResult_AlgebraicIdentities(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		emp        employee.Employee
		hours      string
		overtime   string
		deductions string
	}{
		{"full-time plain", fullTimeEmployee(t, "96000"), "160", "0", "0"},
		{"full-time overtime", fullTimeEmployee(t, "77321"), "150", "12.5", "310.07"},
		{"part-time plain", partTimeEmployee(t, "25"), "80", "0", "0"},
		{"part-time everything", partTimeEmployee(t, "18.75"), "63.5", "7.25", "42.42"},
		{"zero salary", fullTimeEmployee(t, "0"), "160", "10", "0"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			calc, err := NewCalculator(tc.emp)
			require.NoError(t, err)

			result := calc.Calculate(
				decimal.RequireFromString(tc.hours),
				decimal.RequireFromString(tc.overtime),
				decimal.RequireFromString(tc.deductions),
			)

			assert.True(t, result.GrossPay.Equal(result.BasePay.Add(result.OvertimePay)))
			assert.True(t, result.NetPay.Equal(result.GrossPay.Sub(result.Deductions)))
		})
	}
}
