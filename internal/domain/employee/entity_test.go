package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStartDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func TestNew_FullTime(t *testing.T) {
	t.Parallel()

	e, err := New(KindFullTime, "emp-1", "Ada", "Lovelace", "ada@example.com", "role-1", testStartDate, decimal.RequireFromString("96000"))
	require.NoError(t, err)

	assert.Equal(t, KindFullTime, e.Kind)
	assert.True(t, e.AnnualSalary.Equal(decimal.RequireFromString("96000")))
	assert.True(t, e.HourlyRate.IsZero())
	assert.Equal(t, StatusActive, e.Status)
	assert.Equal(t, "Ada Lovelace", e.FullName())
}

func TestNew_PartTime(t *testing.T) {
	t.Parallel()

	e, err := New(KindPartTime, "emp-2", "Grace", "Hopper", "grace@example.com", "role-1", testStartDate, decimal.RequireFromString("25"))
	require.NoError(t, err)

	assert.Equal(t, KindPartTime, e.Kind)
	assert.True(t, e.HourlyRate.Equal(decimal.RequireFromString("25")))
	assert.Equal(t, DefaultPartTimeMonthlyHours, e.DefaultHoursPerMonth)
	assert.True(t, e.AnnualSalary.IsZero())
}

func TestNew_UnknownKind(t *testing.T) {
	t.Parallel()

	kinds := []Kind{"contractor", "intern", "", "FULL-TIME"}
	for _, kind := range kinds {
		_, err := New(kind, "emp-3", "Joan", "Clarke", "joan@example.com", "role-1", testStartDate, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, ErrUnknownEmployeeKind, "kind %q must be rejected", kind)
	}
}

func TestEmployee_MonthlyBaseSalary(t *testing.T) {
	t.Parallel()

	fullTime, err := New(KindFullTime, "emp-1", "Ada", "Lovelace", "ada@example.com", "role-1", testStartDate, decimal.RequireFromString("96000"))
	require.NoError(t, err)
	assert.True(t, fullTime.MonthlyBaseSalary().Equal(decimal.RequireFromString("8000")),
		"got %s", fullTime.MonthlyBaseSalary())

	partTime, err := New(KindPartTime, "emp-2", "Grace", "Hopper", "grace@example.com", "role-1", testStartDate, decimal.RequireFromString("25"))
	require.NoError(t, err)
	assert.True(t, partTime.MonthlyBaseSalary().Equal(decimal.RequireFromString("2000")),
		"got %s", partTime.MonthlyBaseSalary())
}

func TestEmployee_BenefitsEligible(t *testing.T) {
	t.Parallel()

	fullTime, _ := New(KindFullTime, "emp-1", "Ada", "Lovelace", "ada@example.com", "role-1", testStartDate, decimal.NewFromInt(96000))
	partTime, _ := New(KindPartTime, "emp-2", "Grace", "Hopper", "grace@example.com", "role-1", testStartDate, decimal.NewFromInt(25))

	assert.True(t, fullTime.BenefitsEligible())
	assert.False(t, partTime.BenefitsEligible())
}

func TestEmployee_PayForHours(t *testing.T) {
	t.Parallel()

	partTime, _ := New(KindPartTime, "emp-2", "Grace", "Hopper", "grace@example.com", "role-1", testStartDate, decimal.RequireFromString("25"))

	assert.True(t, partTime.PayForHours(decimal.NewFromInt(10)).Equal(decimal.NewFromInt(250)))
	assert.True(t, partTime.PayForHours(decimal.Zero).IsZero())
}

func TestEmployee_Compensation(t *testing.T) {
	t.Parallel()

	fullTime, _ := New(KindFullTime, "emp-1", "Ada", "Lovelace", "ada@example.com", "role-1", testStartDate, decimal.NewFromInt(96000))
	partTime, _ := New(KindPartTime, "emp-2", "Grace", "Hopper", "grace@example.com", "role-1", testStartDate, decimal.NewFromInt(25))

	assert.True(t, fullTime.Compensation().Equal(decimal.NewFromInt(96000)))
	assert.True(t, partTime.Compensation().Equal(decimal.NewFromInt(25)))
}
