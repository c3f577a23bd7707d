package employee

import (
	"fmt"
	"time"

	"github.com/quillhr/hr-backend-go/internal/domain/role"
	"github.com/shopspring/decimal"
)

// Kind is the closed set of employment variants. The variant is fixed at
// construction; changing kind means constructing a new Employee.
type Kind string

const (
	KindFullTime Kind = "full-time"
	KindPartTime Kind = "part-time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DefaultPartTimeMonthlyHours is used only to estimate a part-time monthly
// salary; payslip calculation always runs against actual worked hours.
const DefaultPartTimeMonthlyHours = 80

var monthsPerYear = decimal.NewFromInt(12)

// Employee is a tagged variant over the two employment kinds. Exactly one of
// the compensation fields is meaningful, selected by Kind: AnnualSalary for
// full-time, HourlyRate (plus DefaultHoursPerMonth) for part-time.
//
// The Role field is a read-only snapshot resolved at request time; the
// employee does not own the role.
type Employee struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	RoleID    string
	Role      *role.Role
	StartDate time.Time
	Status    Status

	Kind                 Kind
	AnnualSalary         decimal.Decimal
	HourlyRate           decimal.Decimal
	DefaultHoursPerMonth int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// New constructs the employee variant selected by kind. The single
// compensation figure is interpreted per variant: annual salary for
// full-time, hourly rate for part-time. An unknown kind is a data-integrity
// error and never defaults to either variant.
func New(kind Kind, id, firstName, lastName, email, roleID string, startDate time.Time, compensation decimal.Decimal) (Employee, error) {
	e := Employee{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		RoleID:    roleID,
		StartDate: startDate,
		Status:    StatusActive,
		Kind:      kind,
	}

	switch kind {
	case KindFullTime:
		e.AnnualSalary = compensation
	case KindPartTime:
		e.HourlyRate = compensation
		e.DefaultHoursPerMonth = DefaultPartTimeMonthlyHours
	default:
		return Employee{}, fmt.Errorf("%w: %q", ErrUnknownEmployeeKind, kind)
	}

	return e, nil
}

// FullName returns the display name.
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// MonthlyBaseSalary estimates the monthly compensation: a twelfth of the
// annual salary for full-time, rate times default monthly hours for
// part-time.
func (e *Employee) MonthlyBaseSalary() decimal.Decimal {
	switch e.Kind {
	case KindPartTime:
		return e.HourlyRate.Mul(decimal.NewFromInt(int64(e.DefaultHoursPerMonth)))
	default:
		return e.AnnualSalary.Div(monthsPerYear)
	}
}

// BenefitsEligible reports whether the employee qualifies for benefits.
// Only full-time staff do.
func (e *Employee) BenefitsEligible() bool {
	return e.Kind == KindFullTime
}

// PayForHours prices a number of worked hours at the hourly rate.
// Meaningful for part-time employees only.
func (e *Employee) PayForHours(hours decimal.Decimal) decimal.Decimal {
	return e.HourlyRate.Mul(hours)
}

// Compensation returns the single persisted compensation figure for the
// variant: annual salary or hourly rate.
func (e *Employee) Compensation() decimal.Decimal {
	if e.Kind == KindPartTime {
		return e.HourlyRate
	}
	return e.AnnualSalary
}
