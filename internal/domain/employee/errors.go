package employee

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")

	// ErrUnknownEmployeeKind signals a kind outside the closed variant set.
	// It indicates schema drift or a corrupted type column, not a business
	// condition the caller can recover from.
	ErrUnknownEmployeeKind = errors.New("unknown employee kind")
)

// SalaryOutOfRangeError rejects a candidate salary outside the role's band.
// It carries the band bounds so the caller can correct the input.
type SalaryOutOfRangeError struct {
	MinSalary decimal.Decimal
	MaxSalary decimal.Decimal
}

func (e *SalaryOutOfRangeError) Error() string {
	return fmt.Sprintf("Salary must be between %s and %s for this role", e.MinSalary, e.MaxSalary)
}
