package payslip

import "errors"

var (
	ErrPayslipNotFound = errors.New("payslip not found")

	// ErrUnknownEmployeeType guards calculator selection against a variant
	// outside the closed set. Unreachable as long as the employee factory
	// holds its invariant.
	ErrUnknownEmployeeType = errors.New("unknown employee type")
)
