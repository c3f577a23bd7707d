package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// Result is the breakdown produced by a single calculation call. It carries
// no identity; the algebraic identities GrossPay = BasePay + OvertimePay and
// NetPay = GrossPay - Deductions hold by construction.
type Result struct {
	BasePay       decimal.Decimal
	OvertimePay   decimal.Decimal
	GrossPay      decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
}

// Payslip is a persisted calculation result, kept for history and PDF export.
type Payslip struct {
	ID            string
	EmployeeID    string
	BasePay       decimal.Decimal
	OvertimePay   decimal.Decimal
	GrossPay      decimal.Decimal
	Deductions    decimal.Decimal
	NetPay        decimal.Decimal
	HoursWorked   decimal.Decimal
	OvertimeHours decimal.Decimal
	GeneratedAt   time.Time

	// Joined fields
	EmployeeName  *string
	EmployeeEmail *string
}
