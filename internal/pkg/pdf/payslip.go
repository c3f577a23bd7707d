package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/quillhr/hr-backend-go/internal/domain/payslip"
)

// RenderPayslip renders a stored payslip as an A4 PDF. Monetary figures are
// rounded to two decimals here only; stored values keep full precision.
func RenderPayslip(slip payslip.Payslip) ([]byte, error) {
	employeeName := ""
	if slip.EmployeeName != nil {
		employeeName = *slip.EmployeeName
	}
	employeeEmail := ""
	if slip.EmployeeEmail != nil {
		employeeEmail = *slip.EmployeeEmail
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(40, 10, "Payslip")
	doc.Ln(12)
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s", employeeName))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Email: %s", employeeEmail))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Generated: %s", slip.GeneratedAt.Format("2006-01-02")))
	doc.Ln(10)
	doc.Cell(0, 8, fmt.Sprintf("Hours worked: %s", slip.HoursWorked.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Overtime hours: %s", slip.OvertimeHours.StringFixed(2)))
	doc.Ln(10)
	doc.Cell(0, 8, fmt.Sprintf("Base pay: %s", slip.BasePay.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Overtime pay: %s", slip.OvertimePay.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Gross pay: %s", slip.GrossPay.StringFixed(2)))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Deductions: %s", slip.Deductions.StringFixed(2)))
	doc.Ln(7)
	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 8, fmt.Sprintf("Net pay: %s", slip.NetPay.StringFixed(2)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip pdf: %w", err)
	}

	return buf.Bytes(), nil
}
