package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"payrollms/internal/domain/payroll"
)

// WritePayslip renders a single payroll record as an A4 PDF payslip.
func WritePayslip(w io.Writer, rec *payroll.Record) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payroll ID: %s", rec.PayrollID))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s (%s)", rec.EmployeeName, rec.EmployeeID))
	pdf.Ln(7)
	if rec.Department != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s", rec.Department))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s %d", time.Month(rec.Month), rec.Year))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Base salary", rec.BaseSalary)
	line(pdf, "Housing allowance", rec.HousingAllowance)
	line(pdf, "Transport allowance", rec.TransportAllowance)
	line(pdf, "Medical allowance", rec.MedicalAllowance)
	line(pdf, "Other allowance", rec.OtherAllowance)
	line(pdf, "Gross salary", rec.GrossSalary)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	line(pdf, "Tax (PAYE)", rec.TaxDeduction)
	line(pdf, "Health (NHIF)", rec.HealthDeduction)
	line(pdf, "Pension (NSSF)", rec.PensionDeduction)
	line(pdf, "Other deductions", rec.OtherDeductions)
	line(pdf, "Total deductions", rec.TotalDeductions)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 13)
	line(pdf, "Net salary", rec.NetSalary)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", rec.Status))
	pdf.Ln(6)
	if rec.PaymentDate != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Paid on: %s", rec.PaymentDate.Format("2006-01-02")))
		pdf.Ln(6)
	}

	return pdf.Output(w)
}

func line(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(100, 7, label)
	pdf.Cell(0, 7, fmt.Sprintf("%.2f %s", amount, payroll.Currency))
	pdf.Ln(7)
}
