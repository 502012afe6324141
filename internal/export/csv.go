// Package export renders payroll data into downloadable formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"payrollms/internal/domain/payroll"
)

var registerHeader = []string{
	"payroll_id", "employee_id", "employee_name", "department",
	"month", "year",
	"base_salary", "housing_allowance", "transport_allowance", "medical_allowance", "other_allowance",
	"gross_salary", "tax_deduction", "health_deduction", "pension_deduction",
	"other_deductions", "total_deductions", "net_salary",
	"status", "payment_date",
}

// WriteRegister writes the period register as CSV. The header row is
// always emitted, even when rows is empty.
func WriteRegister(w io.Writer, rows []payroll.RegisterRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(registerHeader); err != nil {
		return err
	}
	for _, row := range rows {
		paymentDate := ""
		if row.PaymentDate != nil {
			paymentDate = row.PaymentDate.Format("2006-01-02")
		}
		record := []string{
			row.PayrollID, row.EmployeeID, row.EmployeeName, row.Department,
			fmt.Sprintf("%d", row.Month), fmt.Sprintf("%d", row.Year),
			money(row.BaseSalary), money(row.HousingAllowance), money(row.TransportAllowance),
			money(row.MedicalAllowance), money(row.OtherAllowance),
			money(row.GrossSalary), money(row.TaxDeduction), money(row.HealthDeduction), money(row.PensionDeduction),
			money(row.OtherDeductions), money(row.TotalDeductions), money(row.NetSalary),
			row.Status, paymentDate,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
