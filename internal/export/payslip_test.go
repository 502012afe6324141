package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"payrollms/internal/domain/payroll"
)

func TestWritePayslipProducesPDF(t *testing.T) {
	paid := time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)
	rec := &payroll.Record{
		PayrollID:    "PAY202412000001",
		EmployeeID:   "EMP2412011230450001",
		EmployeeName: "Jane Wanjiku",
		Department:   "Engineering",
		Month:        12, Year: 2024,
		BaseSalary: 100000, HousingAllowance: 15000, TransportAllowance: 8000,
		MedicalAllowance: 5000, OtherAllowance: 2000,
		GrossSalary: 130000, TaxDeduction: 33783.15, HealthDeduction: 1700,
		PensionDeduction: 1080, TotalDeductions: 36563.15, NetSalary: 93436.85,
		Status: "paid", PaymentDate: &paid,
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayslip(&buf, rec))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	require.Greater(t, buf.Len(), 500)
}

func TestWritePayslipWithoutDepartmentOrPayment(t *testing.T) {
	rec := &payroll.Record{
		PayrollID:    "PAY202412000002",
		EmployeeID:   "EMP2412011230450002",
		EmployeeName: "Otieno Odhiambo",
		Month:        12, Year: 2024,
		BaseSalary: 30000, GrossSalary: 30000,
		TaxDeduction: 3899.85, HealthDeduction: 850, PensionDeduction: 1080,
		TotalDeductions: 5829.85, NetSalary: 24170.15,
		Status: "generated",
	}

	var buf bytes.Buffer
	require.NoError(t, WritePayslip(&buf, rec))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
