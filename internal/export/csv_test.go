package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"payrollms/internal/domain/payroll"
)

func TestWriteRegisterEmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, registerHeader, records[0])
}

func TestWriteRegisterRows(t *testing.T) {
	paid := time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)
	rows := []payroll.RegisterRow{
		{
			PayrollID: "PAY202412000001", EmployeeID: "EMP2412011230450001",
			EmployeeName: "Jane Wanjiku", Department: "Engineering",
			Month: 12, Year: 2024,
			BaseSalary: 100000, HousingAllowance: 15000, TransportAllowance: 8000,
			MedicalAllowance: 5000, OtherAllowance: 2000,
			GrossSalary: 130000, TaxDeduction: 33783.15, HealthDeduction: 1700,
			PensionDeduction: 1080, OtherDeductions: 0, TotalDeductions: 36563.15,
			NetSalary: 93436.85, Status: "paid", PaymentDate: &paid,
		},
		{
			PayrollID: "PAY202412000002", EmployeeID: "EMP2412011230450002",
			EmployeeName: "Otieno Odhiambo", Department: "",
			Month: 12, Year: 2024,
			BaseSalary: 30000, GrossSalary: 30000,
			TaxDeduction: 3899.85, HealthDeduction: 850, PensionDeduction: 1080,
			TotalDeductions: 5829.85, NetSalary: 24170.15, Status: "generated",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	first := records[1]
	require.Equal(t, "PAY202412000001", first[0])
	require.Equal(t, "Jane Wanjiku", first[2])
	require.Equal(t, "130000.00", first[11])
	require.Equal(t, "33783.15", first[12])
	require.Equal(t, "93436.85", first[17])
	require.Equal(t, "2024-12-28", first[19])

	second := records[2]
	require.Equal(t, "", second[3])
	require.Equal(t, "generated", second[18])
	require.Equal(t, "", second[19])
}

func TestMoneyFormatting(t *testing.T) {
	require.Equal(t, "0.00", money(0))
	require.Equal(t, "1080.00", money(1080))
	require.True(t, strings.HasSuffix(money(33783.15), ".15"))
}
