package payroll

import (
	"fmt"
	"time"
)

// Record is one employee's pay for one calendar period. The salary
// components are copied from the role at generation time and never
// recomputed afterwards.
type Record struct {
	ID                 int64      `json:"-"`
	EmployeeRow        int64      `json:"-"`
	PayrollID          string     `json:"payrollId"`
	EmployeeID         string     `json:"employeeId"`
	EmployeeName       string     `json:"employeeName,omitempty"`
	Department         string     `json:"department,omitempty"`
	Month              int        `json:"month"`
	Year               int        `json:"year"`
	BaseSalary         float64    `json:"baseSalary"`
	HousingAllowance   float64    `json:"housingAllowance"`
	TransportAllowance float64    `json:"transportAllowance"`
	MedicalAllowance   float64    `json:"medicalAllowance"`
	OtherAllowance     float64    `json:"otherAllowance"`
	GrossSalary        float64    `json:"grossSalary"`
	TaxDeduction       float64    `json:"taxDeduction"`
	HealthDeduction    float64    `json:"healthDeduction"`
	PensionDeduction   float64    `json:"pensionDeduction"`
	OtherDeductions    float64    `json:"otherDeductions"`
	TotalDeductions    float64    `json:"totalDeductions"`
	NetSalary          float64    `json:"netSalary"`
	Status             string     `json:"status"`
	PaymentDate        *time.Time `json:"paymentDate,omitempty"`
	GeneratedAt        time.Time  `json:"generatedAt"`
}

// EmployeeSnapshot is the slice of employee and role data the
// generation service needs. HasRole is false when no role is assigned;
// the salary fields are then zero.
type EmployeeSnapshot struct {
	RowID              int64
	EmployeeID         string
	FirstName          string
	LastName           string
	HasRole            bool
	BaseSalary         float64
	HousingAllowance   float64
	TransportAllowance float64
	MedicalAllowance   float64
	OtherAllowance     float64
}

// RegisterRow is one line of the period export, the payroll record
// joined with the employee's name and department.
type RegisterRow struct {
	PayrollID          string
	EmployeeID         string
	EmployeeName       string
	Department         string
	Month              int
	Year               int
	BaseSalary         float64
	HousingAllowance   float64
	TransportAllowance float64
	MedicalAllowance   float64
	OtherAllowance     float64
	GrossSalary        float64
	TaxDeduction       float64
	HealthDeduction    float64
	PensionDeduction   float64
	OtherDeductions    float64
	TotalDeductions    float64
	NetSalary          float64
	Status             string
	PaymentDate        *time.Time
}

// BatchFailure reports one employee skipped during a bulk run.
type BatchFailure struct {
	EmployeeID string `json:"employeeId"`
	Reason     string `json:"reason"`
}

// BatchResult summarizes a bulk generation: best-effort, partial
// success is expected.
type BatchResult struct {
	Generated int            `json:"generated"`
	Failures  []BatchFailure `json:"failures,omitempty"`
}

// NewPayrollID encodes period and the employee's internal row number,
// e.g. PAY202412000007.
func NewPayrollID(year, month int, employeeRow int64) string {
	return fmt.Sprintf("PAY%04d%02d%06d", year, month, employeeRow)
}
