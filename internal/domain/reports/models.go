package reports

// Summary aggregates one payroll period. All fields are zero when no
// records exist for the period; that is a valid result, not an error.
type Summary struct {
	EmployeeCount   int     `json:"employeeCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
	AverageNet      float64 `json:"averageNet"`
}

// DepartmentTotals is one row of the per-department breakdown.
// Employees without a department fall into the "Unassigned" bucket.
type DepartmentTotals struct {
	Department      string  `json:"department"`
	EmployeeCount   int     `json:"employeeCount"`
	TotalGross      float64 `json:"totalGross"`
	TotalDeductions float64 `json:"totalDeductions"`
	TotalNet        float64 `json:"totalNet"`
}

type Earner struct {
	PayrollID    string  `json:"payrollId"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	GrossSalary  float64 `json:"grossSalary"`
	NetSalary    float64 `json:"netSalary"`
}

type HistoryEntry struct {
	PayrollID       string  `json:"payrollId"`
	Month           int     `json:"month"`
	Year            int     `json:"year"`
	GrossSalary     float64 `json:"grossSalary"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetSalary       float64 `json:"netSalary"`
	Status          string  `json:"status"`
}

type History struct {
	EmployeeID   string         `json:"employeeId"`
	EmployeeName string         `json:"employeeName"`
	Entries      []HistoryEntry `json:"entries"`
	TotalGross   float64        `json:"totalGross"`
	TotalNet     float64        `json:"totalNet"`
}

type Dashboard struct {
	ActiveEmployees int     `json:"activeEmployees"`
	TotalEmployees  int     `json:"totalEmployees"`
	Departments     int     `json:"departments"`
	Roles           int     `json:"roles"`
	CurrentMonth    Summary `json:"currentMonth"`
}
