package role

import "time"

type Role struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	BaseSalary         float64   `json:"baseSalary"`
	HousingAllowance   float64   `json:"housingAllowance"`
	TransportAllowance float64   `json:"transportAllowance"`
	MedicalAllowance   float64   `json:"medicalAllowance"`
	OtherAllowance     float64   `json:"otherAllowance"`
	Description        string    `json:"description"`
	EmployeeCount      int       `json:"employeeCount"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (r Role) TotalAllowances() float64 {
	return r.HousingAllowance + r.TransportAllowance + r.MedicalAllowance + r.OtherAllowance
}

func (r Role) GrossSalary() float64 {
	return r.BaseSalary + r.TotalAllowances()
}

// UpdateFields enumerates the mutable columns. Changing a role never
// touches payroll records generated before the change; each record
// keeps its own salary snapshot.
type UpdateFields struct {
	Title              *string
	BaseSalary         *float64
	HousingAllowance   *float64
	TransportAllowance *float64
	MedicalAllowance   *float64
	OtherAllowance     *float64
	Description        *string
}

func (f UpdateFields) Empty() bool {
	return f.Title == nil && f.BaseSalary == nil && f.HousingAllowance == nil &&
		f.TransportAllowance == nil && f.MedicalAllowance == nil &&
		f.OtherAllowance == nil && f.Description == nil
}
