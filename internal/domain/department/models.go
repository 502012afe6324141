package department

import "time"

type Department struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Budget        float64   `json:"budget"`
	Description   string    `json:"description"`
	EmployeeCount int       `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UpdateFields enumerates the mutable columns. A nil field is left
// untouched.
type UpdateFields struct {
	Name        *string
	Code        *string
	Budget      *float64
	Description *string
}

func (f UpdateFields) Empty() bool {
	return f.Name == nil && f.Code == nil && f.Budget == nil && f.Description == nil
}
