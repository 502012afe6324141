package employee

import "time"

type Employee struct {
	ID             int64      `json:"-"`
	EmployeeID     string     `json:"employeeId"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	DateJoined     time.Time  `json:"dateJoined"`
	IsActive       bool       `json:"isActive"`
	RoleID         *int64     `json:"roleId,omitempty"`
	DepartmentID   *int64     `json:"departmentId,omitempty"`
	BankAccount    string     `json:"bankAccount,omitempty"`
	BankName       string     `json:"bankName,omitempty"`
	RoleTitle      string     `json:"roleTitle,omitempty"`
	DepartmentName string     `json:"departmentName,omitempty"`
	DepartmentCode string     `json:"departmentCode,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Filter narrows List results. A zero Limit means no paging.
type Filter struct {
	ActiveOnly   bool
	DepartmentID *int64
	RoleID       *int64
	Limit        int
	Offset       int
}

// UpdateFields enumerates the mutable columns. Email and the employee
// identifier are immutable after creation.
type UpdateFields struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	DateOfBirth  *time.Time
	DateJoined   *time.Time
	RoleID       *int64
	DepartmentID *int64
	BankAccount  *string
	BankName     *string
}

func (f UpdateFields) Empty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Phone == nil &&
		f.DateOfBirth == nil && f.DateJoined == nil && f.RoleID == nil &&
		f.DepartmentID == nil && f.BankAccount == nil && f.BankName == nil
}
