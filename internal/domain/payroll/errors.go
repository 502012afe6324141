package payroll

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found or inactive")
	ErrNoRoleAssigned    = errors.New("employee has no role assigned")
	ErrDuplicatePeriod   = errors.New("payroll already generated for this period")
	ErrNotFound          = errors.New("payroll record not found")
	ErrInvalidPeriod     = errors.New("month must be between 1 and 12")
	ErrNegativeDeduction = errors.New("other deductions must be non-negative")
)
