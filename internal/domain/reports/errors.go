package reports

import "errors"

var (
	ErrInvalidPeriod    = errors.New("month must be between 1 and 12 and year must be positive")
	ErrEmployeeNotFound = errors.New("employee not found")
)
