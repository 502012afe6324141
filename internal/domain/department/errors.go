package department

import "errors"

var (
	ErrNotFound     = errors.New("department not found")
	ErrNameTaken    = errors.New("department name already exists")
	ErrCodeTaken    = errors.New("department code already exists")
	ErrHasEmployees = errors.New("department still has employees assigned")
	ErrNoFields     = errors.New("no update fields provided")
)
