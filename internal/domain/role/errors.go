package role

import "errors"

var (
	ErrNotFound     = errors.New("role not found")
	ErrTitleTaken   = errors.New("role title already exists")
	ErrHasEmployees = errors.New("role still has employees assigned")
	ErrNoFields     = errors.New("no update fields provided")
)
