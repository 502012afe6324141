package employee

import "errors"

var (
	ErrNotFound           = errors.New("employee not found")
	ErrEmailTaken         = errors.New("email already exists")
	ErrIDGenerationFailed = errors.New("employee ID generation failed, retry")
	ErrNoFields           = errors.New("no update fields provided")
)
