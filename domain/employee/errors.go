package employee

import "errors"

// Employee domain errors
var (
	ErrNotFound        = errors.New("employee not found")
	ErrEmailTaken      = errors.New("work email is already registered")
	ErrInvalidPassword = errors.New("incorrect email or password")
)
