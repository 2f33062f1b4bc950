package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidOTP = errors.New("the one-time code is wrong or has expired")
)
