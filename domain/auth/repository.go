package auth

import (
	"context"

	"github.com/presenza-app/presence-client-go/domain/employee"
)

// Repository - token issuance, registration and password reset, owned by
// the backend
type Repository interface {
	Login(ctx context.Context, creds Credentials) (Token, error)
	Register(ctx context.Context, req employee.RegisterRequest) (employee.Employee, error)

	// SendOTP mails a one-time code to the given work email.
	SendOTP(ctx context.Context, req OTPRequest) error

	// VerifyOTP checks a code previously sent with SendOTP.
	VerifyOTP(ctx context.Context, req OTPVerification) error

	// ChangePassword sets a new password after OTP verification.
	ChangePassword(ctx context.Context, req PasswordChange) error
}
