package auth

import (
	"github.com/presenza-app/presence-client-go/pkg/validator"
)

// Credentials is the login form the token endpoint accepts.
type Credentials struct {
	WorkEmail string
	Password  string
}

func (c *Credentials) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(c.WorkEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_email",
			Message: "work_email must be a valid email address",
		})
	}
	if validator.IsEmpty(c.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OTPRequest asks the backend to mail a one-time code for password reset.
type OTPRequest struct {
	WorkEmail string `json:"email"`
}

func (r *OTPRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.WorkEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OTPVerification carries the six-digit code back for checking.
type OTPVerification struct {
	WorkEmail string `json:"email"`
	Code      string `json:"otp"`
}

func (v *OTPVerification) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(v.WorkEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(v.Code) != 6 || !validator.IsNumeric(v.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "otp",
			Message: "otp must be a six-digit code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PasswordChange sets a new password after a verified OTP.
type PasswordChange struct {
	WorkEmail   string `json:"work_email"`
	NewPassword string `json:"new_password"`
}

func (p *PasswordChange) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(p.WorkEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_email",
			Message: "work_email must be a valid email address",
		})
	}
	if validator.IsEmpty(p.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Token is the login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	UserID      int    `json:"user_id"`
}
