package notification

import (
	"github.com/presenza-app/presence-client-go/pkg/validator"
)

// Email is a reminder message; delivery happens on the backend.
type Email struct {
	Subject string `json:"textSubject"`
	Body    string `json:"textBody"`
}

func (e *Email) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(e.Subject) {
		errs = append(errs, validator.ValidationError{
			Field:   "textSubject",
			Message: "textSubject is required",
		})
	}
	if validator.IsEmpty(e.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "textBody",
			Message: "textBody is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
