package employee

import (
	"github.com/presenza-app/presence-client-go/pkg/validator"
)

type RegisterRequest struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	JobStartDate  string `json:"job_start_date"`
	FullTime      bool   `json:"full_time"`
	PhoneNumber   string `json:"phone_number"`
	PersonalEmail string `json:"personal_email"`
	WorkEmail     string `json:"work_email"`
	Password      string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Surname) {
		errs = append(errs, validator.ValidationError{
			Field:   "surname",
			Message: "surname is required",
		})
	}
	if _, ok := validator.IsValidDate(r.JobStartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "job_start_date",
			Message: "job_start_date must be a YYYY-MM-DD date",
		})
	}
	if !validator.IsValidEmail(r.WorkEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_email",
			Message: "work_email must be a valid email address",
		})
	}
	if r.PersonalEmail != "" && !validator.IsValidEmail(r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "personal_email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.Password) {
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

type UpdateRequest struct {
	Name          *string `json:"name,omitempty"`
	Surname       *string `json:"surname,omitempty"`
	JobStartDate  *string `json:"job_start_date,omitempty"`
	FullTime      *bool   `json:"full_time,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	PersonalEmail *string `json:"personal_email,omitempty"`
	WorkEmail     *string `json:"work_email,omitempty"`
	Role          *Role   `json:"role,omitempty"`
}

func (r *UpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkEmail != nil && !validator.IsValidEmail(*r.WorkEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_email",
			Message: "work_email must be a valid email address",
		})
	}
	if r.PersonalEmail != nil && !validator.IsValidEmail(*r.PersonalEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "personal_email",
			Message: "personal_email must be a valid email address",
		})
	}
	if r.JobStartDate != nil {
		if _, ok := validator.IsValidDate(*r.JobStartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "job_start_date",
				Message: "job_start_date must be a YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
