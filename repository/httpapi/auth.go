package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/presenza-app/presence-client-go/domain/auth"
	"github.com/presenza-app/presence-client-go/domain/employee"
)

type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

// Login exchanges credentials for a bearer token. The backend speaks the
// OAuth2 password flow, so the body goes out form encoded with the work
// email under "username".
func (r *AuthRepository) Login(ctx context.Context, creds auth.Credentials) (auth.Token, error) {
	if err := creds.Validate(); err != nil {
		return auth.Token{}, err
	}

	form := url.Values{
		"username": {creds.WorkEmail},
		"password": {creds.Password},
	}
	var token auth.Token
	if err := r.client.postForm(ctx, "/token", form, &token); err != nil {
		if IsStatus(err, http.StatusUnauthorized) {
			return auth.Token{}, employee.ErrInvalidPassword
		}
		return auth.Token{}, err
	}
	return token, nil
}

func (r *AuthRepository) SendOTP(ctx context.Context, req auth.OTPRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return r.client.doJSON(ctx, http.MethodPost, "/send_otp", nil, req, nil)
}

func (r *AuthRepository) VerifyOTP(ctx context.Context, req auth.OTPVerification) error {
	if err := req.Validate(); err != nil {
		return err
	}
	err := r.client.doJSON(ctx, http.MethodPost, "/verify_otp", nil, req, nil)
	if err != nil && (IsStatus(err, http.StatusBadRequest) || IsStatus(err, http.StatusUnauthorized)) {
		return auth.ErrInvalidOTP
	}
	return err
}

func (r *AuthRepository) ChangePassword(ctx context.Context, req auth.PasswordChange) error {
	if err := req.Validate(); err != nil {
		return err
	}
	err := r.client.doJSON(ctx, http.MethodPut, "/users/change-password", nil, req, nil)
	if err != nil && IsStatus(err, http.StatusNotFound) {
		return employee.ErrNotFound
	}
	return err
}

func (r *AuthRepository) Register(ctx context.Context, req employee.RegisterRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var emp employee.Employee
	if err := r.client.doJSON(ctx, http.MethodPost, "/register", nil, req, &emp); err != nil {
		if IsStatus(err, http.StatusConflict) || IsStatus(err, http.StatusBadRequest) {
			return employee.Employee{}, employee.ErrEmailTaken
		}
		return employee.Employee{}, err
	}
	return emp, nil
}
