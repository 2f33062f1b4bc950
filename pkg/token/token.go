// Package token inspects the backend-issued access token on the client side.
// The client never verifies signatures (that is the backend's job); it only
// reads claims to know who is logged in and when the session lapses.
package token

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Session is the ambient authentication state every API call is made under.
type Session struct {
	Raw       string
	UserID    string
	Role      string
	Subject   string
	ExpiresAt time.Time
}

// Parse decodes an access token without verifying it and extracts the
// session claims.
func Parse(raw string) (Session, error) {
	tok, err := jwt.ParseString(raw, jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return Session{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	s := Session{
		Raw:       raw,
		Subject:   tok.Subject(),
		ExpiresAt: tok.Expiration(),
	}
	if v, ok := tok.Get("user_id"); ok {
		s.UserID = claimString(v)
	}
	if v, ok := tok.Get("role"); ok {
		s.Role = claimString(v)
	}
	return s, nil
}

// Expired reports whether the session has lapsed at the given instant. A
// token without an exp claim never expires client-side.
func (s Session) Expired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.ExpiresAt)
}

func claimString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
