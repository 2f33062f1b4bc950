package notification

import (
	"context"
	"time"
)

// Repository - reminder email dispatch, delivered by the backend
type Repository interface {
	SendToEmployee(ctx context.Context, userID int, email Email) error

	// SendToMissing emails every employee who has not submitted presence for
	// the given period.
	SendToMissing(ctx context.Context, year int, month time.Month, email Email) error

	SendToAll(ctx context.Context, email Email) error
}
