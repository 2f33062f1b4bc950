package holiday

import (
	"context"
)

// Repository - national holiday list, owned by the backend
type Repository interface {
	// ByYear retrieves every holiday for the given calendar year.
	ByYear(ctx context.Context, year int) ([]Holiday, error)

	// Add registers a new national holiday by date key.
	Add(ctx context.Context, dateKey string) error

	// Remove deletes the holiday with the given date key.
	Remove(ctx context.Context, dateKey string) error
}
