package employee

import (
	"context"
	"time"
)

// Repository - backend user records (admin employee management)
type Repository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
	Update(ctx context.Context, id int, req UpdateRequest) error
	Delete(ctx context.Context, id int) error

	// Submitted lists employees who have submitted presence for the period.
	Submitted(ctx context.Context, year int, month time.Month) ([]Employee, error)

	// Missing lists employees who have not submitted presence for the period.
	Missing(ctx context.Context, year int, month time.Month) ([]Employee, error)
}
