package presence

import (
	"context"
	"time"
)

// Repository - backend presence records for one employee and month
type Repository interface {
	// Monthly retrieves the employee's own submitted records. The result is
	// sparse: only days that were actually persisted are returned.
	Monthly(ctx context.Context, employeeID string, year int, month time.Month) ([]DayRecord, error)

	// AdminMonthly retrieves the admin-corrected records for the same period.
	AdminMonthly(ctx context.Context, employeeID string, year int, month time.Month) ([]DayRecord, error)

	// Submit persists a full month of self-submitted days.
	Submit(ctx context.Context, employeeID string, days []Payload) error

	// SubmitAdmin persists a full month of admin-corrected days.
	SubmitAdmin(ctx context.Context, employeeID string, days []Payload) error

	// Overview retrieves the backend-computed monthly totals.
	Overview(ctx context.Context, employeeID string, year int, month time.Month) (Overview, error)
}

// DefaultHoursRepository - per-user default hours template
type DefaultHoursRepository interface {
	Get(ctx context.Context, userID, submittedByID string) (DefaultHours, error)
	Save(ctx context.Context, hours DefaultHours) error
	Update(ctx context.Context, hours DefaultHours) error
}
