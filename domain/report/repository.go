package report

import (
	"context"
	"time"
)

// Repository - export generation, computed and rendered by the backend
type Repository interface {
	// EmployeeMonth exports the employee's own submissions as a spreadsheet.
	EmployeeMonth(ctx context.Context, employeeID string, year int, month time.Month) (Export, error)

	// AdminMonth exports the admin-corrected month for one employee.
	AdminMonth(ctx context.Context, employeeID string, year int, month time.Month, format Format) (Export, error)

	// AllEmployees exports the admin-corrected month for every employee as a
	// zip archive.
	AllEmployees(ctx context.Context, year int, month time.Month, format Format) (Export, error)
}
