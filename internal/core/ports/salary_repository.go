package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/salary"
)

// SalaryRepository defines the persistence contract for daily salary records,
// keyed by employee and calendar day.
type SalaryRepository interface {
	// Get retrieves the record of employeeID for day.
	// Returns ObjectNotFoundError if there is none.
	Get(ctx context.Context, employeeID string, day time.Time) (*salary.Payment, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, employeeID string, day time.Time) (*salary.Payment, error)

	// Save inserts the record or overwrites the existing one with the same key.
	Save(ctx context.Context, aggregate *salary.Payment) error

	// Accumulate atomically adds the amount and loads of increment to the
	// record with the same key, creating it unpaid when missing, and returns
	// the stored result. Concurrent calls never lose an increment.
	Accumulate(ctx context.Context, increment *salary.Payment) (*salary.Payment, error)
}
