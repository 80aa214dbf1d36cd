package ports

import (
	"context"

	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
)

// DistributionRepository defines the persistence contract for distribution
// records, keyed by owner, period type and period start.
type DistributionRepository interface {
	// Add persists a new record.
	// Returns ObjectAlreadyExistsError if the key is already taken.
	Add(ctx context.Context, record *distribution.Record) error

	// Update persists changes to an existing record.
	Update(ctx context.Context, record *distribution.Record) error

	// Get retrieves one owner's record for period.
	// Returns ObjectNotFoundError if there is none.
	Get(ctx context.Context, owner kernel.Owner, period distribution.Period) (*distribution.Record, error)

	// GetForUpdate is Get with a row lock held until the transaction ends,
	// so two claims of one record serialize.
	GetForUpdate(ctx context.Context, owner kernel.Owner, period distribution.Period) (*distribution.Record, error)

	// ListByPeriod returns every owner's record for period, ordered by owner.
	ListByPeriod(ctx context.Context, period distribution.Period) ([]*distribution.Record, error)
}
