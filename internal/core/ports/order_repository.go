// Package ports defines the contracts between the laundry core and its
// infrastructure: repositories, the unit of work, the ledger reader used for
// reporting, and the cache service.
package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Status history is stored append-only: Update inserts the entries the order
// reports as unsaved and never rewrites existing ones.
type OrderRepository interface {
	// Add persists a new order aggregate with its initial history.
	// Returns ObjectAlreadyExistsError if the identifier is already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its full status history.
	// Returns ObjectNotFoundError if the order does not exist.
	Get(ctx context.Context, id order.ID) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction
	// ends, so read-modify-write commands on one order serialize.
	GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error)

	// GetLatestID returns the most recently assigned identifier exactly as it
	// is stored: the highest one, comparing length first and then value. The
	// value is not validated; an empty string means no order exists yet.
	//
	// Example:
	//   latest, err := repo.GetLatestID(ctx)
	//   if err != nil {
	//       return err
	//   }
	//   if latest == "" {
	//       // start the sequence
	//   }
	GetLatestID(ctx context.Context) (string, error)
}
