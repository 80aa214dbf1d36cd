package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy bounds how often the allocator retries after losing an
// identifier race to a concurrent writer.
type RetryPolicy struct {
	// MaxAttempts is the total number of allocation attempts, the first one
	// included. Values below 1 are treated as 1.
	MaxAttempts int

	// Backoff is the constant pause between attempts.
	Backoff time.Duration
}

// DefaultRetryPolicy allows exactly one retry without pause.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 2}
}

func (p RetryPolicy) attempts() int {
	return max(p.MaxAttempts, 1)
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	return backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(p.Backoff), uint64(p.attempts()-1)),
		ctx,
	)
}

// LatestOrderIDReader reads the most recently assigned order identifier.
type LatestOrderIDReader interface {
	GetLatestID(ctx context.Context) (string, error)
}

// PersistOrderFunc stores a new order under id. It must return an error
// matching errs.ErrObjectAlreadyExists when id is already taken.
type PersistOrderFunc func(ctx context.Context, id order.ID) error

// OrderIDAllocator hands out sequential order identifiers ("ORD-001",
// "ORD-002", ...).
//
// Concurrency control is optimistic only: the store's unique constraint
// rejects a duplicate, and the allocator re-reads the latest identifier and
// tries again as often as its RetryPolicy allows. When every attempt lost
// its race the caller gets a RetryableError and may resubmit.
//
// Example:
//
//	allocator := NewOrderIDAllocator(repo, DefaultRetryPolicy(), logger)
//	id, err := allocator.Allocate(ctx, func(ctx context.Context, id order.ID) error {
//	    return saveOrder(ctx, id)
//	})
//	if errs.IsRetryable(err) {
//	    // ask the client to resubmit
//	}
type OrderIDAllocator struct {
	reader LatestOrderIDReader
	policy RetryPolicy
	logger *slog.Logger
}

// NewOrderIDAllocator creates an allocator reading the latest identifier from reader.
func NewOrderIDAllocator(reader LatestOrderIDReader, policy RetryPolicy, logger *slog.Logger) *OrderIDAllocator {
	return &OrderIDAllocator{
		reader: reader,
		policy: policy,
		logger: logger.With("component", "order_id_allocator"),
	}
}

// Next returns the identifier following the latest stored one without
// persisting anything.
//
// Without stored orders the sequence starts at ORD-001. A stored identifier
// that cannot be parsed is reported as a consistency warning and the
// sequence restarts at ORD-001; if that identifier exists already, the
// unique constraint turns the restart into a conflict instead of a reuse.
func (a *OrderIDAllocator) Next(ctx context.Context) (order.ID, error) {
	latest, err := a.reader.GetLatestID(ctx)
	if err != nil {
		return "", err
	}

	if latest == "" {
		return order.FirstID, nil
	}

	id, err := order.ParseID(latest)
	if err != nil {
		warning := errs.NewConsistencyWarning("latest order id", latest, order.FirstID.String(), err)
		a.logger.WarnContext(ctx, warning.String(), "stored_id", warning.Value, "fallback", warning.Fallback)
		return order.FirstID, nil
	}

	return id.Next(), nil
}

// Allocate reserves the next identifier by persisting a record under it.
//
// Returns:
//   - the identifier persist succeeded with
//   - RetryableError wrapping the last conflict when every attempt collided
//   - any other error from reading or persisting, unchanged and not retried
func (a *OrderIDAllocator) Allocate(ctx context.Context, persist PersistOrderFunc) (order.ID, error) {
	var (
		allocated order.ID
		attempts  int
	)

	operation := func() error {
		attempts++

		id, err := a.Next(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}

		if err = persist(ctx, id); err != nil {
			if errors.Is(err, errs.ErrObjectAlreadyExists) {
				a.logger.InfoContext(ctx, "Order id taken by a concurrent writer", "order_id", id, "attempt", attempts)
				return err
			}
			return backoff.Permanent(err)
		}

		allocated = id
		return nil
	}

	if err := backoff.Retry(operation, a.policy.backOff(ctx)); err != nil {
		if errors.Is(err, errs.ErrObjectAlreadyExists) {
			return "", errs.NewRetryableError("allocate order id", attempts, err)
		}
		return "", err
	}

	return allocated, nil
}
