package ports

import (
	"context"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
)

// ExpenseRepository defines the persistence contract for expense aggregates.
type ExpenseRepository interface {
	// Add persists a new expense.
	Add(ctx context.Context, aggregate *expense.Expense) error

	// Update persists changes to an existing expense.
	// Returns ObjectNotFoundError if the expense does not exist.
	Update(ctx context.Context, aggregate *expense.Expense) error

	// Get retrieves an expense by identifier.
	// Returns ObjectNotFoundError if the expense does not exist.
	Get(ctx context.Context, id kernel.UUID) (*expense.Expense, error)

	// GetForUpdate is Get with a row lock held until the transaction ends,
	// so concurrent reimbursements of the same expense serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*expense.Expense, error)

	// Delete removes an expense.
	// Returns ObjectNotFoundError if the expense does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
