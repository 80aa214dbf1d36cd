// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Every handler depends on the narrowest combination it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ExpenseRepoFactory provides access to expense repository within a transaction.
	ExpenseRepoFactory interface {
		ExpenseRepository() ports.ExpenseRepository
	}

	// SalaryRepoFactory provides access to salary repository within a transaction.
	SalaryRepoFactory interface {
		SalaryRepository() ports.SalaryRepository
	}

	// DistributionRepoFactory provides access to distribution repository within a transaction.
	DistributionRepoFactory interface {
		DistributionRepository() ports.DistributionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ExpenseUoW manages transactions for expense-only operations.
	ExpenseUoW interface {
		TxManager
		ExpenseRepoFactory
	}

	// ExpenseUoWFactory creates new expense unit of work instances.
	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}

	// SalaryUoW manages transactions for salary-only operations.
	SalaryUoW interface {
		TxManager
		SalaryRepoFactory
	}

	// SalaryUoWFactory creates new salary unit of work instances.
	SalaryUoWFactory interface {
		Create() SalaryUoW
	}

	// DistributionUoW manages transactions for distribution-only operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.DistributionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DistributionUoW interface {
		TxManager
		DistributionRepoFactory
	}

	// DistributionUoWFactory creates new distribution unit of work instances.
	DistributionUoWFactory interface {
		Create() DistributionUoW
	}
)

// CacheInvalidator drops cached read models after a successful write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, prefix string) error
}
