package ports

import (
	"context"

	"laundry/internal/core/domain/services"
)

// LedgerReader reads the collections financial reports are built from.
//
// The three reads are independent and may run concurrently; no snapshot
// spans them, so a report may observe writes committed between the reads.
type LedgerReader interface {
	// ListRevenue returns creation time, total and payment flag of every order.
	ListRevenue(ctx context.Context) ([]services.RevenueEntry, error)

	// ListExpenses returns every expense with its current reimbursement state.
	ListExpenses(ctx context.Context) ([]services.ExpenseEntry, error)

	// ListSalaries returns every daily salary record.
	ListSalaries(ctx context.Context) ([]services.SalaryEntry, error)
}
