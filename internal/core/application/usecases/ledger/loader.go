// Package ledger loads the collections financial reports are computed from.
package ledger

import (
	"context"

	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/sourcegraph/conc/pool"
)

// Load reads orders, expenses and salary records concurrently.
//
// The reads do not share a snapshot: a write committed while Load runs may
// be visible to one read and not to another. The first failure cancels the
// remaining reads and is returned.
func Load(ctx context.Context, reader ports.LedgerReader) (services.Ledger, error) {
	var l services.Ledger

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		orders, err := reader.ListRevenue(ctx)
		l.Orders = orders
		return err
	})
	p.Go(func(ctx context.Context) error {
		expenses, err := reader.ListExpenses(ctx)
		l.Expenses = expenses
		return err
	})
	p.Go(func(ctx context.Context) error {
		salaries, err := reader.ListSalaries(ctx)
		l.Salaries = salaries
		return err
	})

	if err := p.Wait(); err != nil {
		return services.Ledger{}, err
	}
	return l, nil
}
