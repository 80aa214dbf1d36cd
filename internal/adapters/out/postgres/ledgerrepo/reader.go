// Package ledgerrepo reads the order, expense and salary columns financial
// reports need, without restoring full aggregates.
package ledgerrepo

import (
	"context"
	"database/sql"
	"time"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"

	"gorm.io/gorm"
)

// GormLedgerReader implements LedgerReader with raw SQL over the tables
// written by the order, expense and salary repositories.
//
// Example:
//
//	reader := ledgerrepo.NewGormLedgerReader(db)
//	l, err := ledger.Load(ctx, reader)
type GormLedgerReader struct {
	db *gorm.DB
}

func NewGormLedgerReader(db *gorm.DB) *GormLedgerReader {
	return &GormLedgerReader{db: db}
}

// ListRevenue returns every order's creation time, total and payment flag.
func (r *GormLedgerReader) ListRevenue(ctx context.Context) ([]services.RevenueEntry, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			created_at,
			total_cents,
			is_paid
		FROM orders
		ORDER BY created_at
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]services.RevenueEntry, 0)
	for rows.Next() {
		var (
			createdAt time.Time
			total     int64
			isPaid    bool
		)
		if err = rows.Scan(&createdAt, &total, &isPaid); err != nil {
			return nil, err
		}
		entries = append(entries, services.RevenueEntry{
			CreatedAt: createdAt.UTC(),
			Total:     kernel.Money(total),
			IsPaid:    isPaid,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListExpenses returns every expense. A NULL reimbursement status maps to None.
func (r *GormLedgerReader) ListExpenses(ctx context.Context) ([]services.ExpenseEntry, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			incurred_on,
			amount_cents,
			expense_for,
			reimbursement_status
		FROM expenses
		ORDER BY incurred_on
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]services.ExpenseEntry, 0)
	for rows.Next() {
		var (
			incurredOn time.Time
			amount     int64
			expenseFor string
			status     sql.NullString
		)
		if err = rows.Scan(&incurredOn, &amount, &expenseFor, &status); err != nil {
			return nil, err
		}

		parsed, parseErr := expense.ParseReimbursementStatus(status.String)
		if parseErr != nil {
			return nil, parseErr
		}

		entries = append(entries, services.ExpenseEntry{
			IncurredOn: incurredOn.UTC(),
			Amount:     kernel.Money(amount),
			ExpenseFor: expense.For(expenseFor),
			Status:     parsed,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListSalaries returns every daily salary record.
func (r *GormLedgerReader) ListSalaries(ctx context.Context) ([]services.SalaryEntry, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			date,
			amount_cents,
			is_paid
		FROM daily_salary_payments
		ORDER BY date
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]services.SalaryEntry, 0)
	for rows.Next() {
		var (
			date   time.Time
			amount int64
			isPaid bool
		)
		if err = rows.Scan(&date, &amount, &isPaid); err != nil {
			return nil, err
		}
		entries = append(entries, services.SalaryEntry{
			Date:   date.UTC(),
			Amount: kernel.Money(amount),
			IsPaid: isPaid,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
