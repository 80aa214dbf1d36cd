package services

import (
	"slices"
	"time"

	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"

	"github.com/samber/lo"
)

// trailingMonths is the number of calendar months the monthly report covers,
// the current month included.
const trailingMonths = 12

// RevenueEntry is the part of an order the aggregator needs.
type RevenueEntry struct {
	CreatedAt time.Time
	Total     kernel.Money
	IsPaid    bool
}

// ExpenseEntry is the part of an expense the aggregator needs.
type ExpenseEntry struct {
	IncurredOn time.Time
	Amount     kernel.Money
	ExpenseFor expense.For
	Status     expense.ReimbursementStatus
}

// SalaryEntry is the part of a salary payment the aggregator needs.
type SalaryEntry struct {
	Date   time.Time
	Amount kernel.Money
	IsPaid bool
}

// Ledger is everything the aggregator reads: orders, expenses and salary
// payments. The three collections may come from independent reads.
type Ledger struct {
	Orders   []RevenueEntry
	Expenses []ExpenseEntry
	Salaries []SalaryEntry
}

// FinancialAggregator turns a Ledger into per-period financial summaries.
//
// For every period [start, end):
//   - revenue is the total of paid orders created in the period
//   - business expenses are expenses incurred in the period that were
//     attributed to the business or have been reimbursed
//   - salary total is the sum of paid salary records dated in the period
//   - net income is revenue minus business expenses and salaries, split
//     equally between the three owners
//
// Periods without revenue and without expenses are left out of the series.
//
// Example:
//
//	agg := services.NewFinancialAggregator()
//	series, err := agg.Aggregate(distribution.Monthly, time.Now(), ledger)
//	for _, s := range series {
//	    fmt.Println(s.Period, s.NetIncome, s.PerOwnerShare)
//	}
type FinancialAggregator struct{}

// NewFinancialAggregator creates a new FinancialAggregator instance.
func NewFinancialAggregator() FinancialAggregator {
	return FinancialAggregator{}
}

// Aggregate builds the series of summaries for the requested period type.
//
// Parameters:
//   - periodType: Monthly (trailing 12 calendar months including the current
//     one), Yearly (every calendar year with at least one paid order) or All
//     (every calendar month from the earliest paid order up to now)
//   - now: the reference instant
//   - ledger: the data to aggregate
//
// Returns:
//   - the non-empty summaries ordered by period start
//   - ValueIsInvalidError for an unknown period type
func (a FinancialAggregator) Aggregate(periodType distribution.PeriodType, now time.Time, ledger Ledger) ([]distribution.Summary, error) {
	if _, err := distribution.ParsePeriodType(string(periodType)); err != nil {
		return nil, err
	}

	summaries := make([]distribution.Summary, 0)
	for _, period := range a.Buckets(periodType, now, ledger.Orders) {
		s := a.Summarize(period, ledger)
		if s.IsEmpty() {
			continue
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

// Buckets returns the periods a report of periodType covers, ascending.
func (a FinancialAggregator) Buckets(periodType distribution.PeriodType, now time.Time, orders []RevenueEntry) []distribution.Period {
	switch periodType {
	case distribution.Monthly:
		current := distribution.MonthOf(now)
		first := distribution.MonthOf(current.Start.AddDate(0, 1-trailingMonths, 0))
		return monthsBetween(first, current)

	case distribution.Yearly:
		years := lo.Uniq(lo.FilterMap(orders, func(o RevenueEntry, _ int) (int, bool) {
			return o.CreatedAt.UTC().Year(), o.IsPaid
		}))
		slices.Sort(years)

		return lo.Map(years, func(year int, _ int) distribution.Period {
			return distribution.YearOf(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
		})

	case distribution.All:
		paid := lo.Filter(orders, func(o RevenueEntry, _ int) bool { return o.IsPaid })
		if len(paid) == 0 {
			return nil
		}

		earliest := lo.MinBy(paid, func(x, y RevenueEntry) bool { return x.CreatedAt.Before(y.CreatedAt) })
		return monthsBetween(distribution.MonthOf(earliest.CreatedAt), distribution.MonthOf(now))
	}

	return nil
}

// Summarize computes the summary of a single period.
func (a FinancialAggregator) Summarize(period distribution.Period, ledger Ledger) distribution.Summary {
	revenue := lo.SumBy(ledger.Orders, func(o RevenueEntry) kernel.Money {
		if !o.IsPaid || !period.Contains(o.CreatedAt) {
			return 0
		}
		return o.Total
	})

	businessExpenses := lo.SumBy(ledger.Expenses, func(e ExpenseEntry) kernel.Money {
		if !expense.IsBusinessCost(e.ExpenseFor, e.Status) || !period.Contains(e.IncurredOn) {
			return 0
		}
		return e.Amount
	})

	salaryTotal := lo.SumBy(ledger.Salaries, func(s SalaryEntry) kernel.Money {
		if !s.IsPaid || !period.Contains(s.Date) {
			return 0
		}
		return s.Amount
	})

	return distribution.NewSummary(period, revenue, businessExpenses, salaryTotal)
}

// PendingOutlays returns, per owner, the total of personal expenses incurred
// in period that are still waiting for reimbursement. Every owner is present
// in the result, with zero when nothing is pending.
func (a FinancialAggregator) PendingOutlays(period distribution.Period, expenses []ExpenseEntry) map[kernel.Owner]kernel.Money {
	totals := lo.SliceToMap(kernel.Owners(), func(o kernel.Owner) (kernel.Owner, kernel.Money) {
		return o, 0
	})

	for _, e := range expenses {
		owner, ok := e.ExpenseFor.Owner()
		if !ok || e.Status != expense.Pending || !period.Contains(e.IncurredOn) {
			continue
		}
		totals[owner] = totals[owner].Add(e.Amount)
	}

	return totals
}

func monthsBetween(first, last distribution.Period) []distribution.Period {
	months := make([]distribution.Period, 0)
	for p := first; !p.Start.After(last.Start); p = p.Next() {
		months = append(months, p)
	}
	return months
}
