package distribution

import "laundry/internal/core/domain/model/kernel"

// Summary is the financial result of one period.
type Summary struct {
	Period           Period
	Revenue          kernel.Money
	BusinessExpenses kernel.Money
	SalaryTotal      kernel.Money
	TotalExpenses    kernel.Money
	NetIncome        kernel.Money
	PerOwnerShare    kernel.Money
	ShareRemainder   kernel.Money
}

// NewSummary derives totals, net income and the equal owner split from the
// three raw sums of a period.
func NewSummary(period Period, revenue, businessExpenses, salaryTotal kernel.Money) Summary {
	totalExpenses := businessExpenses.Add(salaryTotal)
	netIncome := revenue.Sub(totalExpenses)
	share, remainder := netIncome.Split(kernel.OwnerCount)

	return Summary{
		Period:           period,
		Revenue:          revenue,
		BusinessExpenses: businessExpenses,
		SalaryTotal:      salaryTotal,
		TotalExpenses:    totalExpenses,
		NetIncome:        netIncome,
		PerOwnerShare:    share,
		ShareRemainder:   remainder,
	}
}

// IsEmpty reports whether the period had neither revenue nor expenses.
func (s Summary) IsEmpty() bool {
	return s.Revenue.IsZero() && s.TotalExpenses.IsZero()
}
