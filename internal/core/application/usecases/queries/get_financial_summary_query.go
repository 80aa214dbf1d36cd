package queries

import (
	"errors"

	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetFinancialSummaryQueryIsNotConstructed = errors.New(
		"GetFinancialSummaryQuery must be created via NewGetFinancialSummaryQuery constructor",
	)
)

// GetFinancialSummaryQuery requests the financial report for a period type:
// "monthly", "yearly" or "all" (case-insensitive).
type GetFinancialSummaryQuery struct {
	periodType distribution.PeriodType

	guard guard.ConstructorGuard
}

func NewGetFinancialSummaryQuery(periodType string) (GetFinancialSummaryQuery, error) {
	t, err := distribution.ParsePeriodType(periodType)
	if err != nil {
		return GetFinancialSummaryQuery{}, err
	}

	return GetFinancialSummaryQuery{
		periodType: t,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetFinancialSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFinancialSummaryQueryIsNotConstructed)
}

func (q GetFinancialSummaryQuery) PeriodType() distribution.PeriodType {
	return q.periodType
}

// GetFinancialSummaryQueryResponse is the report: one summary per non-empty
// period, ascending by start.
type GetFinancialSummaryQueryResponse struct {
	PeriodType distribution.PeriodType `json:"periodType"`
	Summaries  []distribution.Summary  `json:"summaries"`
}
