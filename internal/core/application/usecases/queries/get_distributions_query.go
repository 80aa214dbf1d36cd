package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetDistributionsQueryIsNotConstructed = errors.New(
		"GetDistributionsQuery must be created via NewGetDistributionsQuery constructor",
	)
)

// GetDistributionsQuery lists the owners' distribution records of the monthly
// or yearly period containing an instant.
type GetDistributionsQuery struct {
	period distribution.Period

	guard guard.ConstructorGuard
}

func NewGetDistributionsQuery(periodType string, at time.Time) (GetDistributionsQuery, error) {
	t, err := distribution.ParsePeriodType(periodType)
	if err != nil {
		return GetDistributionsQuery{}, err
	}

	period, err := distribution.PeriodOf(t, at)
	if err != nil {
		return GetDistributionsQuery{}, err
	}

	return GetDistributionsQuery{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetDistributionsQuery) Validate() error {
	return q.guard.Validate(ErrGetDistributionsQueryIsNotConstructed)
}

func (q GetDistributionsQuery) Period() distribution.Period {
	return q.period
}

// GetDistributionsQueryResponse is one owner's record.
type GetDistributionsQueryResponse struct {
	Owner       kernel.Owner            `json:"owner"`
	PeriodType  distribution.PeriodType `json:"periodType"`
	PeriodStart time.Time               `json:"periodStart"`
	PeriodEnd   time.Time               `json:"periodEnd"`
	ShareAmount kernel.Money            `json:"shareAmount"`
	NetShare    kernel.Money            `json:"netShare"`
	IsClaimed   bool                    `json:"isClaimed"`
	ClaimedAt   *time.Time              `json:"claimedAt,omitempty"`
}
