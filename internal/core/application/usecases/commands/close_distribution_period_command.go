package commands

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCloseDistributionPeriodCommandIsNotConstructed = errors.New(
		"CloseDistributionPeriodCommand must be created via NewCloseDistributionPeriodCommand constructor",
	)
	ErrClaimDistributionCommandIsNotConstructed = errors.New(
		"ClaimDistributionCommand must be created via NewClaimDistributionCommand constructor",
	)
)

// CloseDistributionPeriodCommand fixes the owners' shares of a monthly or
// yearly period. Any instant inside the period selects it.
type CloseDistributionPeriodCommand struct { //nolint:recvcheck //using for validation
	period distribution.Period

	guard guard.ConstructorGuard
}

func NewCloseDistributionPeriodCommand(periodType distribution.PeriodType, at time.Time) (CloseDistributionPeriodCommand, error) {
	period, err := closablePeriod(periodType, at)
	if err != nil {
		return CloseDistributionPeriodCommand{}, err
	}

	return CloseDistributionPeriodCommand{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CloseDistributionPeriodCommand) Validate() error {
	return c.guard.Validate(ErrCloseDistributionPeriodCommandIsNotConstructed)
}

func (c CloseDistributionPeriodCommand) Period() distribution.Period {
	return c.period
}

// ClaimDistributionCommand records that an owner collected their share of a
// closed period.
type ClaimDistributionCommand struct { //nolint:recvcheck //using for validation
	owner  kernel.Owner
	period distribution.Period

	guard guard.ConstructorGuard
}

func NewClaimDistributionCommand(
	owner kernel.Owner,
	periodType distribution.PeriodType,
	at time.Time,
) (ClaimDistributionCommand, error) {
	period, err := closablePeriod(periodType, at)
	if err = errors.Join(owner.Validate(), err); err != nil {
		return ClaimDistributionCommand{}, err
	}

	return ClaimDistributionCommand{
		owner:  owner,
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimDistributionCommand) Validate() error {
	return c.guard.Validate(ErrClaimDistributionCommandIsNotConstructed)
}

func (c ClaimDistributionCommand) Owner() kernel.Owner {
	return c.owner
}

func (c ClaimDistributionCommand) Period() distribution.Period {
	return c.period
}

func closablePeriod(periodType distribution.PeriodType, at time.Time) (distribution.Period, error) {
	if at.IsZero() {
		return distribution.Period{}, errs.NewValueIsRequiredError("period start")
	}
	return distribution.PeriodOf(periodType, at)
}
