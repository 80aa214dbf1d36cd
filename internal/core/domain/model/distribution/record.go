package distribution

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record instance was not created through
	// the NewRecord or RestoreRecord factory methods.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
)

// Record is one owner's distribution for a closed period.
//
// ShareAmount is the owner's equal share of the period's net income.
// NetShare adds back the owner's personal outlays from the period that are
// still waiting for reimbursement, i.e. what the business owes the owner in
// total for that period.
type Record struct {
	owner       kernel.Owner
	period      Period
	shareAmount kernel.Money
	netShare    kernel.Money
	isClaimed   bool
	claimedAt   *time.Time

	isConstructed bool
}

// NewRecord creates an unclaimed distribution record.
//
// Parameters:
//   - owner: the owner the record belongs to
//   - period: a monthly or yearly period
//   - shareAmount: the owner's share of net income
//   - pendingOutlays: the owner's unreimbursed expenses incurred in the period
func NewRecord(owner kernel.Owner, period Period, shareAmount, pendingOutlays kernel.Money) (*Record, error) {
	r := &Record{
		shareAmount:   shareAmount,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOwner(owner),
		r.setPeriod(period),
		r.setPendingOutlays(pendingOutlays),
	); err != nil {
		return nil, err
	}

	r.netShare = shareAmount.Add(pendingOutlays)
	return r, nil
}

// RestoreRecord rebuilds a Record from persisted state.
func RestoreRecord(
	owner kernel.Owner,
	period Period,
	shareAmount, netShare kernel.Money,
	isClaimed bool,
	claimedAt *time.Time,
) (*Record, error) {
	r := &Record{
		shareAmount:   shareAmount,
		netShare:      netShare,
		isClaimed:     isClaimed,
		claimedAt:     claimedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOwner(owner),
		r.setPeriod(period),
	); err != nil {
		return nil, err
	}

	if isClaimed != (claimedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"claimed at",
			errors.New("claimed records must record when they were claimed"),
		)
	}

	return r, nil
}

// Validate ensures the Record instance was properly constructed.
func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) Owner() kernel.Owner {
	return r.owner
}

func (r *Record) Period() Period {
	return r.period
}

func (r *Record) ShareAmount() kernel.Money {
	return r.shareAmount
}

func (r *Record) NetShare() kernel.Money {
	return r.netShare
}

func (r *Record) IsClaimed() bool {
	return r.isClaimed
}

func (r *Record) ClaimedAt() *time.Time {
	return r.claimedAt
}

// Key returns the natural key "owner/type/start".
func (r *Record) Key() string {
	return fmt.Sprintf("%s/%s/%s", r.owner, r.period.Type, r.period.Start.Format(time.DateOnly))
}

// Claim marks the distribution as paid out to the owner. A record can be
// claimed once.
func (r *Record) Claim(at time.Time) error {
	if r.isClaimed {
		return errs.NewValueIsInvalidErrorWithCause(
			"distribution",
			fmt.Errorf("%s for %s was already claimed", r.owner, r.period),
		)
	}

	r.isClaimed = true
	r.claimedAt = &at
	return nil
}

func (r *Record) setOwner(owner kernel.Owner) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	r.owner = owner
	return nil
}

func (r *Record) setPeriod(period Period) error {
	if err := period.Type.ValidateClosable(); err != nil {
		return err
	}

	want, _ := PeriodOf(period.Type, period.Start)
	if !want.Start.Equal(period.Start) || !want.End.Equal(period.End) {
		return errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("%s - %s is not a calendar %s period", period.Start, period.End, period.Type),
		)
	}

	r.period = want
	return nil
}

func (r *Record) setPendingOutlays(pending kernel.Money) error {
	if pending.IsNegative() {
		return errs.NewValueIsOutOfRangeError("pending outlays", pending, 0, "unbounded")
	}
	return nil
}
