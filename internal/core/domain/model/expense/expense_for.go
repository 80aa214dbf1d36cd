package expense

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// For names who paid an expense: one of the owners, or the business itself.
type For string

const (
	ForOwner1   = For(kernel.Owner1)
	ForOwner2   = For(kernel.Owner2)
	ForOwner3   = For(kernel.Owner3)
	ForBusiness For = "Business"
)

// ForOwner returns the attribution of a personal outlay by owner.
func ForOwner(owner kernel.Owner) For {
	return For(owner)
}

// Validate checks the attribution is an owner or the business.
func (f For) Validate() error {
	if f == ForBusiness {
		return nil
	}
	if kernel.Owner(f).Validate() != nil {
		return errs.NewValueIsInvalidErrorWithCause("expense for", fmt.Errorf("%q is neither an owner nor Business", string(f)))
	}
	return nil
}

// Owner returns the owner who paid, or false for business expenses.
func (f For) Owner() (kernel.Owner, bool) {
	owner := kernel.Owner(f)
	if owner.Validate() != nil {
		return "", false
	}
	return owner, true
}

func (f For) String() string {
	return string(f)
}

// ReimbursementStatus is the reimbursement state of an owner's outlay.
// None is used for business expenses and is stored as NULL.
type ReimbursementStatus string

const (
	None       ReimbursementStatus = ""
	Pending    ReimbursementStatus = "pending"
	Reimbursed ReimbursementStatus = "reimbursed"
)

// ParseReimbursementStatus maps a stored value to its ReimbursementStatus.
func ParseReimbursementStatus(value string) (ReimbursementStatus, error) {
	switch s := ReimbursementStatus(value); s {
	case None, Pending, Reimbursed:
		return s, nil
	default:
		return None, errs.NewValueIsInvalidErrorWithCause(
			"reimbursement status",
			fmt.Errorf("%q is not a known reimbursement status", value),
		)
	}
}
