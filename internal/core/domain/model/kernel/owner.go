package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// Owner is one of the three business owners who split net income equally
// and may advance personal money for business expenses.
type Owner string

const (
	Owner1 Owner = "Owner1"
	Owner2 Owner = "Owner2"
	Owner3 Owner = "Owner3"
)

// Owners returns every owner in a stable order.
func Owners() []Owner {
	return []Owner{Owner1, Owner2, Owner3}
}

// OwnerCount is the number of equal shares net income is split into.
const OwnerCount = 3

// Validate checks that the owner is one of the three known owners.
func (o Owner) Validate() error {
	switch o {
	case Owner1, Owner2, Owner3:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("owner", fmt.Errorf("%q is not a known owner", string(o)))
	}
}

func (o Owner) String() string {
	return string(o)
}
