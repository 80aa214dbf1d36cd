package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetOwnerPendingTotalsQueryIsNotConstructed = errors.New(
		"GetOwnerPendingTotalsQuery must be created via NewGetOwnerPendingTotalsQuery constructor",
	)
)

// GetOwnerPendingTotalsQuery retrieves, per owner, what the business still
// owes for personal outlays waiting for reimbursement.
type GetOwnerPendingTotalsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetOwnerPendingTotalsQuery() GetOwnerPendingTotalsQuery {
	return GetOwnerPendingTotalsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetOwnerPendingTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetOwnerPendingTotalsQueryIsNotConstructed)
}

// GetOwnerPendingTotalsQueryResponse is one owner's pending total.
type GetOwnerPendingTotalsQueryResponse struct {
	Owner kernel.Owner `json:"owner"`
	Total kernel.Money `json:"total"`
	Count int          `json:"count"`
}
