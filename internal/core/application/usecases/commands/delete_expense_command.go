package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrDeleteExpenseCommandIsNotConstructed = errors.New(
		"DeleteExpenseCommand must be created via NewDeleteExpenseCommand constructor",
	)
)

// DeleteExpenseCommand removes an expense. Deleting a reimbursed expense
// changes past reports and needs confirmed set.
type DeleteExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseID kernel.UUID
	confirmed bool

	guard guard.ConstructorGuard
}

func NewDeleteExpenseCommand(expenseID kernel.UUID, confirmed bool) (DeleteExpenseCommand, error) {
	if err := expenseID.Validate(); err != nil {
		return DeleteExpenseCommand{}, err
	}

	return DeleteExpenseCommand{
		expenseID: expenseID,
		confirmed: confirmed,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteExpenseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteExpenseCommandIsNotConstructed)
}

func (c DeleteExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

func (c DeleteExpenseCommand) Confirmed() bool {
	return c.confirmed
}
