package commands

import (
	"errors"
	"fmt"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/samber/lo"
)

var (
	ErrReimburseExpenseCommandIsNotConstructed = errors.New(
		"ReimburseExpenseCommand must be created via NewReimburseExpenseCommand constructor",
	)
	ErrBulkReimburseExpensesCommandIsNotConstructed = errors.New(
		"BulkReimburseExpensesCommand must be created via NewBulkReimburseExpensesCommand constructor",
	)
)

// ReimburseExpenseCommand transfers one pending personal outlay to the
// business, on behalf of actorID.
type ReimburseExpenseCommand struct { //nolint:recvcheck //using for validation
	expenseID kernel.UUID
	actorID   string

	guard guard.ConstructorGuard
}

func NewReimburseExpenseCommand(expenseID kernel.UUID, actorID string) (ReimburseExpenseCommand, error) {
	cmd := ReimburseExpenseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		expenseID.Validate(),
		validateActor(actorID),
	); err != nil {
		return ReimburseExpenseCommand{}, err
	}

	cmd.expenseID = expenseID
	cmd.actorID = strings.TrimSpace(actorID)
	return cmd, nil
}

func (c ReimburseExpenseCommand) Validate() error {
	return c.guard.Validate(ErrReimburseExpenseCommandIsNotConstructed)
}

func (c ReimburseExpenseCommand) ExpenseID() kernel.UUID {
	return c.expenseID
}

func (c ReimburseExpenseCommand) ActorID() string {
	return c.actorID
}

// BulkReimburseExpensesCommand reimburses several expenses at once.
// Repeated identifiers are collapsed; the order of first appearance is kept.
type BulkReimburseExpensesCommand struct { //nolint:recvcheck //using for validation
	expenseIDs []kernel.UUID
	actorID    string

	guard guard.ConstructorGuard
}

func NewBulkReimburseExpensesCommand(expenseIDs []kernel.UUID, actorID string) (BulkReimburseExpensesCommand, error) {
	cmd := BulkReimburseExpensesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setExpenseIDs(expenseIDs),
		validateActor(actorID),
	); err != nil {
		return BulkReimburseExpensesCommand{}, err
	}

	cmd.actorID = strings.TrimSpace(actorID)
	return cmd, nil
}

func (c BulkReimburseExpensesCommand) Validate() error {
	return c.guard.Validate(ErrBulkReimburseExpensesCommandIsNotConstructed)
}

func (c BulkReimburseExpensesCommand) ExpenseIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.expenseIDs...)
}

func (c BulkReimburseExpensesCommand) ActorID() string {
	return c.actorID
}

func (c *BulkReimburseExpensesCommand) setExpenseIDs(expenseIDs []kernel.UUID) error {
	if len(expenseIDs) == 0 {
		return errs.NewValueIsRequiredError("expense ids")
	}

	for i, id := range expenseIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("expense ids[%d]", i), err)
		}
	}

	c.expenseIDs = lo.Uniq(expenseIDs)
	return nil
}

func validateActor(actorID string) error {
	if strings.TrimSpace(actorID) == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	return nil
}
