package commands

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrCreateExpenseCommandIsNotConstructed = errors.New(
		"CreateExpenseCommand must be created via NewCreateExpenseCommand constructor",
	)
)

// CreateExpenseCommand records a cost paid by the business or by one of the
// owners.
//
// Example:
//
//	cmd, err := NewCreateExpenseCommand("Detergent", kernel.MoneyFromUnits(500), expense.ForOwner1, time.Now())
//	if err != nil {
//	    return err
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateExpenseCommand struct { //nolint:recvcheck //using for validation
	title      string
	amount     kernel.Money
	expenseFor expense.For
	incurredOn time.Time

	guard guard.ConstructorGuard
}

func NewCreateExpenseCommand(
	title string,
	amount kernel.Money,
	expenseFor expense.For,
	incurredOn time.Time,
) (CreateExpenseCommand, error) {
	cmd := CreateExpenseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setAmount(amount),
		cmd.setExpenseFor(expenseFor),
		cmd.setIncurredOn(incurredOn),
	); err != nil {
		return CreateExpenseCommand{}, err
	}

	return cmd, nil
}

func (c CreateExpenseCommand) Validate() error {
	return c.guard.Validate(ErrCreateExpenseCommandIsNotConstructed)
}

func (c CreateExpenseCommand) Title() string {
	return c.title
}

func (c CreateExpenseCommand) Amount() kernel.Money {
	return c.amount
}

func (c CreateExpenseCommand) ExpenseFor() expense.For {
	return c.expenseFor
}

func (c CreateExpenseCommand) IncurredOn() time.Time {
	return c.incurredOn
}

func (c *CreateExpenseCommand) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}

	c.title = title
	return nil
}

func (c *CreateExpenseCommand) setAmount(amount kernel.Money) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, "0.01", "unbounded")
	}

	c.amount = amount
	return nil
}

func (c *CreateExpenseCommand) setExpenseFor(expenseFor expense.For) error {
	if err := expenseFor.Validate(); err != nil {
		return err
	}

	c.expenseFor = expenseFor
	return nil
}

func (c *CreateExpenseCommand) setIncurredOn(incurredOn time.Time) error {
	if incurredOn.IsZero() {
		return errs.NewValueIsRequiredError("incurred on")
	}

	c.incurredOn = incurredOn
	return nil
}
