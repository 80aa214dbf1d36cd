package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
	)
)

// AdvanceOrderStatusCommand moves an order to the status with the given
// human-readable label, e.g. "Ready for Pick Up". The label is resolved when
// the command is handled.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	status  string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates a command to advance an order.
func NewAdvanceOrderStatusCommand(orderID string, status string) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() order.ID {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) Status() string {
	return c.status
}

func (c *AdvanceOrderStatusCommand) setOrderID(orderID string) error {
	id, err := order.ParseID(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AdvanceOrderStatusCommand) setStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("status")
	}

	c.status = status
	return nil
}
