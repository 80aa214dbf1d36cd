package commands

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
)

// MarkOrderPaidCommand sets or clears the payment flag of an order. Only paid
// orders count as revenue.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	paid    bool

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(orderID string, paid bool) (MarkOrderPaidCommand, error) {
	id, err := order.ParseID(orderID)
	if err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{
		orderID: id,
		paid:    paid,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() order.ID {
	return c.orderID
}

func (c MarkOrderPaidCommand) Paid() bool {
	return c.paid
}
