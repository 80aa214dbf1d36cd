package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrUpdateOrderDetailsCommandIsNotConstructed = errors.New(
		"UpdateOrderDetailsCommand must be created via NewUpdateOrderDetailsCommand constructor",
	)
)

// UpdateOrderDetailsCommand edits the administrative fields of an order.
// A nil field is left unchanged. An empty employee identifier clears the
// assignment.
type UpdateOrderDetailsCommand struct { //nolint:recvcheck //using for validation
	orderID    order.ID
	employeeID *string
	pieceCount *int

	guard guard.ConstructorGuard
}

func NewUpdateOrderDetailsCommand(orderID string, employeeID *string, pieceCount *int) (UpdateOrderDetailsCommand, error) {
	cmd := UpdateOrderDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEmployeeID(employeeID),
		cmd.setPieceCount(pieceCount),
	); err != nil {
		return UpdateOrderDetailsCommand{}, err
	}

	return cmd, nil
}

func (c UpdateOrderDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDetailsCommandIsNotConstructed)
}

func (c UpdateOrderDetailsCommand) OrderID() order.ID {
	return c.orderID
}

func (c UpdateOrderDetailsCommand) EmployeeID() *string {
	return c.employeeID
}

func (c UpdateOrderDetailsCommand) PieceCount() *int {
	return c.pieceCount
}

func (c *UpdateOrderDetailsCommand) setOrderID(orderID string) error {
	id, err := order.ParseID(orderID)
	if err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *UpdateOrderDetailsCommand) setEmployeeID(employeeID *string) error {
	if employeeID == nil {
		return nil
	}

	id := strings.TrimSpace(*employeeID)
	c.employeeID = &id
	return nil
}

func (c *UpdateOrderDetailsCommand) setPieceCount(pieceCount *int) error {
	if pieceCount == nil {
		return nil
	}
	if *pieceCount < 0 {
		return errs.NewValueIsOutOfRangeError("piece count", *pieceCount, 0, "unbounded")
	}

	n := *pieceCount
	c.pieceCount = &n
	return nil
}
