package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// OrderStatusMachine applies fulfillment updates to orders.
//
// It is deliberately permissive: every status of the vocabulary is reachable
// from every other, so administrators can correct mistakes by moving an order
// back or skipping stages. It validates vocabulary membership only; the order
// keeps the audit trail in its status history.
type OrderStatusMachine struct {
	clock kernel.Clock
}

// NewOrderStatusMachine creates a machine stamping changes with clock.
func NewOrderStatusMachine(clock kernel.Clock) OrderStatusMachine {
	return OrderStatusMachine{clock: clock}
}

// Advance moves o to the status with the given human-readable label.
//
// Returns:
//   - ValueIsInvalidError if the label is not part of the vocabulary; the
//     order is left untouched
//
// Example:
//
//	machine := services.NewOrderStatusMachine(kernel.SystemClock())
//	if err := machine.Advance(o, "Ready for Pick Up"); err != nil {
//	    return err
//	}
func (m OrderStatusMachine) Advance(o *order.Order, label string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	target, err := order.ParseStatus(label)
	if err != nil {
		return err
	}

	return o.Advance(target, m.clock())
}
