package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to place a new laundry order.
// The identifier is not part of the request: it is allocated when the order
// is persisted.
//
// Example:
//
//	weight := decimal.NewFromInt(9)
//	cmd, err := NewCreateOrderCommand("cust-42", order.Package2, order.Delivery, &weight, decimal.NewFromInt(3))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
//	if errs.IsRetryable(err) {
//	    // the client may resubmit
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID     string
	servicePackage order.ServicePackage
	deliveryOption order.DeliveryOption
	weightKg       *decimal.Decimal
	distanceKm     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// An empty deliveryOption falls back to the default of the package; a nil
// weight means the weight is unknown at intake.
func NewCreateOrderCommand(
	customerID string,
	servicePackage order.ServicePackage,
	deliveryOption order.DeliveryOption,
	weightKg *decimal.Decimal,
	distanceKm decimal.Decimal,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setServicePackage(servicePackage, deliveryOption),
		cmd.setWeight(weightKg),
		cmd.setDistance(distanceKm),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

func (c CreateOrderCommand) ServicePackage() order.ServicePackage {
	return c.servicePackage
}

func (c CreateOrderCommand) DeliveryOption() order.DeliveryOption {
	return c.deliveryOption
}

// WeightKg returns the declared weight, nil when unknown.
func (c CreateOrderCommand) WeightKg() *decimal.Decimal {
	return c.weightKg
}

func (c CreateOrderCommand) DistanceKm() decimal.Decimal {
	return c.distanceKm
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return errs.NewValueIsRequiredError("customer id")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setServicePackage(p order.ServicePackage, d order.DeliveryOption) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if d == "" {
		d = p.DefaultDeliveryOption()
	}
	if err := d.Validate(p); err != nil {
		return err
	}

	c.servicePackage = p
	c.deliveryOption = d
	return nil
}

func (c *CreateOrderCommand) setWeight(weightKg *decimal.Decimal) error {
	if weightKg == nil {
		return nil
	}
	if weightKg.IsNegative() {
		return errs.NewValueIsOutOfRangeError("weight", *weightKg, 0, "unbounded")
	}

	w := *weightKg
	c.weightKg = &w
	return nil
}

func (c *CreateOrderCommand) setDistance(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, "unbounded")
	}

	c.distanceKm = distanceKm
	return nil
}
