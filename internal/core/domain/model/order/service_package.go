package order

import (
	"fmt"

	"laundry/internal/pkg/errs"
)

// ServicePackage is the service tier an order is placed under.
type ServicePackage string

const (
	// Package1 is self-service: the customer drops off and collects.
	Package1 ServicePackage = "package1"

	// Package2 includes one-way transport (pickup or delivery).
	Package2 ServicePackage = "package2"

	// Package3 includes pickup and delivery.
	Package3 ServicePackage = "package3"
)

// Validate checks that the package is one of the known tiers.
func (p ServicePackage) Validate() error {
	switch p {
	case Package1, Package2, Package3:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"service package",
			fmt.Errorf("%q is not a known service package", string(p)),
		)
	}
}

// NeedsDistance reports whether the tier includes transport and therefore
// needs a distance to be priced.
func (p ServicePackage) NeedsDistance() bool {
	return p == Package2 || p == Package3
}

// TransportLegs returns how many one-way trips the tier includes.
func (p ServicePackage) TransportLegs() int64 {
	switch p {
	case Package2:
		return 1
	case Package3:
		return 2
	default:
		return 0
	}
}

// DefaultDeliveryOption returns the delivery option implied by the tier.
func (p ServicePackage) DefaultDeliveryOption() DeliveryOption {
	switch p {
	case Package2:
		return Delivery
	case Package3:
		return PickupAndDelivery
	default:
		return WalkIn
	}
}

// DeliveryOption describes how laundry moves between customer and shop.
type DeliveryOption string

const (
	WalkIn            DeliveryOption = "walk_in"
	Pickup            DeliveryOption = "pickup"
	Delivery          DeliveryOption = "delivery"
	PickupAndDelivery DeliveryOption = "pickup_and_delivery"
)

// Validate checks the option against the service package it is used with:
// package1 is walk-in only, package2 is a single leg, package3 both legs.
func (d DeliveryOption) Validate(p ServicePackage) error {
	var ok bool
	switch d {
	case WalkIn:
		ok = p == Package1
	case Pickup, Delivery:
		ok = p == Package2
	case PickupAndDelivery:
		ok = p == Package3
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery option",
			fmt.Errorf("%q is not a known delivery option", string(d)),
		)
	}

	if !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"delivery option",
			fmt.Errorf("%q is not available for %s", string(d), string(p)),
		)
	}
	return nil
}
