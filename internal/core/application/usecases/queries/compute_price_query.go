package queries

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrComputePriceQueryIsNotConstructed = errors.New(
		"ComputePriceQuery must be created via NewComputePriceQuery constructor",
	)
)

// ComputePriceQuery asks for a price quote without creating an order.
type ComputePriceQuery struct {
	servicePackage order.ServicePackage
	weightKg       *decimal.Decimal
	distanceKm     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewComputePriceQuery creates the query. Inputs are validated by the pricing
// engine when the query is handled.
func NewComputePriceQuery(servicePackage order.ServicePackage, weightKg *decimal.Decimal, distanceKm decimal.Decimal) ComputePriceQuery {
	q := ComputePriceQuery{
		servicePackage: servicePackage,
		distanceKm:     distanceKm,
		guard:          guard.NewConstructorGuard(),
	}
	if weightKg != nil {
		w := *weightKg
		q.weightKg = &w
	}
	return q
}

func (q ComputePriceQuery) Validate() error {
	return q.guard.Validate(ErrComputePriceQueryIsNotConstructed)
}
