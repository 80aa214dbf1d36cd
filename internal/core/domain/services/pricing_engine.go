package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// FreeDeliveryRadiusKm is the distance up to which transport is free.
	FreeDeliveryRadiusKm = decimal.RequireFromString("0.5")

	// FreeDistanceKm is the distance every transport leg includes for free.
	FreeDistanceKm = decimal.NewFromInt(1)

	// PricePerKm is the charge per billable kilometre and transport leg.
	PricePerKm = decimal.NewFromInt(20)
)

// Quote is the result of pricing an order.
//
// When AwaitingDistance is set, the package needs a distance that has not been
// provided yet and every other field is zero. This is an input state, not an
// error.
type Quote struct {
	AwaitingDistance   bool
	FreeDelivery       bool
	EffectiveWeightKg  decimal.Decimal
	LoadCount          int
	BaseCost           kernel.Money
	BillableDistanceKm decimal.Decimal
	TransportFee       kernel.Money
	Total              kernel.Money
}

// Pricing returns the part of the quote stored on an order.
func (q Quote) Pricing() order.Pricing {
	return order.Pricing{
		EffectiveWeightKg: q.EffectiveWeightKg,
		LoadCount:         q.LoadCount,
		TransportFee:      q.TransportFee,
		Total:             q.Total,
	}
}

// PricingEngine computes load count, transport fee and total of an order.
//
// Pricing rules:
//   - a load covers up to 7.5 kg and costs 180
//   - package2 and package3 include transport and need a distance
//   - within 0.5 km transport is free and the order is billed as one full load
//   - otherwise the first kilometre is free and every further kilometre costs
//     20 per leg (package2 has one leg, package3 two)
//   - without a weight, any package is billed as one full load
//
// The engine is pure: identical inputs always produce identical quotes.
//
// Example:
//
//	engine := services.NewPricingEngine()
//	weight := decimal.NewFromInt(15)
//	q, err := engine.Quote(order.Package1, &weight, decimal.Zero)
//	// q.LoadCount == 2, q.Total == 360.00
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Quote prices an order.
//
// Parameters:
//   - servicePackage: package1, package2 or package3
//   - weightKg: declared weight, nil when unknown
//   - distanceKm: distance between customer and shop
//
// Returns:
//   - Quote: the computed price, or a Quote with AwaitingDistance set
//   - error: ValueIsInvalidError for an unknown package, ValueIsOutOfRangeError
//     for a weight outside [0, order.MaxWeightKg] or a distance outside
//     [0, order.MaxDistanceKm]; inputs are validated before any computation
func (e PricingEngine) Quote(servicePackage order.ServicePackage, weightKg *decimal.Decimal, distanceKm decimal.Decimal) (Quote, error) {
	if err := e.validate(servicePackage, weightKg, distanceKm); err != nil {
		return Quote{}, err
	}

	needsDistance := servicePackage.NeedsDistance()
	if needsDistance && !distanceKm.IsPositive() {
		return Quote{AwaitingDistance: true}, nil
	}

	freeDelivery := needsDistance && distanceKm.LessThanOrEqual(FreeDeliveryRadiusKm)

	effectiveWeight := order.LoadCapacityKg
	if !freeDelivery && weightKg != nil && weightKg.IsPositive() {
		effectiveWeight = *weightKg
	}

	loadCount := order.LoadsFor(effectiveWeight)
	baseCost := order.PricePerLoad.Times(int64(loadCount))

	billable := decimal.Zero
	transportFee := kernel.Money(0)
	if needsDistance && !freeDelivery {
		billable = decimal.Max(decimal.Zero, distanceKm.Sub(FreeDistanceKm))

		fee, err := kernel.MoneyFromDecimal(
			billable.Mul(PricePerKm).Mul(decimal.NewFromInt(servicePackage.TransportLegs())),
		)
		if err != nil {
			return Quote{}, err
		}
		transportFee = fee
	}

	return Quote{
		FreeDelivery:       freeDelivery,
		EffectiveWeightKg:  effectiveWeight,
		LoadCount:          loadCount,
		BaseCost:           baseCost,
		BillableDistanceKm: billable,
		TransportFee:       transportFee,
		Total:              baseCost.Add(transportFee),
	}, nil
}

func (e PricingEngine) validate(servicePackage order.ServicePackage, weightKg *decimal.Decimal, distanceKm decimal.Decimal) error {
	if err := servicePackage.Validate(); err != nil {
		return err
	}

	if distanceKm.IsNegative() || distanceKm.GreaterThan(order.MaxDistanceKm) {
		return errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, order.MaxDistanceKm)
	}

	if weightKg != nil && (weightKg.IsNegative() || weightKg.GreaterThan(order.MaxWeightKg)) {
		return errs.NewValueIsOutOfRangeError("weight", *weightKg, 0, order.MaxWeightKg)
	}

	return nil
}
