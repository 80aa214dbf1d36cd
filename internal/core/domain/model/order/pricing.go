package order

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// LoadCapacityKg is the weight one load covers.
	LoadCapacityKg = decimal.RequireFromString("7.5")

	// PricePerLoad is the base cost of a single load.
	PricePerLoad = kernel.MoneyFromUnits(180)

	// MaxWeightKg is the heaviest order accepted.
	MaxWeightKg = decimal.NewFromInt(10_000)

	// MaxDistanceKm is the farthest delivery distance accepted.
	MaxDistanceKm = decimal.NewFromInt(10_000)
)

// Pricing is the priced part of an order: the resolved effective weight, the
// number of loads it fills, and the resulting charges.
type Pricing struct {
	EffectiveWeightKg decimal.Decimal
	LoadCount         int
	TransportFee      kernel.Money
	Total             kernel.Money
}

// BaseCost returns LoadCount × PricePerLoad.
func (p Pricing) BaseCost() kernel.Money {
	return PricePerLoad.Times(int64(p.LoadCount))
}

// Validate checks the pricing invariants of an order:
//   - LoadCount = max(1, ceil(EffectiveWeightKg / 7.5))
//   - Total = LoadCount × 180 + TransportFee
//   - weight lies within [0, MaxWeightKg] and transport fee is never negative
func (p Pricing) Validate() error {
	if p.EffectiveWeightKg.IsNegative() || p.EffectiveWeightKg.GreaterThan(MaxWeightKg) {
		return errs.NewValueIsOutOfRangeError("effective weight", p.EffectiveWeightKg, 0, MaxWeightKg)
	}

	if p.TransportFee.IsNegative() {
		return errs.NewValueIsOutOfRangeError("transport fee", p.TransportFee, 0, "unbounded")
	}

	if want := LoadsFor(p.EffectiveWeightKg); p.LoadCount != want {
		return errs.NewValueIsInvalidErrorWithCause(
			"load count",
			fmt.Errorf("%d loads do not match %s kg, want %d", p.LoadCount, p.EffectiveWeightKg, want),
		)
	}

	if want := p.BaseCost().Add(p.TransportFee); p.Total != want {
		return errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("%s does not match base cost plus transport fee %s", p.Total, want),
		)
	}

	return nil
}

// LoadsFor returns max(1, ceil(weight / LoadCapacityKg)). Weights above
// MaxWeightKg must be rejected before calling it.
func LoadsFor(weightKg decimal.Decimal) int {
	loads := weightKg.Div(LoadCapacityKg).Ceil().IntPart()
	if loads < 1 {
		return 1
	}
	return int(loads)
}
