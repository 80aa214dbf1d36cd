package queries

import (
	"context"

	"laundry/internal/core/domain/services"
)

// ComputePriceQueryHandler quotes prices with the PricingEngine. It performs
// no I/O; identical queries always yield identical quotes.
type ComputePriceQueryHandler struct {
	engine services.PricingEngine
}

func NewComputePriceQueryHandler() ComputePriceQueryHandler {
	return ComputePriceQueryHandler{engine: services.NewPricingEngine()}
}

// Handle returns the quote, which has AwaitingDistance set when a transport
// package was quoted without a distance.
func (h ComputePriceQueryHandler) Handle(_ context.Context, query ComputePriceQuery) (services.Quote, error) {
	if err := query.Validate(); err != nil {
		return services.Quote{}, err
	}

	return h.engine.Quote(query.servicePackage, query.weightKg, query.distanceKm)
}
