package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// CreateOrderCommandHandler prices a new order, allocates its identifier and
// persists it.
//
// Every allocation attempt runs in its own transaction: a unique violation
// aborts the transaction it happened in, so the retry needs a fresh one.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, DefaultRetryPolicy(), kernel.SystemClock(), cache, logger)
//	id, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// id == "ORD-043"
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.PricingEngine
	allocator  *OrderIDAllocator
	clock      kernel.Clock
	cache      CacheInvalidator
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	policy RetryPolicy,
	clock kernel.Clock,
	cache CacheInvalidator,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	logger = logger.With("component", "create_order")

	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     services.NewPricingEngine(),
		allocator:  NewOrderIDAllocator(latestOrderID{uowFactory: uowFactory}, policy, logger),
		clock:      clock,
		cache:      cache,
		logger:     logger,
	}
}

// Handle prices and stores the order.
//
// Returns:
//   - the allocated order identifier
//   - ValueIsRequiredError when the package needs a distance and none was given
//   - RetryableError when every allocation attempt lost to a concurrent writer
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	quote, err := h.engine.Quote(cmd.ServicePackage(), cmd.WeightKg(), cmd.DistanceKm())
	if err != nil {
		return "", err
	}
	if quote.AwaitingDistance {
		return "", errs.NewValueIsRequiredError("distance")
	}

	id, err := h.allocator.Allocate(ctx, func(ctx context.Context, id order.ID) error {
		o, err := order.NewOrder(
			id,
			cmd.CustomerID(),
			cmd.ServicePackage(),
			cmd.DeliveryOption(),
			cmd.DistanceKm(),
			quote.Pricing(),
			h.clock(),
		)
		if err != nil {
			return err
		}

		return h.persist(ctx, o)
	})
	if err != nil {
		return "", err
	}

	h.logger.InfoContext(ctx, "Order created", "order_id", id, "total", quote.Total.String())
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyOrders, ports.CacheKeyReports)

	return id, nil
}

func (h *CreateOrderCommandHandler) persist(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// latestOrderID reads the latest identifier outside of any transaction, so
// every attempt sees what concurrent writers have committed.
type latestOrderID struct {
	uowFactory OrderUoWFactory
}

func (r latestOrderID) GetLatestID(ctx context.Context) (string, error) {
	return r.uowFactory.Create().OrderRepository().GetLatestID(ctx)
}
