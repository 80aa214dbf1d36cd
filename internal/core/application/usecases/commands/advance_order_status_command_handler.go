package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// AdvanceOrderStatusCommandHandler applies a fulfillment update to an order.
//
// Moves are permissive: any status of the vocabulary is accepted, earlier
// ones included. Only the new history entry is written; recorded history is
// never rewritten.
//
// Example:
//
//	cmd, _ := NewAdvanceOrderStatusCommand("ORD-007", "Washing")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("status update failed: %w", err)
//	}
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	machine    services.OrderStatusMachine
	cache      CacheInvalidator
	logger     *slog.Logger
}

// NewAdvanceOrderStatusCommandHandler creates a handler stamping status
// changes with clock.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	cache CacheInvalidator,
	logger *slog.Logger,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		machine:    services.NewOrderStatusMachine(clock),
		cache:      cache,
		logger:     logger.With("component", "advance_order_status"),
	}
}

// Handle loads the order, advances it and stores the new history entry.
// An unknown label is rejected before anything is written.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if err = h.machine.Advance(o, cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order status changed",
		"order_id", o.ID(), "from", previous.String(), "to", o.Status().String())
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyOrders)

	return nil
}
