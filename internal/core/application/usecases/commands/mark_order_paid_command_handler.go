package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/ports"
)

// MarkOrderPaidCommandHandler records payments. Revenue reports change with
// the flag, so cached reports are dropped together with order lists.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewMarkOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	cache CacheInvalidator,
	logger *slog.Logger,
) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "mark_order_paid"),
	}
}

func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
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

	o.MarkPaid(cmd.Paid())
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Order payment updated", "order_id", o.ID(), "paid", o.IsPaid())
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyOrders, ports.CacheKeyReports)

	return nil
}
