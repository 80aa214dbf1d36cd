package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
)

// UpdateOrderDetailsCommandHandler assigns employees and records piece counts.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewUpdateOrderDetailsCommandHandler(
	uowFactory OrderUoWFactory,
	cache CacheInvalidator,
	logger *slog.Logger,
) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "update_order_details"),
	}
}

func (h *UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) error {
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

	if err = applyDetails(o, cmd); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidate(ctx, h.cache, h.logger, ports.CacheKeyOrders)
	return nil
}

func applyDetails(o *order.Order, cmd UpdateOrderDetailsCommand) error {
	if employeeID := cmd.EmployeeID(); employeeID != nil {
		if *employeeID == "" {
			o.UnassignEmployee()
		} else if err := o.AssignEmployee(*employeeID); err != nil {
			return err
		}
	}

	if pieceCount := cmd.PieceCount(); pieceCount != nil {
		return o.SetPieceCount(*pieceCount)
	}

	return nil
}
