package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/ports"
)

type DeleteExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewDeleteExpenseCommandHandler(
	uowFactory ExpenseUoWFactory,
	cache CacheInvalidator,
	logger *slog.Logger,
) DeleteExpenseCommandHandler {
	return DeleteExpenseCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "delete_expense"),
	}
}

// Handle deletes the expense.
//
// Returns:
//   - ObjectNotFoundError for an unknown expense
//   - ConfirmationRequiredError for a reimbursed expense without confirmation
func (h *DeleteExpenseCommandHandler) Handle(ctx context.Context, cmd DeleteExpenseCommand) error {
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

	repo := uow.ExpenseRepository()
	e, err := repo.GetForUpdate(ctx, cmd.ExpenseID())
	if err != nil {
		return err
	}

	if err = e.CheckDeletion(cmd.Confirmed()); err != nil {
		return err
	}

	if err = repo.Delete(ctx, e.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Expense deleted",
		"expense_id", e.ID().String(), "status", string(e.ReimbursementStatus()))
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)

	return nil
}
