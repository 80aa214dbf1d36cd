package commands

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

// ReimburseExpenseCommandHandler moves a pending personal outlay into the
// business ledger.
//
// The expense row is locked for the duration of the transaction, so two
// concurrent reimbursements of the same expense serialize and the second
// one fails on the status check.
//
// Example:
//
//	cmd, _ := NewReimburseExpenseCommand(expenseID, "admin-1")
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrValueIsInvalid) {
//	    // not pending anymore
//	}
type ReimburseExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
	clock      kernel.Clock
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewReimburseExpenseCommandHandler(
	uowFactory ExpenseUoWFactory,
	clock kernel.Clock,
	cache CacheInvalidator,
	logger *slog.Logger,
) ReimburseExpenseCommandHandler {
	return ReimburseExpenseCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		cache:      cache,
		logger:     logger.With("component", "reimburse_expense"),
	}
}

// Handle reimburses the expense.
//
// Returns:
//   - ObjectNotFoundError for an unknown expense
//   - ValueIsInvalidError when the expense is not pending
func (h *ReimburseExpenseCommandHandler) Handle(ctx context.Context, cmd ReimburseExpenseCommand) error {
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

	if err := reimburse(ctx, uow.ExpenseRepository(), cmd.ExpenseID(), cmd.ActorID(), h.clock()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Expense reimbursed", "expense_id", cmd.ExpenseID().String(), "actor_id", cmd.ActorID())
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)

	return nil
}

func reimburse(ctx context.Context, repo ports.ExpenseRepository, id kernel.UUID, actorID string, at time.Time) error {
	e, err := repo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if err = e.Reimburse(actorID, at); err != nil {
		return err
	}

	return repo.Update(ctx, e)
}
