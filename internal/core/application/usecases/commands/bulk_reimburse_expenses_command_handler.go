package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

// FailedReimbursement is an expense a bulk reimbursement could not process.
type FailedReimbursement struct {
	ExpenseID kernel.UUID
	Err       error
}

// BulkReimbursementResult reports the outcome per expense.
type BulkReimbursementResult struct {
	Succeeded []kernel.UUID
	Failed    []FailedReimbursement
}

// BulkReimburseExpensesCommandHandler reimburses a batch of expenses.
//
// In atomic mode the batch runs in one transaction: the first failure rolls
// everything back and every expense of the batch is reported failed with
// that cause. In sequential mode each expense gets its own transaction and
// successes are kept regardless of later failures.
//
// Per-expense failures are reported in the result; the returned error is
// reserved for failures of the transaction itself.
type BulkReimburseExpensesCommandHandler struct {
	uowFactory ExpenseUoWFactory
	atomic     bool
	clock      kernel.Clock
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewBulkReimburseExpensesCommandHandler(
	uowFactory ExpenseUoWFactory,
	atomic bool,
	clock kernel.Clock,
	cache CacheInvalidator,
	logger *slog.Logger,
) BulkReimburseExpensesCommandHandler {
	return BulkReimburseExpensesCommandHandler{
		uowFactory: uowFactory,
		atomic:     atomic,
		clock:      clock,
		cache:      cache,
		logger:     logger.With("component", "bulk_reimburse_expenses"),
	}
}

func (h *BulkReimburseExpensesCommandHandler) Handle(
	ctx context.Context,
	cmd BulkReimburseExpensesCommand,
) (BulkReimbursementResult, error) {
	if err := cmd.Validate(); err != nil {
		return BulkReimbursementResult{}, err
	}

	var (
		result BulkReimbursementResult
		err    error
	)
	if h.atomic {
		result, err = h.handleAtomic(ctx, cmd)
	} else {
		result, err = h.handleSequential(ctx, cmd)
	}

	if len(result.Succeeded) > 0 {
		invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)
	}

	h.logger.InfoContext(ctx, "Bulk reimbursement finished",
		"atomic", h.atomic, "succeeded", len(result.Succeeded), "failed", len(result.Failed))

	return result, err
}

func (h *BulkReimburseExpensesCommandHandler) handleAtomic(
	ctx context.Context,
	cmd BulkReimburseExpensesCommand,
) (BulkReimbursementResult, error) {
	ids := cmd.ExpenseIDs()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return BulkReimbursementResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ExpenseRepository()
	at := h.clock()
	for _, id := range ids {
		if err := reimburse(ctx, repo, id, cmd.ActorID(), at); err != nil {
			h.logger.WarnContext(ctx, "Bulk reimbursement rolled back", "expense_id", id.String(), "error", err)
			return allFailed(ids, err), nil
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return BulkReimbursementResult{}, err
	}

	return BulkReimbursementResult{Succeeded: ids}, nil
}

func (h *BulkReimburseExpensesCommandHandler) handleSequential(
	ctx context.Context,
	cmd BulkReimburseExpensesCommand,
) (BulkReimbursementResult, error) {
	var result BulkReimbursementResult

	for _, id := range cmd.ExpenseIDs() {
		if err := h.reimburseOne(ctx, id, cmd.ActorID()); err != nil {
			result.Failed = append(result.Failed, FailedReimbursement{ExpenseID: id, Err: err})
			continue
		}
		result.Succeeded = append(result.Succeeded, id)
	}

	return result, nil
}

func (h *BulkReimburseExpensesCommandHandler) reimburseOne(ctx context.Context, id kernel.UUID, actorID string) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := reimburse(ctx, uow.ExpenseRepository(), id, actorID, h.clock()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func allFailed(ids []kernel.UUID, cause error) BulkReimbursementResult {
	failed := make([]FailedReimbursement, 0, len(ids))
	for _, id := range ids {
		failed = append(failed, FailedReimbursement{ExpenseID: id, Err: cause})
	}
	return BulkReimbursementResult{Failed: failed}
}
