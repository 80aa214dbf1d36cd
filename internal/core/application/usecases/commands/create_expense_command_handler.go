package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

// CreateExpenseCommandHandler stores new expenses. Personal outlays start
// pending and only reach the business ledger once reimbursed.
type CreateExpenseCommandHandler struct {
	uowFactory ExpenseUoWFactory
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewCreateExpenseCommandHandler(
	uowFactory ExpenseUoWFactory,
	cache CacheInvalidator,
	logger *slog.Logger,
) CreateExpenseCommandHandler {
	return CreateExpenseCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "create_expense"),
	}
}

// Handle stores the expense and returns its new identifier.
func (h *CreateExpenseCommandHandler) Handle(ctx context.Context, cmd CreateExpenseCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	e, err := expense.NewExpense(kernel.NewUUID(), cmd.Title(), cmd.Amount(), cmd.ExpenseFor(), cmd.IncurredOn())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ExpenseRepository().Add(ctx, e); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "Expense created",
		"expense_id", e.ID().String(), "expense_for", e.ExpenseFor().String(), "amount", e.Amount().String())
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)

	return e.ID(), nil
}
