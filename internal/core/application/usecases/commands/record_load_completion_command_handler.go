package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/salary"
	"laundry/internal/core/ports"
)

// RecordLoadCompletionCommandHandler adds completed loads to the employee's
// salary record of the day, creating the record on the first load. The
// increment is applied by the database, so concurrent completions for the
// same employee and day all count.
//
// Example:
//
//	handler := NewRecordLoadCompletionCommandHandler(uowFactory, kernel.MoneyFromUnits(50), cache, logger)
//	cmd, _ := NewRecordLoadCompletionCommand("emp-1", time.Now(), 2)
//	err := handler.Handle(ctx, cmd) // +100.00 on today's record
type RecordLoadCompletionCommandHandler struct {
	uowFactory  SalaryUoWFactory
	ratePerLoad kernel.Money
	cache       CacheInvalidator
	logger      *slog.Logger
}

func NewRecordLoadCompletionCommandHandler(
	uowFactory SalaryUoWFactory,
	ratePerLoad kernel.Money,
	cache CacheInvalidator,
	logger *slog.Logger,
) RecordLoadCompletionCommandHandler {
	return RecordLoadCompletionCommandHandler{
		uowFactory:  uowFactory,
		ratePerLoad: ratePerLoad,
		cache:       cache,
		logger:      logger.With("component", "record_load_completion"),
	}
}

func (h *RecordLoadCompletionCommandHandler) Handle(ctx context.Context, cmd RecordLoadCompletionCommand) error {
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

	increment, err := salary.NewPayment(cmd.EmployeeID(), cmd.Day())
	if err != nil {
		return err
	}

	if err = increment.RecordLoads(cmd.Loads(), h.ratePerLoad); err != nil {
		return err
	}

	payment, err := uow.SalaryRepository().Accumulate(ctx, increment)
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Loads recorded",
		"key", payment.Key(), "loads", cmd.Loads(), "amount", payment.Amount().String())
	invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)

	return nil
}

// SetSalaryPaidCommandHandler flags a daily salary record as paid out. Only
// paid records count as expenses in reports.
type SetSalaryPaidCommandHandler struct {
	uowFactory SalaryUoWFactory
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewSetSalaryPaidCommandHandler(
	uowFactory SalaryUoWFactory,
	cache CacheInvalidator,
	logger *slog.Logger,
) SetSalaryPaidCommandHandler {
	return SetSalaryPaidCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "set_salary_paid"),
	}
}

// Handle updates the flag.
// Returns ObjectNotFoundError when the employee has no record for the day.
func (h *SetSalaryPaidCommandHandler) Handle(ctx context.Context, cmd SetSalaryPaidCommand) error {
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

	repo := uow.SalaryRepository()
	payment, err := repo.GetForUpdate(ctx, cmd.EmployeeID(), cmd.Day())
	if err != nil {
		return err
	}

	payment.SetPaid(cmd.Paid())
	if err = repo.Save(ctx, payment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)
	return nil
}
