package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"laundry/internal/core/application/usecases/ledger"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

// CloseDistributionPeriodCommandHandler writes one distribution record per
// owner for a period that has ended.
//
// Closing is idempotent: owners that already have a record for the period
// keep it unchanged, so claimed records are never recomputed.
//
// Per owner:
//
//	shareAmount = netIncome / 3 (truncated to whole cents)
//	netShare    = shareAmount + the owner's still pending outlays of the period
//
// Example:
//
//	cmd, _ := NewCloseDistributionPeriodCommand(distribution.Monthly, lastMonth)
//	records, err := handler.Handle(ctx, cmd)
type CloseDistributionPeriodCommandHandler struct {
	uowFactory DistributionUoWFactory
	reader     ports.LedgerReader
	aggregator services.FinancialAggregator
	clock      kernel.Clock
	cache      CacheInvalidator
	logger     *slog.Logger
}

func NewCloseDistributionPeriodCommandHandler(
	uowFactory DistributionUoWFactory,
	reader ports.LedgerReader,
	clock kernel.Clock,
	cache CacheInvalidator,
	logger *slog.Logger,
) CloseDistributionPeriodCommandHandler {
	return CloseDistributionPeriodCommandHandler{
		uowFactory: uowFactory,
		reader:     reader,
		aggregator: services.NewFinancialAggregator(),
		clock:      clock,
		cache:      cache,
		logger:     logger.With("component", "close_distribution_period"),
	}
}

// Handle closes the period and returns every owner's record, ordered by owner.
//
// Returns:
//   - ValueIsInvalidError when the period has not ended yet
func (h *CloseDistributionPeriodCommandHandler) Handle(
	ctx context.Context,
	cmd CloseDistributionPeriodCommand,
) ([]*distribution.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	period := cmd.Period()
	if now := h.clock(); period.End.After(now) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"period",
			fmt.Errorf("%s %s has not ended yet", period.Type, period),
		)
	}

	l, err := ledger.Load(ctx, h.reader)
	if err != nil {
		return nil, err
	}

	summary := h.aggregator.Summarize(period, l)
	pending := h.aggregator.PendingOutlays(period, l.Expenses)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DistributionRepository()
	records := make([]*distribution.Record, 0, kernel.OwnerCount)
	created := 0
	for _, owner := range kernel.Owners() {
		record, err := repo.Get(ctx, owner, period)
		switch {
		case err == nil:
		case errors.Is(err, errs.ErrObjectNotFound):
			if record, err = distribution.NewRecord(owner, period, summary.PerOwnerShare, pending[owner]); err != nil {
				return nil, err
			}
			if err = repo.Add(ctx, record); err != nil {
				return nil, err
			}
			created++
		default:
			return nil, err
		}
		records = append(records, record)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if created > 0 {
		h.logger.InfoContext(ctx, "Distribution period closed",
			"period", period.String(),
			"type", string(period.Type),
			"net_income", summary.NetIncome.String(),
			"per_owner_share", summary.PerOwnerShare.String(),
			"remainder", summary.ShareRemainder.String(),
			"created", created)
		invalidate(ctx, h.cache, h.logger, ports.CacheKeyReports)
	}

	return records, nil
}

// ClaimDistributionCommandHandler marks an owner's record as claimed.
type ClaimDistributionCommandHandler struct {
	uowFactory DistributionUoWFactory
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewClaimDistributionCommandHandler(
	uowFactory DistributionUoWFactory,
	clock kernel.Clock,
	logger *slog.Logger,
) ClaimDistributionCommandHandler {
	return ClaimDistributionCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger.With("component", "claim_distribution"),
	}
}

// Handle claims the record.
//
// Returns:
//   - ObjectNotFoundError when the period was not closed
//   - ValueIsInvalidError when the record was claimed before
func (h *ClaimDistributionCommandHandler) Handle(ctx context.Context, cmd ClaimDistributionCommand) (*distribution.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DistributionRepository()
	record, err := repo.GetForUpdate(ctx, cmd.Owner(), cmd.Period())
	if err != nil {
		return nil, err
	}

	if err = record.Claim(h.clock()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, record); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "Distribution claimed", "key", record.Key(), "net_share", record.NetShare().String())
	return record, nil
}
