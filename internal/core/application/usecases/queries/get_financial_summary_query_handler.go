package queries

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/ledger"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"
)

// GetFinancialSummaryQueryHandler builds financial reports.
//
// Orders, expenses and salaries are read concurrently and without a common
// snapshot, then bucketed by the FinancialAggregator. Reports are cached per
// period type and calendar month of the request; every write command that
// affects money invalidates ports.CacheKeyReports.
//
// Example:
//
//	handler := NewGetFinancialSummaryQueryHandler(reader, kernel.SystemClock(), cache, 5*time.Minute, logger)
//	query, _ := NewGetFinancialSummaryQuery("monthly")
//	report, err := handler.Handle(ctx, query)
//	for _, s := range report.Summaries {
//	    fmt.Println(s.Period, s.NetIncome, s.PerOwnerShare)
//	}
type GetFinancialSummaryQueryHandler struct {
	reader     ports.LedgerReader
	aggregator services.FinancialAggregator
	clock      kernel.Clock
	cache      ports.Cache
	ttl        time.Duration
	logger     *slog.Logger
}

func NewGetFinancialSummaryQueryHandler(
	reader ports.LedgerReader,
	clock kernel.Clock,
	cache ports.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) GetFinancialSummaryQueryHandler {
	return GetFinancialSummaryQueryHandler{
		reader:     reader,
		aggregator: services.NewFinancialAggregator(),
		clock:      clock,
		cache:      cache,
		ttl:        ttl,
		logger:     logger.With("component", "financial_summary"),
	}
}

func (h GetFinancialSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFinancialSummaryQuery,
) (GetFinancialSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFinancialSummaryQueryResponse{}, err
	}

	now := h.clock().UTC()
	key := ports.CacheKeyReports + string(query.PeriodType()) + ":" + now.Format("2006-01")

	return readThrough(ctx, h.cache, h.logger, key, h.ttl, func(ctx context.Context) (GetFinancialSummaryQueryResponse, error) {
		l, err := ledger.Load(ctx, h.reader)
		if err != nil {
			return GetFinancialSummaryQueryResponse{}, err
		}

		summaries, err := h.aggregator.Aggregate(query.PeriodType(), now, l)
		if err != nil {
			return GetFinancialSummaryQueryResponse{}, err
		}

		h.logger.DebugContext(ctx, "Financial summary computed",
			"period_type", query.PeriodType(), "periods", len(summaries))

		return GetFinancialSummaryQueryResponse{
			PeriodType: query.PeriodType(),
			Summaries:  summaries,
		}, nil
	})
}
