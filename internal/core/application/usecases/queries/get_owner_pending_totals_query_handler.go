package queries

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// GetOwnerPendingTotalsQueryHandler sums pending personal outlays per owner.
// Every owner is present in the result, in owner order, with zero when
// nothing is pending.
type GetOwnerPendingTotalsQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewGetOwnerPendingTotalsQueryHandler(
	db *gorm.DB,
	cache ports.Cache,
	ttl time.Duration,
	logger *slog.Logger,
) GetOwnerPendingTotalsQueryHandler {
	return GetOwnerPendingTotalsQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "owner_pending_totals"),
	}
}

func (h GetOwnerPendingTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetOwnerPendingTotalsQuery,
) ([]GetOwnerPendingTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readThrough(ctx, h.cache, h.logger, ports.CacheKeyReports+"pending", h.ttl, h.load)
}

func (h GetOwnerPendingTotalsQueryHandler) load(ctx context.Context) ([]GetOwnerPendingTotalsQueryResponse, error) {
	totals := lo.SliceToMap(kernel.Owners(), func(o kernel.Owner) (kernel.Owner, GetOwnerPendingTotalsQueryResponse) {
		return o, GetOwnerPendingTotalsQueryResponse{Owner: o}
	})

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			expense_for,
			COALESCE(SUM(amount_cents), 0),
			COUNT(*)
		FROM expenses
		WHERE reimbursement_status = ?
		GROUP BY expense_for
	`, string(expense.Pending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			expenseFor string
			sum        int64
			count      int
		)
		if err = rows.Scan(&expenseFor, &sum, &count); err != nil {
			return nil, err
		}

		owner, ok := expense.For(expenseFor).Owner()
		if !ok {
			h.logger.WarnContext(ctx, "Pending expense is not attributed to an owner", "expense_for", expenseFor)
			continue
		}
		totals[owner] = GetOwnerPendingTotalsQueryResponse{Owner: owner, Total: kernel.Money(sum), Count: count}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lo.Map(kernel.Owners(), func(o kernel.Owner, _ int) GetOwnerPendingTotalsQueryResponse {
		return totals[o]
	}), nil
}
