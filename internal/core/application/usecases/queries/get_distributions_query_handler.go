package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDistributionsQueryHandler reads distribution records of one period,
// ordered by owner. A period that was never closed yields an empty list.
type GetDistributionsQueryHandler struct {
	db *gorm.DB
}

func NewGetDistributionsQueryHandler(db *gorm.DB) GetDistributionsQueryHandler {
	return GetDistributionsQueryHandler{db: db}
}

func (h GetDistributionsQueryHandler) Handle(
	ctx context.Context,
	query GetDistributionsQuery,
) ([]GetDistributionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]GetDistributionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			owner,
			period_type,
			period_start,
			period_end,
			share_amount_cents,
			net_share_cents,
			is_claimed,
			claimed_at
		FROM income_distributions
		WHERE period_type = ? AND period_start = ?
		ORDER BY owner
	`, string(query.Period().Type), query.Period().Start).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp     GetDistributionsQueryResponse
			share    int64
			netShare int64
		)

		err = rows.Scan(
			&resp.Owner,
			&resp.PeriodType,
			&resp.PeriodStart,
			&resp.PeriodEnd,
			&share,
			&netShare,
			&resp.IsClaimed,
			&resp.ClaimedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ShareAmount = kernel.Money(share)
		resp.NetShare = kernel.Money(netShare)
		resp.PeriodStart = resp.PeriodStart.UTC()
		resp.PeriodEnd = resp.PeriodEnd.UTC()
		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
