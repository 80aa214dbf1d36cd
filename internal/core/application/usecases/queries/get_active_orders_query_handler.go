package queries

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// GetActiveOrdersQueryHandler lists orders still in fulfillment. The list is
// cached under ports.CacheKeyActiveOrders; order commands invalidate it.
type GetActiveOrdersQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewGetActiveOrdersQueryHandler creates a handler for active order queries.
// A nil cache disables caching.
func NewGetActiveOrdersQueryHandler(db *gorm.DB, cache ports.Cache, ttl time.Duration, logger *slog.Logger) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "get_active_orders"),
	}
}

// Handle returns active orders, oldest first.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return readThrough(ctx, h.cache, h.logger, ports.CacheKeyActiveOrders, h.ttl, h.load)
}

func (h GetActiveOrdersQueryHandler) load(ctx context.Context) ([]GetActiveOrdersQueryResponse, error) {
	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			service_package,
			status,
			total_cents,
			is_paid,
			employee_id,
			created_at
		FROM orders
		WHERE status <> ?
		ORDER BY created_at, length(id), id
	`, order.Success.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp  GetActiveOrdersQueryResponse
			total int64
		)

		err = rows.Scan(
			&resp.ID,
			&resp.CustomerID,
			&resp.ServicePackage,
			&resp.Status,
			&total,
			&resp.IsPaid,
			&resp.EmployeeID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		status, statusErr := order.ParseStatus(resp.Status)
		if statusErr != nil {
			return nil, statusErr
		}

		resp.Progress = status.Progress()
		resp.Total = kernel.Money(total)
		resp.CreatedAt = resp.CreatedAt.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
