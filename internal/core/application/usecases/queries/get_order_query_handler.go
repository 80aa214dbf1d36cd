package queries

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its history. Results are cached
// per order under ports.CacheKeyOrders.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	cache  ports.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewGetOrderQueryHandler(db *gorm.DB, cache ports.Cache, ttl time.Duration, logger *slog.Logger) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:     db,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With("component", "get_order"),
	}
}

// Handle returns the order, or ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	key := ports.CacheKeyOrders + query.OrderID().String()
	return readThrough(ctx, h.cache, h.logger, key, h.ttl, func(ctx context.Context) (GetOrderQueryResponse, error) {
		return h.load(ctx, query.OrderID())
	})
}

func (h GetOrderQueryHandler) load(ctx context.Context, id order.ID) (GetOrderQueryResponse, error) {
	var (
		resp         GetOrderQueryResponse
		transportFee int64
		total        int64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			service_package,
			delivery_option,
			distance_km,
			weight_kg,
			load_count,
			transport_fee_cents,
			total_cents,
			status,
			is_paid,
			employee_id,
			piece_count,
			created_at
		FROM orders
		WHERE id = ?
	`, id.String()).Row()

	err := row.Scan(
		&resp.ID,
		&resp.CustomerID,
		&resp.ServicePackage,
		&resp.DeliveryOption,
		&resp.DistanceKm,
		&resp.WeightKg,
		&resp.LoadCount,
		&transportFee,
		&total,
		&resp.Status,
		&resp.IsPaid,
		&resp.EmployeeID,
		&resp.PieceCount,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", id.String())
		}
		return GetOrderQueryResponse{}, err
	}

	status, err := order.ParseStatus(resp.Status)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp.Progress = status.Progress()
	resp.TransportFee = kernel.Money(transportFee)
	resp.Total = kernel.Money(total)
	resp.CreatedAt = resp.CreatedAt.UTC()

	resp.History, err = h.loadHistory(ctx, id)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadHistory(ctx context.Context, id order.ID) ([]StatusChangeView, error) {
	history := make([]StatusChangeView, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, id.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var change StatusChangeView
		if err = rows.Scan(&change.Status, &change.ChangedAt); err != nil {
			return nil, err
		}
		change.ChangedAt = change.ChangedAt.UTC()
		history = append(history, change)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}
