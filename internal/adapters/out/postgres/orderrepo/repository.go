package orderrepo

import (
	"context"
	"errors"

	"laundry/internal/adapters/out/postgres/pgerr"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order together with its initial status history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.History = historyFromDomain(aggregate.ID(), aggregate.UnsavedHistory())

	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.ID(), err)
		}
		return err
	}

	aggregate.MarkHistorySaved()
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves the mutable columns of an existing order and appends the
// status changes recorded since it was loaded.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":      dto.Status,
		"is_paid":     dto.IsPaid,
		"employee_id": dto.EmployeeID,
		"piece_count": dto.PieceCount,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	if unsaved := historyFromDomain(aggregate.ID(), aggregate.UnsavedHistory()); len(unsaved) > 0 {
		if err := r.db.WithContext(ctx).Create(&unsaved).Error; err != nil {
			return err
		}
	}

	aggregate.MarkHistorySaved()
	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an order by ID with its history in chronological order.
func (r *GormOrderRepository) Get(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate is Get holding a lock on the order row (SELECT ... FOR UPDATE)
// until the surrounding transaction ends. History rows are append-only and
// are not locked.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id order.ID) (*order.Order, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(db *gorm.DB, id order.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("changed_at ASC, id ASC")
		}).
		First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetLatestID returns the highest stored identifier, or an empty string when
// there are no orders. Identifiers are compared by length and then value, so
// "ORD-1000" follows "ORD-999".
//
// Creation time is not used: it comes from the application clock before the
// insert, so two concurrent writers can commit in the opposite order and the
// newest row would then not hold the highest number.
func (r *GormOrderRepository) GetLatestID(ctx context.Context) (string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Order("length(id) DESC").
		Order("id DESC").
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return "", err
	}

	if len(ids) == 0 {
		return "", nil
	}
	return ids[0], nil
}
