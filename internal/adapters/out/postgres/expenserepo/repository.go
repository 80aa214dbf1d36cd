package expenserepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormExpenseRepository implements ExpenseRepository using GORM.
type GormExpenseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormExpenseRepository creates a new GORM expense repository.
func NewGormExpenseRepository(db *gorm.DB, tracker aggregateTracker) *GormExpenseRepository {
	return &GormExpenseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new expense to the database.
func (r *GormExpenseRepository) Add(ctx context.Context, aggregate *expense.Expense) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Update saves an existing expense to the database.
func (r *GormExpenseRepository) Update(ctx context.Context, aggregate *expense.Expense) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ExpenseDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"title":                dto.Title,
		"amount_cents":         dto.AmountCents,
		"reimbursement_status": dto.ReimbursementStatus,
		"reimbursed_at":        dto.ReimbursedAt,
		"reimbursed_by":        dto.ReimbursedBy,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("expense", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// Get retrieves an expense by ID.
func (r *GormExpenseRepository) Get(ctx context.Context, id kernel.UUID) (*expense.Expense, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an expense by ID and locks its row (SELECT ... FOR UPDATE)
// until the surrounding transaction ends.
func (r *GormExpenseRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*expense.Expense, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Delete removes an expense by ID.
func (r *GormExpenseRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ExpenseDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("expense", id.String())
	}

	return nil
}

func (r *GormExpenseRepository) get(db *gorm.DB, id kernel.UUID) (*expense.Expense, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ExpenseDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("expense", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
