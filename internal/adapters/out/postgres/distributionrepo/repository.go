package distributionrepo

import (
	"context"
	"errors"

	"laundry/internal/adapters/out/postgres/pgerr"
	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDistributionRepository implements DistributionRepository using GORM.
type GormDistributionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormDistributionRepository(db *gorm.DB, tracker aggregateTracker) *GormDistributionRepository {
	return &GormDistributionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new record. A record for the same owner and period yields
// ObjectAlreadyExistsError.
func (r *GormDistributionRepository) Add(ctx context.Context, record *distribution.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("distribution", record.Key(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(record.Key(), record)
	return nil
}

// Update saves the claim state of an existing record. Amounts are fixed once
// a period is closed.
func (r *GormDistributionRepository) Update(ctx context.Context, record *distribution.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&RecordDTO{}).
		Where("owner = ? AND period_type = ? AND period_start = ?", dto.Owner, dto.PeriodType, dto.PeriodStart).
		Updates(map[string]any{
			"is_claimed": dto.IsClaimed,
			"claimed_at": dto.ClaimedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("distribution", record.Key())
	}

	r.tracker.TrackAggregate(record.Key(), record)
	return nil
}

// Get retrieves one owner's record for period.
func (r *GormDistributionRepository) Get(ctx context.Context, owner kernel.Owner, period distribution.Period) (*distribution.Record, error) {
	return r.get(r.db.WithContext(ctx), owner, period)
}

// GetForUpdate is Get holding a row lock until the surrounding transaction ends.
func (r *GormDistributionRepository) GetForUpdate(ctx context.Context, owner kernel.Owner, period distribution.Period) (*distribution.Record, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), owner, period)
}

func (r *GormDistributionRepository) get(db *gorm.DB, owner kernel.Owner, period distribution.Period) (*distribution.Record, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	err := db.
		Where("owner = ? AND period_type = ? AND period_start = ?", string(owner), string(period.Type), period.Start).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("distribution", string(owner)+"/"+period.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByPeriod returns every record of period ordered by owner.
func (r *GormDistributionRepository) ListByPeriod(ctx context.Context, period distribution.Period) ([]*distribution.Record, error) {
	var dtos []RecordDTO
	err := r.db.WithContext(ctx).
		Where("period_type = ? AND period_start = ?", string(period.Type), period.Start).
		Order("owner ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*distribution.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
