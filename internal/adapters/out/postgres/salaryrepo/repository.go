package salaryrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/salary"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSalaryRepository implements SalaryRepository using GORM.
type GormSalaryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

func NewGormSalaryRepository(db *gorm.DB, tracker aggregateTracker) *GormSalaryRepository {
	return &GormSalaryRepository{
		db:      db,
		tracker: tracker,
	}
}

var keyColumns = []clause.Column{{Name: "employee_id"}, {Name: "date"}}

// Get retrieves the record of employeeID for the calendar day of day.
func (r *GormSalaryRepository) Get(ctx context.Context, employeeID string, day time.Time) (*salary.Payment, error) {
	return r.get(r.db.WithContext(ctx), employeeID, day)
}

// GetForUpdate is Get holding a row lock (SELECT ... FOR UPDATE) until the
// surrounding transaction ends.
func (r *GormSalaryRepository) GetForUpdate(ctx context.Context, employeeID string, day time.Time) (*salary.Payment, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), employeeID, day)
}

// Save inserts the record or overwrites the row with the same employee and day.
// Callers that read the row first must hold its lock through GetForUpdate.
func (r *GormSalaryRepository) Save(ctx context.Context, aggregate *salary.Payment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   keyColumns,
			DoUpdates: clause.AssignmentColumns([]string{"amount_cents", "loads_completed", "is_paid"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.Key(), aggregate)
	return nil
}

// Accumulate adds the amount and loads of increment to the stored row of the
// same employee and day in a single statement, inserting an unpaid row when
// there is none. The paid flag of an existing row is left alone. It returns
// the row as stored after the increment.
func (r *GormSalaryRepository) Accumulate(ctx context.Context, increment *salary.Payment) (*salary.Payment, error) {
	if err := increment.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(increment)
	dto.IsPaid = false
	err := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: keyColumns,
				DoUpdates: clause.Assignments(map[string]any{
					"amount_cents":    gorm.Expr("daily_salary_payments.amount_cents + EXCLUDED.amount_cents"),
					"loads_completed": gorm.Expr("daily_salary_payments.loads_completed + EXCLUDED.loads_completed"),
				}),
			},
			clause.Returning{},
		).
		Create(&dto).Error
	if err != nil {
		return nil, err
	}

	payment, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(payment.Key(), payment)
	return payment, nil
}

func (r *GormSalaryRepository) get(db *gorm.DB, employeeID string, day time.Time) (*salary.Payment, error) {
	if strings.TrimSpace(employeeID) == "" {
		return nil, errs.NewValueIsRequiredError("employee id")
	}

	date := kernel.Day(day)
	key := employeeID + "/" + date.Format(time.DateOnly)

	var dto PaymentDTO
	err := db.
		Where("employee_id = ? AND date = ?", employeeID, date).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("salary payment", key)
		}
		return nil, err
	}

	return toDomain(dto)
}
