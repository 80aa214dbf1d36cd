// Package expenserepo provides data transfer objects and mapping functions for expense persistence.
package expenserepo

import (
	"time"

	"laundry/internal/core/domain/model/expense"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExpenseDTO represents the database structure for persisting expense aggregates.
// Business expenses store a NULL reimbursement status.
type ExpenseDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title               string     `gorm:"type:varchar(255);not null"`
	AmountCents         int64      `gorm:"not null"`
	ExpenseFor          string     `gorm:"type:varchar(16);not null;index"`
	ReimbursementStatus *string    `gorm:"type:varchar(16);index"`
	IncurredOn          time.Time  `gorm:"type:date;not null;index"`
	ReimbursedAt        *time.Time `gorm:"type:timestamptz"`
	ReimbursedBy        *string    `gorm:"type:varchar(128)"`
}

// TableName specifies the database table name for expense entities.
func (ExpenseDTO) TableName() string {
	return "expenses"
}

func fromDomain(e *expense.Expense) ExpenseDTO {
	var status *string
	if s := e.ReimbursementStatus(); s != expense.None {
		value := string(s)
		status = &value
	}

	return ExpenseDTO{
		ID:                  e.ID().Bytes(),
		Title:               e.Title(),
		AmountCents:         e.Amount().Cents(),
		ExpenseFor:          e.ExpenseFor().String(),
		ReimbursementStatus: status,
		IncurredOn:          e.IncurredOn(),
		ReimbursedAt:        e.ReimbursedAt(),
		ReimbursedBy:        e.ReimbursedBy(),
	}
}

func toDomain(dto ExpenseDTO) (*expense.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status := expense.None
	if dto.ReimbursementStatus != nil {
		status, err = expense.ParseReimbursementStatus(*dto.ReimbursementStatus)
		if err != nil {
			return nil, err
		}
	}

	var reimbursedAt *time.Time
	if dto.ReimbursedAt != nil {
		at := dto.ReimbursedAt.UTC()
		reimbursedAt = &at
	}

	return expense.RestoreExpense(
		id,
		dto.Title,
		kernel.Money(dto.AmountCents),
		expense.For(dto.ExpenseFor),
		status,
		dto.IncurredOn,
		reimbursedAt,
		dto.ReimbursedBy,
	)
}
