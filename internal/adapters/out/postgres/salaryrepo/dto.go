// Package salaryrepo persists daily salary records, one row per employee and day.
package salaryrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/salary"
)

// PaymentDTO is the row of one employee's salary for one calendar day.
type PaymentDTO struct {
	EmployeeID     string    `gorm:"type:varchar(128);primaryKey"`
	Date           time.Time `gorm:"type:date;primaryKey"`
	AmountCents    int64     `gorm:"not null;default:0"`
	LoadsCompleted int       `gorm:"not null;default:0"`
	IsPaid         bool      `gorm:"not null;default:false"`
}

func (PaymentDTO) TableName() string {
	return "daily_salary_payments"
}

func fromDomain(p *salary.Payment) PaymentDTO {
	return PaymentDTO{
		EmployeeID:     p.EmployeeID(),
		Date:           p.Date(),
		AmountCents:    p.Amount().Cents(),
		LoadsCompleted: p.LoadsCompleted(),
		IsPaid:         p.IsPaid(),
	}
}

func toDomain(dto PaymentDTO) (*salary.Payment, error) {
	return salary.RestorePayment(dto.EmployeeID, dto.Date, kernel.Money(dto.AmountCents), dto.LoadsCompleted, dto.IsPaid)
}
