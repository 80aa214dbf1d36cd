// Package distributionrepo persists owners' income distribution records.
package distributionrepo

import (
	"time"

	"laundry/internal/core/domain/model/distribution"
	"laundry/internal/core/domain/model/kernel"
)

// RecordDTO is the row of one owner's distribution for one closed period.
// The natural key (owner, period_type, period_start) is the primary key.
type RecordDTO struct {
	Owner            string     `gorm:"type:varchar(16);primaryKey"`
	PeriodType       string     `gorm:"type:varchar(16);primaryKey"`
	PeriodStart      time.Time  `gorm:"type:date;primaryKey"`
	PeriodEnd        time.Time  `gorm:"type:date;not null"`
	ShareAmountCents int64      `gorm:"not null"`
	NetShareCents    int64      `gorm:"not null"`
	IsClaimed        bool       `gorm:"not null;default:false"`
	ClaimedAt        *time.Time `gorm:"type:timestamptz"`
}

func (RecordDTO) TableName() string {
	return "income_distributions"
}

func fromDomain(r *distribution.Record) RecordDTO {
	return RecordDTO{
		Owner:            string(r.Owner()),
		PeriodType:       string(r.Period().Type),
		PeriodStart:      r.Period().Start,
		PeriodEnd:        r.Period().End,
		ShareAmountCents: r.ShareAmount().Cents(),
		NetShareCents:    r.NetShare().Cents(),
		IsClaimed:        r.IsClaimed(),
		ClaimedAt:        r.ClaimedAt(),
	}
}

func toDomain(dto RecordDTO) (*distribution.Record, error) {
	period, err := distribution.PeriodOf(distribution.PeriodType(dto.PeriodType), dto.PeriodStart)
	if err != nil {
		return nil, err
	}

	var claimedAt *time.Time
	if dto.ClaimedAt != nil {
		at := dto.ClaimedAt.UTC()
		claimedAt = &at
	}

	return distribution.RestoreRecord(
		kernel.Owner(dto.Owner),
		period,
		kernel.Money(dto.ShareAmountCents),
		kernel.Money(dto.NetShareCents),
		dto.IsClaimed,
		claimedAt,
	)
}
