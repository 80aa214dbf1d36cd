// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored as one row in "orders" plus one row per status change in
// "order_status_history".
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The current status is denormalized from the history so that active-order
// listings do not need to scan the history table.
type OrderDTO struct {
	ID                string          `gorm:"type:varchar(32);primaryKey"`
	CustomerID        string          `gorm:"type:varchar(128);not null"`
	ServicePackage    string          `gorm:"type:varchar(16);not null"`
	DeliveryOption    string          `gorm:"type:varchar(32);not null"`
	DistanceKm        decimal.Decimal `gorm:"type:numeric;not null"`
	WeightKg          decimal.Decimal `gorm:"type:numeric;not null"`
	LoadCount         int             `gorm:"not null"`
	TransportFeeCents int64           `gorm:"not null"`
	TotalCents        int64           `gorm:"not null"`
	Status            string          `gorm:"type:varchar(32);not null;index"`
	IsPaid            bool            `gorm:"not null;default:false"`
	EmployeeID        *string         `gorm:"type:varchar(128)"`
	PieceCount        int             `gorm:"not null;default:0"`
	CreatedAt         time.Time       `gorm:"type:timestamptz;not null;index"`

	History []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusHistoryDTO is one append-only status change of an order.
type StatusHistoryDTO struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID   string    `gorm:"type:varchar(32);not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	ChangedAt time.Time `gorm:"type:timestamptz;not null"`
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its row. History is not included;
// repositories persist only the unsaved entries.
func fromDomain(o *order.Order) OrderDTO {
	pricing := o.Pricing()

	return OrderDTO{
		ID:                o.ID().String(),
		CustomerID:        o.CustomerID(),
		ServicePackage:    string(o.ServicePackage()),
		DeliveryOption:    string(o.DeliveryOption()),
		DistanceKm:        o.DistanceKm(),
		WeightKg:          pricing.EffectiveWeightKg,
		LoadCount:         pricing.LoadCount,
		TransportFeeCents: pricing.TransportFee.Cents(),
		TotalCents:        pricing.Total.Cents(),
		Status:            o.Status().String(),
		IsPaid:            o.IsPaid(),
		EmployeeID:        o.EmployeeID(),
		PieceCount:        o.PieceCount(),
		CreatedAt:         o.CreatedAt().UTC(),
	}
}

func historyFromDomain(id order.ID, changes []order.StatusChange) []StatusHistoryDTO {
	return lo.Map(changes, func(c order.StatusChange, _ int) StatusHistoryDTO {
		return StatusHistoryDTO{
			OrderID:   id.String(),
			Status:    c.Status.String(),
			ChangedAt: c.ChangedAt.UTC(),
		}
	})
}

// toDomain converts a row with its preloaded history to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := order.ParseID(dto.ID)
	if err != nil {
		return nil, err
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, h := range dto.History {
		status, parseErr := order.ParseStatus(h.Status)
		if parseErr != nil {
			return nil, parseErr
		}
		history = append(history, order.StatusChange{Status: status, ChangedAt: h.ChangedAt.UTC()})
	}

	pricing := order.Pricing{
		EffectiveWeightKg: dto.WeightKg,
		LoadCount:         dto.LoadCount,
		TransportFee:      kernel.Money(dto.TransportFeeCents),
		Total:             kernel.Money(dto.TotalCents),
	}

	return order.RestoreOrder(
		id,
		dto.CustomerID,
		order.ServicePackage(dto.ServicePackage),
		order.DeliveryOption(dto.DeliveryOption),
		dto.DistanceKm,
		pricing,
		history,
		dto.IsPaid,
		dto.CreatedAt.UTC(),
		dto.EmployeeID,
		dto.PieceCount,
	)
}
