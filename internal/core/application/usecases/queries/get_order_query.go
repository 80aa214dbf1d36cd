package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")
)

// GetOrderQuery retrieves one order with its status history.
type GetOrderQuery struct {
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates the query, rejecting malformed identifiers.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := order.ParseID(orderID)
	if err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() order.ID {
	return q.orderID
}

// StatusChangeView is one entry of the status history.
type StatusChangeView struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

// GetOrderQueryResponse is the full read model of an order.
type GetOrderQueryResponse struct {
	ID             string             `json:"id"`
	CustomerID     string             `json:"customerId"`
	ServicePackage string             `json:"servicePackage"`
	DeliveryOption string             `json:"deliveryOption"`
	DistanceKm     decimal.Decimal    `json:"distanceKm"`
	WeightKg       decimal.Decimal    `json:"weightKg"`
	LoadCount      int                `json:"loadCount"`
	TransportFee   kernel.Money       `json:"transportFee"`
	Total          kernel.Money       `json:"total"`
	Status         string             `json:"status"`
	Progress       float64            `json:"progress"`
	IsPaid         bool               `json:"isPaid"`
	EmployeeID     *string            `json:"employeeId,omitempty"`
	PieceCount     int                `json:"pieceCount"`
	CreatedAt      time.Time          `json:"createdAt"`
	History        []StatusChangeView `json:"history"`
}
