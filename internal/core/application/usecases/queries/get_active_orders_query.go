package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves every order that has not reached Success.
//
// Example:
//
//	query := NewGetActiveOrdersQuery()
//	handler := NewGetActiveOrdersQueryHandler(db, cache, time.Minute, logger)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active orders: %w", err)
//	}
//
//	for _, o := range orders {
//	    fmt.Printf("%s %s %.0f%%\n", o.ID, o.Status, o.Progress*100)
//	}
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query to retrieve active orders.
func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse is the list item of an active order.
type GetActiveOrdersQueryResponse struct {
	ID             string       `json:"id"`
	CustomerID     string       `json:"customerId"`
	ServicePackage string       `json:"servicePackage"`
	Status         string       `json:"status"`
	Progress       float64      `json:"progress"`
	Total          kernel.Money `json:"total"`
	IsPaid         bool         `json:"isPaid"`
	EmployeeID     *string      `json:"employeeId,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}
