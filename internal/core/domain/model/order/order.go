package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	Status    Status
	ChangedAt time.Time
}

// Order is the aggregate root of the laundry order lifecycle, from intake and
// pricing through fulfillment to payment.
//
// Order follows these invariants:
//   - ID has the "ORD-" prefix and a zero-padded sequence number
//   - pricing satisfies Pricing.Validate (load count and total formulas)
//   - status is always a member of the vocabulary
//   - statusHistory is append-only and its timestamps never decrease
//   - pieceCount is never negative
//
// Orders can only be created through NewOrder or RestoreOrder.
type Order struct {
	id             ID
	customerID     string
	servicePackage ServicePackage
	deliveryOption DeliveryOption
	distanceKm     decimal.Decimal
	pricing        Pricing
	status         Status
	statusHistory  []StatusChange
	isPaid         bool
	createdAt      time.Time
	employeeID     *string
	pieceCount     int

	// savedHistory is the number of history entries already persisted.
	savedHistory int

	isConstructed bool
}

// NewOrder creates a new Order in the Order Placed status. The first history
// entry is recorded at createdAt.
//
// Parameters:
//   - id: sequential order identifier, usually produced by the allocator
//   - customerID: reference to the customer's external identity
//   - servicePackage: package1, package2 or package3
//   - deliveryOption: must be compatible with the service package
//   - distanceKm: distance between customer and shop, 0 for walk-in orders
//   - pricing: quote produced by the pricing engine
//   - createdAt: creation instant
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: every validation error joined together
//
// Example:
//
//	q, _ := engine.Quote(order.Package1, &weight, decimal.Zero)
//	o, err := order.NewOrder(order.FirstID, "cust-1", order.Package1, order.WalkIn,
//	    decimal.Zero, q.Pricing(), time.Now())
func NewOrder(
	id ID,
	customerID string,
	servicePackage ServicePackage,
	deliveryOption DeliveryOption,
	distanceKm decimal.Decimal,
	pricing Pricing,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        OrderPlaced,
		statusHistory: []StatusChange{{Status: OrderPlaced, ChangedAt: createdAt}},
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServicePackage(servicePackage, deliveryOption),
		o.setDistance(distanceKm),
		o.setPricing(pricing),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an Order from persisted state. The history must be in
// chronological order; the last entry defines the current status.
func RestoreOrder(
	id ID,
	customerID string,
	servicePackage ServicePackage,
	deliveryOption DeliveryOption,
	distanceKm decimal.Decimal,
	pricing Pricing,
	history []StatusChange,
	isPaid bool,
	createdAt time.Time,
	employeeID *string,
	pieceCount int,
) (*Order, error) {
	o := &Order{
		isPaid:        isPaid,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setServicePackage(servicePackage, deliveryOption),
		o.setDistance(distanceKm),
		o.setPricing(pricing),
		o.setHistory(history),
		o.setEmployeeID(employeeID),
		o.SetPieceCount(pieceCount),
	); err != nil {
		return nil, err
	}

	o.savedHistory = len(o.statusHistory)
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order identifier.
func (o *Order) ID() ID {
	return o.id
}

// CustomerID returns the reference to the customer identity.
func (o *Order) CustomerID() string {
	return o.customerID
}

// ServicePackage returns the service tier.
func (o *Order) ServicePackage() ServicePackage {
	return o.servicePackage
}

// DeliveryOption returns how laundry moves between customer and shop.
func (o *Order) DeliveryOption() DeliveryOption {
	return o.deliveryOption
}

// DistanceKm returns the distance used for pricing.
func (o *Order) DistanceKm() decimal.Decimal {
	return o.distanceKm
}

// Pricing returns the priced part of the order.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// WeightKg returns the effective weight the order was priced with.
func (o *Order) WeightKg() decimal.Decimal {
	return o.pricing.EffectiveWeightKg
}

// LoadCount returns the number of loads.
func (o *Order) LoadCount() int {
	return o.pricing.LoadCount
}

// TransportFee returns the transport charge.
func (o *Order) TransportFee() kernel.Money {
	return o.pricing.TransportFee
}

// Total returns base cost plus transport fee.
func (o *Order) Total() kernel.Money {
	return o.pricing.Total
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether the order was paid.
func (o *Order) IsPaid() bool {
	return o.isPaid
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PieceCount returns the number of garments counted at intake.
func (o *Order) PieceCount() int {
	return o.pieceCount
}

// Progress returns the fulfillment progress of the current status.
func (o *Order) Progress() float64 {
	return o.status.Progress()
}

// StatusHistory returns a copy of the full status history.
func (o *Order) StatusHistory() []StatusChange {
	history := make([]StatusChange, len(o.statusHistory))
	copy(history, o.statusHistory)
	return history
}

// EmployeeID returns the assigned employee, or nil if nobody is assigned.
func (o *Order) EmployeeID() *string {
	if o.employeeID == nil {
		return nil
	}
	id := *o.employeeID
	return &id
}

// Advance moves the order to target and records the move in the status history.
//
// Any member of the vocabulary is accepted, including earlier and
// non-adjacent statuses. Only membership is validated, before anything
// is mutated.
//
// The recorded timestamp is at, unless at lies before the latest history
// entry; then the latest timestamp is reused so the history never goes
// backwards in time.
//
// Parameters:
//   - target: the new status
//   - at: instant of the change, usually the current time
//
// Returns:
//   - nil on success
//   - ValueIsInvalidError if target is not part of the vocabulary
//
// Example:
//
//	if err := o.Advance(order.Washing, time.Now()); err != nil {
//	    return err
//	}
//	o.Progress() // 3/9
func (o *Order) Advance(target Status, at time.Time) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if n := len(o.statusHistory); n > 0 && at.Before(o.statusHistory[n-1].ChangedAt) {
		at = o.statusHistory[n-1].ChangedAt
	}

	o.statusHistory = append(o.statusHistory, StatusChange{Status: target, ChangedAt: at})
	o.status = target
	return nil
}

// UnsavedHistory returns the history entries appended since the order was
// created or restored and not yet persisted.
func (o *Order) UnsavedHistory() []StatusChange {
	unsaved := make([]StatusChange, len(o.statusHistory)-o.savedHistory)
	copy(unsaved, o.statusHistory[o.savedHistory:])
	return unsaved
}

// MarkHistorySaved records that every current history entry is persisted.
// Repositories call it after writing UnsavedHistory.
func (o *Order) MarkHistorySaved() {
	o.savedHistory = len(o.statusHistory)
}

// MarkPaid sets the payment flag.
func (o *Order) MarkPaid(paid bool) {
	o.isPaid = paid
}

// AssignEmployee sets the employee responsible for the order.
// An empty identifier is rejected; use UnassignEmployee to clear.
func (o *Order) AssignEmployee(employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return errs.NewValueIsRequiredError("employee id")
	}
	o.employeeID = &employeeID
	return nil
}

// UnassignEmployee clears the employee assignment.
func (o *Order) UnassignEmployee() {
	o.employeeID = nil
}

// SetPieceCount records the number of garments counted at intake.
func (o *Order) SetPieceCount(count int) error {
	if count < 0 {
		return errs.NewValueIsOutOfRangeError("piece count", count, 0, "unbounded")
	}
	o.pieceCount = count
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return errs.NewValueIsRequiredError("customer id")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setServicePackage(p ServicePackage, d DeliveryOption) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := d.Validate(p); err != nil {
		return err
	}
	o.servicePackage = p
	o.deliveryOption = d
	return nil
}

func (o *Order) setDistance(distanceKm decimal.Decimal) error {
	if distanceKm.IsNegative() || distanceKm.GreaterThan(MaxDistanceKm) {
		return errs.NewValueIsOutOfRangeError("distance", distanceKm, 0, MaxDistanceKm)
	}
	o.distanceKm = distanceKm
	return nil
}

func (o *Order) setPricing(p Pricing) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.pricing = p
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	return nil
}

func (o *Order) setHistory(history []StatusChange) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("status history")
	}

	for i, change := range history {
		if err := change.Status.Validate(); err != nil {
			return err
		}
		if i > 0 && change.ChangedAt.Before(history[i-1].ChangedAt) {
			return errs.NewValueIsInvalidErrorWithCause(
				"status history",
				fmt.Errorf("entry %d at %s is earlier than its predecessor", i, change.ChangedAt.Format(time.RFC3339)),
			)
		}
	}

	o.statusHistory = make([]StatusChange, len(history))
	copy(o.statusHistory, history)
	o.status = history[len(history)-1].Status
	return nil
}

func (o *Order) setEmployeeID(employeeID *string) error {
	if employeeID == nil {
		o.employeeID = nil
		return nil
	}
	return o.AssignEmployee(*employeeID)
}
