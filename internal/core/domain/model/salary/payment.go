package salary

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not created through
	// the NewPayment or RestorePayment factory methods.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// Payment is an employee's salary record for one calendar day.
type Payment struct {
	employeeID     string
	date           time.Time
	amount         kernel.Money
	loadsCompleted int
	isPaid         bool

	isConstructed bool
}

// NewPayment creates an empty, unpaid record for employeeID on the given day.
func NewPayment(employeeID string, day time.Time) (*Payment, error) {
	p := &Payment{isConstructed: true}

	if err := errors.Join(
		p.setEmployeeID(employeeID),
		p.setDate(day),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment rebuilds a Payment from persisted state.
func RestorePayment(employeeID string, day time.Time, amount kernel.Money, loadsCompleted int, isPaid bool) (*Payment, error) {
	p := &Payment{
		isPaid:        isPaid,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setEmployeeID(employeeID),
		p.setDate(day),
		p.setAmount(amount),
		p.setLoadsCompleted(loadsCompleted),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

func (p *Payment) EmployeeID() string {
	return p.employeeID
}

// Date returns the calendar day of the record (midnight UTC).
func (p *Payment) Date() time.Time {
	return p.date
}

func (p *Payment) Amount() kernel.Money {
	return p.amount
}

func (p *Payment) LoadsCompleted() int {
	return p.loadsCompleted
}

func (p *Payment) IsPaid() bool {
	return p.isPaid
}

// Key returns the natural key "employeeID/YYYY-MM-DD".
func (p *Payment) Key() string {
	return p.employeeID + "/" + p.date.Format(time.DateOnly)
}

// RecordLoads adds completed loads, each earning ratePerLoad.
//
// Returns:
//   - ValueIsOutOfRangeError if loads is not positive or the rate is negative
func (p *Payment) RecordLoads(loads int, ratePerLoad kernel.Money) error {
	if loads <= 0 {
		return errs.NewValueIsOutOfRangeError("loads", loads, 1, "unbounded")
	}
	if ratePerLoad.IsNegative() {
		return errs.NewValueIsOutOfRangeError("rate per load", ratePerLoad, 0, "unbounded")
	}

	p.loadsCompleted += loads
	p.amount = p.amount.Add(ratePerLoad.Times(int64(loads)))
	return nil
}

// SetPaid marks the record paid or unpaid. The amount is unaffected.
func (p *Payment) SetPaid(paid bool) {
	p.isPaid = paid
}

func (p *Payment) setEmployeeID(employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return errs.NewValueIsRequiredError("employee id")
	}
	p.employeeID = employeeID
	return nil
}

func (p *Payment) setDate(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	p.date = kernel.Day(day)
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, "unbounded")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setLoadsCompleted(loads int) error {
	if loads < 0 {
		return errs.NewValueIsOutOfRangeError("loads completed", loads, 0, "unbounded")
	}
	p.loadsCompleted = loads
	return nil
}
