package expense

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var (
	// ErrExpenseIsNotConstructed is returned when an Expense instance was not created through
	// the NewExpense or RestoreExpense factory methods.
	ErrExpenseIsNotConstructed = errors.New("Expense must be created via NewExpense constructor")
)

// Expense is a single cost incurred by the laundry, paid either by the business
// or personally by one of the owners.
//
// Expense follows these invariants:
//   - amount is positive
//   - reimbursement status is None iff the expense was attributed to the business
//   - reimbursement status only moves from Pending to Reimbursed, never back
//   - reimbursedAt and reimbursedBy are set iff the status is Reimbursed
type Expense struct {
	id           kernel.UUID
	title        string
	amount       kernel.Money
	expenseFor   For
	status       ReimbursementStatus
	incurredOn   time.Time
	reimbursedAt *time.Time
	reimbursedBy *string

	isConstructed bool
}

// NewExpense creates an expense. Owners' outlays start as Pending; business
// expenses carry no reimbursement state.
//
// Parameters:
//   - id: unique identifier
//   - title: short description, required
//   - amount: positive amount
//   - expenseFor: the owner who paid, or ForBusiness
//   - incurredOn: calendar day the cost was incurred; the time part is dropped
//
// Example:
//
//	e, err := expense.NewExpense(kernel.NewUUID(), "Detergent", kernel.MoneyFromUnits(500),
//	    expense.ForOwner1, time.Now())
//	// e.ReimbursementStatus() == expense.Pending
func NewExpense(id kernel.UUID, title string, amount kernel.Money, expenseFor For, incurredOn time.Time) (*Expense, error) {
	e := &Expense{isConstructed: true}

	if err := errors.Join(
		e.setID(id),
		e.setTitle(title),
		e.setAmount(amount),
		e.setExpenseFor(expenseFor),
		e.setIncurredOn(incurredOn),
	); err != nil {
		return nil, err
	}

	e.status = Pending
	if expenseFor == ForBusiness {
		e.status = None
	}

	return e, nil
}

// RestoreExpense rebuilds an Expense from persisted state.
func RestoreExpense(
	id kernel.UUID,
	title string,
	amount kernel.Money,
	expenseFor For,
	status ReimbursementStatus,
	incurredOn time.Time,
	reimbursedAt *time.Time,
	reimbursedBy *string,
) (*Expense, error) {
	e := &Expense{
		status:       status,
		reimbursedAt: reimbursedAt,
		reimbursedBy: reimbursedBy,

		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setTitle(title),
		e.setAmount(amount),
		e.setExpenseFor(expenseFor),
		e.setIncurredOn(incurredOn),
	); err != nil {
		return nil, err
	}

	if err := e.validateStatus(); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Expense instance was properly constructed.
func (e *Expense) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrExpenseIsNotConstructed
	}
	return nil
}

func (e *Expense) ID() kernel.UUID {
	return e.id
}

func (e *Expense) Title() string {
	return e.title
}

func (e *Expense) Amount() kernel.Money {
	return e.amount
}

func (e *Expense) ExpenseFor() For {
	return e.expenseFor
}

func (e *Expense) ReimbursementStatus() ReimbursementStatus {
	return e.status
}

// IncurredOn returns the calendar day (midnight UTC) the cost was incurred.
func (e *Expense) IncurredOn() time.Time {
	return e.incurredOn
}

func (e *Expense) ReimbursedAt() *time.Time {
	return e.reimbursedAt
}

func (e *Expense) ReimbursedBy() *string {
	return e.reimbursedBy
}

// IsBusinessCost reports whether the expense counts against business income:
// it was attributed to the business, or it has been reimbursed.
func (e *Expense) IsBusinessCost() bool {
	return IsBusinessCost(e.expenseFor, e.status)
}

// IsBusinessCost reports whether an expense with the given attribution and
// reimbursement status counts against business income.
func IsBusinessCost(expenseFor For, status ReimbursementStatus) bool {
	return expenseFor == ForBusiness || status == Reimbursed
}

// IsPending reports whether an owner is still waiting to be reimbursed.
func (e *Expense) IsPending() bool {
	return e.status == Pending
}

// Reimburse transfers a pending personal outlay to the business.
//
// The transition is one-way. Reimbursing an expense that is already reimbursed,
// or a business expense, fails without changing anything.
//
// Parameters:
//   - actorID: who performed the reimbursement, required
//   - at: instant of the reimbursement
//
// Returns:
//   - nil on success
//   - ValueIsRequiredError if actorID is empty
//   - ValueIsInvalidError if the expense is not pending
func (e *Expense) Reimburse(actorID string, at time.Time) error {
	if strings.TrimSpace(actorID) == "" {
		return errs.NewValueIsRequiredError("reimbursed by")
	}

	if e.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"reimbursement status",
			fmt.Errorf("expense %s is %q, only pending expenses can be reimbursed", e.id, e.statusLabel()),
		)
	}

	e.status = Reimbursed
	e.reimbursedAt = &at
	e.reimbursedBy = &actorID
	return nil
}

// CheckDeletion returns ConfirmationRequiredError when deleting the expense
// would remove an already reimbursed amount from the books and the caller
// has not confirmed it.
func (e *Expense) CheckDeletion(confirmed bool) error {
	if e.status == Reimbursed && !confirmed {
		return errs.NewConfirmationRequiredError("delete reimbursed expense", e.id)
	}
	return nil
}

func (e *Expense) statusLabel() string {
	if e.status == None {
		return "none"
	}
	return string(e.status)
}

func (e *Expense) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Expense) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	e.title = title
	return nil
}

func (e *Expense) setAmount(amount kernel.Money) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, "0.01", "unbounded")
	}
	e.amount = amount
	return nil
}

func (e *Expense) setExpenseFor(expenseFor For) error {
	if err := expenseFor.Validate(); err != nil {
		return err
	}
	e.expenseFor = expenseFor
	return nil
}

func (e *Expense) setIncurredOn(incurredOn time.Time) error {
	if incurredOn.IsZero() {
		return errs.NewValueIsRequiredError("incurred on")
	}
	e.incurredOn = kernel.Day(incurredOn)
	return nil
}

func (e *Expense) validateStatus() error {
	if _, err := ParseReimbursementStatus(string(e.status)); err != nil {
		return err
	}

	if (e.expenseFor == ForBusiness) != (e.status == None) {
		return errs.NewValueIsInvalidErrorWithCause(
			"reimbursement status",
			fmt.Errorf("%q does not fit an expense for %s", e.statusLabel(), e.expenseFor),
		)
	}

	if (e.status == Reimbursed) != (e.reimbursedAt != nil && e.reimbursedBy != nil) {
		return errs.NewValueIsInvalidErrorWithCause(
			"reimbursement status",
			errors.New("reimbursed expenses must record when and by whom"),
		)
	}

	return nil
}
