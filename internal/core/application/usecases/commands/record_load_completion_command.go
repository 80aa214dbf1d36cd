package commands

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrRecordLoadCompletionCommandIsNotConstructed = errors.New(
		"RecordLoadCompletionCommand must be created via NewRecordLoadCompletionCommand constructor",
	)
	ErrSetSalaryPaidCommandIsNotConstructed = errors.New(
		"SetSalaryPaidCommand must be created via NewSetSalaryPaidCommand constructor",
	)
)

// RecordLoadCompletionCommand credits an employee with completed loads on a
// calendar day.
type RecordLoadCompletionCommand struct { //nolint:recvcheck //using for validation
	employeeID string
	day        time.Time
	loads      int

	guard guard.ConstructorGuard
}

func NewRecordLoadCompletionCommand(employeeID string, day time.Time, loads int) (RecordLoadCompletionCommand, error) {
	cmd := RecordLoadCompletionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		validateEmployee(employeeID),
		validateDay(day),
		validateLoads(loads),
	); err != nil {
		return RecordLoadCompletionCommand{}, err
	}

	cmd.employeeID = strings.TrimSpace(employeeID)
	cmd.day = kernel.Day(day)
	cmd.loads = loads
	return cmd, nil
}

func (c RecordLoadCompletionCommand) Validate() error {
	return c.guard.Validate(ErrRecordLoadCompletionCommandIsNotConstructed)
}

func (c RecordLoadCompletionCommand) EmployeeID() string {
	return c.employeeID
}

// Day returns the calendar day at midnight UTC.
func (c RecordLoadCompletionCommand) Day() time.Time {
	return c.day
}

func (c RecordLoadCompletionCommand) Loads() int {
	return c.loads
}

// SetSalaryPaidCommand marks an employee's daily salary as paid out or not.
type SetSalaryPaidCommand struct { //nolint:recvcheck //using for validation
	employeeID string
	day        time.Time
	paid       bool

	guard guard.ConstructorGuard
}

func NewSetSalaryPaidCommand(employeeID string, day time.Time, paid bool) (SetSalaryPaidCommand, error) {
	if err := errors.Join(
		validateEmployee(employeeID),
		validateDay(day),
	); err != nil {
		return SetSalaryPaidCommand{}, err
	}

	return SetSalaryPaidCommand{
		employeeID: strings.TrimSpace(employeeID),
		day:        kernel.Day(day),
		paid:       paid,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c SetSalaryPaidCommand) Validate() error {
	return c.guard.Validate(ErrSetSalaryPaidCommandIsNotConstructed)
}

func (c SetSalaryPaidCommand) EmployeeID() string {
	return c.employeeID
}

func (c SetSalaryPaidCommand) Day() time.Time {
	return c.day
}

func (c SetSalaryPaidCommand) Paid() bool {
	return c.paid
}

func validateEmployee(employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return errs.NewValueIsRequiredError("employee id")
	}
	return nil
}

func validateDay(day time.Time) error {
	if day.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	return nil
}

func validateLoads(loads int) error {
	if loads <= 0 {
		return errs.NewValueIsOutOfRangeError("loads", loads, 1, "unbounded")
	}
	return nil
}
