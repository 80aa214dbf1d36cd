package order

import (
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/pkg/errs"
)

const (
	// IDPrefix is the fixed prefix of every order identifier.
	IDPrefix = "ORD-"

	// idMinWidth is the minimum number of digits after the prefix.
	idMinWidth = 3
)

// ID is the human-readable, sequential identifier of an order, e.g. "ORD-042".
// Numbers above 999 simply grow wider ("ORD-1000").
type ID string

// FirstID is the first value of the identifier sequence.
var FirstID = NewID(1)

// NewID formats a sequence number as an order identifier.
// Numbers below 1 are formatted as-is; use ParseID to validate input.
func NewID(number int) ID {
	return ID(fmt.Sprintf("%s%0*d", IDPrefix, idMinWidth, number))
}

// ParseID parses an order identifier and validates its shape: the fixed prefix
// followed by at least three digits encoding a positive number.
//
// Returns:
//   - the parsed ID
//   - ValueIsInvalidError if the value is malformed
//
// Example:
//
//	id, err := order.ParseID("ORD-007")
//	// id.Number() == 7
func ParseID(value string) (ID, error) {
	if _, err := parseNumber(value); err != nil {
		return "", err
	}
	return ID(value), nil
}

// Number returns the numeric suffix of the identifier.
// Returns 0 for malformed identifiers.
func (id ID) Number() int {
	n, err := parseNumber(string(id))
	if err != nil {
		return 0
	}
	return n
}

// Next returns the identifier that follows id in the sequence.
func (id ID) Next() ID {
	return NewID(id.Number() + 1)
}

// Validate checks the identifier shape.
func (id ID) Validate() error {
	_, err := parseNumber(string(id))
	return err
}

func (id ID) String() string {
	return string(id)
}

func parseNumber(value string) (int, error) {
	digits, ok := strings.CutPrefix(value, IDPrefix)
	if !ok {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%q does not start with %q", value, IDPrefix),
		)
	}

	if len(digits) < idMinWidth || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"order id",
			fmt.Errorf("%q must end with at least %d digits", value, idMinWidth),
		)
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	if n < 1 {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%q has no positive number", value))
	}

	return n, nil
}
