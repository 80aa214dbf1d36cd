package kernel

import (
	"fmt"

	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// centsPerUnit is the number of minor units in one currency unit.
const centsPerUnit = 100

// Money is an amount of currency in minor units (cents).
//
// Example:
//
//	base := kernel.MoneyFromUnits(180)        // 180.00
//	fee, _ := kernel.MoneyFromDecimal(decimal.RequireFromString("46.5"))
//	total := base.Add(fee)                    // 226.50
type Money int64

// MoneyFromUnits converts whole currency units to Money.
func MoneyFromUnits(units int64) Money {
	return Money(units * centsPerUnit)
}

// MoneyFromDecimal converts a decimal currency amount, rounding half away from
// zero to the nearest cent.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Shift(2).Round(0)
	if !cents.IsInteger() || cents.Abs().GreaterThan(decimal.NewFromInt(1<<62)) {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s cannot be represented in cents", d))
	}
	return Money(cents.IntPart()), nil
}

// ParseMoney parses a decimal string such as "500" or "123.45".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return MoneyFromDecimal(d)
}

// Cents returns the amount in minor units.
func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal returns the amount in currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

// Times multiplies the amount by a whole quantity.
func (m Money) Times(n int64) Money {
	return Money(int64(m) * n)
}

// Split divides the amount into n equal shares, truncating toward zero, and
// returns the share together with the undistributed remainder so that
// share*n + remainder == m holds exactly.
func (m Money) Split(n int64) (share, remainder Money) {
	if n <= 0 {
		return 0, m
	}
	share = Money(int64(m) / n)
	return share, m - share.Times(n)
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) IsNegative() bool {
	return m < 0
}

// String formats the amount with two decimal places, e.g. "226.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}
