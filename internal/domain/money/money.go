// Package money provides the exact decimal amount used by every price in the service.
//
// Amounts are never converted to float64: arithmetic is delegated to shopspring/decimal,
// which keeps full precision on add, subtract and multiply.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a signed monetary amount in currency units (euro).
// The zero value is a valid amount equal to 0.
type Money struct {
	amount decimal.Decimal
}

// Zero is the additive identity.
var Zero = Money{}

func New(d decimal.Decimal) Money {
	return Money{amount: d}
}

func FromInt(units int64) Money {
	return Money{amount: decimal.NewFromInt(units)}
}

// Parse reads a decimal string such as "1234.56".
func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	return Money{amount: d}, nil
}

// MustParse is Parse for constants and tests; it panics on malformed input.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Rate parses a multiplication factor such as "0.97".
func Rate(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func (m Money) Add(o Money) Money {
	return Money{amount: m.amount.Add(o.amount)}
}

func (m Money) Sub(o Money) Money {
	return Money{amount: m.amount.Sub(o.amount)}
}

// Mul multiplies the amount by an exact factor. No rounding is applied.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// Cmp returns -1, 0 or +1.
func (m Money) Cmp(o Money) int {
	return m.amount.Cmp(o.amount)
}

func (m Money) GreaterThan(o Money) bool {
	return m.amount.GreaterThan(o.amount)
}

// Equal compares values, ignoring scale ("10.00" equals "10").
func (m Money) Equal(o Money) bool {
	return m.amount.Equal(o.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the full-precision representation, trailing zeros trimmed.
func (m Money) String() string {
	return m.amount.String()
}

// StringFixed rounds half away from zero for display only.
func (m Money) StringFixed(places int32) string {
	return m.amount.StringFixed(places)
}

// MarshalJSON encodes the amount as a bare JSON number to keep payloads numeric.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}

// UnmarshalJSON accepts both numbers and quoted strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}
	m.amount = d
	return nil
}
