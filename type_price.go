package optrack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMissingDollar reports a price-like field without its "$" marker. It is a
// structural violation of the export format, not a row-level error: callers
// abort the whole file import when they see it.
var ErrMissingDollar = errors.New("price does not start with $")

// Price is an exact, signed monetary value. The broker formats it on the wire
// as an optional leading "-" followed by "$" and a decimal magnitude.
type Price struct {
	value decimal.Decimal
}

// P is a convenient factory for Price, mostly used in tests.
func P(value string) Price {
	return Price{value: decimal.RequireFromString(value)}
}

// ParsePrice parses the broker's "[-]$<decimal>" notation. An empty field is
// a zero price. A missing "$" marker yields an error wrapping ErrMissingDollar.
func ParsePrice(s string) (Price, error) {
	if len(s) == 0 {
		return Price{}, nil
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	if len(s) == 0 || s[0] != '$' {
		return Price{}, fmt.Errorf("%w: %q", ErrMissingDollar, s)
	}
	v, err := decimal.NewFromString(s[1:])
	if err != nil {
		return Price{}, fmt.Errorf("invalid price magnitude %q: %w", s, err)
	}
	if neg {
		v = v.Neg()
	}
	return Price{value: v}, nil
}

// ParseDollars parses the stored document form "$<signed decimal>".
func ParseDollars(s string) (Price, error) {
	if !strings.HasPrefix(s, "$") {
		return Price{}, fmt.Errorf("%w: %q", ErrMissingDollar, s)
	}
	v, err := decimal.NewFromString(s[1:])
	if err != nil {
		return Price{}, fmt.Errorf("invalid price magnitude %q: %w", s, err)
	}
	return Price{value: v}, nil
}

// Dollars returns the document form of the price: "$" followed by the signed
// decimal value, preserving the parsed scale.
func (p Price) Dollars() string { return "$" + p.value.String() }

func (p Price) Equal(o Price) bool     { return p.value.Equal(o.value) }
func (p Price) IsZero() bool           { return p.value.IsZero() }
func (p Price) IsNegative() bool       { return p.value.IsNegative() }
func (p Price) Neg() Price             { return Price{value: p.value.Neg()} }
func (p Price) Add(o Price) Price      { return Price{value: p.value.Add(o.value)} }
func (p Price) Mul(q Quantity) Price   { return Price{value: p.value.Mul(q.value)} }
func (p Price) Div(q Quantity) Price   { return Price{value: p.value.Div(q.value)} }
func (p Price) String() string         { return p.value.String() }
func (p Price) Decimal() decimal.Decimal { return p.value }
