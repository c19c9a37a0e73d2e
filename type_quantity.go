package optrack

import "github.com/shopspring/decimal"

// Quantity is an exact count of shares or contracts. Some broker rows carry
// no quantity at all (cash events); such a Quantity is not Valid.
type Quantity struct {
	value decimal.Decimal
	valid bool
}

// Q is a convenient factory for Quantity, mostly used in tests.
func Q(value string) Quantity {
	return Quantity{value: decimal.RequireFromString(value), valid: true}
}

// ParseQuantity parses the broker quantity field. An empty field means the
// row carries no quantity.
func ParseQuantity(s string) (Quantity, error) {
	if s == "" {
		return Quantity{}, nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v, valid: true}, nil
}

// Valid reports whether the row carried a quantity at all.
func (q Quantity) Valid() bool { return q.valid }

func (q Quantity) Equal(o Quantity) bool { return q.valid == o.valid && q.value.Equal(o.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) IsNegative() bool      { return q.value.IsNegative() }
func (q Quantity) Neg() Quantity         { return Quantity{value: q.value.Neg(), valid: q.valid} }

// Add returns the sum of both quantities. The result is valid if either
// operand is.
func (q Quantity) Add(o Quantity) Quantity {
	return Quantity{value: q.value.Add(o.value), valid: q.valid || o.valid}
}

// Sub returns the difference of both quantities.
func (q Quantity) Sub(o Quantity) Quantity {
	return Quantity{value: q.value.Sub(o.value), valid: q.valid || o.valid}
}

// String returns the decimal representation, or the empty string for an
// absent quantity (mirroring the broker's empty field).
func (q Quantity) String() string {
	if !q.valid {
		return ""
	}
	return q.value.String()
}

func (q Quantity) Decimal() decimal.Decimal { return q.value }
