package decimalcql

import "github.com/shopspring/decimal"

// Decimal carries a decimal.Decimal across the column codec boundary.
// It holds no other state and is immutable once constructed.
type Decimal struct {
	d decimal.Decimal
}

// From wraps d.
func From(d decimal.Decimal) Decimal {
	return Decimal{d: d}
}

// Decimal returns the wrapped value. Equality, ordering, and
// arithmetic are the wrapped value's own.
func (d Decimal) Decimal() decimal.Decimal {
	return d.d
}

// String implements fmt.Stringer.
func (d Decimal) String() string {
	return d.d.String()
}
