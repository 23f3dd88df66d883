package skybonds

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is an exact percentage, e.g. 100.2 for 100.2%.
//
// It keeps the number of decimals it was parsed with so that "100.0" prints
// back as "100.0".
type Percent struct {
	value decimal.Decimal
}

// P creates a Percent from a decimal value.
func P(value decimal.Decimal) Percent { return Percent{value: value} }

// ParsePercent parses a decimal string like "101.5".
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percent %q: %w", s, err)
	}
	return Percent{value: d}, nil
}

func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) Equal(q Percent) bool     { return p.value.Equal(q.value) }
func (p Percent) IsPositive() bool         { return p.value.IsPositive() }

// Of returns p percent of m. Shift is exact, unlike a division by 100.
func (p Percent) Of(m Money) Money {
	return Money{value: m.value.Mul(p.value).Shift(-2), cur: m.cur}
}

// String returns the percent value without the % sign, with the digits it was
// created with.
func (p Percent) String() string {
	if exp := p.value.Exponent(); exp < 0 {
		return p.value.StringFixed(-exp)
	}
	return p.value.String()
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}
