package skybonds

import (
	"testing"

	"github.com/shopspring/decimal"
)

// RUB is a helper for test to create roubles from const
func RUB(v int) Money { return M(v, "RUB") }

// dec is a helper for test to create a decimal from a string const
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// decodeAll decodes lines with a fresh factory, using the default terms.
func decodeAll(t *testing.T, lines ...string) []Lot {
	t.Helper()
	var f LotFactory
	rating := DefaultTerms("RUB").BondRating
	lots := make([]Lot, 0, len(lines))
	for _, line := range lines {
		l, err := DecodeLot(&f, line, rating)
		if err != nil {
			t.Fatalf("DecodeLot(%q) unexpected error: %v", line, err)
		}
		lots = append(lots, l)
	}
	return lots
}

func encodeAll(lots []Lot) []string {
	lines := make([]string, 0, len(lots))
	for _, l := range lots {
		lines = append(lines, EncodeLot(l))
	}
	return lines
}
