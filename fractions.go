package skybonds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrFractionCount = errors.New("incorrect input, should be an integer")
	ErrFraction      = errors.New("incorrect input, should be a rational positive number greater than 0")
)

// FractionPlaces is the number of decimals of a fraction percent.
const FractionPlaces = 3

// ParseFractionCount parses the number of fractions: digits only, no sign.
func ParseFractionCount(line string) (int, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.TrimLeft(line, "0123456789") != "" {
		return 0, fmt.Errorf("%w: got %q", ErrFractionCount, line)
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFractionCount, err)
	}
	return n, nil
}

// ParseFraction parses a strictly positive fraction.
func ParseFraction(line string) (decimal.Decimal, error) {
	line = strings.TrimSpace(line)
	d, err := decimal.NewFromString(line)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: got %q", ErrFraction, line)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrFraction, d)
	}
	return d, nil
}

// shareDivisionPlaces is the precision of a share before it is rounded to
// FractionPlaces. It must be large enough that rounding the quotient never
// moves it onto a half-way point.
const shareDivisionPlaces = 28

// FractionPercents returns the share of each fraction in their sum, rounded
// half to even to FractionPlaces decimals.
func FractionPercents(fractions []decimal.Decimal) []decimal.Decimal {
	sum := decimal.Sum(decimal.Zero, fractions...)
	shares := make([]decimal.Decimal, 0, len(fractions))
	for _, f := range fractions {
		shares = append(shares, f.DivRound(sum, shareDivisionPlaces).RoundBank(FractionPlaces))
	}
	return shares
}

// FormatFraction prints a share with exactly FractionPlaces decimals.
func FormatFraction(d decimal.Decimal) string { return d.StringFixedBank(FractionPlaces) }
