package skybonds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains the line based text format of the trader input and output.
//
//   initial data: "<trading period> <lots per day> <balance>"  e.g. "2 2 8000"
//   lot:          "<day> <bond name> <price percent> <amount>" e.g. "1 alfa-05 100.2 2"
//
// Initial data values cannot be negative. The price percent is a plain
// decimal, exponent notation like "1E+2" is refused, so that EncodeLot prints
// back the digits DecodeLot read.

var (
	// ErrInitialData is the cause of every malformed initial data line.
	ErrInitialData = errors.New(`incorrect input, should be of 3 values, e.g. "2 2 8000"`)
	// ErrLotFormat is the cause of every malformed lot line.
	ErrLotFormat = errors.New(`incorrect input, should be of 4 values, e.g. "1 alfa-05 100.2 2"`)
)

// InitialData is the first line of the trader input.
type InitialData struct {
	TradingPeriod int
	LotsPerDay    int
	Balance       decimal.Decimal
}

// ParseInitialData parses the initial data line.
//
// Errors wrap ErrInitialData.
func ParseInitialData(line string) (InitialData, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return InitialData{}, fmt.Errorf("%w: got %d values", ErrInitialData, len(fields))
	}
	days, err := strconv.Atoi(fields[0])
	if err != nil {
		return InitialData{}, fmt.Errorf("%w: trading period %q is not an integer", ErrInitialData, fields[0])
	}
	perDay, err := strconv.Atoi(fields[1])
	if err != nil {
		return InitialData{}, fmt.Errorf("%w: lots per day %q is not an integer", ErrInitialData, fields[1])
	}
	balance, err := decimal.NewFromString(fields[2])
	if err != nil {
		return InitialData{}, fmt.Errorf("%w: balance %q is not a number", ErrInitialData, fields[2])
	}
	if days < 0 || perDay < 0 || balance.IsNegative() {
		return InitialData{}, fmt.Errorf("%w: values cannot be negative", ErrInitialData)
	}
	return InitialData{TradingPeriod: days, LotsPerDay: perDay, Balance: balance}, nil
}

// String returns the initial data in its line format.
func (d InitialData) String() string {
	return fmt.Sprintf("%d %d %s", d.TradingPeriod, d.LotsPerDay, d.Balance)
}

// EncodeLot returns the line format of a lot. The lot order is not part of it.
func EncodeLot(l Lot) string {
	return strings.Join([]string{
		strconv.Itoa(l.day),
		l.name,
		l.pricePercent.String(),
		strconv.Itoa(l.amount),
	}, " ")
}

// DecodeLot parses a lot line and creates the lot with f, for bonds of the given rating.
//
// Errors wrap ErrLotFormat. Day range is not checked here, it is up to the
// Market.
func DecodeLot(f *LotFactory, line string, rating Money) (Lot, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Lot{}, fmt.Errorf("%w: got %d values", ErrLotFormat, len(fields))
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return Lot{}, fmt.Errorf("%w: day %q is not an integer", ErrLotFormat, fields[0])
	}
	name := fields[1]
	if strings.ContainsAny(fields[2], "eE") {
		return Lot{}, fmt.Errorf("%w: price percent %q must be a plain decimal", ErrLotFormat, fields[2])
	}
	percent, err := ParsePercent(fields[2])
	if err != nil {
		return Lot{}, fmt.Errorf("%w: %w", ErrLotFormat, err)
	}
	if !percent.IsPositive() {
		return Lot{}, fmt.Errorf("%w: price percent %s must be positive", ErrLotFormat, percent)
	}
	amount, err := strconv.Atoi(fields[3])
	if err != nil {
		return Lot{}, fmt.Errorf("%w: amount %q is not an integer", ErrLotFormat, fields[3])
	}
	if amount <= 0 {
		return Lot{}, fmt.Errorf("%w: amount %d must be positive", ErrLotFormat, amount)
	}
	return f.Create(day, percent, name, amount, rating), nil
}
