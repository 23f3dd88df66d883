package skybonds

import (
	"errors"
	"fmt"
)

// ErrInapplicableLot is the common cause of lots refused by a Market.
var ErrInapplicableLot = errors.New("inapplicable lot")

// ErrMarketClosed is returned when adding a lot to a market a trader already bought from.
var ErrMarketClosed = errors.New("market is closed")

// DayOutOfRangeError is returned when a lot is issued outside of the issuance period.
type DayOutOfRangeError struct {
	Day         int
	First, Last int
}

func (e *DayOutOfRangeError) Error() string {
	return fmt.Sprintf("day %d out of range, should be [%d-%d]", e.Day, e.First, e.Last)
}

func (e *DayOutOfRangeError) Unwrap() error { return ErrInapplicableLot }

// BondsExceededError is returned when a day already holds all the lots it can.
type BondsExceededError struct {
	Day   int
	Limit int
}

func (e *BondsExceededError) Error() string {
	return fmt.Sprintf("lots per day exceeded on day %d, should be no more than %d", e.Day, e.Limit)
}

func (e *BondsExceededError) Unwrap() error { return ErrInapplicableLot }

// Terms are the bond conditions shared by every lot of a market.
type Terms struct {
	// RepaymentPeriod is the number of days between the end of the issuance
	// period and the maturity of the bonds.
	RepaymentPeriod int
	// BondRating is the face value of one bond. All bonds have the same rating.
	BondRating Money
	// DailyIncome is the income of one bond per day held.
	DailyIncome Money
}

// DefaultTerms returns the terms of the reference market, in 'currency'.
func DefaultTerms(currency string) Terms {
	return Terms{
		RepaymentPeriod: 30,
		BondRating:      M(1000, currency),
		DailyIncome:     M(1, currency),
	}
}

// Market records the lots issued during a trading period.
type Market struct {
	terms         Terms
	tradingPeriod int
	totalPeriod   int // trading period plus repayment period
	lotsPerDay    int
	daily         map[int]int // number of lots issued per day
	lots          []Lot       // in issuance order
	closed        bool
}

// NewMarket returns an empty market where lots can be issued from day 1 to
// day 'tradingPeriod', at most 'lotsPerDay' lots a day.
func NewMarket(tradingPeriod, lotsPerDay int, terms Terms) *Market {
	return &Market{
		terms:         terms,
		tradingPeriod: tradingPeriod,
		totalPeriod:   tradingPeriod + terms.RepaymentPeriod,
		lotsPerDay:    lotsPerDay,
		daily:         make(map[int]int),
	}
}

func (m *Market) Terms() Terms            { return m.terms }
func (m *Market) TradingPeriod() int      { return m.tradingPeriod }
func (m *Market) LotsPerDay() int         { return m.lotsPerDay }
func (m *Market) IssuedOn(day int) int    { return m.daily[day] }
func (m *Market) Len() int                { return len(m.lots) }
func (m *Market) Closed() bool            { return m.closed }
func (m *Market) close()                  { m.closed = true }
func (m *Market) Lots() []Lot             { return append([]Lot(nil), m.lots...) }
func (m *Market) TotalTradingPeriod() int { return m.totalPeriod }

// Add issues a lot on the market.
//
// The lot is either recorded or refused with a *DayOutOfRangeError or a
// *BondsExceededError, the market is left untouched in that case.
func (m *Market) Add(lot Lot) error {
	if m.closed {
		return ErrMarketClosed
	}
	if lot.day < 1 || lot.day > m.tradingPeriod {
		return &DayOutOfRangeError{Day: lot.day, First: 1, Last: m.tradingPeriod}
	}
	if m.daily[lot.day] >= m.lotsPerDay {
		return &BondsExceededError{Day: lot.day, Limit: m.lotsPerDay}
	}
	m.daily[lot.day]++
	m.lots = append(m.lots, lot)
	return nil
}

// EvaluateIncome returns the income of the lot at the end of the total trading period.
//
// Each bond earns the daily income from its issuance day to maturity, minus
// what was paid above its rating.
func (m *Market) EvaluateIncome(lot Lot) Money {
	days := m.totalPeriod - lot.day
	return m.terms.DailyIncome.Mul(days).Sub(lot.overpayment).Mul(lot.amount)
}

// Income returns the exact income of all the lots.
func (m *Market) Income(lots []Lot) Money {
	total := M(0, m.terms.BondRating.Currency())
	for _, l := range lots {
		total = total.Add(m.EvaluateIncome(l))
	}
	return total
}
