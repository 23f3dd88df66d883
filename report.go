package skybonds

import "encoding/json"

// Holding is a lot bought by a trader, with its income at maturity.
type Holding struct {
	Lot
	Income Money
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObject
	w.Embed(h.Lot)
	w.Append("income", h.Income)
	return w.MarshalJSON()
}

// Allocation is the outcome of a trading run.
type Allocation struct {
	TradingPeriod int
	TotalPeriod   int
	LotsPerDay    int
	Offered       int // lots accepted by the market
	Initial       Money
	Balance       Money
	Holdings      []Holding // in issuance order
}

// NewAllocation reports what the trader bought on the market.
func NewAllocation(m *Market, t *Trader) *Allocation {
	a := &Allocation{
		TradingPeriod: m.tradingPeriod,
		TotalPeriod:   m.totalPeriod,
		LotsPerDay:    m.lotsPerDay,
		Offered:       len(m.lots),
		Initial:       t.initial,
		Balance:       t.balance,
	}
	for _, l := range t.holdings {
		a.Holdings = append(a.Holdings, Holding{Lot: l, Income: m.EvaluateIncome(l)})
	}
	return a
}

// Income returns the exact income of all holdings.
func (a *Allocation) Income() Money {
	total := M(0, a.Initial.Currency())
	for _, h := range a.Holdings {
		total = total.Add(h.Income)
	}
	return total
}

// RoundedIncome returns the income rounded to an integer, half to even.
func (a *Allocation) RoundedIncome() Money { return a.Income().RoundBank(0) }

// Spent returns the sum of the holdings price.
func (a *Allocation) Spent() Money { return a.Initial.Sub(a.Balance) }

// Lots returns the lots held, in issuance order.
func (a *Allocation) Lots() []Lot {
	lots := make([]Lot, 0, len(a.Holdings))
	for _, h := range a.Holdings {
		lots = append(lots, h.Lot)
	}
	return lots
}

func (a *Allocation) MarshalJSON() ([]byte, error) {
	holdings := a.Holdings
	if holdings == nil {
		holdings = []Holding{}
	}
	var w jsonObject
	w.Append("income", a.RoundedIncome())
	w.Append("exactIncome", a.Income())
	w.Append("spent", a.Spent())
	w.Append("balance", a.Balance)
	w.Append("tradingPeriod", a.TradingPeriod)
	w.Append("lotsPerDay", a.LotsPerDay)
	w.Append("offered", a.Offered)
	w.Append("holdings", holdings)
	return w.MarshalJSON()
}

var _ json.Marshaler = (*Allocation)(nil)
