package skybonds

import "slices"

// Trader buys lots on a market with a limited balance.
type Trader struct {
	initial  Money
	balance  Money
	holdings []Lot // in issuance order once settled
	settled  bool
}

// NewTrader returns a trader that can spend up to 'balance'.
func NewTrader(balance Money) *Trader {
	return &Trader{initial: balance, balance: balance}
}

func (t *Trader) Balance() Money  { return t.balance }
func (t *Trader) Initial() Money  { return t.initial }
func (t *Trader) Settled() bool   { return t.settled }
func (t *Trader) Holdings() []Lot { return append([]Lot(nil), t.holdings...) }
func (t *Trader) Spent() Money    { return t.initial.Sub(t.balance) }

// ranked is a lot with its evaluated income, so that the income is computed once per lot.
type ranked struct {
	lot    Lot
	income Money
}

// Buy buys the lots of the market, the most profitable first, and returns
// the lots bought in issuance order.
//
// Lots are ranked by income with a stable sort, so that lots with the same
// income are considered in issuance order. A lot the trader cannot afford is
// skipped for good. The ranking is by absolute income, not by income per
// money spent.
//
// The market is closed afterward. Buy only trades once: later calls return
// the same holdings.
func (t *Trader) Buy(m *Market) []Lot {
	if t.settled {
		return t.Holdings()
	}
	m.close()

	candidates := make([]ranked, 0, len(m.lots))
	for _, l := range m.lots {
		candidates = append(candidates, ranked{lot: l, income: m.EvaluateIncome(l)})
	}
	slices.SortStableFunc(candidates, func(a, b ranked) int {
		return b.income.Cmp(a.income)
	})

	for _, c := range candidates {
		if !c.lot.IsAffordable(t.balance) {
			continue
		}
		t.balance = t.balance.Sub(c.lot.price)
		t.holdings = append(t.holdings, c.lot)
	}

	slices.SortFunc(t.holdings, Lot.compareOrder)
	t.settled = true
	return t.Holdings()
}
