package skybonds

import (
	"errors"
	"slices"
	"testing"
)

func TestMarket_Add(t *testing.T) {
	m := NewMarket(2, 2, DefaultTerms("RUB"))
	lots := decodeAll(t,
		"1 alfa-05 100.2 2",
		"2 gazprom-17 100.0 2",
		"2 alfa-05 101.5 5",
		"2 gazprom-17 102.0 1", // day 2 is full
		"3 gazprom-17 103.0 1", // after the issuance period
		"0 gazprom-17 103.0 1", // before the issuance period
		"1 gazprom-17 96.0 100",
	)

	wantErr := []error{nil, nil, nil, &BondsExceededError{}, &DayOutOfRangeError{}, &DayOutOfRangeError{}, nil}
	for i, l := range lots {
		err := m.Add(l)
		switch want := wantErr[i].(type) {
		case nil:
			if err != nil {
				t.Errorf("Add(%q) unexpected error: %v", l, err)
			}
		case *BondsExceededError:
			if !errors.As(err, &want) {
				t.Errorf("Add(%q) = %v, want a BondsExceededError", l, err)
			} else if want.Limit != 2 || want.Day != 2 {
				t.Errorf("Add(%q) = %+v, want day 2 and limit 2", l, want)
			}
		case *DayOutOfRangeError:
			if !errors.As(err, &want) {
				t.Errorf("Add(%q) = %v, want a DayOutOfRangeError", l, err)
			} else if want.First != 1 || want.Last != 2 {
				t.Errorf("Add(%q) = %+v, want range [1-2]", l, want)
			}
		}
		if wantErr[i] != nil && !errors.Is(err, ErrInapplicableLot) {
			t.Errorf("Add(%q) = %v, should be an ErrInapplicableLot", l, err)
		}
	}

	if got, want := encodeAll(m.Lots()), []string{
		"1 alfa-05 100.2 2",
		"2 gazprom-17 100.0 2",
		"2 alfa-05 101.5 5",
		"1 gazprom-17 96.0 100",
	}; !slices.Equal(got, want) {
		t.Errorf("Lots() = %q, want %q", got, want)
	}
	if m.IssuedOn(1) != 2 || m.IssuedOn(2) != 2 || m.IssuedOn(3) != 0 {
		t.Errorf("IssuedOn = [%d %d %d], want [2 2 0]", m.IssuedOn(1), m.IssuedOn(2), m.IssuedOn(3))
	}
}

func TestMarket_AddRefusedLeavesMarketUntouched(t *testing.T) {
	m := NewMarket(1, 1, DefaultTerms("RUB"))
	lots := decodeAll(t, "1 a 100 1", "1 b 100 1")
	if err := m.Add(lots[0]); err != nil {
		t.Fatalf("Add unexpected error: %v", err)
	}
	if err := m.Add(lots[1]); err == nil {
		t.Fatalf("Add should refuse a second lot on day 1")
	}
	if m.Len() != 1 || m.IssuedOn(1) != 1 {
		t.Errorf("after refusal Len()=%d IssuedOn(1)=%d, want 1 and 1", m.Len(), m.IssuedOn(1))
	}
}

func TestMarket_AddClosed(t *testing.T) {
	m := NewMarket(1, 2, DefaultTerms("RUB"))
	NewTrader(RUB(0)).Buy(m)
	if err := m.Add(decodeAll(t, "1 a 100 1")[0]); !errors.Is(err, ErrMarketClosed) {
		t.Errorf("Add on a closed market = %v, want ErrMarketClosed", err)
	}
}

func TestMarket_EvaluateIncome(t *testing.T) {
	m := NewMarket(2, 10, DefaultTerms("RUB"))
	testCases := []struct {
		lot  string
		want string
	}{
		{"1 alfa-05 100.2 2", "58"},       // (31 - 2) * 2
		{"2 gazprom-17 100.0 2", "60"},    // (30 - 0) * 2
		{"2 alfa-05 101.5 5", "75"},       // (30 - 15) * 5
		{"1 gazprom-17 96.0 100", "7100"}, // (31 + 40) * 100
		{"1 junk 110.0 1", "-69"},         // (31 - 100) * 1
		{"2 odd 100.05 1", "29.5"},        // (30 - 0.5) * 1
	}
	for _, tc := range testCases {
		l := decodeAll(t, tc.lot)[0]
		got := m.EvaluateIncome(l)
		if !got.Decimal().Equal(dec(tc.want)) {
			t.Errorf("EvaluateIncome(%q) = %v, want %v", tc.lot, got.Decimal(), tc.want)
		}
		if again := m.EvaluateIncome(l); !again.Equal(got) {
			t.Errorf("EvaluateIncome(%q) is not deterministic: %v then %v", tc.lot, got, again)
		}
	}
}

func TestMarket_EvaluateIncomeTerms(t *testing.T) {
	terms := Terms{RepaymentPeriod: 10, BondRating: RUB(500), DailyIncome: M(dec("0.5"), "RUB")}
	m := NewMarket(5, 1, terms)
	l := new(LotFactory).Create(5, P(dec("101")), "x", 4, terms.BondRating)
	// overpayment 5, 10 days left at 0.5 a day.
	if got := m.EvaluateIncome(l); !got.Decimal().Equal(dec("0")) {
		t.Errorf("EvaluateIncome = %v, want 0", got.Decimal())
	}
	if m.TotalTradingPeriod() != 15 {
		t.Errorf("TotalTradingPeriod() = %d, want 15", m.TotalTradingPeriod())
	}
}
