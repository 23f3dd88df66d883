package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/skybonds"
	md "github.com/nao1215/markdown"
)

// AllocationMarkdown renders a trading run outcome: totals first, then the
// lots bought in issuance order.
func AllocationMarkdown(a *skybonds.Allocation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Trading Report")
	doc.PlainText(fmt.Sprintf("Issuance period of %d days, %d days to maturity, up to %d lots a day.",
		a.TradingPeriod, a.TotalPeriod, a.LotsPerDay))

	doc.H2("Summary")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Income"),
			md.Bold(a.RoundedIncome().Decimal().String()),
		},
		Rows: [][]string{
			{"Initial Balance", a.Initial.String()},
			{"Spent", a.Spent().String()},
			{"Remaining Balance", a.Balance.String()},
			{"Lots Bought", fmt.Sprintf("%d of %d", len(a.Holdings), a.Offered)},
		},
	})

	doc.H2("Holdings")
	if len(a.Holdings) == 0 {
		doc.PlainText("No lot bought.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Day", "Bond", "Price %", "Amount", "Price", "Income"},
		Rows:   [][]string{},
	}
	for _, h := range a.Holdings {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(h.Day()),
			h.Name(),
			h.PricePercent().String(),
			strconv.Itoa(h.Amount()),
			h.Price().String(),
			h.Income.Decimal().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
