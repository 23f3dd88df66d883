package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/skybonds"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// mdOutline is what the tests check of a rendered document.
type mdOutline struct {
	headings []string
	tables   [][][]string // rows of cells, header included
}

func nodeText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			sb.Write(t.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

func outline(t *testing.T, doc string) mdOutline {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var o mdOutline
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Heading:
			o.headings = append(o.headings, nodeText(v, src))
			return ast.WalkSkipChildren, nil
		case *east.Table:
			var rows [][]string
			for r := v.FirstChild(); r != nil; r = r.NextSibling() {
				var cells []string
				for c := r.FirstChild(); c != nil; c = c.NextSibling() {
					cells = append(cells, strings.TrimSpace(nodeText(c, src)))
				}
				rows = append(rows, cells)
			}
			o.tables = append(o.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk markdown: %v", err)
	}
	return o
}

func sampleAllocation(t *testing.T) *skybonds.Allocation {
	t.Helper()
	terms := skybonds.DefaultTerms("RUB")
	m := skybonds.NewMarket(2, 2, terms)
	var f skybonds.LotFactory
	for _, line := range []string{"1 alfa-05 100.2 2", "2 gazprom-17 100.0 2", "2 alfa-05 101.5 5"} {
		l, err := skybonds.DecodeLot(&f, line, terms.BondRating)
		if err != nil {
			t.Fatalf("DecodeLot(%q): %v", line, err)
		}
		if err := m.Add(l); err != nil {
			t.Fatalf("Add(%q): %v", line, err)
		}
	}
	tr := skybonds.NewTrader(skybonds.M(8000, "RUB"))
	tr.Buy(m)
	return skybonds.NewAllocation(m, tr)
}

func TestAllocationMarkdown(t *testing.T) {
	o := outline(t, AllocationMarkdown(sampleAllocation(t)))

	if want := []string{"Trading Report", "Summary", "Holdings"}; strings.Join(o.headings, "|") != strings.Join(want, "|") {
		t.Errorf("headings = %q, want %q", o.headings, want)
	}
	if len(o.tables) != 2 {
		t.Fatalf("got %d tables, want 2", len(o.tables))
	}

	summary := o.tables[0]
	if got := summary[0][1]; got != "135" {
		t.Errorf("income cell = %q, want %q", got, "135")
	}
	if got := summary[len(summary)-1][1]; got != "2 of 3" {
		t.Errorf("lots bought cell = %q, want %q", got, "2 of 3")
	}

	holdings := o.tables[1]
	if len(holdings) != 3 { // header + 2 lots
		t.Fatalf("holdings table has %d rows, want 3", len(holdings))
	}
	wantRows := [][]string{
		{"2", "gazprom-17", "100.0", "2"},
		{"2", "alfa-05", "101.5", "5"},
	}
	for i, want := range wantRows {
		got := holdings[i+1][:4]
		if strings.Join(got, " ") != strings.Join(want, " ") {
			t.Errorf("holding row %d = %q, want %q", i, got, want)
		}
	}
	if got := holdings[2][5]; got != "75" {
		t.Errorf("income of alfa-05 = %q, want %q", got, "75")
	}
}

func TestAllocationMarkdown_Empty(t *testing.T) {
	m := skybonds.NewMarket(1, 1, skybonds.DefaultTerms("RUB"))
	tr := skybonds.NewTrader(skybonds.M(100, "RUB"))
	tr.Buy(m)
	doc := AllocationMarkdown(skybonds.NewAllocation(m, tr))

	o := outline(t, doc)
	if len(o.tables) != 1 {
		t.Errorf("got %d tables, want only the summary", len(o.tables))
	}
	if !strings.Contains(doc, "No lot bought.") {
		t.Errorf("missing empty holdings notice in:\n%s", doc)
	}
}
