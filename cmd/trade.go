package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/etnz/skybonds"
	"github.com/etnz/skybonds/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Formats are the output formats of the trade subcommand.
var Formats = []string{"text", "json", "markdown"}

var errNoInitialData = errors.New("input ended before the initial data")

// tradeCmd holds the flags for the 'trade' subcommand.
type tradeCmd struct {
	format string
	raw    bool
}

func (*tradeCmd) Name() string     { return "trade" }
func (*tradeCmd) Synopsis() string { return "select the most profitable lots a balance can buy" }
func (*tradeCmd) Usage() string {
	return `sky trade [-format text|json|markdown] [-raw]

  Reads the market from the standard input and prints the income at the end
  of the trading period followed by the lots to buy.

  The first line is "<trading period> <lots per day> <balance>", then one lot
  per line "<day> <bond name> <price percent> <amount>", until an empty line
  or the end of the input.

Usage Examples:
$ printf '2 2 8000\n1 alfa-05 100.2 2\n2 gazprom-17 100.0 2\n' | sky trade

`
}

func (c *tradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "text", "Output format: "+strings.Join(Formats, ", "))
	f.BoolVar(&c.raw, "raw", false, "print markdown without rendering it for the terminal")
}

func (c *tradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !slices.Contains(Formats, c.format) {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, should be one of %s\n", c.format, strings.Join(Formats, ", "))
		return subcommands.ExitUsageError
	}

	cfg, log, err := setup(c.Name())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	terms, err := cfg.Terms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid market terms: %v\n", err)
		return subcommands.ExitFailure
	}

	a, err := trade(os.Stdin, terms, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeAllocation(os.Stdout, a, c.format, c.raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing the result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// trade reads the market from r, then lets a trader buy from it.
//
// A malformed initial data line is logged and the next line is read instead.
// Malformed and inapplicable lots are logged and skipped.
func trade(r io.Reader, terms skybonds.Terms, log zerolog.Logger) (*skybonds.Allocation, error) {
	lines := newLineReader(r)

	var data skybonds.InitialData
	for {
		line, err := lines.Next()
		if errors.Is(err, io.EOF) {
			return nil, errNoInitialData
		}
		if err != nil {
			return nil, fmt.Errorf("reading initial data: %w", err)
		}
		data, err = skybonds.ParseInitialData(line)
		if err == nil {
			break
		}
		log.Error().Err(err).Int("line", lines.N()).Msg("cannot read initial data")
	}
	log.Debug().Int("tradingPeriod", data.TradingPeriod).Int("lotsPerDay", data.LotsPerDay).
		Stringer("balance", data.Balance).Msg("market opened")

	market := skybonds.NewMarket(data.TradingPeriod, data.LotsPerDay, terms)
	trader := skybonds.NewTrader(skybonds.M(data.Balance, terms.BondRating.Currency()))

	var factory skybonds.LotFactory
	for {
		line, err := lines.Next()
		if errors.Is(err, io.EOF) || (err == nil && line == "") {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading lots: %w", err)
		}

		lot, err := skybonds.DecodeLot(&factory, line, terms.BondRating)
		if err != nil {
			log.Error().Err(err).Int("line", lines.N()).Msg("cannot read lot")
			continue
		}
		if err := market.Add(lot); err != nil {
			log.Error().Err(err).Int("line", lines.N()).Stringer("lot", lot).Msg("lot refused")
			continue
		}
		log.Debug().Int("line", lines.N()).Int("order", lot.Order()).Stringer("lot", lot).Msg("lot issued")
	}

	holdings := trader.Buy(market)
	log.Debug().Int("offered", market.Len()).Int("bought", len(holdings)).
		Stringer("balance", trader.Balance()).Msg("trader settled")
	return skybonds.NewAllocation(market, trader), nil
}

// writeAllocation prints a in the given format.
func writeAllocation(w io.Writer, a *skybonds.Allocation, format string, raw bool) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "markdown":
		return printMarkdown(w, renderer.AllocationMarkdown(a), raw)
	default:
		if _, err := fmt.Fprintln(w, a.RoundedIncome().Decimal()); err != nil {
			return err
		}
		for _, l := range a.Lots() {
			if _, err := fmt.Fprintln(w, skybonds.EncodeLot(l)); err != nil {
				return err
			}
		}
		return nil
	}
}
