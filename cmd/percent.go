package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/skybonds"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type percentCmd struct{}

func (*percentCmd) Name() string     { return "percent" }
func (*percentCmd) Synopsis() string { return "convert fractions to their share of the total" }
func (*percentCmd) Usage() string {
	return `sky percent

  Reads the number of fractions, then one fraction per line, and prints the
  share of each fraction in their sum with 3 decimals.
  Invalid values are reported and read again.

Usage Examples:
$ printf '2\n0.5\n1.5\n' | sky percent
0.250
0.750

`
}

func (*percentCmd) SetFlags(f *flag.FlagSet) {}

func (c *percentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, log, err := setup(c.Name())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fractions, err := readFractions(os.Stdin, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, share := range skybonds.FractionPercents(fractions) {
		fmt.Println(skybonds.FormatFraction(share))
	}
	return subcommands.ExitSuccess
}

// readFractions reads the fraction count then the fractions, reading again
// every invalid line.
func readFractions(r io.Reader, log zerolog.Logger) ([]decimal.Decimal, error) {
	lines := newLineReader(r)

	count := 0
	for {
		line, err := lines.Next()
		if err != nil {
			return nil, fmt.Errorf("reading the fraction count: %w", unexpectedEOF(err))
		}
		if count, err = skybonds.ParseFractionCount(line); err == nil {
			break
		}
		log.Error().Err(err).Int("line", lines.N()).Msg("cannot read fraction count")
	}

	// count comes from the input, it only hints the capacity.
	fractions := make([]decimal.Decimal, 0, min(count, 1024))
	for len(fractions) < count {
		line, err := lines.Next()
		if err != nil {
			return nil, fmt.Errorf("reading fraction %d of %d: %w", len(fractions)+1, count, unexpectedEOF(err))
		}
		f, err := skybonds.ParseFraction(line)
		if err != nil {
			log.Error().Err(err).Int("line", lines.N()).Msg("cannot read fraction")
			continue
		}
		fractions = append(fractions, f)
	}
	return fractions, nil
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
