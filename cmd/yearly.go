package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

type yearlyCmd struct {
	noWrite bool
}

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "write yearly capital gains and fees reports" }
func (*yearlyCmd) Usage() string {
	return `cgt yearly [-no-write]

  Matches the whole history once and reports, for every year, the trades closed
  that year and the fees paid. They are written to <output dir>/<YYYY>.csv and
  <output dir>/<YYYY>-fees.csv.
`
}

func (c *yearlyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noWrite, "no-write", false, "Do not write the CSV files")
}

func (c *yearlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, txs, logger, err := loadFeed(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}

	exporter := capgains.Exporter{
		Dir:        cfg.Outputs,
		WriteFiles: !c.noWrite,
		Callback: func(_ context.Context, period string, trades []capgains.ClosedTrade, fees []capgains.FeeRecord) error {
			logger.Info().Str("year", period).Int("trades", len(trades)).Int("fees", len(fees)).Msg("exported year")
			return nil
		},
	}
	var md strings.Builder
	for _, yr := range capgains.YearlyReports(txs, capgains.WithLogger(logger)) {
		if err := exporter.Export(ctx, date.Yearly.Key(date.New(yr.Year, time.January, 1)), yr.Trades, yr.Fees); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %d: %v\n", yr.Year, err)
			return subcommands.ExitFailure
		}
		md.WriteString(renderer.YearMarkdown(yr))
		md.WriteString("\n")
	}
	printMarkdown(md.String())
	return subcommands.ExitSuccess
}
