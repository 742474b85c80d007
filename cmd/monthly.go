package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/date"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

type monthlyCmd struct {
	month      string
	html       string
	json       string
	noWrite    bool
	noActivity bool
	noHoldings bool
}

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display monthly statements of realized gains" }
func (*monthlyCmd) Usage() string {
	return `cgt monthly [-m <M/YYYY>] [-html <file>] [-json <file>] [-no-write] [-no-activity] [-no-holdings]

  Displays a statement for every month of the history: income, fees, cash movements,
  activity, holdings at month end and realized gains by term and by symbol.
  The closed trades of each month are written to <output dir>/<YYYY>-<MM>.csv.
  With -json, the displayed statements are also written as a JSON array.
`
}

func (c *monthlyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", "", "Only display this month (M/YYYY)")
	f.StringVar(&c.html, "html", "", "Also write the statements as an HTML page into this file")
	f.StringVar(&c.json, "json", "", "Also write the statements as JSON into this file")
	f.BoolVar(&c.noWrite, "no-write", false, "Do not write the CSV files")
	f.BoolVar(&c.noActivity, "no-activity", false, "Do not display the buy and sell activity")
	f.BoolVar(&c.noHoldings, "no-holdings", false, "Do not display the holdings at month end")
}

func (c *monthlyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var only date.Month
	if c.month != "" {
		m, err := date.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		only = m
	}

	cfg, txs, logger, err := loadFeed(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}

	statements, err := capgains.MonthlyStatements(txs, capgains.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing monthly statements: %v\n", err)
		return subcommands.ExitFailure
	}

	exporter := capgains.Exporter{Dir: cfg.Outputs, WriteFiles: !c.noWrite}
	opts := renderer.StatementRenderOptions{SkipActivity: c.noActivity, SkipHoldings: c.noHoldings}
	var md strings.Builder
	var views []*renderer.Statement
	for _, ms := range statements {
		if !only.IsZero() && ms.Month != only {
			continue
		}
		view := renderer.NewStatement(ms)
		views = append(views, view)
		md.WriteString(renderer.RenderStatement(view, opts))
		md.WriteString("\n---\n\n")

		if err := exporter.Export(ctx, date.Monthly.Key(ms.Month.Range().From), ms.Trades, nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting %s: %v\n", ms.Month, err)
			return subcommands.ExitFailure
		}
	}
	if md.Len() == 0 {
		fmt.Fprintln(os.Stderr, "No statement to display")
		return subcommands.ExitFailure
	}
	printMarkdown(md.String())

	if c.html != "" {
		page, err := renderer.HTMLPage("Monthly Statements", md.String())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering HTML: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.html, []byte(page), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.html, err)
			return subcommands.ExitFailure
		}
		logger.Info().Str("file", c.html).Msg("wrote html statements")
	}

	if c.json != "" {
		if err := writeJSON(c.json, views); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.json, err)
			return subcommands.ExitFailure
		}
		logger.Info().Str("file", c.json).Msg("wrote json statements")
	}
	return subcommands.ExitSuccess
}

// writeJSON writes the statements into the named file.
func writeJSON(name string, views []*renderer.Statement) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return renderer.WriteStatementsJSON(f, views)
}
