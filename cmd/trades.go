package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

type tradesCmd struct {
	term string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "list all closed trades" }
func (*tradesCmd) Usage() string {
	return `cgt trades [-term short|long]

  Lists every closed trade of the history, in the order they were matched.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.term, "term", "", "Only list trades of this holding term (short, long)")
}

func (c *tradesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var filter func(capgains.ClosedTrade) bool
	if c.term != "" {
		term, err := capgains.ParseHoldingTerm(c.term)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing term: %v\n", err)
			return subcommands.ExitUsageError
		}
		filter = func(t capgains.ClosedTrade) bool { return t.Term() == term }
	}

	_, txs, logger, err := loadFeed(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	m := capgains.NewMatcher(capgains.WithLogger(logger))
	m.Replay(txs)

	trades := m.ClosedTrades()
	if filter != nil {
		var kept []capgains.ClosedTrade
		for _, t := range trades {
			if filter(t) {
				kept = append(kept, t)
			}
		}
		trades = kept
	}
	printMarkdown(renderer.TradesMarkdown(trades))
	return subcommands.ExitSuccess
}
