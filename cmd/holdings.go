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

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the open lots at the end of the history" }
func (*holdingsCmd) Usage() string {
	return `cgt holdings

  Displays, per symbol, the quantity still held and its FIFO cost basis.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, txs, logger, err := loadFeed(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements: %v\n", err)
		return subcommands.ExitFailure
	}
	m := capgains.NewMatcher(capgains.WithLogger(logger))
	m.Replay(txs)
	printMarkdown(renderer.HoldingsMarkdown(m.Queue().Holdings()))
	return subcommands.ExitSuccess
}
