// Command cgt computes FIFO capital gains from brokerage statements.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/capgains/cmd"
	"github.com/etnz/capgains/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion, COMP_INSTALL=1 cgt installs it.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"i":         predict.Dirs("*"),
		"o":         predict.Dirs("*"),
		"source":    predict.Set{cmd.SourceRobinhood, cmd.SourceAlpaca},
		"log-level": predict.Set{"debug", "info", "warn", "error"},
	},
	Sub: map[string]*complete.Command{
		"monthly": {Flags: map[string]complete.Predictor{
			"m":           predict.Something,
			"html":        predict.Files("*.html"),
			"json":        predict.Files("*.json"),
			"no-write":    predict.Nothing,
			"no-activity": predict.Nothing,
			"no-holdings": predict.Nothing,
		}},
		"yearly":   {Flags: map[string]complete.Predictor{"no-write": predict.Nothing}},
		"holdings": {},
		"trades":   {Flags: map[string]complete.Predictor{"term": predict.Set{"short", "long"}}},
		"topic":    {Args: predict.Set(topics())},
		"help":     {},
		"commands": {},
		"flags":    {},
	},
}

func topics() []string {
	all, _ := docs.GetAllTopics()
	return append(all, "*")
}

func main() {
	completion.Complete(path.Base(os.Args[0]))

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
