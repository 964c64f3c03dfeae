package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"portfoliotracker/internal/engine"

	"github.com/google/subcommands"
)

type summaryCmd struct {
	quiet bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio valuation summary" }
func (*summaryCmd) Usage() string {
	return `portfolio summary [-q]

  Loads the ledger and price history, builds a snapshot and prints totals,
  extremes, drawdown and per instrument figures.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.quiet, "q", false, "Hide the loading progress bar.")
}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, progressWriter(c.quiet))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	snap, err := a.service.GetOrBuild(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println()
	engine.PrintSummary(os.Stdout, snap, a.cfg.Currency)
	return subcommands.ExitSuccess
}
