package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"portfoliotracker/internal/engine"

	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export every daily series of the portfolio as CSV" }
func (*exportCmd) Usage() string {
	return `portfolio export [-o <file>]

  Writes one row per trading day with portfolio profit, invested capital,
  yield and value, followed by close, dca, shares and profit per instrument.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file. Writes to stdout when empty.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, nil)
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
	if c.out == "" {
		err = engine.WriteSeriesCSV(os.Stdout, snap)
	} else {
		err = engine.WriteSeriesCSVFile(c.out, snap)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing csv: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
