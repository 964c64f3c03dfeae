package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"portfoliotracker/internal/engine"

	"github.com/google/subcommands"
)

type tradesCmd struct{}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "count the trades recorded in the ledger" }
func (*tradesCmd) Usage() string {
	return `portfolio trades

  Prints the number of trades, distinct tickers, buys and sells in the ledger.
`
}

func (*tradesCmd) SetFlags(*flag.FlagSet) {}

func (*tradesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	ledger, err := a.engine.LoadTrades(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	s := engine.SummarizeTrades(ledger)
	fmt.Printf("Total Trades:          %d\n", s.Total)
	fmt.Printf("Tickers:               %d\n", s.UniqueTickers)
	fmt.Printf("Buys:                  %d\n", s.Buys)
	fmt.Printf("Sells:                 %d\n", s.Sells)
	return subcommands.ExitSuccess
}
