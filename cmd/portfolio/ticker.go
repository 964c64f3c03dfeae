package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"portfoliotracker/internal/engine"
	"portfoliotracker/types"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type tickerCmd struct {
	ticker    string
	timeframe string
	quiet     bool
}

func (*tickerCmd) Name() string     { return "ticker" }
func (*tickerCmd) Synopsis() string { return "display the analysis of one tracked instrument" }
func (*tickerCmd) Usage() string {
	return `portfolio ticker -t <ticker> [-tf All|1M|3M|6M|1Y] [-q]

  Prints the instrument metrics, the profit and price extremes over the
  selected timeframe, and the profit of every buy and sell in the ledger.
`
}

func (c *tickerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ledger ticker of the instrument, e.g. VUAA.EU.")
	f.StringVar(&c.timeframe, "tf", string(types.TimeframeAll), "Timeframe of the extremes: All, 1M, 3M, 6M or 1Y.")
	f.BoolVar(&c.quiet, "q", false, "Hide the loading progress bar.")
}

func (c *tickerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required.")
		return subcommands.ExitUsageError
	}
	tf, ok := types.ConvertTimeframe[c.timeframe]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown timeframe %q\n", c.timeframe)
		return subcommands.ExitUsageError
	}

	a, err := openApp(ctx, progressWriter(c.quiet))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	inst, err := a.service.Instrument(ctx, c.ticker)
	if errors.Is(err, engine.ErrUnknownInstrument) {
		fmt.Fprintf(os.Stderr, "Error: %s is not tracked\n", c.ticker)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := a.engine.LoadTrades(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Println()
	if err := printTicker(os.Stdout, inst, types.GroupByTicker(ledger)[c.ticker], tf, a.cfg.Currency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printTicker(w io.Writer, inst types.InstrumentData, trades []types.Trade, tf types.Timeframe, currency string) error {
	engine.PrintInstrument(w, inst, currency)

	dates := inst.Prices.Dates()
	profit, err := engine.WindowExtrema(dates, inst.Profit, tf)
	if err != nil {
		return fmt.Errorf("profit extremes: %w", err)
	}
	price, err := engine.WindowExtrema(dates, inst.Prices.Closes(), tf)
	if err != nil {
		return fmt.Errorf("price extremes: %w", err)
	}
	fmt.Fprintf(w, "\n-- Extremes (%s) --\n", tf)
	fmt.Fprintf(w, "Max Profit:            %.2f on %s\n", profit.Max.Value, profit.Max.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "Min Profit:            %.2f on %s\n", profit.Min.Value, profit.Min.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "High:                  %.2f on %s\n", price.Max.Value, price.Max.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "Low:                   %.2f on %s\n", price.Min.Value, price.Min.Date.Format(time.DateOnly))

	if len(trades) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\n-- Trades --")
	latest := inst.LatestPrice()
	avg := inst.Metrics.AverageBuyPrice
	total := decimal.Zero
	for _, t := range trades {
		pnl := engine.TradePnL(t, latest, avg)
		total = total.Add(pnl)
		fmt.Fprintf(w, "%s  %-4s  %10s @ %-10s  P&L %s\n",
			t.Date.Format(time.DateOnly), t.Direction, t.Quantity.String(), t.Price.StringFixed(2), pnl.StringFixed(2))
	}
	fmt.Fprintf(w, "Total P&L:             %s\n", total.StringFixed(2))
	return nil
}
