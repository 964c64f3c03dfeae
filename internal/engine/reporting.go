package engine

import (
	"fmt"
	"io"
	"portfoliotracker/types"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// PrintSummary writes a human readable summary of snap to w.
func PrintSummary(w io.Writer, snap *types.PortfolioSnapshot, currency string) {
	m := snap.Total

	fmt.Fprintln(w, "===== Portfolio Summary =====")
	fmt.Fprintf(w, "As Of:                 %s\n", snap.AsOf.Format(time.DateOnly))
	if len(snap.Dates) > 0 {
		fmt.Fprintf(w, "Period:                %s .. %s (%d days)\n",
			snap.Dates[0].Format(time.DateOnly), snap.Dates[len(snap.Dates)-1].Format(time.DateOnly), len(snap.Dates))
	}
	fmt.Fprintf(w, "Hedge In Profit:       %t\n", snap.IncludeHedge)

	fmt.Fprintln(w, "\n-- Totals --")
	fmt.Fprintf(w, "Invested:              %s\n", formatDecimal(m.Invested, currency))
	fmt.Fprintf(w, "Current Value:         %s\n", formatDecimal(m.CurrentValue, currency))
	fmt.Fprintf(w, "Profit/Loss:           %s\n", formatDecimal(m.ProfitAbsolute, currency))
	fmt.Fprintf(w, "Return:                %s%%\n", m.ReturnPercentage.StringFixed(2))

	fmt.Fprintln(w, "\n-- Extremes --")
	fmt.Fprintf(w, "Max Profit:            %s on %s\n", formatMoney(snap.ProfitExtrema.Max.Value, currency), snap.ProfitExtrema.Max.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "Min Profit:            %s on %s\n", formatMoney(snap.ProfitExtrema.Min.Value, currency), snap.ProfitExtrema.Min.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "Max Yield:             %.2f%% on %s\n", snap.YieldExtrema.Max.Value*100, snap.YieldExtrema.Max.Date.Format(time.DateOnly))
	fmt.Fprintf(w, "Min Yield:             %.2f%% on %s\n", snap.YieldExtrema.Min.Value*100, snap.YieldExtrema.Min.Date.Format(time.DateOnly))

	fmt.Fprintln(w, "\n-- Drawdown --")
	fmt.Fprintf(w, "Max Drawdown:          %s\n", formatMoney(snap.MaxDrawdown.Amount, currency))
	fmt.Fprintf(w, "Max Drawdown %%:        %.2f\n", snap.MaxDrawdown.Percent*100)
	fmt.Fprintf(w, "Max Drawdown Days:     %d\n", int(snap.MaxDrawdown.Duration/(24*time.Hour)))

	fmt.Fprintln(w, "\n-- Instruments --")
	for _, inst := range snap.Instruments {
		PrintInstrument(w, inst, currency)
	}
	fmt.Fprintln(w, "=============================")
}

// PrintInstrument writes the block for one instrument to w.
func PrintInstrument(w io.Writer, inst types.InstrumentData, currency string) {
	m := inst.Metrics
	fmt.Fprintf(w, "%s (%s)\n", inst.Ticker, inst.Role)
	fmt.Fprintf(w, "  Price:               %s (%s%%)\n", formatDecimal(inst.LatestPrice(), currency), inst.PriceChangePercent().StringFixed(2))
	fmt.Fprintf(w, "  Shares:              %s\n", decimal.NewFromFloat(inst.TotalShares()).String())
	fmt.Fprintf(w, "  Avg Buy Price:       %s\n", formatDecimal(m.AverageBuyPrice, currency))
	fmt.Fprintf(w, "  Invested:            %s\n", formatDecimal(m.Invested, currency))
	fmt.Fprintf(w, "  Profit/Loss:         %s (%s%%)\n", formatDecimal(m.ProfitAbsolute, currency), m.ReturnPercentage.StringFixed(2))
	if len(inst.Unmatched) > 0 {
		fmt.Fprintf(w, "  Unmatched Trades:    %d\n", len(inst.Unmatched))
	}
}

func formatDecimal(v decimal.Decimal, currency string) string {
	return formatMoney(v.InexactFloat64(), currency)
}

func formatMoney(v float64, currency string) string {
	return money.NewFromFloat(v, currency).Display()
}
