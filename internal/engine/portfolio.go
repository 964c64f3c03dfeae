package engine

import (
	"fmt"
	"math"
	"portfoliotracker/types"

	"github.com/shopspring/decimal"
)

// AggregateProfit sums the profit series of the included instruments day by day.
// Every included series must have the same length.
func AggregateProfit(series map[string][]float64, include []string) ([]float64, error) {
	n, err := commonLength(series, include)
	if err != nil {
		return nil, err
	}
	total := make([]float64, n)
	for _, ticker := range include {
		for i, v := range series[ticker] {
			total[i] += v
		}
	}
	return total, nil
}

// InvestedSeries sums dca times shares over the equity instruments. The hedge is left
// out: capital is only ever allocated to equity positions.
func InvestedSeries(dca, shares map[string][]float64, equities []string) ([]float64, error) {
	n, err := commonLength(dca, equities)
	if err != nil {
		return nil, err
	}
	if m, err := commonLength(shares, equities); err != nil {
		return nil, err
	} else if m != n {
		return nil, fmt.Errorf("%w: dca length %d, shares length %d", ErrInputAlignment, n, m)
	}

	invested := make([]float64, n)
	for _, ticker := range equities {
		d, s := dca[ticker], shares[ticker]
		for i := 0; i < n; i++ {
			if math.IsNaN(d[i]) || s[i] <= 0 {
				continue
			}
			invested[i] += d[i] * s[i]
		}
	}
	return invested, nil
}

// YieldSeries divides profit by invested capital per day, zero where nothing is invested.
func YieldSeries(profit, invested []float64) ([]float64, error) {
	if len(profit) != len(invested) {
		return nil, fmt.Errorf("%w: %d profit points, %d invested points", ErrInputAlignment, len(profit), len(invested))
	}
	yield := make([]float64, len(profit))
	for i := range profit {
		if invested[i] == 0 {
			continue
		}
		yield[i] = profit[i] / invested[i]
	}
	return yield, nil
}

// PortfolioMetrics totals the per instrument metrics. Invested capital and current value
// come from equities only, profit includes the hedge when asked to.
func PortfolioMetrics(instruments []types.InstrumentData, includeHedge bool) types.PerformanceMetrics {
	invested := decimal.Zero
	current := decimal.Zero
	profit := decimal.Zero
	for _, inst := range instruments {
		if inst.IsHedge() {
			if includeHedge {
				profit = profit.Add(inst.Metrics.ProfitAbsolute)
			}
			continue
		}
		invested = invested.Add(inst.Metrics.Invested)
		current = current.Add(inst.Metrics.CurrentValue)
		profit = profit.Add(inst.Metrics.ProfitAbsolute)
	}

	returnPct := decimal.Zero
	if invested.GreaterThan(decimal.Zero) {
		returnPct = profit.Div(invested).Mul(hundred)
	}
	return types.PerformanceMetrics{
		Invested:         invested,
		CurrentValue:     current,
		ProfitAbsolute:   profit,
		ReturnPercentage: returnPct,
		AverageBuyPrice:  decimal.Zero,
	}
}

// SnapshotProfitSeries recomputes the total profit of a snapshot with or without the hedge.
func SnapshotProfitSeries(snap *types.PortfolioSnapshot, includeHedge bool) ([]float64, error) {
	series := make(map[string][]float64, len(snap.Instruments))
	var include []string
	for _, inst := range snap.Instruments {
		series[inst.Ticker] = inst.Profit
		if inst.IsHedge() && !includeHedge {
			continue
		}
		include = append(include, inst.Ticker)
	}
	return AggregateProfit(series, include)
}

// ValueSeries adds invested capital and profit into the portfolio value of each day.
func ValueSeries(invested, profit []float64) ([]float64, error) {
	if len(profit) != len(invested) {
		return nil, fmt.Errorf("%w: %d profit points, %d invested points", ErrInputAlignment, len(profit), len(invested))
	}
	value := make([]float64, len(profit))
	for i := range profit {
		value[i] = invested[i] + profit[i]
	}
	return value, nil
}

func commonLength(series map[string][]float64, include []string) (int, error) {
	n := -1
	for _, ticker := range include {
		s, ok := series[ticker]
		if !ok {
			return 0, fmt.Errorf("%w: no series for %s", ErrInputAlignment, ticker)
		}
		if n == -1 {
			n = len(s)
			continue
		}
		if len(s) != n {
			return 0, fmt.Errorf("%w: %s has %d points, want %d", ErrInputAlignment, ticker, len(s), n)
		}
	}
	if n == -1 {
		return 0, nil
	}
	return n, nil
}
