package engine

import (
	"math"
	"portfoliotracker/types"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// CostBasis holds the running weighted average cost and the cumulative shares of one
// instrument, both aligned with the price axis they were computed against.
type CostBasis struct {
	DCA    []float64
	Shares []float64
	// Unmatched are the buys that never landed on the axis and were left out.
	Unmatched []types.Trade
}

// ComputeDCA walks the price axis and absorbs every buy on the same calendar day before
// emitting that day's cost basis. A buy on a day missing from the axis is skipped.
func ComputeDCA(dates []time.Time, buys []types.Trade) CostBasis {
	return ComputeDCAWithPolicy(dates, buys, UnmatchedSkip)
}

func ComputeDCAWithPolicy(dates []time.Time, buys []types.Trade, policy UnmatchedTradePolicy) CostBasis {
	sorted := sortedBuys(buys)

	cb := CostBasis{
		DCA:    make([]float64, len(dates)),
		Shares: make([]float64, len(dates)),
	}
	cumulativeCost := decimal.Zero
	cumulativeShares := decimal.Zero

	absorb := func(t types.Trade) {
		cumulativeCost = cumulativeCost.Add(t.TotalValue())
		cumulativeShares = cumulativeShares.Add(t.Quantity)
	}

	next := 0
	for i, date := range dates {
		// Trades left behind by the axis: the day was never a trading day.
		for next < len(sorted) && types.DayBefore(sorted[next].Date, date) {
			if policy == UnmatchedRollForward {
				absorb(sorted[next])
			} else {
				cb.Unmatched = append(cb.Unmatched, sorted[next])
			}
			next++
		}
		for next < len(sorted) && types.SameDay(sorted[next].Date, date) {
			absorb(sorted[next])
			next++
		}

		if cumulativeShares.GreaterThan(decimal.Zero) {
			cb.DCA[i] = cumulativeCost.Div(cumulativeShares).InexactFloat64()
		} else {
			cb.DCA[i] = math.NaN()
		}
		cb.Shares[i] = cumulativeShares.InexactFloat64()
	}
	// Anything after the last axis date is lost under every policy.
	cb.Unmatched = append(cb.Unmatched, sorted[next:]...)

	return cb
}

// sortedBuys copies the buy trades out of trades, ordered by date. Same day trades keep
// their ledger order.
func sortedBuys(trades []types.Trade) []types.Trade {
	buys := types.BuyTrades(trades)
	sort.SliceStable(buys, func(i, j int) bool { return buys[i].Date.Before(buys[j].Date) })
	return buys
}

// getAxisRange returns the first and last day covered by a date axis.
func getAxisRange(dates []time.Time) (time.Time, time.Time) {
	if len(dates) == 0 {
		return time.Time{}, time.Time{}
	}
	minStart := dates[0]
	maxEnd := dates[0]
	for _, d := range dates[1:] {
		if d.Before(minStart) {
			minStart = d
		}
		if d.After(maxEnd) {
			maxEnd = d
		}
	}
	return minStart, maxEnd
}
