package engine

import (
	"portfoliotracker/types"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputePerformanceMetrics values the buy trades at currentPrice. Ratios with a zero
// denominator are zero, so no buys at all yields all-zero metrics.
func ComputePerformanceMetrics(buys []types.Trade, currentPrice decimal.Decimal) types.PerformanceMetrics {
	totalInvested := decimal.Zero
	totalShares := decimal.Zero
	for _, t := range buys {
		if !t.IsBuy() {
			continue
		}
		totalInvested = totalInvested.Add(t.TotalValue())
		totalShares = totalShares.Add(t.Quantity)
	}

	avgBuyPrice := decimal.Zero
	if totalShares.GreaterThan(decimal.Zero) {
		avgBuyPrice = totalInvested.Div(totalShares)
	}

	currentValue := totalShares.Mul(currentPrice)
	profit := currentValue.Sub(totalInvested)

	returnPct := decimal.Zero
	if totalInvested.GreaterThan(decimal.Zero) {
		returnPct = profit.Div(totalInvested).Mul(hundred)
	}

	return types.PerformanceMetrics{
		Invested:         totalInvested,
		CurrentValue:     currentValue,
		ProfitAbsolute:   profit,
		ReturnPercentage: returnPct,
		AverageBuyPrice:  avgBuyPrice,
	}
}

// TradePnL marks a single ledger trade to market. A buy is worth its shares at
// latestClose, a sell realized its price against the average buy price.
func TradePnL(t types.Trade, latestClose, avgBuyPrice decimal.Decimal) decimal.Decimal {
	if t.IsBuy() {
		return latestClose.Sub(t.Price).Mul(t.Quantity)
	}
	if avgBuyPrice.IsZero() {
		return decimal.Zero
	}
	return t.Price.Sub(avgBuyPrice).Mul(t.Quantity)
}

// SummarizeTrades counts the ledger. Anything that is not a buy counts as a sell.
func SummarizeTrades(trades []types.Trade) types.TradeSummary {
	tickers := make(map[string]struct{})
	summary := types.TradeSummary{Total: len(trades)}
	for _, t := range trades {
		tickers[t.Ticker] = struct{}{}
		if t.IsBuy() {
			summary.Buys++
		} else {
			summary.Sells++
		}
	}
	summary.UniqueTickers = len(tickers)
	return summary
}
