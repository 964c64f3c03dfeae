package engine

import (
	"math"
	"portfoliotracker/types"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var baseDay = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// day returns the n-th day of January 2024.
func day(n int) time.Time {
	return baseDay.AddDate(0, 0, n-1)
}

func days(ns ...int) []time.Time {
	out := make([]time.Time, len(ns))
	for i, n := range ns {
		out[i] = day(n)
	}
	return out
}

func newBuy(ticker string, d time.Time, price, qty string) types.Trade {
	return types.NewTrade(d, ticker, decimal.RequireFromString(price), decimal.RequireFromString(qty), types.DirectionBuy)
}

func newSell(ticker string, d time.Time, price, qty string) types.Trade {
	return types.NewTrade(d, ticker, decimal.RequireFromString(price), decimal.RequireFromString(qty), types.DirectionSell)
}

// newSeries builds a daily series starting on day(1) with the given closes.
func newSeries(ticker string, closes ...string) types.PriceSeries {
	candles := make([]types.Candle, len(closes))
	for i, c := range closes {
		v := decimal.RequireFromString(c)
		candles[i] = types.Candle{
			Ticker:    ticker,
			Open:      v,
			High:      v,
			Low:       v,
			Close:     v,
			Timestamp: day(i + 1),
		}
	}
	return types.PriceSeries{Ticker: ticker, Symbol: ticker, Candles: candles}
}

func nan() float64 { return math.NaN() }

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func assertFloats(t *testing.T, name string, got, want []float64) {
	t.Helper()
	if !floatsEqual(got, want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}
