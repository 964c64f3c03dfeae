package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceSeries is the daily history of one instrument, ordered by date.
// Symbol is the market-data symbol, Ticker the name used by the trade ledger.
type PriceSeries struct {
	Ticker  string    `json:"ticker"`
	Symbol  string    `json:"symbol"`
	Candles []Candle  `json:"candles"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

func (s PriceSeries) Len() int {
	return len(s.Candles)
}

// Dates returns the date axis of the series.
func (s PriceSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s.Candles))
	for i, c := range s.Candles {
		dates[i] = c.Timestamp
	}
	return dates
}

// Closes returns the close prices as floats, aligned with Dates.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Candles))
	for i, c := range s.Candles {
		closes[i] = c.Close.InexactFloat64()
	}
	return closes
}

// LatestClose returns the last close, or zero for an empty series.
func (s PriceSeries) LatestClose() decimal.Decimal {
	if len(s.Candles) == 0 {
		return decimal.Zero
	}
	return s.Candles[len(s.Candles)-1].Close
}
