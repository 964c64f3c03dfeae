package types

import (
	"math"

	"github.com/shopspring/decimal"
)

// InstrumentData holds everything computed for one tracked instrument.
// DCA, Shares and Profit are aligned with Prices.Candles.
type InstrumentData struct {
	Ticker        string             `json:"ticker"`
	Role          InstrumentRole     `json:"role"`
	Prices        PriceSeries        `json:"prices"`
	DCA           []float64          `json:"-"`
	Shares        []float64          `json:"shares"`
	Profit        []float64          `json:"profit"`
	BuyTrades     []Trade            `json:"buyTrades"`
	Unmatched     []Trade            `json:"unmatched"`
	Metrics       PerformanceMetrics `json:"metrics"`
	ProfitExtrema Extrema            `json:"profitExtrema"`
	PriceExtrema  Extrema            `json:"priceExtrema"`
}

func (d InstrumentData) IsHedge() bool {
	return d.Role == RoleHedge
}

func (d InstrumentData) HasTrades() bool {
	return len(d.BuyTrades) > 0
}

func (d InstrumentData) LatestPrice() decimal.Decimal {
	return d.Prices.LatestClose()
}

// TotalShares is the shares held on the last date of the axis.
func (d InstrumentData) TotalShares() float64 {
	if len(d.Shares) == 0 {
		return 0
	}
	return d.Shares[len(d.Shares)-1]
}

// CurrentDCA is the cost basis on the last date, zero while no shares are held.
func (d InstrumentData) CurrentDCA() float64 {
	if len(d.DCA) == 0 {
		return 0
	}
	last := d.DCA[len(d.DCA)-1]
	if math.IsNaN(last) {
		return 0
	}
	return last
}

// PriceChangePercent compares the last two closes.
func (d InstrumentData) PriceChangePercent() decimal.Decimal {
	n := len(d.Prices.Candles)
	if n < 2 {
		return decimal.Zero
	}
	prev := d.Prices.Candles[n-2].Close
	if prev.IsZero() {
		return decimal.Zero
	}
	return d.Prices.Candles[n-1].Close.Sub(prev).Div(prev).Mul(decimal.NewFromInt(100))
}
