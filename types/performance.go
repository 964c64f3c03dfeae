package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PerformanceMetrics is a point in time valuation of a set of buy trades.
type PerformanceMetrics struct {
	Invested         decimal.Decimal `json:"invested"`
	CurrentValue     decimal.Decimal `json:"currentValue"`
	ProfitAbsolute   decimal.Decimal `json:"profitAbsolute"`
	ReturnPercentage decimal.Decimal `json:"returnPercentage"`
	AverageBuyPrice  decimal.Decimal `json:"averageBuyPrice"`
}

func (m PerformanceMetrics) IsProfitable() bool {
	return m.ProfitAbsolute.GreaterThan(decimal.Zero)
}

// ROIRatio is profit over invested capital, zero when nothing was invested.
func (m PerformanceMetrics) ROIRatio() decimal.Decimal {
	if !m.Invested.GreaterThan(decimal.Zero) {
		return decimal.Zero
	}
	return m.ProfitAbsolute.Div(m.Invested)
}

type Extremum struct {
	Value float64   `json:"value"`
	Date  time.Time `json:"date"`
}

type Extrema struct {
	Max Extremum `json:"max"`
	Min Extremum `json:"min"`
}

type Drawdown struct {
	Amount   float64       `json:"amount"`
	Percent  float64       `json:"percent"`
	Duration time.Duration `json:"duration"`
	Peak     time.Time     `json:"peak"`
	Trough   time.Time     `json:"trough"`
}
