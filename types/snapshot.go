package types

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioSnapshot is an immutable, point in time view of the whole portfolio.
// It is never modified after it has been built; refreshing builds a new one.
type PortfolioSnapshot struct {
	ID           uuid.UUID          `json:"id"`
	AsOf         time.Time          `json:"asOf"`
	Dates        []time.Time        `json:"dates"`
	Instruments  []InstrumentData   `json:"instruments"`
	Total        PerformanceMetrics `json:"total"`
	IncludeHedge bool               `json:"includeHedge"`

	TotalProfit   []float64 `json:"totalProfit"`
	Invested      []float64 `json:"invested"`
	Yield         []float64 `json:"yield"`
	Value         []float64 `json:"value"`
	ProfitExtrema Extrema   `json:"profitExtrema"`
	YieldExtrema  Extrema   `json:"yieldExtrema"`
	MaxDrawdown   Drawdown  `json:"maxDrawdown"`
}

// Equities returns the instruments that count towards invested capital.
func (s *PortfolioSnapshot) Equities() []InstrumentData {
	var out []InstrumentData
	for _, inst := range s.Instruments {
		if !inst.IsHedge() {
			out = append(out, inst)
		}
	}
	return out
}

func (s *PortfolioSnapshot) Hedges() []InstrumentData {
	var out []InstrumentData
	for _, inst := range s.Instruments {
		if inst.IsHedge() {
			out = append(out, inst)
		}
	}
	return out
}

func (s *PortfolioSnapshot) Instrument(ticker string) (InstrumentData, bool) {
	for _, inst := range s.Instruments {
		if inst.Ticker == ticker {
			return inst, true
		}
	}
	return InstrumentData{}, false
}
