package engine

import (
	"fmt"
	"math"
)

// ComputeProfitSeries returns the daily unrealized profit of one instrument.
// Days without shares, or without a cost basis, have zero profit.
func ComputeProfitSeries(closes, dca, shares []float64) ([]float64, error) {
	if len(closes) != len(dca) || len(closes) != len(shares) {
		return nil, fmt.Errorf("%w: %d closes, %d dca, %d shares", ErrInputAlignment, len(closes), len(dca), len(shares))
	}
	profit := make([]float64, len(closes))
	for i := range closes {
		if math.IsNaN(dca[i]) || shares[i] <= 0 {
			continue
		}
		profit[i] = (closes[i] - dca[i]) * shares[i]
	}
	return profit, nil
}
