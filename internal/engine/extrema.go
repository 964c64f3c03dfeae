package engine

import (
	"fmt"
	"math"
	"portfoliotracker/types"
	"time"
)

// FindExtrema returns the largest and smallest value of series with their dates.
// NaN values are ignored; ties go to the earliest date.
func FindExtrema(series []float64, dates []time.Time) (types.Extrema, error) {
	if len(series) != len(dates) {
		return types.Extrema{}, fmt.Errorf("%w: %d values, %d dates", ErrInputAlignment, len(series), len(dates))
	}
	if len(series) == 0 {
		return types.Extrema{}, ErrEmptySeries
	}

	maxIdx, minIdx := -1, -1
	for i, v := range series {
		if math.IsNaN(v) {
			continue
		}
		if maxIdx == -1 || v > series[maxIdx] {
			maxIdx = i
		}
		if minIdx == -1 || v < series[minIdx] {
			minIdx = i
		}
	}
	if maxIdx == -1 {
		return types.Extrema{}, fmt.Errorf("%w: all %d values are undefined", ErrEmptySeries, len(series))
	}

	return types.Extrema{
		Max: types.Extremum{Value: series[maxIdx], Date: dates[maxIdx]},
		Min: types.Extremum{Value: series[minIdx], Date: dates[minIdx]},
	}, nil
}

// MaxDrawdown finds the deepest fall of values from a running peak.
func MaxDrawdown(values []float64, dates []time.Time) (types.Drawdown, error) {
	if len(values) != len(dates) {
		return types.Drawdown{}, fmt.Errorf("%w: %d values, %d dates", ErrInputAlignment, len(values), len(dates))
	}
	if len(values) == 0 {
		return types.Drawdown{}, ErrEmptySeries
	}

	var dd types.Drawdown
	var peak float64
	var peakTime time.Time
	havePeak := false
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		// A zero peak means nothing was invested yet, so the next value becomes the peak.
		if !havePeak || v > peak || peak == 0 {
			peak = v
			peakTime = dates[i]
			havePeak = true
		}
		if peak <= 0 {
			continue
		}
		if cur := peak - v; cur > dd.Amount {
			dd = types.Drawdown{
				Amount:   cur,
				Percent:  cur / peak,
				Duration: dates[i].Sub(peakTime),
				Peak:     peakTime,
				Trough:   dates[i],
			}
		}
	}
	return dd, nil
}
