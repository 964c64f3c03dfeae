package engine

import (
	"fmt"
	"portfoliotracker/types"
	"time"
)

// FilterWindow keeps the trailing part of an aligned series covered by tf, counted back
// from the last date. All, or an unknown timeframe, keeps everything.
func FilterWindow(dates []time.Time, values []float64, tf types.Timeframe) ([]time.Time, []float64, error) {
	if len(dates) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d dates, %d values", ErrInputAlignment, len(dates), len(values))
	}
	span, ok := types.TimeframeToDuration[tf]
	if !ok || len(dates) == 0 {
		return dates, values, nil
	}
	cutoff := dates[len(dates)-1].Add(-span)

	// The axis is ascending, so the window is a suffix.
	first := len(dates)
	for i, d := range dates {
		if !d.Before(cutoff) {
			first = i
			break
		}
	}
	return dates[first:], values[first:], nil
}

// WindowExtrema is FindExtrema over the trailing window tf.
func WindowExtrema(dates []time.Time, values []float64, tf types.Timeframe) (types.Extrema, error) {
	d, v, err := FilterWindow(dates, values, tf)
	if err != nil {
		return types.Extrema{}, err
	}
	return FindExtrema(v, d)
}
