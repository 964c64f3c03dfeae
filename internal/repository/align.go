package repository

import (
	"portfoliotracker/types"
	"time"
)

// AlignSeries keeps only the calendar days present in every series, so that all of them
// share one date axis. The input is not modified.
func AlignSeries(series map[string]types.PriceSeries) map[string]types.PriceSeries {
	if len(series) == 0 {
		return series
	}

	counts := make(map[time.Time]int)
	for _, s := range series {
		seen := make(map[time.Time]bool, len(s.Candles))
		for _, c := range s.Candles {
			d := dayKey(c.Timestamp)
			if !seen[d] {
				seen[d] = true
				counts[d]++
			}
		}
	}

	out := make(map[string]types.PriceSeries, len(series))
	for key, s := range series {
		kept := make([]types.Candle, 0, len(s.Candles))
		taken := make(map[time.Time]bool, len(s.Candles))
		for _, c := range s.Candles {
			d := dayKey(c.Timestamp)
			// One candle per day; the first one wins.
			if counts[d] == len(series) && !taken[d] {
				taken[d] = true
				kept = append(kept, c)
			}
		}
		s.Candles = kept
		out[key] = s
	}
	return out
}

func dayKey(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
