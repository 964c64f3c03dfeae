package engine

import (
	"math"
	"portfoliotracker/types"
	"testing"
	"time"
)

func TestComputeDCA(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name          string
		dates         []time.Time
		buys          []types.Trade
		wantDCA       []float64
		wantShares    []float64
		wantUnmatched int
	}{
		{
			name:       "single buy on second day",
			dates:      days(1, 2, 3),
			buys:       []types.Trade{newBuy("AAA", day(2), "100", "10")},
			wantDCA:    []float64{nan, 100, 100},
			wantShares: []float64{0, 10, 10},
		},
		{
			name:  "same day buys are pooled",
			dates: days(1, 2),
			buys: []types.Trade{
				newBuy("AAA", day(1), "100", "10"),
				newBuy("AAA", day(1), "200", "10"),
			},
			wantDCA:    []float64{150, 150},
			wantShares: []float64{20, 20},
		},
		{
			name:  "weighted average across days",
			dates: days(1, 2, 3),
			buys: []types.Trade{
				newBuy("AAA", day(1), "100", "10"),
				newBuy("AAA", day(3), "110", "5"),
			},
			wantDCA:    []float64{100, 100, (1000.0 + 550.0) / 15.0},
			wantShares: []float64{10, 10, 15},
		},
		{
			name:  "unsorted ledger is sorted first",
			dates: days(1, 2),
			buys: []types.Trade{
				newBuy("AAA", day(2), "200", "1"),
				newBuy("AAA", day(1), "100", "1"),
			},
			wantDCA:    []float64{100, 150},
			wantShares: []float64{1, 2},
		},
		{
			name:          "buy after last date is unmatched",
			dates:         days(1, 2, 3),
			buys:          []types.Trade{newBuy("AAA", day(5), "100", "10")},
			wantDCA:       []float64{nan, nan, nan},
			wantShares:    []float64{0, 0, 0},
			wantUnmatched: 1,
		},
		{
			name:          "buy on a missing day is skipped",
			dates:         days(1, 3),
			buys:          []types.Trade{newBuy("AAA", day(2), "100", "10"), newBuy("AAA", day(3), "50", "2")},
			wantDCA:       []float64{nan, 50},
			wantShares:    []float64{0, 2},
			wantUnmatched: 1,
		},
		{
			name:          "buy before first date is skipped",
			dates:         days(2, 3),
			buys:          []types.Trade{newBuy("AAA", day(1), "100", "10")},
			wantDCA:       []float64{nan, nan},
			wantShares:    []float64{0, 0},
			wantUnmatched: 1,
		},
		{
			name:       "time of day is ignored",
			dates:      days(1, 2),
			buys:       []types.Trade{newBuy("AAA", day(2).Add(15*time.Hour+30*time.Minute), "80", "3")},
			wantDCA:    []float64{nan, 80},
			wantShares: []float64{0, 3},
		},
		{
			name:       "sells are ignored",
			dates:      days(1, 2),
			buys:       []types.Trade{newBuy("AAA", day(1), "100", "10"), newSell("AAA", day(2), "150", "10")},
			wantDCA:    []float64{100, 100},
			wantShares: []float64{10, 10},
		},
		{
			name:       "no trades",
			dates:      days(1, 2),
			buys:       nil,
			wantDCA:    []float64{nan, nan},
			wantShares: []float64{0, 0},
		},
		{
			name:       "empty axis",
			dates:      nil,
			buys:       nil,
			wantDCA:    []float64{},
			wantShares: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cb := ComputeDCA(tt.dates, tt.buys)
			assertFloats(t, "dca", cb.DCA, tt.wantDCA)
			assertFloats(t, "shares", cb.Shares, tt.wantShares)
			if len(cb.Unmatched) != tt.wantUnmatched {
				t.Fatalf("unmatched = %d, want %d", len(cb.Unmatched), tt.wantUnmatched)
			}
		})
	}
}

func TestComputeDCAWithPolicy_RollForward(t *testing.T) {
	buys := []types.Trade{
		newBuy("AAA", day(1), "100", "10"), // before the axis
		newBuy("AAA", day(3), "200", "10"), // weekend gap
		newBuy("AAA", day(9), "300", "10"), // after the axis
	}
	cb := ComputeDCAWithPolicy(days(2, 4, 5), buys, UnmatchedRollForward)

	assertFloats(t, "dca", cb.DCA, []float64{100, 150, 150})
	assertFloats(t, "shares", cb.Shares, []float64{10, 20, 20})
	if len(cb.Unmatched) != 1 || !cb.Unmatched[0].Date.Equal(day(9)) {
		t.Fatalf("unmatched = %v, want only the trade after the axis", cb.Unmatched)
	}
}

func TestComputeDCA_Properties(t *testing.T) {
	dates := days(1, 2, 3, 4, 5, 6)
	buys := []types.Trade{
		newBuy("AAA", day(2), "10", "1"),
		newBuy("AAA", day(2), "30", "3"),
		newBuy("AAA", day(4), "5", "2"),
		newBuy("AAA", day(6), "50", "0.5"),
	}
	cb := ComputeDCA(dates, buys)

	if len(cb.DCA) != len(dates) || len(cb.Shares) != len(dates) {
		t.Fatalf("series not aligned with axis: %d dca, %d shares, %d dates", len(cb.DCA), len(cb.Shares), len(dates))
	}
	minPrice, maxPrice := 5.0, 50.0
	for i := range dates {
		if i > 0 && cb.Shares[i] < cb.Shares[i-1] {
			t.Fatalf("shares decreased at %d: %v", i, cb.Shares)
		}
		if cb.Shares[i] == 0 {
			if !math.IsNaN(cb.DCA[i]) {
				t.Fatalf("dca defined without shares at %d: %v", i, cb.DCA[i])
			}
			continue
		}
		if cb.DCA[i] < minPrice || cb.DCA[i] > maxPrice {
			t.Fatalf("dca %v at %d outside absorbed price range", cb.DCA[i], i)
		}
	}
}

func TestGetAxisRange(t *testing.T) {
	start, end := getAxisRange(days(3, 1, 7, 2))
	if !start.Equal(day(1)) || !end.Equal(day(7)) {
		t.Fatalf("getAxisRange = %s..%s, want %s..%s", start, end, day(1), day(7))
	}
	start, end = getAxisRange(nil)
	if !start.IsZero() || !end.IsZero() {
		t.Fatalf("getAxisRange(nil) = %s..%s, want zero times", start, end)
	}
}
