package types

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTrade_IsBuy(t *testing.T) {
	tests := []struct {
		direction Direction
		want      bool
	}{
		{"Buy", true},
		{" Buy ", true},
		{"BUY", true},
		{"buy\t", true},
		{"Sell", false},
		{" sell ", false},
		{"", false},
		{"buyback", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.direction), func(t *testing.T) {
			tr := Trade{Direction: tt.direction}
			if got := tr.IsBuy(); got != tt.want {
				t.Errorf("IsBuy(%q) = %v, want %v", tt.direction, got, tt.want)
			}
		})
	}
}

func TestTrade_TotalValue(t *testing.T) {
	tr := NewTrade(time.Now(), "VUAA.EU", decimal.RequireFromString("101.25"), decimal.RequireFromString("4"), DirectionBuy)
	if got := tr.TotalValue(); !got.Equal(decimal.RequireFromString("405")) {
		t.Fatalf("TotalValue() = %s, want 405", got)
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{" Buy ", DirectionBuy, false},
		{"SELL", DirectionSell, false},
		{"hold", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGroupByTicker(t *testing.T) {
	trades := []Trade{
		{Ticker: "A", Direction: DirectionBuy},
		{Ticker: "B", Direction: DirectionSell},
		{Ticker: "A", Direction: DirectionSell},
	}
	got := GroupByTicker(trades)
	if len(got["A"]) != 2 || len(got["B"]) != 1 {
		t.Fatalf("GroupByTicker() = %v", got)
	}
	if got["A"][1].Direction != DirectionSell {
		t.Errorf("GroupByTicker() did not keep ledger order")
	}
	if buys := BuyTrades(trades); len(buys) != 1 {
		t.Errorf("BuyTrades() len = %d, want 1", len(buys))
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 3, 23, 59, 0, 0, time.UTC)
	next := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	if !SameDay(morning, evening) {
		t.Errorf("SameDay() should ignore time of day")
	}
	if SameDay(evening, next) {
		t.Errorf("SameDay() across midnight should be false")
	}
	if !DayBefore(evening, next) || DayBefore(morning, evening) {
		t.Errorf("DayBefore() compares calendar days only")
	}
}
