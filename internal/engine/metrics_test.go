package engine

import (
	"portfoliotracker/types"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputePerformanceMetrics(t *testing.T) {
	tests := []struct {
		name         string
		buys         []types.Trade
		currentPrice string
		wantInvested string
		wantValue    string
		wantProfit   string
		wantReturn   string
		wantAvg      string
	}{
		{
			name:         "no buys",
			buys:         nil,
			currentPrice: "123",
			wantInvested: "0",
			wantValue:    "0",
			wantProfit:   "0",
			wantReturn:   "0",
			wantAvg:      "0",
		},
		{
			name:         "single buy in profit",
			buys:         []types.Trade{newBuy("AAA", day(1), "100", "10")},
			currentPrice: "120",
			wantInvested: "1000",
			wantValue:    "1200",
			wantProfit:   "200",
			wantReturn:   "20",
			wantAvg:      "100",
		},
		{
			name: "two buys in loss",
			buys: []types.Trade{
				newBuy("AAA", day(1), "100", "10"),
				newBuy("AAA", day(2), "200", "10"),
			},
			currentPrice: "120",
			wantInvested: "3000",
			wantValue:    "2400",
			wantProfit:   "-600",
			wantReturn:   "-20",
			wantAvg:      "150",
		},
		{
			name: "sells are not counted",
			buys: []types.Trade{
				newBuy("AAA", day(1), "50", "2"),
				newSell("AAA", day(2), "80", "2"),
			},
			currentPrice: "60",
			wantInvested: "100",
			wantValue:    "120",
			wantProfit:   "20",
			wantReturn:   "20",
			wantAvg:      "50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputePerformanceMetrics(tt.buys, decimal.RequireFromString(tt.currentPrice))
			checks := []struct {
				field string
				got   decimal.Decimal
				want  string
			}{
				{"invested", got.Invested, tt.wantInvested},
				{"current value", got.CurrentValue, tt.wantValue},
				{"profit", got.ProfitAbsolute, tt.wantProfit},
				{"return", got.ReturnPercentage, tt.wantReturn},
				{"average buy price", got.AverageBuyPrice, tt.wantAvg},
			}
			for _, c := range checks {
				if !c.got.Equal(decimal.RequireFromString(c.want)) {
					t.Fatalf("%s = %s, want %s", c.field, c.got, c.want)
				}
			}
		})
	}
}

func TestTradePnL(t *testing.T) {
	tests := []struct {
		name   string
		trade  types.Trade
		latest string
		avg    string
		want   string
	}{
		{"buy marked to market", newBuy("AAA", day(1), "100", "10"), "120", "0", "200"},
		{"buy under water", newBuy("AAA", day(1), "100", "10"), "90", "100", "-100"},
		{"sell against average", newSell("AAA", day(2), "130", "5"), "120", "100", "150"},
		{"sell without average", newSell("AAA", day(2), "130", "5"), "120", "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TradePnL(tt.trade, decimal.RequireFromString(tt.latest), decimal.RequireFromString(tt.avg))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("TradePnL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSummarizeTrades(t *testing.T) {
	ledger := []types.Trade{
		newBuy("AAA", day(1), "1", "1"),
		newBuy("BBB", day(1), "1", "1"),
		newSell("AAA", day(2), "1", "1"),
		newBuy("AAA", day(3), "1", "1"),
	}
	got := SummarizeTrades(ledger)
	want := types.TradeSummary{Total: 4, UniqueTickers: 2, Buys: 3, Sells: 1}
	if got != want {
		t.Fatalf("SummarizeTrades() = %+v, want %+v", got, want)
	}

	if got := SummarizeTrades(nil); got != (types.TradeSummary{}) {
		t.Fatalf("SummarizeTrades(nil) = %+v, want zero", got)
	}
}
