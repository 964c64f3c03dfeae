package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is a single buy or sell recorded in the ledger. Trades are values and are never mutated.
type Trade struct {
	Date      time.Time       `json:"date"`
	Ticker    string          `json:"ticker"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Direction Direction       `json:"direction"`
}

func NewTrade(date time.Time, ticker string, price, quantity decimal.Decimal, direction Direction) Trade {
	return Trade{
		Date:      date,
		Ticker:    ticker,
		Price:     price,
		Quantity:  quantity,
		Direction: direction,
	}
}

func (t Trade) IsBuy() bool {
	return t.Direction.IsBuy()
}

// TotalValue is price times quantity.
func (t Trade) TotalValue() decimal.Decimal {
	return t.Price.Mul(t.Quantity)
}

// GroupByTicker returns the ledger split per ticker, keeping ledger order inside each group.
func GroupByTicker(trades []Trade) map[string][]Trade {
	out := make(map[string][]Trade)
	for _, t := range trades {
		out[t.Ticker] = append(out[t.Ticker], t)
	}
	return out
}

// BuyTrades filters the buys out of trades.
func BuyTrades(trades []Trade) []Trade {
	var buys []Trade
	for _, t := range trades {
		if t.IsBuy() {
			buys = append(buys, t)
		}
	}
	return buys
}

type TradeSummary struct {
	Total         int `json:"total"`
	UniqueTickers int `json:"uniqueTickers"`
	Buys          int `json:"buys"`
	Sells         int `json:"sells"`
}
