package repository

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/types"

	"github.com/jackc/pgx/v5"
)

// GetTrades returns the whole trade ledger ordered by date. An empty ledger is not an error.
func (db *Database) GetTrades(ctx context.Context) ([]types.Trade, error) {
	rows, err := db.trades.ListTrades(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoTrades
		}
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return convertTrades(rows)
}

func convertTrades(rows []tradeRow) ([]types.Trade, error) {
	trades := make([]types.Trade, 0, len(rows))
	for _, r := range rows {
		direction, err := types.ParseDirection(r.Direction)
		if err != nil {
			return nil, fmt.Errorf("trade %d: %w", r.ID, err)
		}
		trades = append(trades, types.NewTrade(r.TradeDate, r.Ticker, r.Price, r.Quantity, direction))
	}
	return trades, nil
}
