package engine

import (
	"context"
	"portfoliotracker/types"
	"time"
)

// dataStore is the market-data and trade-ledger collaborator.
type dataStore interface {
	GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]types.Candle, error)
	GetTrades(ctx context.Context) ([]types.Trade, error)
}

type snapshotBuilder interface {
	Build(ctx context.Context) (*types.PortfolioSnapshot, error)
}
