package repository

import (
	"context"
	"errors"
	"fmt"
	"portfoliotracker/types"
	"time"

	"github.com/jackc/pgx/v5"
)

// GetPriceSeries returns the daily candles of symbol in [start, end).
func (db *Database) GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) ([]types.Candle, error) {
	asset, err := db.GetAssetByTicker(ctx, symbol)
	if err != nil {
		return nil, err
	}
	return db.GetDailyCandles(ctx, asset.Id, symbol, start, end)
}

func (db *Database) GetDailyCandles(ctx context.Context, assetId int, ticker string, start, end time.Time) ([]types.Candle, error) {
	args := getDailyCandlesParams{
		AssetID:   int32(assetId),
		Starttime: start,
		Endtime:   end,
	}
	candles, err := db.candles.GetDailyCandles(ctx, args)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("ticker %s %w", ticker, ErrNoCandles)
		}
		return nil, fmt.Errorf("get candles %s: %w", ticker, err)
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("ticker %s between %s and %s %w", ticker, start.Format(time.DateOnly), end.Format(time.DateOnly), ErrNoCandles)
	}
	return convertCandles(candles, ticker), nil
}

func convertCandles(candleDAOs []candleRow, ticker string) []types.Candle {
	candles := make([]types.Candle, 0, len(candleDAOs))
	for _, dao := range candleDAOs {
		candles = append(candles, types.Candle{
			AssetId:   int(dao.AssetID),
			Ticker:    ticker,
			Open:      dao.Open,
			Close:     dao.Close,
			High:      dao.High,
			Low:       dao.Low,
			Volume:    dao.Volume,
			Timestamp: dao.Bucket,
		})
	}
	return candles
}
