package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type dbtx interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type queries struct {
	db dbtx
}

func newQueries(db dbtx) *queries {
	return &queries{db: db}
}

type assetRow struct {
	ID         int32
	Ticker     string
	Name       string
	Type       string
	CreatedAt  *time.Time
	ModifiedAt *time.Time
}

const getAssetByTicker = `
SELECT id, ticker, name, type, created_at, modified_at
FROM assets
WHERE ticker = $1
`

func (q *queries) GetAssetByTicker(ctx context.Context, ticker string) (assetRow, error) {
	var a assetRow
	err := q.db.QueryRow(ctx, getAssetByTicker, ticker).Scan(
		&a.ID,
		&a.Ticker,
		&a.Name,
		&a.Type,
		&a.CreatedAt,
		&a.ModifiedAt,
	)
	return a, err
}

type getDailyCandlesParams struct {
	AssetID   int32
	Starttime time.Time
	Endtime   time.Time
}

type candleRow struct {
	Bucket  time.Time
	AssetID int32
	Open    decimal.Decimal
	High    decimal.Decimal
	Low     decimal.Decimal
	Close   decimal.Decimal
	Volume  decimal.Decimal
}

// Intraday rows are folded into one candle per calendar day.
const getDailyCandles = `
SELECT time_bucket('1 day', c.time) AS bucket,
       c.asset_id,
       first(c.open, c.time)        AS open,
       max(c.high)                  AS high,
       min(c.low)                   AS low,
       last(c.close, c.time)        AS close,
       sum(c.volume)                AS volume
FROM candles c
WHERE c.asset_id = $1
  AND c.time >= $2
  AND c.time < $3
GROUP BY bucket, c.asset_id
ORDER BY bucket
`

func (q *queries) GetDailyCandles(ctx context.Context, arg getDailyCandlesParams) ([]candleRow, error) {
	rows, err := q.db.Query(ctx, getDailyCandles, arg.AssetID, arg.Starttime, arg.Endtime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []candleRow
	for rows.Next() {
		var i candleRow
		if err := rows.Scan(
			&i.Bucket,
			&i.AssetID,
			&i.Open,
			&i.High,
			&i.Low,
			&i.Close,
			&i.Volume,
		); err != nil {
			return nil, fmt.Errorf("scan candle row: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candle rows: %w", err)
	}
	return items, nil
}

type tradeRow struct {
	ID        int64
	TradeDate time.Time
	Ticker    string
	Price     decimal.Decimal
	Quantity  decimal.Decimal
	Direction string
}

const listTrades = `
SELECT id, trade_date, ticker, price, quantity, direction
FROM trades
ORDER BY trade_date, id
`

func (q *queries) ListTrades(ctx context.Context) ([]tradeRow, error) {
	rows, err := q.db.Query(ctx, listTrades)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []tradeRow
	for rows.Next() {
		var i tradeRow
		if err := rows.Scan(
			&i.ID,
			&i.TradeDate,
			&i.Ticker,
			&i.Price,
			&i.Quantity,
			&i.Direction,
		); err != nil {
			return nil, fmt.Errorf("scan trade row: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trade rows: %w", err)
	}
	return items, nil
}
