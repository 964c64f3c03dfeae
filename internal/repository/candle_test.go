package repository

import (
	"context"
	"errors"
	"portfoliotracker/types"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var startTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
var endTime = startTime.AddDate(0, 0, 5)

type mockCandlesRepository struct {
	sqlError error
	empty    bool
	lastArg  *getDailyCandlesParams
}

func TestDatabase_GetDailyCandles(t *testing.T) {
	type args struct {
		assetId int
		start   time.Time
		end     time.Time
	}
	tests := []struct {
		name    string
		args    args
		want    []types.Candle
		empty   bool
		sqlErr  error
		wantErr error
	}{
		{"should throw ErrNoCandles on empty result", args{999, startTime, endTime}, nil, true, nil, ErrNoCandles},
		{"should throw ErrNoCandles on no rows", args{999, startTime, endTime}, nil, false, pgx.ErrNoRows, ErrNoCandles},
		{"should pass through other errors", args{999, startTime, endTime}, nil, false, errConnReset, errConnReset},
		{"should return candles", args{999, startTime, endTime}, mockCandles(999, startTime, endTime), false, nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &Database{
				candles: &mockCandlesRepository{
					sqlError: tt.sqlErr,
					empty:    tt.empty,
				},
			}
			got, err := db.GetDailyCandles(context.Background(), tt.args.assetId, "VUAA.L", tt.args.start, tt.args.end)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("GetDailyCandles() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetDailyCandles() unexpected error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("GetDailyCandles() len = %d, want %d", len(got), len(tt.want))
			}
			for i := 0; i < len(tt.want); i++ {
				if got[i].AssetId != tt.args.assetId {
					t.Errorf("GetDailyCandles() %s assetId got = %v, want %v", got[i].Timestamp, got[i].AssetId, tt.want[i].AssetId)
					break
				}
				if got[i].Ticker != "VUAA.L" {
					t.Errorf("GetDailyCandles() %s ticker got = %v", got[i].Timestamp, got[i].Ticker)
					break
				}
				if !got[i].Close.Equal(tt.want[i].Close) {
					t.Errorf("GetDailyCandles() %s close got = %v, want %v", got[i].Timestamp, got[i].Close, tt.want[i].Close)
					break
				}
			}
		})
	}
}

func TestDatabase_GetPriceSeries(t *testing.T) {
	candles := &mockCandlesRepository{}
	db := &Database{
		assets:  mockAssetsRepository{},
		candles: candles,
	}
	got, err := db.GetPriceSeries(context.Background(), "VUAA.L", startTime, endTime)
	if err != nil {
		t.Fatalf("GetPriceSeries() error = %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("GetPriceSeries() len = %d, want 5", len(got))
	}
	if candles.lastArg == nil || candles.lastArg.AssetID != 1 {
		t.Fatalf("GetPriceSeries() queried %+v, want asset id 1", candles.lastArg)
	}

	db.assets = mockAssetsRepository{sqlError: pgx.ErrNoRows}
	if _, err := db.GetPriceSeries(context.Background(), "NOPE", startTime, endTime); !errors.Is(err, ErrAssetNotFound) {
		t.Fatalf("GetPriceSeries() error = %v, want ErrAssetNotFound", err)
	}
}

func (m *mockCandlesRepository) GetDailyCandles(_ context.Context, arg getDailyCandlesParams) ([]candleRow, error) {
	m.lastArg = &arg
	if m.sqlError != nil {
		return []candleRow{}, m.sqlError
	}
	if m.empty {
		return nil, nil
	}
	var candles []candleRow
	for i := arg.Starttime; i.Before(arg.Endtime); i = i.AddDate(0, 0, 1) {
		candles = append(candles, candleRow{
			Bucket:  i,
			AssetID: arg.AssetID,
			Open:    decimal.NewFromInt(int64(i.Day())),
			High:    decimal.NewFromInt(int64(i.Day())),
			Low:     decimal.NewFromInt(int64(i.Day())),
			Close:   decimal.NewFromInt(int64(i.Day())),
			Volume:  decimal.NewFromInt(int64(i.Day())),
		})
	}
	return candles, nil
}

func mockCandles(assetId int, start, end time.Time) []types.Candle {
	var candles []types.Candle
	for i := start; i.Before(end); i = i.AddDate(0, 0, 1) {
		candles = append(candles, types.Candle{
			Timestamp: i,
			AssetId:   assetId,
			Open:      decimal.NewFromInt(int64(i.Day())),
			High:      decimal.NewFromInt(int64(i.Day())),
			Low:       decimal.NewFromInt(int64(i.Day())),
			Close:     decimal.NewFromInt(int64(i.Day())),
			Volume:    decimal.NewFromInt(int64(i.Day())),
		})
	}
	return candles
}
