package engine

import (
	"context"
	"fmt"
	"portfoliotracker/types"
	"time"
)

// DataFeed is the daily price history requested for one tracked instrument.
type DataFeed struct {
	Ticker string
	Symbol string
	Start  time.Time
	End    time.Time
}

func newDataFeeds(cfg *PortfolioConfig, today time.Time) []*DataFeed {
	end := cfg.end
	if end.IsZero() {
		end = today
	}
	feeds := make([]*DataFeed, 0, len(cfg.instruments))
	for _, inst := range cfg.instruments {
		feeds = append(feeds, &DataFeed{
			Ticker: inst.ticker,
			Symbol: inst.symbol,
			Start:  cfg.start,
			End:    end,
		})
	}
	return feeds
}

// GetData loads the feed. End is inclusive, so the store is asked up to the next day.
func (df *DataFeed) GetData(ctx context.Context, db dataStore) (types.PriceSeries, error) {
	candles, err := db.GetPriceSeries(ctx, df.Symbol, df.Start, df.End.AddDate(0, 0, 1))
	if err != nil {
		return types.PriceSeries{}, fmt.Errorf("load %s (%s): %w", df.Ticker, df.Symbol, err)
	}
	return types.PriceSeries{
		Ticker:  df.Ticker,
		Symbol:  df.Symbol,
		Candles: candles,
		Start:   df.Start,
		End:     df.End,
	}, nil
}
