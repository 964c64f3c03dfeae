package engine

import (
	"fmt"
	"portfoliotracker/types"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BuildSnapshot computes every per instrument and portfolio level series from the ledger
// and the price series keyed by ledger ticker. All tracked instruments must share the
// same date axis. Any failure fails the whole snapshot.
func BuildSnapshot(ledger []types.Trade, prices map[string]types.PriceSeries, cfg *PortfolioConfig, asOf time.Time) (*types.PortfolioSnapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	dates, err := validateAxes(cfg, prices)
	if err != nil {
		return nil, err
	}

	byTicker := types.GroupByTicker(ledger)
	instruments := make([]types.InstrumentData, len(cfg.instruments))

	var g errgroup.Group
	for i, inst := range cfg.instruments {
		g.Go(func() error {
			data, err := processInstrument(inst, prices[inst.ticker], byTicker[inst.ticker], cfg.unmatchedPolicy)
			if err != nil {
				return fmt.Errorf("instrument %s: %w", inst.ticker, err)
			}
			instruments[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profitByTicker := make(map[string][]float64, len(instruments))
	dcaByTicker := make(map[string][]float64, len(instruments))
	sharesByTicker := make(map[string][]float64, len(instruments))
	for _, inst := range instruments {
		profitByTicker[inst.Ticker] = inst.Profit
		dcaByTicker[inst.Ticker] = inst.DCA
		sharesByTicker[inst.Ticker] = inst.Shares
	}

	totalProfit, err := AggregateProfit(profitByTicker, cfg.ProfitTickers(cfg.includeHedgeProfit))
	if err != nil {
		return nil, err
	}
	invested, err := InvestedSeries(dcaByTicker, sharesByTicker, cfg.EquityTickers())
	if err != nil {
		return nil, err
	}
	// An empty selection has no axis of its own; treat it as zero on every day.
	if len(totalProfit) == 0 {
		totalProfit = make([]float64, len(dates))
	}
	if len(invested) == 0 {
		invested = make([]float64, len(dates))
	}
	yield, err := YieldSeries(totalProfit, invested)
	if err != nil {
		return nil, err
	}
	value, err := ValueSeries(invested, totalProfit)
	if err != nil {
		return nil, err
	}

	profitExtrema, err := FindExtrema(totalProfit, dates)
	if err != nil {
		return nil, fmt.Errorf("portfolio profit: %w", err)
	}
	yieldExtrema, err := FindExtrema(yield, dates)
	if err != nil {
		return nil, fmt.Errorf("portfolio yield: %w", err)
	}
	drawdown, err := MaxDrawdown(value, dates)
	if err != nil {
		return nil, fmt.Errorf("portfolio value: %w", err)
	}

	return &types.PortfolioSnapshot{
		ID:            uuid.New(),
		AsOf:          asOf,
		Dates:         dates,
		Instruments:   instruments,
		Total:         PortfolioMetrics(instruments, cfg.includeHedgeProfit),
		IncludeHedge:  cfg.includeHedgeProfit,
		TotalProfit:   totalProfit,
		Invested:      invested,
		Yield:         yield,
		Value:         value,
		ProfitExtrema: profitExtrema,
		YieldExtrema:  yieldExtrema,
		MaxDrawdown:   drawdown,
	}, nil
}

func processInstrument(inst *InstrumentConfig, prices types.PriceSeries, trades []types.Trade, policy UnmatchedTradePolicy) (types.InstrumentData, error) {
	dates := prices.Dates()
	closes := prices.Closes()
	buys := types.BuyTrades(trades)

	cb := ComputeDCAWithPolicy(dates, buys, policy)
	profit, err := ComputeProfitSeries(closes, cb.DCA, cb.Shares)
	if err != nil {
		return types.InstrumentData{}, err
	}
	profitExtrema, err := FindExtrema(profit, dates)
	if err != nil {
		return types.InstrumentData{}, fmt.Errorf("profit: %w", err)
	}
	priceExtrema, err := FindExtrema(closes, dates)
	if err != nil {
		return types.InstrumentData{}, fmt.Errorf("price: %w", err)
	}

	if prices.Ticker == "" {
		prices.Ticker = inst.ticker
	}
	if prices.Symbol == "" {
		prices.Symbol = inst.symbol
	}
	prices.Start, prices.End = getAxisRange(dates)

	return types.InstrumentData{
		Ticker:        inst.ticker,
		Role:          inst.role,
		Prices:        prices,
		DCA:           cb.DCA,
		Shares:        cb.Shares,
		Profit:        profit,
		BuyTrades:     sortedBuys(buys),
		Unmatched:     cb.Unmatched,
		Metrics:       ComputePerformanceMetrics(buys, prices.LatestClose()),
		ProfitExtrema: profitExtrema,
		PriceExtrema:  priceExtrema,
	}, nil
}

// validateAxes checks that every tracked instrument has a non empty price series and that
// they all share the date axis of the first one, which is returned.
func validateAxes(cfg *PortfolioConfig, prices map[string]types.PriceSeries) ([]time.Time, error) {
	var axis []time.Time
	var axisTicker string
	for _, inst := range cfg.instruments {
		series, ok := prices[inst.ticker]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPriceSeries, inst.ticker)
		}
		if series.Len() == 0 {
			return nil, fmt.Errorf("%w: no candles for %s", ErrEmptySeries, inst.ticker)
		}
		dates := series.Dates()
		if axis == nil {
			axis, axisTicker = dates, inst.ticker
			continue
		}
		if len(dates) != len(axis) {
			return nil, fmt.Errorf("%w: %s has %d dates, %s has %d", ErrInputAlignment, inst.ticker, len(dates), axisTicker, len(axis))
		}
		for i := range dates {
			if !types.SameDay(dates[i], axis[i]) {
				return nil, fmt.Errorf("%w: %s has %s at index %d, %s has %s", ErrInputAlignment,
					inst.ticker, dates[i].Format(time.DateOnly), i, axisTicker, axis[i].Format(time.DateOnly))
			}
		}
	}
	return axis, nil
}
