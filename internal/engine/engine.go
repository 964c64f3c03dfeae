package engine

import (
	"context"
	"fmt"
	"io"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/observability"
	"portfoliotracker/internal/repository"
	"portfoliotracker/types"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

var tracer = logger.Tracer("engine")

type Engine struct {
	db              dataStore
	portfolioConfig *PortfolioConfig
	reportingConfig *ReportingConfig
	logger          *zap.Logger
	metrics         *observability.Metrics
	now             func() time.Time
}

func NewEngine(portfolioConfig *PortfolioConfig, reportingConfig *ReportingConfig, db dataStore, logger *zap.Logger, metrics *observability.Metrics) *Engine {
	if reportingConfig == nil {
		reportingConfig = NewReportingConfig("", nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		db:              db,
		portfolioConfig: portfolioConfig,
		reportingConfig: reportingConfig,
		logger:          logger,
		metrics:         metrics,
		now:             time.Now,
	}
}

// Build loads the ledger and price history and computes a fresh snapshot.
func (e *Engine) Build(ctx context.Context) (*types.PortfolioSnapshot, error) {
	ctx, span := tracer.Start(ctx, "engine.Build")
	defer span.End()

	start := time.Now()
	snap, err := e.build(ctx)
	e.metrics.RecordBuild(start, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		e.logger.Error("snapshot build failed", zap.Error(err))
		return nil, err
	}
	span.SetAttributes(
		attribute.String("snapshot.id", snap.ID.String()),
		attribute.Int("snapshot.instruments", len(snap.Instruments)),
	)
	e.logger.Info("snapshot built",
		zap.String("id", snap.ID.String()),
		zap.Int("instruments", len(snap.Instruments)),
		zap.Int("days", len(snap.Dates)),
		zap.Duration("took", time.Since(start)),
	)
	return snap, nil
}

func (e *Engine) build(ctx context.Context) (*types.PortfolioSnapshot, error) {
	if err := e.portfolioConfig.Validate(); err != nil {
		return nil, err
	}
	trades, prices, err := e.loadData(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := BuildSnapshot(trades, prices, e.portfolioConfig, e.now())
	if err != nil {
		return nil, err
	}
	e.reportUnmatched(snap)
	return snap, nil
}

// LoadTrades returns the full ledger, including tickers that are not tracked.
func (e *Engine) LoadTrades(ctx context.Context) ([]types.Trade, error) {
	trades, err := e.db.GetTrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	return trades, nil
}

func (e *Engine) loadData(ctx context.Context) ([]types.Trade, map[string]types.PriceSeries, error) {
	trades, err := e.LoadTrades(ctx)
	if err != nil {
		return nil, nil, err
	}

	ctx, span := tracer.Start(ctx, "engine.loadData")
	defer span.End()

	feeds := newDataFeeds(e.portfolioConfig, e.now())
	bar := initProgressBar(len(feeds), e.reportingConfig.progress)
	defer bar.Close()

	prices := make(map[string]types.PriceSeries, len(feeds))
	for _, feed := range feeds {
		series, err := feed.GetData(ctx, e.db)
		if err != nil {
			return nil, nil, err
		}
		prices[feed.Ticker] = series
		_ = bar.Add(1)
	}

	// Sources may miss days for some instruments; keep only days every one of them has.
	aligned := repository.AlignSeries(prices)
	for ticker, series := range aligned {
		if dropped := len(prices[ticker].Candles) - len(series.Candles); dropped > 0 {
			e.logger.Debug("dropped days missing from other instruments",
				zap.String("ticker", ticker), zap.Int("dropped", dropped))
		}
	}
	return trades, aligned, nil
}

func (e *Engine) reportUnmatched(snap *types.PortfolioSnapshot) {
	for _, inst := range snap.Instruments {
		for _, t := range inst.Unmatched {
			e.logger.Warn("buy trade not on price axis, left out of cost basis",
				zap.String("ticker", inst.Ticker),
				zap.Time("date", t.Date),
				zap.String("price", t.Price.String()),
				zap.String("quantity", t.Quantity.String()),
			)
		}
		e.metrics.RecordUnmatched(inst.Ticker, len(inst.Unmatched))
	}
}

func initProgressBar(maxTicks int, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Loading price history..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
