package engine

import (
	"context"
	"fmt"
	"portfoliotracker/internal/observability"
	"portfoliotracker/types"
	"strconv"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service caches the latest snapshot. Readers never block on a rebuild once a snapshot
// exists, and concurrent first requests share a single build.
type Service struct {
	builder snapshotBuilder
	logger  *zap.Logger
	metrics *observability.Metrics

	current    atomic.Pointer[types.PortfolioSnapshot]
	generation atomic.Uint64
	publishMu  sync.Mutex
	group      singleflight.Group
}

func NewService(builder snapshotBuilder, logger *zap.Logger, metrics *observability.Metrics) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		builder: builder,
		logger:  logger,
		metrics: metrics,
	}
}

// GetOrBuild returns the cached snapshot, building one if the cache is empty.
func (s *Service) GetOrBuild(ctx context.Context) (*types.PortfolioSnapshot, error) {
	if snap := s.current.Load(); snap != nil {
		s.metrics.RecordCacheHit()
		return snap, nil
	}
	return s.rebuild(ctx, false)
}

// Invalidate drops the cached snapshot. Builds already running will not publish.
func (s *Service) Invalidate() {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	s.generation.Add(1)
	s.current.Store(nil)
	s.logger.Debug("snapshot cache invalidated")
}

// Refresh builds a new snapshot and swaps it in. The previous snapshot keeps being
// served until the swap, and is kept if the build fails.
func (s *Service) Refresh(ctx context.Context) (*types.PortfolioSnapshot, error) {
	s.publishMu.Lock()
	s.generation.Add(1)
	s.publishMu.Unlock()
	return s.rebuild(ctx, true)
}

// Current returns the cached snapshot without building, or nil.
func (s *Service) Current() *types.PortfolioSnapshot {
	return s.current.Load()
}

// Instrument returns one instrument of the current snapshot.
func (s *Service) Instrument(ctx context.Context, ticker string) (types.InstrumentData, error) {
	snap, err := s.GetOrBuild(ctx)
	if err != nil {
		return types.InstrumentData{}, err
	}
	inst, ok := snap.Instrument(ticker)
	if !ok {
		return types.InstrumentData{}, fmt.Errorf("%w: %s", ErrUnknownInstrument, ticker)
	}
	return inst, nil
}

// rebuild runs at most one build per generation. Unless forced, a snapshot published
// by a build that finished in the meantime is returned instead.
func (s *Service) rebuild(ctx context.Context, force bool) (*types.PortfolioSnapshot, error) {
	gen := s.generation.Load()
	v, err, shared := s.group.Do(strconv.FormatUint(gen, 10), func() (any, error) {
		if snap := s.current.Load(); snap != nil && !force {
			return snap, nil
		}
		snap, err := s.builder.Build(ctx)
		if err != nil {
			return nil, err
		}
		s.publish(gen, snap)
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("joined in-flight snapshot build", zap.Uint64("generation", gen))
	}
	return v.(*types.PortfolioSnapshot), nil
}

// publish stores snap unless the cache was invalidated or refreshed since gen.
func (s *Service) publish(gen uint64, snap *types.PortfolioSnapshot) {
	s.publishMu.Lock()
	defer s.publishMu.Unlock()
	if s.generation.Load() != gen {
		s.logger.Debug("discarding stale snapshot", zap.String("id", snap.ID.String()))
		return
	}
	s.current.Store(snap)
}
