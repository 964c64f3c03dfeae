package main

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"portfoliotracker/internal/engine"
	"portfoliotracker/types"

	"go.uber.org/zap"
)

type snapshotService interface {
	GetOrBuild(ctx context.Context) (*types.PortfolioSnapshot, error)
	Refresh(ctx context.Context) (*types.PortfolioSnapshot, error)
	Instrument(ctx context.Context, ticker string) (types.InstrumentData, error)
}

// snapshotResponse adds the cost basis series, which JSON cannot carry as NaN, as nullable values.
type snapshotResponse struct {
	*types.PortfolioSnapshot
	DCA map[string][]*float64 `json:"dca"`
}

type instrumentResponse struct {
	types.InstrumentData
	DCA []*float64 `json:"dca"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type server struct {
	svc snapshotService
	log *zap.Logger
}

func newServer(svc snapshotService, metrics http.Handler, log *zap.Logger) http.Handler {
	s := &server{svc: svc, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /snapshot", s.handleSnapshot)
	mux.HandleFunc("GET /instrument", s.handleInstrument)
	mux.HandleFunc("POST /refresh", s.handleRefresh)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}
	return mux
}

func (s *server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.GetOrBuild(r.Context())
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newSnapshotResponse(snap))
}

func (s *server) handleInstrument(w http.ResponseWriter, r *http.Request) {
	ticker := r.URL.Query().Get("ticker")
	if ticker == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "ticker is required"})
		return
	}
	inst, err := s.svc.Instrument(r.Context(), ticker)
	if errors.Is(err, engine.ErrUnknownInstrument) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, instrumentResponse{InstrumentData: inst, DCA: nullable(inst.DCA)})
}

func (s *server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	snap, err := s.svc.Refresh(r.Context())
	if err != nil {
		s.fail(w, http.StatusBadGateway, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newSnapshotResponse(snap))
}

func (s *server) fail(w http.ResponseWriter, status int, err error) {
	s.log.Error("request failed", zap.Int("status", status), zap.Error(err))
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("write response", zap.Error(err))
	}
}

func newSnapshotResponse(snap *types.PortfolioSnapshot) snapshotResponse {
	dca := make(map[string][]*float64, len(snap.Instruments))
	for _, inst := range snap.Instruments {
		dca[inst.Ticker] = nullable(inst.DCA)
	}
	return snapshotResponse{PortfolioSnapshot: snap, DCA: dca}
}

func nullable(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		out[i] = &v
	}
	return out
}
