package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/subcommands"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type serveCmd struct {
	addr    string
	refresh time.Duration
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve snapshots and metrics over HTTP" }
func (*serveCmd) Usage() string {
	return `portfolio serve [-addr :8080] [-refresh 0]

  Endpoints:
    GET  /snapshot             current snapshot, built on first request
    GET  /instrument?ticker=   one instrument of the current snapshot
    POST /refresh              rebuild and swap the snapshot
    GET  /metrics              Prometheus metrics
    GET  /healthz              liveness
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address. Overrides listen_addr from the config.")
	f.DurationVar(&c.refresh, "refresh", 0, "Rebuild the snapshot on this interval. Zero disables it.")
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	addr := a.cfg.ListenAddr
	if c.addr != "" {
		addr = c.addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(a.service, a.metrics.Handler(), a.log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if c.refresh > 0 {
		go refreshLoop(ctx, a, c.refresh)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("server stopped", zap.Error(err))
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.log.Error("shutdown", zap.Error(err))
			return subcommands.ExitFailure
		}
		a.log.Info("server shut down")
	}
	return subcommands.ExitSuccess
}

func refreshLoop(ctx context.Context, a *app, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := a.service.Refresh(ctx); err != nil {
				a.log.Warn("scheduled refresh failed, keeping previous snapshot", zap.Error(err))
			}
		}
	}
}
