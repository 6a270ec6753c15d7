// Package cli holds the plumbing shared by the soundlaw binaries.
package cli

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/katalvlaran/soundlaw/internal/config"
	"github.com/katalvlaran/soundlaw/internal/observe"
)

// Process exit codes.
const (
	ExitOK     = 0
	ExitIO     = 1
	ExitConfig = 2
)

// Visit calls apply[name] for every flag set explicitly on fs, so flags
// override config only when given.
func Visit(fs *flag.FlagSet, apply map[string]func()) {
	fs.Visit(func(f *flag.Flag) {
		if fn, ok := apply[f.Name]; ok {
			fn()
		}
	})
}

// StartMetrics installs the OpenTelemetry providers and serves /metrics on
// cfg.Addr. With an empty address it does nothing. The returned function
// stops the listener and flushes the providers.
func StartMetrics(ctx context.Context, cfg config.MetricsConfig, logger *slog.Logger) (func(), error) {
	if cfg.Addr == "" {
		return func() {}, nil
	}

	shutdownOTel, err := observe.InitProvider(ctx, observe.ProviderConfig{ServiceName: cfg.ServiceName})
	if err != nil {
		return nil, err
	}

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		_ = shutdownOTel(ctx)
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", observe.MetricsHandler())
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", slog.String("error", err.Error()))
		}
	}()
	logger.Info("serving metrics", slog.String("addr", ln.Addr().String()))

	return func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
		if err := shutdownOTel(sctx); err != nil {
			logger.Warn("otel shutdown", slog.String("error", err.Error()))
		}
	}, nil
}
