// Package server owns the client's process-level telemetry: the metrics recorder,
// its exporters and, for long-lived sessions, the Prometheus scrape endpoint.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-coach-client/internal/config"
	"github.com/preston-bernstein/nba-coach-client/internal/logging"
	"github.com/preston-bernstein/nba-coach-client/internal/metrics"
)

var metricsSetup = metrics.Setup

// Telemetry bundles the recorder with the exporters and optional scrape server behind it.
type Telemetry struct {
	logger        *slog.Logger
	recorder      *metrics.Recorder
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// NewTelemetry sets up metrics. Setup failures are logged and leave an in-memory recorder in place.
func NewTelemetry(ctx context.Context, cfg config.MetricsConfig, logger *slog.Logger) *Telemetry {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Enabled,
		Port:         cfg.Port,
		ServiceName:  cfg.ServiceName,
		OtlpEndpoint: cfg.OtlpEndpoint,
		OtlpInsecure: cfg.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return &Telemetry{logger: logger, recorder: metrics.NewRecorder()}
	}

	t := &Telemetry{logger: logger, recorder: rec, metricsStop: shutdown}
	if handler != nil && recCfg.Enabled && recCfg.Port != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		t.metricsServer = netHTTPServer{
			srv: &http.Server{
				Addr:         ":" + recCfg.Port,
				Handler:      mux,
				ReadTimeout:  readTimeout,
				WriteTimeout: writeTimeout,
				IdleTimeout:  idleTimeout,
			},
		}
	}
	return t
}

// Recorder returns the recorder to hand to the API client and session.
func (t *Telemetry) Recorder() *metrics.Recorder {
	if t == nil {
		return nil
	}
	return t.recorder
}

// ServeMetrics starts the scrape endpoint in the background when one is configured.
func (t *Telemetry) ServeMetrics() {
	if t == nil || t.metricsServer == nil {
		return
	}
	launchServer("metrics", t.metricsServer, t.logger)
}

// Shutdown flushes exporters and stops the scrape endpoint.
func (t *Telemetry) Shutdown() {
	if t == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if t.metricsStop != nil {
		if err := t.metricsStop(shutdownCtx); err != nil {
			logging.Warn(t.logger, "metrics shutdown failed", "error", err)
		}
	}
	if t.metricsServer != nil {
		if err := t.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(t.logger, "metrics server shutdown failed", "error", err)
		}
	}
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", "error", err)
		}
	}()
}
