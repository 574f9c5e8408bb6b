package watch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes check counters while watching.
type Metrics struct {
	// ChecksTotal counts completed checks, pass or fail.
	ChecksTotal prometheus.Counter

	// CheckFailures counts checks that reported validation problems.
	CheckFailures prometheus.Counter

	// ParseErrors counts checks aborted by a parse or read failure.
	ParseErrors prometheus.Counter

	registry *prometheus.Registry
}

// NewMetrics creates the counters on a private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		ChecksTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "envguard",
			Name:      "checks_total",
			Help:      "Total number of completed checks.",
		}),
		CheckFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "envguard",
			Name:      "check_failures_total",
			Help:      "Number of checks that reported validation problems.",
		}),
		ParseErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "envguard",
			Name:      "parse_errors_total",
			Help:      "Number of checks aborted by a parse or read failure.",
		}),
		registry: registry,
	}
}

// Handler returns an HTTP handler serving the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve runs an HTTP server exposing /metrics on addr until the context is
// cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	logger := slog.Default().With("component", "watch.metrics")
	logger.Info("metrics server started", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("metrics server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}
