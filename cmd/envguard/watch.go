package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"envguard-hq/envguard/pkg/cli"
	"envguard-hq/envguard/pkg/config"
	"envguard-hq/envguard/pkg/history"
	"envguard-hq/envguard/pkg/watch"
)

var watchFlags struct {
	schedule       string
	metricsAddress string
	debounce       time.Duration
}

var watchCmd = &cobra.Command{
	Use:   "watch [target] [sample]",
	Short: "Re-validate whenever the files change",
	Long: `Continuously validate the target file against its sample.

The check re-runs whenever either file changes (debounced), and optionally
on a cron schedule. Results are logged; with --metrics-address set,
Prometheus counters are served on /metrics. Checks always run one at a
time.

Examples:
  # Watch the default files
  envguard watch

  # Re-check hourly even without file changes
  envguard watch --schedule "0 * * * *"

  # Expose metrics for scraping
  envguard watch --metrics-address :9090`,
	Args: cobra.MaximumNArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchFlags.schedule, "schedule", "", "cron expression for periodic re-checks")
	watchCmd.Flags().StringVar(&watchFlags.metricsAddress, "metrics-address", "", "address to serve Prometheus metrics on (e.g. :9090)")
	watchCmd.Flags().DurationVar(&watchFlags.debounce, "debounce", 0, "quiet period after a file event before re-checking")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}
	if watchFlags.schedule != "" {
		cfg.Watch.Schedule = watchFlags.schedule
	}
	if watchFlags.metricsAddress != "" {
		cfg.Watch.MetricsAddress = watchFlags.metricsAddress
	}
	if watchFlags.debounce > 0 {
		cfg.Watch.Debounce = watchFlags.debounce
	}

	target := cfg.Files.Target
	sample := cfg.Files.Sample
	if len(args) > 0 {
		target = args[0]
	}
	if len(args) > 1 {
		sample = args[1]
	}

	logger := newLogger(cfg.Logging)
	slog.SetDefault(logger)

	var store history.Store
	if cfg.History.Enabled {
		store, err = history.NewSQLiteStore(cfg.History.Path)
		if err != nil {
			return cli.NewCommandError("watch", fmt.Errorf("cannot open history store: %w", err))
		}
		defer store.Close()
	}

	metrics := watch.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Checks run strictly one at a time, whatever triggers them.
	var mu sync.Mutex
	runOnce := func() {
		mu.Lock()
		defer mu.Unlock()

		result, err := executeCheck(target, sample)
		if err != nil {
			metrics.ParseErrors.Inc()
			logger.Error("check aborted", "error", err)
			return
		}

		metrics.ChecksTotal.Inc()
		if result.Valid {
			logger.Info("check passed", "target", target, "sample", sample)
		} else {
			metrics.CheckFailures.Inc()
			logger.Warn("check failed",
				"target", target,
				"sample", sample,
				"problems", result.Diagnostics(),
			)
		}

		if store != nil {
			run := history.NewRun(result.Target, result.Reference, result.Valid, result.Diagnostics())
			if err := store.Save(ctx, run); err != nil {
				logger.Error("cannot record check run", "error", err)
			}
		}
	}

	// Initial check before settling into watch mode.
	runOnce()

	if cfg.Watch.Schedule != "" {
		scheduler := watch.NewScheduler()
		if err := scheduler.Start(ctx, cfg.Watch.Schedule, runOnce); err != nil {
			return cli.NewCommandError("watch", err)
		}
		defer scheduler.Stop()
	}

	if cfg.Watch.MetricsAddress != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.Watch.MetricsAddress); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
	}

	watcher, err := watch.NewFileWatcher(&watch.FileWatcherConfig{
		Paths:            []string{target, sample},
		DebounceInterval: cfg.Watch.Debounce,
	}, logger)
	if err != nil {
		return cli.NewCommandError("watch", err)
	}

	if err := watcher.Watch(ctx, runOnce); err != nil {
		return cli.NewCommandError("watch", err)
	}
	return nil
}

// newLogger builds the structured logger for watch mode.
func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
