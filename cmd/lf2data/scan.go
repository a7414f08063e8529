package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"lf2-hq/datafile/pkg/catalog"
	"lf2-hq/datafile/pkg/cli"
	"lf2-hq/datafile/pkg/config"
	"lf2-hq/datafile/pkg/loader"
)

var scanFlags struct {
	dir         string
	watch       bool
	dryRun      bool
	noState     bool
	metricsAddr string
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a data directory into the catalog",
	Long: `Scan a data directory, parse every object data file, and record the
results in the catalog.

With --watch the command keeps running after the initial scan,
re-parsing files as they change on disk. If the configuration sets a
rescan schedule, a full rescan also runs on that cron schedule.

Examples:
  # Scan the configured data directory
  lf2data scan

  # Scan a specific directory, ignoring unchanged files
  lf2data scan --dir data/

  # Keep watching for changes after the scan
  lf2data scan --watch

  # Validate configuration without scanning
  lf2data scan --dry-run`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFlags.dir, "dir", "d", "", "override the configured data directory")
	scanCmd.Flags().BoolVarP(&scanFlags.watch, "watch", "w", false, "keep watching for file changes after the scan")
	scanCmd.Flags().BoolVar(&scanFlags.dryRun, "dry-run", false, "validate configuration without scanning")
	scanCmd.Flags().BoolVar(&scanFlags.noState, "no-catalog", false, "parse without recording catalog entries")
	scanCmd.Flags().StringVar(&scanFlags.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address in watch mode, e.g. :9090")
}

// Prometheus collectors register in the default registry, so they are
// created at most once per process.
var (
	metricsOnce sync.Once
	scanMetrics *loader.Metrics
)

func getMetrics() *loader.Metrics {
	metricsOnce.Do(func() {
		scanMetrics = loader.NewMetrics()
	})
	return scanMetrics
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadScanConfig(cmd)
	if err != nil {
		return err
	}

	if scanFlags.dir != "" {
		cfg.Data.Dir = scanFlags.dir
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if cfg.Data.Dir == "" {
		return fmt.Errorf("no data directory configured (set data.dir or pass --dir)")
	}

	setupLogging(cfg)

	if scanFlags.dryRun {
		fmt.Println("✓ Configuration valid")
		return nil
	}

	var backend catalog.Backend
	if !scanFlags.noState {
		backend, err = newCatalogBackend(cfg)
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		defer backend.Close()
	}

	// The progress bar covers the initial scan only; rescans in watch
	// mode report through the logger instead.
	progress := cli.NewProgressReporter(os.Stdout)
	var progressOnce sync.Once
	var scanning atomic.Bool
	scanning.Store(true)

	ldr := loader.New(backend, getMetrics(), slog.Default(), &loader.Config{
		Workers:       cfg.Data.Workers,
		Extensions:    cfg.Data.Extensions,
		SkipUnchanged: cfg.Data.SkipUnchanged != nil && *cfg.Data.SkipUnchanged,
		OnProgress: func(completed, total int) {
			if !scanning.Load() {
				return
			}
			progressOnce.Do(func() { progress.Start(int64(total)) })
			progress.Update(int64(completed))
		},
	})

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	results, err := ldr.LoadDir(ctx, cfg.Data.Dir)
	scanning.Store(false)
	if err != nil {
		return cli.NewCommandError("scan", err)
	}
	if len(results) > 0 {
		progress.Finish()
	}

	failed := reportScan(results)

	if !scanFlags.watch {
		if failed > 0 {
			return cli.NewCommandError("scan", fmt.Errorf("%d file(s) failed to parse", failed))
		}
		return nil
	}

	return watchLoop(ctx, cfg, ldr)
}

// loadScanConfig initializes the process-wide configuration and
// returns it; when the default config file is absent and was not
// requested explicitly, built-in defaults apply so that
// "lf2data scan --dir data/" works without any file.
func loadScanConfig(cmd *cobra.Command) (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		if err := config.SetConfig(config.DefaultConfig()); err != nil {
			return nil, err
		}
		return config.GetConfig()
	}
	if err := config.Initialize(cfgFile); err != nil {
		return nil, err
	}
	return config.GetConfig()
}

func setupLogging(cfg *config.Config) {
	var level slog.Level
	switch cfg.Logging.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Logging.AddSource,
	}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func newCatalogBackend(cfg *config.Config) (catalog.Backend, error) {
	switch cfg.Catalog.Backend {
	case "sqlite":
		busyTimeout, _ := time.ParseDuration(cfg.Catalog.SQLite.BusyTimeout)
		checkpointInterval, _ := time.ParseDuration(cfg.Catalog.SQLite.CheckpointInterval)
		return catalog.NewSQLiteBackendWithConfig(catalog.SQLiteBackendConfig{
			DBPath:             cfg.Catalog.SQLite.Path,
			BusyTimeout:        busyTimeout,
			CheckpointInterval: checkpointInterval,
		})
	default:
		return catalog.NewMemoryBackend(), nil
	}
}

// reportScan prints the per-file outcome and returns the failure count.
func reportScan(results []*loader.Result) int {
	parsed, skipped, failed := 0, 0, 0

	for _, result := range results {
		switch {
		case result.Err != nil:
			fmt.Printf("✗ %s: %s\n", result.File, result.Err.OneLine())
			failed++
		case result.Skipped:
			skipped++
		default:
			fmt.Printf("✓ %s: %s (%d frames)\n", result.File, result.Object.Header.Name, result.Object.FrameCount())
			parsed++
		}
	}

	fmt.Printf("\nScanned %d file(s): %d parsed, %d unchanged, %d failed\n",
		len(results), parsed, skipped, failed)
	return failed
}

// newMetricsServer returns an HTTP server exposing the Prometheus
// metrics on /metrics.
func newMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// watchLoop re-parses changed files until the context is cancelled.
func watchLoop(ctx context.Context, cfg *config.Config, ldr *loader.Loader) error {
	if scanFlags.metricsAddr != "" {
		srv := newMetricsServer(scanFlags.metricsAddr)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("metrics server failed", "addr", srv.Addr, "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()
		slog.Info("serving metrics", "addr", scanFlags.metricsAddr)
	}

	debounce, err := time.ParseDuration(cfg.Watch.DebounceInterval)
	if err != nil {
		debounce = 500 * time.Millisecond
	}

	watcher, err := loader.NewFileWatcher(&loader.FileWatcherConfig{
		Path:             cfg.Data.Dir,
		DebounceInterval: debounce,
		Extensions:       cfg.Data.Extensions,
		SkipHidden:       true,
	}, slog.Default())
	if err != nil {
		return cli.NewCommandError("scan", err)
	}
	defer watcher.Stop()

	if cfg.Schedule.Rescan != "" {
		scheduler := loader.NewScheduler(ldr, cfg.Data.Dir, cfg.Schedule.Rescan)
		if err := scheduler.Start(ctx); err != nil {
			return cli.NewCommandError("scan", err)
		}
		defer scheduler.Stop()
	}

	slog.Info("watching data directory", "dir", cfg.Data.Dir)

	err = watcher.Watch(ctx, func(path string) error {
		result := ldr.LoadFile(ctx, path)
		if result.Err != nil {
			fmt.Printf("✗ %s: %s\n", result.File, result.Err.OneLine())
			return result.Err
		}
		if !result.Skipped {
			fmt.Printf("✓ %s: %s (%d frames)\n", result.File, result.Object.Header.Name, result.Object.FrameCount())
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		return cli.NewCommandError("scan", err)
	}
	return nil
}
