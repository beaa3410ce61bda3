package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/gotrack/pkg/metrics"
	"github.com/philipparndt/gotrack/pkg/track"
	"github.com/philipparndt/gotrack/pkg/trackfile"
	"github.com/philipparndt/gotrack/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	metricsAddr string
	debounce    time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Recompute segments whenever a layout file changes",
	Long: `Watch a layout file and print its segments each time it is saved. Every
reload starts a new anchor generation, so positions still in flight for an
older version of the file are dropped.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (overrides config)")
	watchCmd.Flags().DurationVar(&debounce, "debounce", watcher.DefaultDebounce, "quiet period before a change is reloaded")
}

func runWatch(cmd *cobra.Command, args []string) error {
	filename := args[0]
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	initial, err := trackfile.Parse(filename)
	if err != nil {
		return fmt.Errorf("error parsing layout file: %w", err)
	}

	registry := metrics.NewRegistry()
	c, err := newConnector(initial, track.WithObserver(registry))
	if err != nil {
		return err
	}
	defer c.Release()

	c.OnSegmentsReady(func(gen track.Generation, segments []track.Segment) {
		fmt.Fprintf(out, "generation %d:\n", gen)
		writeSegmentsTable(out, segments, false)
	})

	addr := cfg.Metrics.Addr
	if metricsAddr != "" {
		addr = metricsAddr
	}
	if addr != "" {
		srv := serveMetrics(addr, registry)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	w, err := watcher.New(debounce, logger)
	if err != nil {
		return err
	}
	defer w.Close()

	reload := func(layout *trackfile.Layout) {
		if _, err := connect(ctx, c, layout); err != nil && !errors.Is(err, track.ErrSuperseded) {
			logger.Warn("failed to connect layout", "error", err)
		}
	}

	if err := w.Watch(filename, func(_ string, layout *trackfile.Layout) {
		reload(layout)
	}); err != nil {
		return err
	}
	w.Start(ctx)

	logger.Info("watching layout", "path", filename, "connector", c.ID())
	reload(initial)

	<-ctx.Done()
	stats := c.Stats()
	logger.Info("stopped watching",
		"generation", stats.Generation, "recomputes", stats.Recomputes, "stale_reports", stats.StaleReports)
	return nil
}

func serveMetrics(addr string, registry *metrics.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", registry.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	logger.Info("serving metrics", "addr", addr)
	return srv
}
