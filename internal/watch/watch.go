// Package watch keeps discoverability assets current while authors edit the
// corpus: a filesystem watcher regenerates on change (debounced), a scheduler
// regenerates on a fixed interval as a safety net, and a small HTTP endpoint
// exposes Prometheus metrics for the long-running process.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnxie/doccatalog/internal/catalog"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/metrics"
)

// GenerateFunc regenerates the full asset set. Injected by the CLI so this
// package stays free of pipeline wiring.
type GenerateFunc func(ctx context.Context, rec metrics.Recorder) error

// Options configures a Watcher.
type Options struct {
	Root     string
	Interval time.Duration // periodic regeneration; 0 disables the schedule
	Listen   string        // metrics listen address; "" disables the endpoint
	Debounce time.Duration // quiet period after a filesystem event
}

// Watcher owns the regeneration loop.
type Watcher struct {
	opts     Options
	generate GenerateFunc
	recorder *metrics.PrometheusRecorder
	registry *prom.Registry
}

// New creates a watcher with its own Prometheus registry.
func New(opts Options, generate GenerateFunc) *Watcher {
	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}
	registry := prom.NewRegistry()
	registry.MustRegister(
		promcollect.NewGoCollector(),
		promcollect.NewProcessCollector(promcollect.ProcessCollectorOpts{}),
	)
	return &Watcher{
		opts:     opts,
		generate: generate,
		recorder: metrics.NewPrometheusRecorder(registry),
		registry: registry,
	}
}

// Run blocks until ctx is canceled. An initial generation runs before
// watching begins so the tree is consistent from the start.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.regenerate(ctx); err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addCorpusDirs(fsw); err != nil {
		return err
	}

	var scheduler gocron.Scheduler
	if w.opts.Interval > 0 {
		scheduler, err = gocron.NewScheduler()
		if err != nil {
			return fmt.Errorf("create scheduler: %w", err)
		}
		_, err = scheduler.NewJob(
			gocron.DurationJob(w.opts.Interval),
			gocron.NewTask(func() {
				if gerr := w.regenerate(ctx); gerr != nil {
					slog.Error("Scheduled regeneration failed", logfields.Error(gerr))
				}
			}),
			gocron.WithName("periodic-regenerate"),
		)
		if err != nil {
			return fmt.Errorf("schedule periodic regeneration: %w", err)
		}
		scheduler.Start()
		defer func() { _ = scheduler.Shutdown() }()
	}

	var server *http.Server
	if w.opts.Listen != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(w.registry, promhttp.HandlerOpts{}))
		mux.HandleFunc("/healthz", func(rw http.ResponseWriter, _ *http.Request) {
			rw.WriteHeader(http.StatusOK)
			_, _ = rw.Write([]byte("ok\n"))
		})
		server = &http.Server{Addr: w.opts.Listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			slog.Info("Metrics endpoint listening", slog.String("addr", w.opts.Listen))
			if serr := server.ListenAndServe(); serr != nil && serr != http.ErrServerClosed {
				slog.Error("Metrics endpoint failed", logfields.Error(serr))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(shutdownCtx)
		}()
	}

	slog.Info("Watching corpus for changes",
		logfields.Root(w.opts.Root),
		slog.Duration("interval", w.opts.Interval))

	// Debounce rapid editor save bursts into a single regeneration.
	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(event) {
				continue
			}
			slog.Debug("Corpus change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			if event.Op.Has(fsnotify.Create) {
				// New tutorial directories need their own watch.
				_ = fsw.Add(event.Name)
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.opts.Debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error", logfields.Error(err))
		case <-pending:
			if err := w.regenerate(ctx); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) regenerate(ctx context.Context) error {
	start := time.Now()
	err := w.generate(ctx, w.recorder)
	w.recorder.ObserveRunDuration(time.Since(start))
	if err != nil {
		w.recorder.IncRunOutcome("failed")
		return err
	}
	w.recorder.IncRunOutcome("success")
	return nil
}

// addCorpusDirs watches the tutorials tree (per-directory; fsnotify has no
// recursive mode).
func (w *Watcher) addCorpusDirs(fsw *fsnotify.Watcher) error {
	tutorialsRoot := filepath.Join(w.opts.Root, catalog.TutorialsDir)
	return filepath.WalkDir(tutorialsRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fsw.Add(path)
		}
		return nil
	})
}

func relevantEvent(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return false
	}
	// Ignore our own temp files and non-markdown noise.
	base := filepath.Base(event.Name)
	if base == "" || base[0] == '.' {
		return false
	}
	return filepath.Ext(base) == ".md" || event.Op.Has(fsnotify.Create)
}
