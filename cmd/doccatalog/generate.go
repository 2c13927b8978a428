package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/johnxie/doccatalog/internal/catalog"
	"github.com/johnxie/doccatalog/internal/config"
	"github.com/johnxie/doccatalog/internal/emit"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/metrics"
)

// runGenerate is the full pipeline: scan -> extract/classify -> snapshot ->
// emit. Soft per-document skips still exit zero; a missing corpus root or a
// consistency assertion failure does not.
func runGenerate(ctx context.Context, root, configPath string, rec metrics.Recorder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	start := time.Now()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	scanStart := time.Now()
	docs, err := catalog.NewScanner(root).WithRecorder(rec).Scan()
	if err != nil {
		return err
	}
	rec.ObserveStageDuration("scan", time.Since(scanStart))

	snapStart := time.Now()
	snap, err := catalog.BuildSnapshot(cfg, docs, time.Now())
	if err != nil {
		return err
	}
	rec.ObserveStageDuration("snapshot", time.Since(snapStart))

	for range snap.Records {
		rec.IncDocument(metrics.DocumentIndexed)
	}
	for i := len(snap.Records); i < len(docs); i++ {
		rec.IncDocument(metrics.DocumentExcluded)
	}
	rec.SetTutorialCount(len(snap.Records))

	if err := emit.New(root, cfg, rec).EmitAll(snap); err != nil {
		return err
	}

	slog.Info("Discoverability assets regenerated",
		logfields.RunID(snap.RunID),
		logfields.Count(len(snap.Records)),
		logfields.DurationMS(float64(time.Since(start).Milliseconds())))
	return nil
}
