// Package emit renders every discoverability artifact from one immutable
// snapshot. All renderers are pure functions of the snapshot, so artifacts in
// a single run are mutually consistent by construction, and re-running over
// an unchanged snapshot yields byte-identical files.
package emit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/johnxie/doccatalog/internal/catalog"
	"github.com/johnxie/doccatalog/internal/config"
	cerrors "github.com/johnxie/doccatalog/internal/errors"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/metrics"
	"github.com/johnxie/doccatalog/internal/util/atomicio"
)

// Emitter writes the full artifact set under a repository root.
type Emitter struct {
	root string
	site config.SiteConfig
	out  config.OutputConfig
	rec  metrics.Recorder
}

// New creates an emitter. rec may be nil; metrics become no-ops.
func New(root string, cfg config.Config, rec metrics.Recorder) *Emitter {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Emitter{root: root, site: cfg.Site, out: cfg.Output, rec: rec}
}

// artifact pairs a relative output path with its rendered bytes and the
// tutorial total the renderer embedded, for the cross-artifact assertion.
type artifact struct {
	relPath string
	data    []byte
	total   int
}

// EmitAll verifies the snapshot, renders every artifact, asserts that each
// one agrees on the tutorial total, and writes them atomically. Nothing is
// written before every artifact has rendered, so a render failure leaves the
// tree untouched.
func (e *Emitter) EmitAll(snap *catalog.Snapshot) error {
	start := time.Now()
	if err := snap.Verify(); err != nil {
		return err
	}

	renderers := []struct {
		relPath string
		render  func(*catalog.Snapshot) ([]byte, int, error)
	}{
		{e.out.IndexJSON, e.renderIndexJSON},
		{e.out.DirectoryMD, e.renderDirectoryMD},
		{e.out.IntentMapMD, e.renderIntentMapMD},
		{e.out.QueryHubMD, e.renderQueryHubMD},
		{e.out.QueryCoverage, e.renderQueryCoverageJSON},
		{e.out.ItemListJSON, e.renderItemListJSON},
		{e.out.LLMs, e.renderLLMsTxt},
		{e.out.LLMsFull, e.renderLLMsFullTxt},
	}

	want := len(snap.Records)
	artifacts := make([]artifact, 0, len(renderers)+1)
	for _, r := range renderers {
		data, total, err := r.render(snap)
		if err != nil {
			return cerrors.Wrap(err, cerrors.CategoryArtifact, cerrors.SeverityFatal, "render "+r.relPath)
		}
		if total != want {
			return cerrors.ConsistencyError(
				fmt.Sprintf("artifact %s reports %d tutorials, snapshot has %d", r.relPath, total, want))
		}
		artifacts = append(artifacts, artifact{relPath: r.relPath, data: data, total: total})
	}

	manifest, err := e.renderRunManifest(snap, artifacts)
	if err != nil {
		return cerrors.Wrap(err, cerrors.CategoryArtifact, cerrors.SeverityFatal, "render run manifest")
	}
	artifacts = append(artifacts, artifact{relPath: e.out.RunManifest, data: manifest, total: want})

	for _, a := range artifacts {
		path := filepath.Join(e.root, filepath.FromSlash(a.relPath))
		if err := atomicio.WriteFile(path, a.data, 0o644); err != nil {
			return cerrors.Wrap(err, cerrors.CategoryArtifact, cerrors.SeverityFatal, "write "+a.relPath)
		}
		e.rec.IncArtifact(a.relPath)
		slog.Info("Wrote artifact", logfields.Artifact(a.relPath), slog.Int("bytes", len(a.data)))
	}

	e.rec.ObserveStageDuration("emit", time.Since(start))
	return nil
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
