package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/johnxie/doccatalog/internal/catalog"
	"github.com/johnxie/doccatalog/internal/health"
	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/util/atomicio"
)

var errMissingBaselinePath = errors.New("--write-baseline requires --baseline-file")

func runManifest(root, output string) error {
	inv, err := catalog.BuildInventory(root)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(root, filepath.FromSlash(output))
	if err := atomicio.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return err
	}

	slog.Info("Wrote tutorial manifest", logfields.Path(path), logfields.Count(inv.TutorialCount))
	return nil
}

func runHealth(root, jsonOutput, baselineFile string, writeBaseline bool) (int, error) {
	baseline, err := health.ReadBaseline(baselineFile)
	if baselineFile != "" && err != nil {
		return 1, err
	}

	report, err := health.Check(root, baseline)
	if err != nil {
		return 1, err
	}

	slog.Info("Health check complete",
		slog.Int("broken_links", report.BrokenLinkCount),
		slog.Int("new_broken_links", report.NewBrokenLinkCount),
		slog.Int("resolved_links", report.ResolvedLinkCount),
		slog.Int("missing_index", report.MissingIndexCount))

	if jsonOutput != "" {
		data, merr := json.MarshalIndent(report, "", "  ")
		if merr != nil {
			return 1, merr
		}
		if werr := atomicio.WriteFile(jsonOutput, append(data, '\n'), 0o644); werr != nil {
			return 1, werr
		}
	}

	if writeBaseline {
		if baselineFile == "" {
			return 1, errMissingBaselinePath
		}
		if werr := health.WriteBaseline(baselineFile, report.BrokenLinks); werr != nil {
			return 1, werr
		}
		slog.Info("Wrote broken-link baseline", logfields.Path(baselineFile))
	}

	if report.Failed(baselineFile != "") {
		return 1, nil
	}
	return 0, nil
}
