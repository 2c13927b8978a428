package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/johnxie/doccatalog/internal/logfields"
	"github.com/johnxie/doccatalog/internal/util/atomicio"
)

// WriteJSON writes the report atomically to path.
func (r Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s report: %w", r.Kind, err)
	}
	return atomicio.WriteFile(path, append(data, '\n'), 0o644)
}

// Log emits a per-severity summary plus one line per stale finding, the
// shape CI logs are grepped for.
func (r Report) Log() {
	slog.Info("Audit complete",
		slog.String("kind", r.Kind),
		logfields.Count(r.FindingCount),
		slog.Int("stale", r.SeverityCounts[SeverityStale]),
		slog.Int("aging", r.SeverityCounts[SeverityAging]),
		slog.Int("fresh", r.SeverityCounts[SeverityFresh]),
		slog.Int("unparseable", r.SeverityCounts[SeverityUnparseable]))

	for _, f := range r.Findings {
		if f.Severity != SeverityStale {
			continue
		}
		age := 0
		if f.AgeDays != nil {
			age = *f.AgeDays
		}
		slog.Warn("Stale claim",
			logfields.Path(f.File),
			slog.Int("line", f.LineNumber),
			slog.String("date", f.ParsedDate),
			slog.Int("age_days", age),
			slog.String("claim", f.ClaimText))
	}
}
