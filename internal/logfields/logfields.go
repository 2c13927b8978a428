package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRoot       = "root"
	KeySlug       = "slug"
	KeyPath       = "path"
	KeyCluster    = "cluster"
	KeyArtifact   = "artifact"
	KeyStage      = "stage"
	KeyCount      = "count"
	KeyRunID      = "run_id"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Root(p string) slog.Attr { return slog.String(KeyRoot, p) }

func Slug(s string) slog.Attr { return slog.String(KeySlug, s) }

func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

func Cluster(c string) slog.Attr { return slog.String(KeyCluster, c) }

func Artifact(a string) slog.Attr { return slog.String(KeyArtifact, a) }

func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }

func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }

func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }

func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

// Error renders an error message field; nil errors render as empty.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
