package metrics

import "time"

// DocumentResult enumerates per-document scan outcomes for counters.
type DocumentResult string

const (
	DocumentIndexed  DocumentResult = "indexed"
	DocumentSkipped  DocumentResult = "skipped"
	DocumentExcluded DocumentResult = "excluded"
)

// Recorder defines observability hooks for pipeline runs. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe for
// nil receivers when using the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncDocument(result DocumentResult)
	IncArtifact(name string)
	IncRunOutcome(outcome string) // outcome: success|failed
	SetTutorialCount(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncDocument(DocumentResult)                 {}
func (NoopRecorder) IncArtifact(string)                         {}
func (NoopRecorder) IncRunOutcome(string)                       {}
func (NoopRecorder) SetTutorialCount(int)                       {}
