package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once          sync.Once
	stageDuration *prom.HistogramVec
	runDuration   prom.Histogram
	documents     *prom.CounterVec
	artifacts     *prom.CounterVec
	runOutcome    *prom.CounterVec
	tutorialCount prom.Gauge
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.stageDuration = prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "doccatalog",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual pipeline stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"})
		pr.runDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "doccatalog",
			Name:      "run_duration_seconds",
			Help:      "Total generator run duration",
			Buckets:   prom.DefBuckets,
		})
		pr.documents = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccatalog",
			Name:      "documents_total",
			Help:      "Scanned tutorial documents by outcome",
		}, []string{"result"})
		pr.artifacts = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccatalog",
			Name:      "artifacts_written_total",
			Help:      "Artifacts written by name",
		}, []string{"artifact"})
		pr.runOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "doccatalog",
			Name:      "run_outcomes_total",
			Help:      "Generator run outcomes by final status",
		}, []string{"outcome"})
		pr.tutorialCount = prom.NewGauge(prom.GaugeOpts{
			Namespace: "doccatalog",
			Name:      "tutorial_count",
			Help:      "Tutorial records in the last built snapshot",
		})
		reg.MustRegister(pr.stageDuration, pr.runDuration, pr.documents, pr.artifacts, pr.runOutcome, pr.tutorialCount)
	})
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil || p.stageDuration == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveRunDuration(d time.Duration) {
	if p == nil || p.runDuration == nil {
		return
	}
	p.runDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncDocument(result DocumentResult) {
	if p == nil || p.documents == nil {
		return
	}
	p.documents.WithLabelValues(string(result)).Inc()
}

func (p *PrometheusRecorder) IncArtifact(name string) {
	if p == nil || p.artifacts == nil {
		return
	}
	p.artifacts.WithLabelValues(name).Inc()
}

func (p *PrometheusRecorder) IncRunOutcome(outcome string) {
	if p == nil || p.runOutcome == nil {
		return
	}
	p.runOutcome.WithLabelValues(outcome).Inc()
}

func (p *PrometheusRecorder) SetTutorialCount(n int) {
	if p == nil || p.tutorialCount == nil {
		return
	}
	p.tutorialCount.Set(float64(n))
}
