// Package metrics exports validation results as Prometheus gauges in
// node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kwcheck"

// Severity label values. Each observed document gets a series for both.
var severities = []string{"error", "warning"}

// Finding identifies the document and severity of one validation finding.
type Finding struct {
	Document string
	Severity string
}

// Recorder holds the gauges of one run on a private registry.
type Recorder struct {
	registry  *prometheus.Registry
	findings  *prometheus.GaugeVec
	validated prometheus.Gauge
	lastRun   prometheus.Gauge
}

// NewRecorder creates a Recorder with its gauges registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}
	r.findings = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "findings",
		Help:      "Number of validation findings per document and severity",
	}, []string{"document", "severity"})
	r.validated = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "documents_validated",
		Help:      "Number of content documents loaded and validated",
	})
	r.lastRun = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the last validation run",
	})
	r.registry.MustRegister(r.findings, r.validated, r.lastRun)
	return r
}

// Observe sets the gauges from a finished run. Every name in documents
// gets a series per severity, zero when clean.
func (r *Recorder) Observe(documents []string, findings []Finding, at time.Time) {
	r.findings.Reset()
	for _, doc := range documents {
		for _, sev := range severities {
			r.findings.WithLabelValues(doc, sev)
		}
	}
	for _, f := range findings {
		r.findings.WithLabelValues(f.Document, f.Severity).Inc()
	}
	r.validated.Set(float64(len(documents)))
	r.lastRun.Set(float64(at.Unix()))
}

// WriteTextfile writes the current gauges to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics %s: %w", path, err)
	}
	return nil
}
