package loader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	oderrors "lf2-hq/datafile/pkg/objdata/errors"
)

// Metrics contains Prometheus metrics for the loader package.
type Metrics struct {
	// Load outcomes
	filesParsed  prometheus.Counter
	filesSkipped prometheus.Counter
	filesFailed  *prometheus.CounterVec

	// Parsed content
	framesParsed prometheus.Counter

	// Parse latency
	parseDuration prometheus.Histogram
}

// NewMetrics creates a new Metrics instance with Prometheus collectors.
// Collectors are registered with the default registry; create at most
// one Metrics per process.
func NewMetrics() *Metrics {
	return &Metrics{
		filesParsed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lf2data_loader_files_parsed_total",
				Help: "Total number of files parsed successfully",
			},
		),

		filesSkipped: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lf2data_loader_files_skipped_total",
				Help: "Total number of files skipped as unchanged",
			},
		),

		filesFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lf2data_loader_files_failed_total",
				Help: "Total number of files that failed to parse",
			},
			[]string{"error_type"},
		),

		framesParsed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "lf2data_loader_frames_parsed_total",
				Help: "Total number of animation frames parsed",
			},
		),

		parseDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lf2data_loader_parse_duration_seconds",
				Help:    "Duration of single-file parses in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12), // 100µs to ~400ms
			},
		),
	}
}

// RecordFileParsed records one successful parse.
func (m *Metrics) RecordFileParsed(frames int, seconds float64) {
	m.filesParsed.Inc()
	m.framesParsed.Add(float64(frames))
	m.parseDuration.Observe(seconds)
}

// RecordFileSkipped records a file skipped as unchanged.
func (m *Metrics) RecordFileSkipped() {
	m.filesSkipped.Inc()
}

// RecordFileFailed records a failed parse by error type.
func (m *Metrics) RecordFileFailed(errType oderrors.ErrorType) {
	m.filesFailed.WithLabelValues(string(errType)).Inc()
}
