package prometheus

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/types"
)

const (
	OutcomeFlagged = "flagged"
	OutcomeClean   = "clean"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	latencyBuckets = []float64{
		1, 5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_scanner_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"route", "method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "title_scanner_request_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)

	TitlesScanned = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "title_scanner_titles_scanned_total",
			Help: "Titles scored, by whether anything lowered the score",
		},
		[]string{"outcome"},
	)

	SafetyScore = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "title_scanner_safety_score",
			Help:    "Distribution of safety scores",
			Buckets: prometheus.LinearBuckets(10, 10, 10),
		},
	)

	BatchSize = promauto.With(registerer).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "title_scanner_batch_size",
			Help:    "Number of titles per scan request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

var initOnce sync.Once

// Initialize adds the process collector and makes the private registry the
// default one. Safe to call more than once.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveResults records one scanned batch.
func ObserveResults(results []types.ScanResult) {
	BatchSize.Observe(float64(len(results)))
	for _, res := range results {
		outcome := OutcomeClean
		if res.Flagged() {
			outcome = OutcomeFlagged
		}
		TitlesScanned.WithLabelValues(outcome).Inc()
		SafetyScore.Observe(float64(res.SafetyScore))
	}
}
