package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Statement metrics
	StatementsBuilt    prometheus.Counter
	StatementLines     prometheus.Histogram
	StatementCacheHits *prometheus.CounterVec

	// Import metrics
	ImportRuns       *prometheus.CounterVec
	ImportDuration   prometheus.Histogram
	PostingsImported prometheus.Counter
	AccountsImported prometheus.Counter

	// Legacy source metrics
	ExportReadErrors *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		StatementsBuilt: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uctoportal_statements_built_total",
			Help: "Total number of account statements built",
		}),
		StatementLines: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "uctoportal_statement_lines",
			Help:    "Number of lines per built statement",
			Buckets: []float64{0, 10, 50, 100, 500, 1000, 5000, 10000},
		}),
		StatementCacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uctoportal_statement_cache_total",
				Help: "Statement cache lookups by result",
			},
			[]string{"result"},
		),

		ImportRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uctoportal_import_runs_total",
				Help: "Total ledger import runs by status",
			},
			[]string{"status"},
		),
		ImportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "uctoportal_import_duration_seconds",
			Help:    "Duration of ledger import runs",
			Buckets: prometheus.DefBuckets,
		}),
		PostingsImported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uctoportal_postings_imported_total",
			Help: "Total journal rows mirrored from legacy exports",
		}),
		AccountsImported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "uctoportal_accounts_imported_total",
			Help: "Total account records mirrored from legacy exports",
		}),

		ExportReadErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uctoportal_export_read_errors_total",
				Help: "Total legacy export read failures by kind",
			},
			[]string{"kind"},
		),
	}
}
