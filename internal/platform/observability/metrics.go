package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

var (
	RowsClassified = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_rows_classified_total",
		Help: "The total number of classified rows by status and confidence",
	}, []string{"status", "confidence"})

	RowWarnings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_row_warnings_total",
		Help: "The total number of warnings attached to classified rows by type",
	}, []string{"type"})

	RowsNeedingReview = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_rows_needing_review_total",
		Help: "The total number of rows flagged for operator review",
	})

	BatchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "assessment_batches_processed_total",
		Help: "The total number of classified batches",
	})

	BatchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assessment_batch_duration_seconds",
		Help:    "Duration in seconds to classify a batch",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
	})

	BatchSizeRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assessment_batch_size_rows",
		Help:    "Number of rows per classified batch",
		Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
	})

	LastFieldDetectionRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "assessment_last_field_detection_rate",
		Help: "Field detection rate (percent) of the most recent batch",
	})

	LastDefaultingRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "assessment_last_defaulting_rate",
		Help: "Defaulting rate (percent) of the most recent batch",
	})

	InboxFilesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assessment_inbox_files_total",
		Help: "The total number of inbox files handled in watch mode by outcome",
	}, []string{"outcome"})
)

// ClassifierMetrics records classification outcomes into the package metrics.
// It implements ports.ClassificationObserver.
type ClassifierMetrics struct{}

// NewClassifierMetrics returns an observer backed by the global registry.
func NewClassifierMetrics() *ClassifierMetrics {
	return &ClassifierMetrics{}
}

func (ClassifierMetrics) ObserveRow(result domain.ProcessingResult) {
	RowsClassified.WithLabelValues(string(result.Status), string(result.Confidence)).Inc()

	for _, w := range result.Warnings {
		RowWarnings.WithLabelValues(string(w.Type)).Inc()
	}

	if result.NeedsReview() {
		RowsNeedingReview.Inc()
	}
}

func (ClassifierMetrics) ObserveBatch(summary domain.BatchSummary, elapsed time.Duration) {
	BatchesProcessed.Inc()
	BatchDurationSeconds.Observe(elapsed.Seconds())
	BatchSizeRows.Observe(float64(summary.TotalRows))
	LastFieldDetectionRate.Set(summary.FieldDetectionRate)
	LastDefaultingRate.Set(summary.DefaultingRate)
}
