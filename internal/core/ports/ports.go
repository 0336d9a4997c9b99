// Package ports provides domain-centric interfaces for external dependencies.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern,
// allowing the classification engine to remain independent of where rows come from
// and where results are persisted.
package ports

import (
	"context"
	"time"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// RowSource yields one batch of rows to classify.
type RowSource interface {
	// Name identifies the source in reports and logs.
	Name() string
	ReadRows(ctx context.Context) ([]domain.Row, error)
}

// ReportSink receives classified batches, e.g. for import review.
type ReportSink interface {
	WriteReport(ctx context.Context, report domain.BatchReport) error
}

// ClassificationObserver is notified of every classified row and finished batch.
// Implementations must be safe for concurrent use.
type ClassificationObserver interface {
	ObserveRow(result domain.ProcessingResult)
	ObserveBatch(summary domain.BatchSummary, elapsed time.Duration)
}
