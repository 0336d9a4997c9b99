package mocks

import (
	"context"
	"sync"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// ReportSink is a thread-safe in-memory implementation of ports.ReportSink.
type ReportSink struct {
	mu       sync.RWMutex
	reports  []domain.BatchReport
	capacity int

	// WriteReportFn overrides the default behavior when set.
	WriteReportFn func(ctx context.Context, report domain.BatchReport) error
}

// NewReportSink creates an unbounded sink.
func NewReportSink() *ReportSink {
	return &ReportSink{}
}

// NewBoundedReportSink creates a sink that rejects writes beyond capacity.
func NewBoundedReportSink(capacity int) *ReportSink {
	return &ReportSink{capacity: capacity}
}

// WriteReport records the report.
func (s *ReportSink) WriteReport(ctx context.Context, report domain.BatchReport) error {
	if s.WriteReportFn != nil {
		return s.WriteReportFn(ctx, report)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacity > 0 && len(s.reports) >= s.capacity {
		return ErrSinkFull
	}

	s.reports = append(s.reports, report)

	return nil
}

// Reports returns a copy of every recorded report.
func (s *ReportSink) Reports() []domain.BatchReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.BatchReport(nil), s.reports...)
}

// Clear removes all recorded reports.
func (s *ReportSink) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reports = nil
}
