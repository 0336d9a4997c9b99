package mocks

import (
	"context"
	"sync"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// RowSource is a thread-safe in-memory implementation of ports.RowSource.
type RowSource struct {
	mu     sync.Mutex
	name   string
	rows   []domain.Row
	closed bool
	reads  int

	// ReadRowsFn overrides the default behavior when set.
	ReadRowsFn func(ctx context.Context) ([]domain.Row, error)
}

// NewRowSource creates a source that returns rows on every read.
func NewRowSource(name string, rows ...domain.Row) *RowSource {
	return &RowSource{name: name, rows: rows}
}

// Name returns the configured source name.
func (s *RowSource) Name() string {
	return s.name
}

// ReadRows returns the configured rows.
func (s *RowSource) ReadRows(ctx context.Context) ([]domain.Row, error) {
	s.mu.Lock()
	s.reads++
	fn := s.ReadRowsFn
	closed := s.closed
	rows := append([]domain.Row(nil), s.rows...)
	s.mu.Unlock()

	if fn != nil {
		return fn(ctx)
	}

	if closed {
		return nil, ErrSourceClosed
	}

	return rows, nil
}

// Close makes subsequent reads fail with ErrSourceClosed.
func (s *RowSource) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
}

// Reads returns how many times ReadRows was called.
func (s *RowSource) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.reads
}
