package mocks

import (
	"sync"
	"time"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// Observer is a thread-safe implementation of ports.ClassificationObserver that counts calls.
type Observer struct {
	mu        sync.Mutex
	rows      int
	byStatus  map[domain.Status]int
	summaries []domain.BatchSummary
}

// NewObserver creates an empty observer.
func NewObserver() *Observer {
	return &Observer{byStatus: make(map[domain.Status]int)}
}

// ObserveRow counts the result.
func (o *Observer) ObserveRow(result domain.ProcessingResult) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.rows++
	o.byStatus[result.Status]++
}

// ObserveBatch records the summary.
func (o *Observer) ObserveBatch(summary domain.BatchSummary, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.summaries = append(o.summaries, summary)
}

// Rows returns how many rows were observed.
func (o *Observer) Rows() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.rows
}

// StatusCount returns how many observed rows had status s.
func (o *Observer) StatusCount(s domain.Status) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.byStatus[s]
}

// Summaries returns a copy of every observed batch summary.
func (o *Observer) Summaries() []domain.BatchSummary {
	o.mu.Lock()
	defer o.mu.Unlock()

	return append([]domain.BatchSummary(nil), o.summaries...)
}
