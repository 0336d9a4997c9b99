// Package assessment classifies imported assessment outcomes into PASS, FAIL or PENDING.
//
// Rows come from spreadsheets, LMS exports or manual entry, so neither the column
// name nor the value vocabulary is standardized. For each row the package:
//   - locates the outcome column (DetectField)
//   - normalizes the raw cell (NormalizeValue)
//   - classifies it against ordered pattern groups and the grade mapping (Classify)
//   - records confidence and an audit trail of warnings (ProcessRow)
//
// Batches are a pure fold over independent rows (ProcessBatch, Summarize).
// The package-level functions are stateless; Processor binds a validated config
// and adds logging, metrics and a bounded concurrent batch path.
package assessment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	apperrors "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/errors"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/ports"
)

const defaultWorkers = 4

// ConfigError lists every validation failure. It unwraps to errors.ErrInvalidConfig.
type ConfigError struct {
	Errors []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", apperrors.ErrInvalidConfig, strings.Join(e.Errors, "; "))
}

func (e *ConfigError) Unwrap() error {
	return apperrors.ErrInvalidConfig
}

// Processor classifies rows under one validated, read-only config.
// It is safe for concurrent use.
type Processor struct {
	cfg      domain.ProcessingConfig
	logger   *zerolog.Logger
	observer ports.ClassificationObserver
}

// New validates cfg and binds a private copy of it. An invalid config is rejected
// here so that no row is ever classified under it. logger and observer may be nil.
func New(cfg domain.ProcessingConfig, logger *zerolog.Logger, observer ports.ClassificationObserver) (*Processor, error) {
	if res := Validate(cfg); !res.IsValid {
		return nil, &ConfigError{Errors: res.Errors}
	}

	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	bound := cfg.Clone()
	bound.GradeMapping = upperKeys(bound.GradeMapping)

	return &Processor{
		cfg:      bound,
		logger:   logger,
		observer: observer,
	}, nil
}

// Config returns a copy of the bound config.
func (p *Processor) Config() domain.ProcessingConfig {
	return p.cfg.Clone()
}

// ProcessRow classifies a single row.
func (p *Processor) ProcessRow(row domain.Row) domain.ProcessingResult {
	result := ProcessRow(row, p.cfg)

	if p.observer != nil {
		p.observer.ObserveRow(result)
	}

	return result
}

// ProcessBatch classifies rows sequentially in input order.
func (p *Processor) ProcessBatch(rows []domain.Row) BatchResult {
	start := time.Now()

	results := make([]domain.ProcessingResult, len(rows))
	for i, row := range rows {
		results[i] = p.ProcessRow(row)
	}

	return p.finish(results, start)
}

// ProcessBatchConcurrent classifies rows on up to workers goroutines.
// Results keep input order and equal those of ProcessBatch.
// It returns the context error if ctx is canceled before every row is done.
func (p *Processor) ProcessBatchConcurrent(ctx context.Context, rows []domain.Row, workers int) (BatchResult, error) {
	if workers <= 0 {
		workers = defaultWorkers
	}

	start := time.Now()
	results := make([]domain.ProcessingResult, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range rows {
		if gctx.Err() != nil {
			break
		}

		i := i

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = p.ProcessRow(rows[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return BatchResult{}, fmt.Errorf("process batch: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return BatchResult{}, fmt.Errorf("process batch: %w", err)
	}

	return p.finish(results, start), nil
}

func (p *Processor) finish(results []domain.ProcessingResult, start time.Time) BatchResult {
	summary := Summarize(results)
	elapsed := time.Since(start)

	if p.observer != nil {
		p.observer.ObserveBatch(summary, elapsed)
	}

	p.logger.Debug().
		Int("rows", summary.TotalRows).
		Int("defaulted", summary.Defaulted).
		Int("needs_review", summary.NeedsReview).
		Float64("field_detection_rate", summary.FieldDetectionRate).
		Dur("elapsed", elapsed).
		Msg("batch classified")

	return BatchResult{Results: results, Summary: summary}
}

func upperKeys(m map[string]domain.Status) map[string]domain.Status {
	if m == nil {
		return nil
	}

	upper := cases.Upper(language.Und)
	out := make(map[string]domain.Status, len(m))

	for k, v := range m {
		out[upper.String(k)] = v
	}

	return out
}
