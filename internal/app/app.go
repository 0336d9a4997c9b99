// Package app provides the application bootstrap and runtime orchestration.
//
// The App type wires the configured classifier to its row sources and report sinks
// and exposes the operational modes:
//
//   - Batch mode: classify one JSONL source and write a single report
//   - Watch mode: poll an inbox directory and write one report per input file
//
// Health, readiness and metrics endpoints are served alongside watch mode.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/ports"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/ingest/jsonl"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/output/report"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/platform/config"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/platform/observability"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/platform/worker"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/process/assessment"
)

const (
	inboxPattern   = "*.jsonl"
	doneSuffix     = ".done"
	failedSuffix   = ".failed"
	outcomeDone    = "processed"
	outcomeFailed  = "failed"
	logFieldBatch  = "batch_id"
	logFieldSource = "source"
	logFieldFile   = "file"
	watchWorker    = "inbox-watcher"
)

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg       *config.Config
	processor *assessment.Processor
	logger    *zerolog.Logger

	newBatchID func() string
	now        func() time.Time
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, processor *assessment.Processor, logger *zerolog.Logger) *App {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &App{
		cfg:        cfg,
		processor:  processor,
		logger:     logger,
		newBatchID: uuid.NewString,
		now:        time.Now,
	}
}

// NewProcessor builds the classifier from cfg, reporting into the Prometheus metrics.
func NewProcessor(cfg *config.Config, logger *zerolog.Logger) (*assessment.Processor, error) {
	pc, err := cfg.ProcessingConfig()
	if err != nil {
		return nil, fmt.Errorf("processing config: %w", err)
	}

	p, err := assessment.New(pc, logger, observability.NewClassifierMetrics())
	if err != nil {
		return nil, fmt.Errorf("classifier init: %w", err)
	}

	return p, nil
}

// StartHealthServer starts the health check and metrics server.
// Readiness requires the inbox directory to exist.
func (a *App) StartHealthServer(ctx context.Context) error {
	srv := observability.NewServer(a.cfg.HealthPort, a.inboxReady, a.logger)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("health server start: %w", err)
	}

	return nil
}

func (a *App) inboxReady(_ context.Context) error {
	info, err := os.Stat(a.cfg.InboxDir)
	if err != nil {
		return fmt.Errorf("inbox %s: %w", a.cfg.InboxDir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("inbox %s is not a directory", a.cfg.InboxDir)
	}

	return nil
}

// RunBatch reads every row from source, classifies them and writes the report to sink.
// sink may be nil when only the returned report is needed.
func (a *App) RunBatch(ctx context.Context, source ports.RowSource, sink ports.ReportSink) (domain.BatchReport, error) {
	rows, err := source.ReadRows(ctx)
	if err != nil {
		return domain.BatchReport{}, fmt.Errorf("read rows: %w", err)
	}

	result, err := a.processor.ProcessBatchConcurrent(ctx, rows, a.cfg.BatchWorkers)
	if err != nil {
		return domain.BatchReport{}, fmt.Errorf("classify %s: %w", source.Name(), err)
	}

	rep := domain.BatchReport{
		BatchID:     a.newBatchID(),
		Source:      source.Name(),
		GeneratedAt: a.now().UTC(),
		Results:     result.Results,
		Summary:     result.Summary,
	}

	if sink != nil {
		if err := sink.WriteReport(ctx, rep); err != nil {
			return domain.BatchReport{}, fmt.Errorf("write report %s: %w", rep.BatchID, err)
		}
	}

	a.logger.Info().
		Str(logFieldBatch, rep.BatchID).
		Str(logFieldSource, rep.Source).
		Int("rows", rep.Summary.TotalRows).
		Float64("field_detection_rate", rep.Summary.FieldDetectionRate).
		Int("defaulted", rep.Summary.Defaulted).
		Int("needs_review", rep.Summary.NeedsReview).
		Msg("batch report ready")

	return rep, nil
}

// RunWatch polls the inbox until ctx is canceled. Each *.jsonl file is classified into
// <outbox>/<name>.report.json and then renamed to <name>.jsonl.done, or <name>.jsonl.failed
// when it could not be processed.
func (a *App) RunWatch(ctx context.Context) error {
	if err := os.MkdirAll(a.cfg.InboxDir, 0o755); err != nil {
		return fmt.Errorf("create inbox: %w", err)
	}

	sink := report.NewDirSink(a.cfg.OutboxDir, a.logger)

	return worker.Loop(ctx, worker.Config{
		Name:         watchWorker,
		PollInterval: a.cfg.PollInterval,
		Logger:       a.logger,
		Process: func(ctx context.Context) error {
			_, err := a.ProcessInbox(ctx, sink)
			return err
		},
	})
}

// ProcessInbox handles every pending inbox file once, in name order, and returns how many
// were processed successfully. A failing file is set aside and does not stop the others.
func (a *App) ProcessInbox(ctx context.Context, sink ports.ReportSink) (int, error) {
	paths, err := filepath.Glob(filepath.Join(a.cfg.InboxDir, inboxPattern))
	if err != nil {
		return 0, fmt.Errorf("scan inbox: %w", err)
	}

	sort.Strings(paths)

	processed := 0

	for _, path := range paths {
		if ctx.Err() != nil {
			return processed, fmt.Errorf("process inbox: %w", ctx.Err())
		}

		_, runErr := a.RunBatch(ctx, jsonl.NewSource(path, a.logger), sink)

		if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
			return processed, runErr
		}

		suffix, outcome := doneSuffix, outcomeDone
		if runErr != nil {
			suffix, outcome = failedSuffix, outcomeFailed
			a.logger.Error().Err(runErr).Str(logFieldFile, path).Msg("inbox file failed")
		} else {
			processed++
		}

		observability.InboxFilesProcessed.WithLabelValues(outcome).Inc()

		if err := os.Rename(path, path+suffix); err != nil {
			return processed, fmt.Errorf("mark %s %s: %w", path, outcome, err)
		}
	}

	return processed, nil
}
