package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/app"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/ports"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/ingest/jsonl"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/output/report"
	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/platform/config"
)

const stdio = "-"

type options struct {
	mode             string
	input            string
	output           string
	pretty           bool
	minDetectionRate float64
	maxDefaultRate   float64
}

func main() {
	opts := options{}

	flag.StringVar(&opts.mode, "mode", "batch", "Run mode (batch, watch)")
	flag.StringVar(&opts.input, "input", stdio, "Path to JSONL rows, - for stdin (batch mode)")
	flag.StringVar(&opts.output, "output", stdio, "Report path, - for stdout (batch mode)")
	flag.BoolVar(&opts.pretty, "pretty", false, "Indent the JSON report")
	flag.Float64Var(&opts.minDetectionRate, "min-detection-rate", -1, "Fail if field detection rate (%) is below this value (disabled if <0)")
	flag.Float64Var(&opts.maxDefaultRate, "max-default-rate", -1, "Fail if defaulting rate (%) is above this value (disabled if <0)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.AppEnv, cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	processor, err := app.NewProcessor(cfg, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build classifier")
	}

	application := app.New(cfg, processor, &logger)

	switch opts.mode {
	case "batch":
		err = runBatch(ctx, application, opts, &logger)
	case "watch":
		err = runWatch(ctx, application, &logger)
	default:
		log.Fatalf("Usage: %s --mode=[batch|watch]", os.Args[0])
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("application stopped")
			return
		}

		stop()
		logger.Fatal().Err(err).Msg("application error")
	}
}

func newLogger(appEnv string, level zerolog.Level) zerolog.Logger {
	if appEnv == "local" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).Level(level).With().Timestamp().Logger()
	}

	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func runWatch(ctx context.Context, application *app.App, logger *zerolog.Logger) error {
	go func() {
		if err := application.StartHealthServer(ctx); err != nil {
			logger.Error().Err(err).Msg("health check server error")
		}
	}()

	return application.RunWatch(ctx)
}

func runBatch(ctx context.Context, application *app.App, opts options, logger *zerolog.Logger) error {
	var source ports.RowSource = jsonl.NewSource(opts.input, logger)
	if opts.input == stdio {
		source = jsonl.NewStreamSource("stdin", os.Stdin, logger)
	}

	out, closeOut, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer closeOut()

	rep, err := application.RunBatch(ctx, source, report.NewWriterSink(out, opts.pretty))
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}

	printSummary(os.Stderr, rep)

	if breaches := checkGates(rep.Summary, opts.minDetectionRate, opts.maxDefaultRate); len(breaches) > 0 {
		for _, b := range breaches {
			fmt.Fprintln(os.Stderr, b)
		}

		closeOut()
		os.Exit(1)
	}

	return nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == stdio {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	closed := false

	return f, func() {
		if !closed {
			closed = true
			_ = f.Close()
		}
	}, nil
}

// checkGates returns one message per breached threshold. Negative thresholds are disabled.
func checkGates(s domain.BatchSummary, minDetectionRate, maxDefaultRate float64) []string {
	var breaches []string

	if minDetectionRate >= 0 && s.FieldDetectionRate < minDetectionRate {
		breaches = append(breaches, fmt.Sprintf("field detection rate %.1f%% is below threshold %.1f%%", s.FieldDetectionRate, minDetectionRate))
	}

	if maxDefaultRate >= 0 && s.DefaultingRate > maxDefaultRate {
		breaches = append(breaches, fmt.Sprintf("defaulting rate %.1f%% is above threshold %.1f%%", s.DefaultingRate, maxDefaultRate))
	}

	return breaches
}

func printSummary(w io.Writer, rep domain.BatchReport) {
	s := rep.Summary

	fmt.Fprintf(w, "Classification Summary\n")
	fmt.Fprintf(w, "  Batch: %s (%s)\n", rep.BatchID, rep.Source)
	fmt.Fprintf(w, "  Rows: %d\n", s.TotalRows)
	fmt.Fprintf(w, "  Status: pass=%d fail=%d pending=%d\n", s.PassCount, s.FailCount, s.PendingCount)
	fmt.Fprintf(w, "  Confidence: high=%d medium=%d low=%d none=%d\n",
		s.ByConfidence[domain.ConfidenceHigh], s.ByConfidence[domain.ConfidenceMedium],
		s.ByConfidence[domain.ConfidenceLow], s.ByConfidence[domain.ConfidenceNone])
	fmt.Fprintf(w, "  Warnings: %d on %d rows\n", s.WarningCount, s.WithWarnings)
	fmt.Fprintf(w, "  GradeConversions: %d\n", s.GradeConversions)
	fmt.Fprintf(w, "  FieldDetectionRate: %.1f%%\n", s.FieldDetectionRate)
	fmt.Fprintf(w, "  DefaultingRate: %.1f%%\n", s.DefaultingRate)
	fmt.Fprintf(w, "  NeedsReview: %d\n", s.NeedsReview)
}
