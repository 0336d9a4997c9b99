// Package report writes classified batches as JSON, either to a stream or as files in a directory.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	apperrors "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/errors"
)

const (
	reportSuffix = ".report.json"
	dirPerm      = 0o755
	filePerm     = 0o644
)

// WriterSink encodes each report to w. It implements ports.ReportSink.
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	indent bool
}

// NewWriterSink creates a sink over w. With indent set, output is pretty-printed.
func NewWriterSink(w io.Writer, indent bool) *WriterSink {
	return &WriterSink{w: w, indent: indent}
}

func (s *WriterSink) WriteReport(_ context.Context, r domain.BatchReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc := json.NewEncoder(s.w)
	if s.indent {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrSinkWrite, err)
	}

	return nil
}

// DirSink writes each report atomically to <dir>/<source base name>.report.json.
// It implements ports.ReportSink.
type DirSink struct {
	dir    string
	logger *zerolog.Logger
}

// NewDirSink creates a sink that writes into dir, creating it on first write.
func NewDirSink(dir string, logger *zerolog.Logger) *DirSink {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &DirSink{dir: dir, logger: logger}
}

// PathFor returns where the report for r is written.
func (s *DirSink) PathFor(r domain.BatchReport) string {
	name := r.BatchID

	if r.Source != "" {
		base := filepath.Base(r.Source)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return filepath.Join(s.dir, name+reportSuffix)
}

func (s *DirSink) WriteReport(_ context.Context, r domain.BatchReport) error {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create %s: %w", apperrors.ErrSinkWrite, s.dir, err)
	}

	path := s.PathFor(r)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %w", apperrors.ErrSinkWrite, err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(filePerm))
	if err != nil {
		return fmt.Errorf("%w: create pending %s: %w", apperrors.ErrSinkWrite, path, err)
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			s.logger.Debug().Err(err).Str("path", path).Msg("cleanup pending report file")
		}
	}()

	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("%w: write %s: %w", apperrors.ErrSinkWrite, path, err)
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replace %s: %w", apperrors.ErrSinkWrite, path, err)
	}

	s.logger.Debug().Str("path", path).Str("batch_id", r.BatchID).Msg("report written")

	return nil
}
