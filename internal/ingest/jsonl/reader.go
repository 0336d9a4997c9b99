// Package jsonl reads rows from JSON Lines input: one flattened record per line.
package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	apperrors "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/errors"
)

const (
	initialBufferSize = 64 * 1024
	maxLineSize       = 1024 * 1024
)

// Source reads a JSONL file. It implements ports.RowSource.
type Source struct {
	path   string
	logger *zerolog.Logger
}

// NewSource creates a source for the file at path.
func NewSource(path string, logger *zerolog.Logger) *Source {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Source{path: path, logger: logger}
}

// Name returns the file path.
func (s *Source) Name() string {
	return s.path
}

// ReadRows decodes every non-blank line. Lines that are not JSON objects are skipped and logged;
// a file with no decodable rows returns errors.ErrNoRows.
func (s *Source) ReadRows(ctx context.Context) ([]domain.Row, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	return NewStreamSource(s.path, f, s.logger).ReadRows(ctx)
}

// Decode parses JSONL from r. Numbers are kept as json.Number so their text survives unchanged.
// It returns the decoded rows and the count of skipped lines.
func Decode(ctx context.Context, r io.Reader) ([]domain.Row, int, error) {
	var (
		rows    []domain.Row
		skipped int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		row, err := decodeLine(line)
		if err != nil {
			skipped++
			continue
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("scan: %w", err)
	}

	return rows, skipped, nil
}

func decodeLine(line []byte) (domain.Row, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: null record", apperrors.ErrInvalidInput)
	}

	return domain.Row(raw), nil
}

// StreamSource reads rows from an already open stream such as stdin. It implements ports.RowSource.
type StreamSource struct {
	name   string
	r      io.Reader
	logger *zerolog.Logger
}

// NewStreamSource creates a source over r, reported under name.
func NewStreamSource(name string, r io.Reader, logger *zerolog.Logger) *StreamSource {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &StreamSource{name: name, r: r, logger: logger}
}

func (s *StreamSource) Name() string {
	return s.name
}

// ReadRows consumes the stream. It follows the same rules as Source.ReadRows.
func (s *StreamSource) ReadRows(ctx context.Context) ([]domain.Row, error) {
	rows, skipped, err := Decode(ctx, s.r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}

	if skipped > 0 {
		s.logger.Warn().Str("source", s.name).Int("skipped", skipped).Msg("skipped undecodable lines")
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: %w", s.name, apperrors.ErrNoRows)
	}

	return rows, nil
}
