package mocks

import "errors"

var (
	// ErrSourceClosed is returned by a RowSource that has been closed.
	ErrSourceClosed = errors.New("source closed")

	// ErrSinkFull is returned by a ReportSink configured with a capacity that has been reached.
	ErrSinkFull = errors.New("sink full")
)
