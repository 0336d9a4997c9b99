// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
//
// Malformed row data is never an error; it is reported through result warnings.
package errors

import "errors"

// Configuration errors.
var (
	// ErrInvalidConfig indicates a processing config failed validation.
	ErrInvalidConfig = errors.New("invalid processing config")

	// ErrRulesFile indicates the rules file could not be read or decoded.
	ErrRulesFile = errors.New("rules file")
)

// Input and output errors.
var (
	// ErrInvalidInput indicates a source record could not be decoded into a row.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRows indicates a source produced no rows at all.
	ErrNoRows = errors.New("no rows")

	// ErrSinkWrite indicates a report could not be written.
	ErrSinkWrite = errors.New("report write failed")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
