package domain

import "time"

// Row is one record of imported tabular data keyed by column name.
// Values are scalars: string, number, bool or nil.
type Row map[string]any

// Status is the canonical assessment outcome.
type Status string

const (
	StatusPass    Status = "PASS"
	StatusFail    Status = "FAIL"
	StatusPending Status = "PENDING"
)

// Valid reports whether s is one of the three canonical statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPass, StatusFail, StatusPending:
		return true
	default:
		return false
	}
}

// Confidence describes how directly a raw value mapped to a Status.
type Confidence string

const (
	// ConfidenceHigh is an explicit pattern match.
	ConfidenceHigh Confidence = "HIGH"
	// ConfidenceMedium is a caller-supplied grade mapping.
	ConfidenceMedium Confidence = "MEDIUM"
	// ConfidenceLow is an unrecognized value assigned the fallback status.
	ConfidenceLow Confidence = "LOW"
	// ConfidenceNone means no field or no value was found.
	ConfidenceNone Confidence = "NONE"
)

// Rank orders confidence levels: HIGH(3) > MEDIUM(2) > LOW(1) > NONE(0).
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceMedium:
		return 2
	case ConfidenceLow:
		return 1
	default:
		return 0
	}
}

// Defaulted reports whether a status at this confidence was assigned without a clear signal.
func (c Confidence) Defaulted() bool {
	return c == ConfidenceNone || c == ConfidenceLow
}

// WarningType is the closed set of reasons a row needs caller attention.
// AMBIGUOUS_VALUE and COLUMN_NAME_MISMATCH are reserved and never emitted.
type WarningType string

const (
	WarningMissingColumn   WarningType = "MISSING_COLUMN"
	WarningAmbiguousValue  WarningType = "AMBIGUOUS_VALUE"
	WarningGradeConversion WarningType = "GRADE_CONVERSION"
	WarningUnexpectedValue WarningType = "UNEXPECTED_VALUE"
	WarningColumnMismatch  WarningType = "COLUMN_NAME_MISMATCH"
	WarningEmptyValue      WarningType = "EMPTY_VALUE"
	WarningDefaultedToPass WarningType = "DEFAULTED_TO_PASS"
)

// Severity lets review tooling separate informational notes from signal.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Warning is one piece of audit evidence attached to a row result.
type Warning struct {
	Type       WarningType `json:"type"`
	Message    string      `json:"message"`
	Severity   Severity    `json:"severity"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// ProcessingResult is the classification outcome for a single row.
type ProcessingResult struct {
	Status             Status     `json:"status"`
	OriginalValue      *string    `json:"original_value"`
	DetectedFieldName  *string    `json:"detected_field_name"`
	Confidence         Confidence `json:"confidence"`
	Warnings           []Warning  `json:"warnings"`
	WasGradeConversion bool       `json:"was_grade_conversion"`
	WasDefaulted       bool       `json:"was_defaulted"`
}

// HasWarning reports whether the result carries a warning of type wt.
func (r ProcessingResult) HasWarning(wt WarningType) bool {
	for _, w := range r.Warnings {
		if w.Type == wt {
			return true
		}
	}

	return false
}

// NeedsReview reports whether an operator should look at the row before it is committed.
func (r ProcessingResult) NeedsReview() bool {
	if r.WasDefaulted {
		return true
	}

	return r.HasWarning(WarningDefaultedToPass) ||
		r.HasWarning(WarningUnexpectedValue) ||
		r.HasWarning(WarningMissingColumn)
}

// BatchSummary aggregates a list of results. It can be recomputed at any time.
type BatchSummary struct {
	TotalRows          int                `json:"total_rows"`
	PassCount          int                `json:"pass_count"`
	FailCount          int                `json:"fail_count"`
	PendingCount       int                `json:"pending_count"`
	WithWarnings       int                `json:"with_warnings"`
	WarningCount       int                `json:"warning_count"`
	GradeConversions   int                `json:"grade_conversions"`
	Defaulted          int                `json:"defaulted"`
	DefaultingRate     float64            `json:"defaulting_rate"`
	FieldsDetected     int                `json:"fields_detected"`
	FieldDetectionRate float64            `json:"field_detection_rate"`
	NeedsReview        int                `json:"needs_review"`
	ByConfidence       map[Confidence]int `json:"by_confidence"`
}

// BatchReport is what sinks receive for one processed batch.
type BatchReport struct {
	BatchID     string             `json:"batch_id"`
	Source      string             `json:"source,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
	Results     []ProcessingResult `json:"results"`
	Summary     BatchSummary       `json:"summary"`
}
