package assessment

import "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"

// ProcessRow detects, normalizes and classifies a single row.
// The row is only read. Data problems are reported as warnings, never as errors.
func ProcessRow(row domain.Row, cfg domain.ProcessingConfig) domain.ProcessingResult {
	field, ok := DetectField(row, cfg)
	if !ok {
		return missingFieldResult(cfg)
	}

	value := NormalizeValue(row[field])
	c := Classify(value, cfg)

	warnings := make([]domain.Warning, 0, len(c.Warnings))
	warnings = append(warnings, c.Warnings...)

	result := domain.ProcessingResult{
		Status:             c.Status,
		DetectedFieldName:  &field,
		Confidence:         c.Confidence,
		Warnings:           warnings,
		WasGradeConversion: c.WasGradeConversion,
		WasDefaulted:       c.Confidence.Defaulted(),
	}

	if value != "" {
		result.OriginalValue = &value
	}

	return result
}

func missingFieldResult(cfg domain.ProcessingConfig) domain.ProcessingResult {
	target := cfg.DefaultTarget()
	warnings := []domain.Warning{missingColumnWarning()}

	if target == domain.StatusPass {
		warnings = append(warnings, defaultedToPassWarning("no assessment column"))
	}

	return domain.ProcessingResult{
		Status:       target,
		Confidence:   domain.ConfidenceNone,
		Warnings:     warnings,
		WasDefaulted: true,
	}
}
