package assessment

import "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"

const percent = 100

// BatchResult holds per-row results in input order and their summary.
type BatchResult struct {
	Results []domain.ProcessingResult `json:"results"`
	Summary domain.BatchSummary       `json:"summary"`
}

// ProcessBatch classifies every row independently, in input order.
func ProcessBatch(rows []domain.Row, cfg domain.ProcessingConfig) BatchResult {
	results := make([]domain.ProcessingResult, len(rows))
	for i, row := range rows {
		results[i] = ProcessRow(row, cfg)
	}

	return BatchResult{Results: results, Summary: Summarize(results)}
}

// Summarize folds results into a BatchSummary. Rates are percentages and are 0 for an empty list.
func Summarize(results []domain.ProcessingResult) domain.BatchSummary {
	s := domain.BatchSummary{
		TotalRows:    len(results),
		ByConfidence: make(map[domain.Confidence]int, 4),
	}

	for _, r := range results {
		switch r.Status {
		case domain.StatusPass:
			s.PassCount++
		case domain.StatusFail:
			s.FailCount++
		case domain.StatusPending:
			s.PendingCount++
		}

		s.ByConfidence[r.Confidence]++
		s.WarningCount += len(r.Warnings)

		if len(r.Warnings) > 0 {
			s.WithWarnings++
		}

		if r.WasGradeConversion {
			s.GradeConversions++
		}

		if r.WasDefaulted {
			s.Defaulted++
		}

		if r.DetectedFieldName != nil {
			s.FieldsDetected++
		}

		if r.NeedsReview() {
			s.NeedsReview++
		}
	}

	s.FieldDetectionRate = rate(s.FieldsDetected, s.TotalRows)
	s.DefaultingRate = rate(s.Defaulted, s.TotalRows)

	return s
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(n*percent) / float64(total)
}
