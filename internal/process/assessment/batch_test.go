package assessment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// mixedRows builds n rows where every missingEvery-th row has no assessment column.
func mixedRows(n, missingEvery int) []domain.Row {
	values := []string{"PASS", "FAIL", "B", "Pending", "maybe", "85%"}
	rows := make([]domain.Row, 0, n)

	for i := 0; i < n; i++ {
		if missingEvery > 0 && i%missingEvery == 0 {
			rows = append(rows, domain.Row{"Student Name": fmt.Sprintf("student %d", i), "Email": "x@example.com"})
			continue
		}

		rows = append(rows, domain.Row{"Student Name": fmt.Sprintf("student %d", i), "Result": values[i%len(values)]})
	}

	return rows
}

func TestProcessBatch_FieldDetectionRate(t *testing.T) {
	rows := make([]domain.Row, 0, 100)

	for i := 0; i < 60; i++ {
		rows = append(rows, domain.Row{"Pass/Fail": "PASS"})
	}

	for i := 0; i < 40; i++ {
		rows = append(rows, domain.Row{"Student Name": "Ann", "Email": "ann@example.com"})
	}

	got := ProcessBatch(rows, domain.DefaultProcessingConfig())

	require.Len(t, got.Results, 100)
	assert.InDelta(t, 60.0, got.Summary.FieldDetectionRate, 1e-9)
	assert.Equal(t, 60, got.Summary.FieldsDetected)
	assert.Equal(t, 40, got.Summary.Defaulted)
	assert.InDelta(t, 40.0, got.Summary.DefaultingRate, 1e-9)
	assert.Equal(t, 100, got.Summary.PassCount)
	assert.Equal(t, 40, got.Summary.NeedsReview)
}

func TestProcessBatch_Empty(t *testing.T) {
	got := ProcessBatch(nil, domain.DefaultProcessingConfig())

	assert.Empty(t, got.Results)
	assert.Equal(t, 0, got.Summary.TotalRows)
	assert.Zero(t, got.Summary.FieldDetectionRate)
	assert.Zero(t, got.Summary.DefaultingRate)
}

func TestProcessBatch_PreservesOrder(t *testing.T) {
	rows := []domain.Row{{"Result": "FAIL"}, {"Result": "PASS"}, {"Result": "TBD"}}

	got := ProcessBatch(rows, domain.DefaultProcessingConfig())

	require.Len(t, got.Results, 3)
	assert.Equal(t, domain.StatusFail, got.Results[0].Status)
	assert.Equal(t, domain.StatusPass, got.Results[1].Status)
	assert.Equal(t, domain.StatusPending, got.Results[2].Status)
}

func TestSummarize_Consistency(t *testing.T) {
	got := ProcessBatch(mixedRows(120, 7), domain.DefaultProcessingConfig())
	s := got.Summary

	assert.Equal(t, len(got.Results), s.TotalRows)
	assert.Equal(t, s.TotalRows, s.PassCount+s.FailCount+s.PendingCount)

	confidenceTotal := 0
	for _, n := range s.ByConfidence {
		confidenceTotal += n
	}

	assert.Equal(t, s.TotalRows, confidenceTotal)
	assert.LessOrEqual(t, s.WithWarnings, s.WarningCount)
	assert.Equal(t, s.ByConfidence[domain.ConfidenceNone]+s.ByConfidence[domain.ConfidenceLow], s.Defaulted)
}

func TestSummarize_Counts(t *testing.T) {
	results := ProcessBatch([]domain.Row{
		{"Grade": "A"},      // PASS, conversion, INFO warning
		{"Grade": "E"},      // FAIL via mapping
		{"Grade": "maybe"},  // PASS by default, two warnings
		{"Grade": "FAIL"},   // FAIL, no warnings
		{"Grade": ""},       // PASS by default, empty warning
		{"Comment": "none"}, // missing column
	}, domain.DefaultProcessingConfig()).Results

	s := Summarize(results)

	assert.Equal(t, 6, s.TotalRows)
	assert.Equal(t, 4, s.PassCount)
	assert.Equal(t, 2, s.FailCount)
	assert.Equal(t, 0, s.PendingCount)
	assert.Equal(t, 2, s.GradeConversions)
	assert.Equal(t, 5, s.WithWarnings)
	assert.Equal(t, 1+1+2+1+2, s.WarningCount)
	assert.Equal(t, 3, s.Defaulted)
	assert.Equal(t, 5, s.FieldsDetected)
	assert.Equal(t, 1, s.ByConfidence[domain.ConfidenceMedium])
}
