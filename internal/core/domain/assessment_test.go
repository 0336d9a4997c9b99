package domain

import "testing"

func TestStatus_Valid(t *testing.T) {
	for _, s := range []Status{StatusPass, StatusFail, StatusPending} {
		if !s.Valid() {
			t.Errorf("%q.Valid() = false", s)
		}
	}

	for _, s := range []Status{"", "pass", "MAYBE"} {
		if s.Valid() {
			t.Errorf("%q.Valid() = true", s)
		}
	}
}

func TestConfidence_Rank(t *testing.T) {
	order := []Confidence{ConfidenceNone, ConfidenceLow, ConfidenceMedium, ConfidenceHigh}

	for i := 1; i < len(order); i++ {
		if order[i].Rank() <= order[i-1].Rank() {
			t.Errorf("%s should rank above %s", order[i], order[i-1])
		}
	}
}

func TestProcessingResult_NeedsReview(t *testing.T) {
	tests := []struct {
		name   string
		result ProcessingResult
		want   bool
	}{
		{"clean", ProcessingResult{Status: StatusPass, Confidence: ConfidenceHigh}, false},
		{"grade conversion only", ProcessingResult{
			Confidence: ConfidenceHigh,
			Warnings:   []Warning{{Type: WarningGradeConversion}},
		}, false},
		{"defaulted", ProcessingResult{Confidence: ConfidenceNone, WasDefaulted: true}, true},
		{"unexpected value", ProcessingResult{Warnings: []Warning{{Type: WarningUnexpectedValue}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.NeedsReview(); got != tt.want {
				t.Errorf("NeedsReview() = %v, want %v", got, tt.want)
			}
		})
	}
}
