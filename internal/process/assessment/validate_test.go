package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       domain.ProcessingConfig
		wantValid bool
		wantErrs  int
	}{
		{
			name:      "defaults",
			cfg:       domain.DefaultProcessingConfig(),
			wantValid: true,
		},
		{
			name:      "zero value",
			cfg:       domain.ProcessingConfig{},
			wantValid: true,
		},
		{
			name:      "invalid mapped status",
			cfg:       domain.ProcessingConfig{GradeMapping: map[string]domain.Status{"A": "MAYBE"}},
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "lowercase status literal",
			cfg:       domain.ProcessingConfig{GradeMapping: map[string]domain.Status{"A": "pass"}},
			wantValid: false,
			wantErrs:  1,
		},
		{
			name:      "blank grade key",
			cfg:       domain.ProcessingConfig{GradeMapping: map[string]domain.Status{" ": domain.StatusPass}},
			wantValid: false,
			wantErrs:  1,
		},
		{
			name: "keys colliding by case",
			cfg: domain.ProcessingConfig{GradeMapping: map[string]domain.Status{
				"merit": domain.StatusPass,
				"MERIT": domain.StatusFail,
			}},
			wantValid: false,
			wantErrs:  1,
		},
		{
			name: "same key by case with same status",
			cfg: domain.ProcessingConfig{GradeMapping: map[string]domain.Status{
				"merit": domain.StatusPass,
				"Merit": domain.StatusPass,
			}},
			wantValid: true,
		},
		{
			name:      "empty custom field",
			cfg:       domain.ProcessingConfig{CustomFieldMappings: []string{"Outcome", "  ", ""}},
			wantValid: false,
			wantErrs:  2,
		},
		{
			name: "every problem reported",
			cfg: domain.ProcessingConfig{
				GradeMapping:        map[string]domain.Status{"A": "MAYBE", "B": "YES"},
				CustomFieldMappings: []string{""},
			},
			wantValid: false,
			wantErrs:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.cfg)

			assert.Equal(t, tt.wantValid, got.IsValid)
			assert.Len(t, got.Errors, tt.wantErrs)
		})
	}
}

func TestValidate_DoesNotMutate(t *testing.T) {
	cfg := domain.ProcessingConfig{
		GradeMapping:        map[string]domain.Status{"merit": domain.StatusPass},
		CustomFieldMappings: []string{"Outcome"},
	}

	Validate(cfg)

	assert.Equal(t, map[string]domain.Status{"merit": domain.StatusPass}, cfg.GradeMapping)
	assert.Equal(t, []string{"Outcome"}, cfg.CustomFieldMappings)
}
