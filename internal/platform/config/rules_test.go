package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	apperrors "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/errors"
)

func TestParseRules(t *testing.T) {
	data := []byte(`
allow_grade_conversion: false
strict_column_matching: true
grade_mapping:
  MERIT: PASS
  DEFER: PENDING
custom_field_mappings:
  - Outcome Code
  - 2024 Result
`)

	got, err := ParseRules(data)
	require.NoError(t, err)

	require.NotNil(t, got.AllowGradeConversion)
	assert.False(t, *got.AllowGradeConversion)
	require.NotNil(t, got.StrictColumnMatching)
	assert.True(t, *got.StrictColumnMatching)
	assert.Nil(t, got.DefaultToPassOnMissing)
	assert.Equal(t, map[string]domain.Status{"MERIT": domain.StatusPass, "DEFER": domain.StatusPending}, got.GradeMapping)
	assert.Equal(t, []string{"Outcome Code", "2024 Result"}, got.CustomFieldMappings)
}

func TestParseRules_Empty(t *testing.T) {
	got, err := ParseRules(nil)
	require.NoError(t, err)

	base := domain.DefaultProcessingConfig()
	assert.Equal(t, base, base.Apply(got))
}

func TestParseRules_UnknownKey(t *testing.T) {
	_, err := ParseRules([]byte("grade_maping:\n  A: PASS\n"))
	assert.ErrorIs(t, err, apperrors.ErrRulesFile)
}

func TestParseRules_InvalidStatusIsKeptForValidation(t *testing.T) {
	got, err := ParseRules([]byte("grade_mapping:\n  A: MAYBE\n"))
	require.NoError(t, err)

	assert.Equal(t, domain.Status("MAYBE"), got.GradeMapping["A"])
}
