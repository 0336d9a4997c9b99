package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
	apperrors "github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/errors"
)

// LoadRules reads a YAML rules file into a partial processing config.
//
// Example:
//
//	default_to_pass_on_missing: false
//	grade_mapping:
//	  MERIT: PASS
//	  REFER: FAIL
//	custom_field_mappings:
//	  - Outcome Code
func LoadRules(path string) (domain.ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigOverride{}, fmt.Errorf("%w: read %s: %w", apperrors.ErrRulesFile, path, err)
	}

	return ParseRules(data)
}

// ParseRules decodes YAML rules. Unknown keys are rejected so that typos do not silently
// fall back to defaults. Values are not validated here; the processor validates the merged config.
func ParseRules(data []byte) (domain.ConfigOverride, error) {
	var out domain.ConfigOverride

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&out); err != nil && !errors.Is(err, io.EOF) {
		return domain.ConfigOverride{}, fmt.Errorf("%w: decode: %w", apperrors.ErrRulesFile, err)
	}

	return out, nil
}
