package assessment

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// ValidationResult lists every problem found in a config.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks a config without modifying it.
func Validate(cfg domain.ProcessingConfig) ValidationResult {
	var errs []string

	errs = append(errs, validateGradeMapping(cfg.GradeMapping)...)
	errs = append(errs, validateCustomFields(cfg.CustomFieldMappings)...)

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func validateGradeMapping(mapping map[string]domain.Status) []string {
	if len(mapping) == 0 {
		return nil
	}

	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var errs []string

	upper := cases.Upper(language.Und)
	seen := make(map[string]string, len(keys))

	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, "grade mapping contains a blank grade")
			continue
		}

		if v := mapping[k]; !v.Valid() {
			errs = append(errs, fmt.Sprintf("grade mapping %q: invalid status %q (want PASS, FAIL or PENDING)", k, v))
		}

		u := upper.String(k)
		if prev, ok := seen[u]; ok && mapping[prev] != mapping[k] {
			errs = append(errs, fmt.Sprintf("grade mapping %q and %q differ only by case", prev, k))
		}

		seen[u] = k
	}

	return errs
}

func validateCustomFields(names []string) []string {
	var errs []string

	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Sprintf("custom field mapping %d is empty", i))
		}
	}

	return errs
}
