package assessment

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// Classification is the outcome of matching one normalized value.
type Classification struct {
	Status             domain.Status
	Confidence         domain.Confidence
	Warnings           []domain.Warning
	WasGradeConversion bool
	// Rule names the branch that decided the status.
	Rule string
}

// Classify maps a normalized value to a status.
//
// Order: empty, explicit FAIL, PENDING and PASS patterns, the caller grade
// mapping, then the fallback default. Unknown values never fail; they are
// defaulted with LOW confidence and an UNEXPECTED_VALUE warning, plus
// DEFAULTED_TO_PASS whenever the default target is PASS.
func Classify(value string, cfg domain.ProcessingConfig) Classification {
	target := cfg.DefaultTarget()

	if value == "" {
		return Classification{
			Status:     target,
			Confidence: domain.ConfidenceNone,
			Warnings:   []domain.Warning{emptyWarning(target)},
			Rule:       RuleEmpty,
		}
	}

	if c, ok := classifyExplicit(value); ok {
		return c
	}

	if c, ok := classifyMapped(value, cfg); ok {
		return c
	}

	warnings := []domain.Warning{unexpectedWarning(value, target)}
	if target == domain.StatusPass {
		warnings = append(warnings, defaultedToPassWarning("unrecognized value "+value))
	}

	return Classification{
		Status:     target,
		Confidence: domain.ConfidenceLow,
		Warnings:   warnings,
		Rule:       RuleFallback,
	}
}

func classifyExplicit(value string) (Classification, bool) {
	for _, r := range explicitRules {
		if !r.match(value) {
			continue
		}

		c := Classification{
			Status:             r.group,
			Confidence:         domain.ConfidenceHigh,
			WasGradeConversion: r.conversion,
			Rule:               r.name,
		}

		if r.warn != nil {
			c.Warnings = r.warn(value)
		}

		return c, true
	}

	return Classification{}, false
}

func classifyMapped(value string, cfg domain.ProcessingConfig) (Classification, bool) {
	if !cfg.AllowGradeConversion || len(cfg.GradeMapping) == 0 {
		return Classification{}, false
	}

	mapped, ok := cfg.GradeMapping[cases.Upper(language.Und).String(value)]
	if !ok || !mapped.Valid() {
		return Classification{}, false
	}

	return Classification{
		Status:             mapped,
		Confidence:         domain.ConfidenceMedium,
		Warnings:           []domain.Warning{mappingWarning(value, mapped)},
		WasGradeConversion: true,
		Rule:               RuleGradeMapping,
	}, true
}
