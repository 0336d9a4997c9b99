package assessment

import (
	"fmt"
	"regexp"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// Rule names, reported in Classification.Rule.
const (
	RuleEmpty        = "empty"
	RuleFailWord     = "fail_word"
	RuleFailScore    = "fail_score"
	RulePendingWord  = "pending_word"
	RuleLetterGrade  = "letter_grade"
	RulePassWord     = "pass_word"
	RulePassScore    = "pass_score"
	RuleGradeMapping = "grade_mapping"
	RuleFallback     = "fallback"
)

// All patterns are anchored and case-insensitive. Scores are matched as text:
// no decimals, no locale-aware parsing.
var (
	failWordPattern = regexp.MustCompile(
		`^(?i:fail(ed)?|f|incomplete|unsuccessful|no|n|reject(ed)?|not\s+pass(ed)?|did\s+not\s+pass|` +
			`unsatisfactory|incompetent|needs\s+improvement)$`,
	)
	failScorePattern = regexp.MustCompile(`^([0-7][0-9]?)%?$`)

	pendingWordPattern = regexp.MustCompile(
		`^(?i:pending|not\s+(yet\s+)?assessed|in[\s-]+progress|awaiting(\s+\w+)*|tbd|to\s+be\s+determined|` +
			`scheduled|upcoming)$`,
	)

	letterGradePattern = regexp.MustCompile(`^(?i:[a-d][+-]?)$`)
	passWordPattern    = regexp.MustCompile(
		`^(?i:pass(ed)?|p|complete(d)?|success(ful)?|yes|y|ok|good|accept(ed)?|satisfactory|competent|proficient)$`,
	)
	passScorePattern = regexp.MustCompile(`^(8[0-9]|9[0-9]|100)%?$`)
)

// patternRule is one entry of the explicit pattern table.
type patternRule struct {
	name       string
	group      domain.Status
	match      func(value string) bool
	conversion bool
	warn       func(value string) []domain.Warning
}

// explicitRules is evaluated top to bottom; the first match is terminal.
// FAIL precedes PENDING precedes PASS so that a fail signal can never be masked.
var explicitRules = []patternRule{
	{name: RuleFailWord, group: domain.StatusFail, match: failWordPattern.MatchString},
	{name: RuleFailScore, group: domain.StatusFail, match: failScorePattern.MatchString},
	{name: RulePendingWord, group: domain.StatusPending, match: pendingWordPattern.MatchString},
	{
		name:       RuleLetterGrade,
		group:      domain.StatusPass,
		match:      letterGradePattern.MatchString,
		conversion: true,
		warn:       letterGradeWarnings,
	},
	{name: RulePassWord, group: domain.StatusPass, match: passWordPattern.MatchString},
	{name: RulePassScore, group: domain.StatusPass, match: passScorePattern.MatchString},
}

func letterGradeWarnings(value string) []domain.Warning {
	return []domain.Warning{{
		Type:       domain.WarningGradeConversion,
		Message:    fmt.Sprintf("Letter grade %q treated as PASS", value),
		Severity:   domain.SeverityInfo,
		Suggestion: "Confirm that letter grades A-D count as a pass for this certification",
	}}
}

func mappingWarning(value string, status domain.Status) domain.Warning {
	return domain.Warning{
		Type:     domain.WarningGradeConversion,
		Message:  fmt.Sprintf("Grade %q converted to %s using the grade mapping", value, status),
		Severity: domain.SeverityInfo,
	}
}

func emptyWarning(target domain.Status) domain.Warning {
	return domain.Warning{
		Type:       domain.WarningEmptyValue,
		Message:    fmt.Sprintf("Assessment value is empty; defaulted to %s", target),
		Severity:   domain.SeverityWarning,
		Suggestion: "Fill in the assessment outcome before importing",
	}
}

func unexpectedWarning(value string, target domain.Status) domain.Warning {
	return domain.Warning{
		Type:       domain.WarningUnexpectedValue,
		Message:    fmt.Sprintf("Unrecognized assessment value %q; defaulted to %s", value, target),
		Severity:   domain.SeverityWarning,
		Suggestion: "Use PASS, FAIL or PENDING, or add the value to the grade mapping",
	}
}

func defaultedToPassWarning(reason string) domain.Warning {
	return domain.Warning{
		Type:       domain.WarningDefaultedToPass,
		Message:    "Defaulted to PASS: " + reason,
		Severity:   domain.SeverityWarning,
		Suggestion: "Review this row before approving the certificate",
	}
}

func missingColumnWarning() domain.Warning {
	return domain.Warning{
		Type:       domain.WarningMissingColumn,
		Message:    "No assessment column found in row",
		Severity:   domain.SeverityWarning,
		Suggestion: "Rename the column to Pass/Fail or add it to the custom field mappings",
	}
}
