package assessment

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/BlindPI/bpiinc-arccm-42-sub015/internal/core/domain"
)

// fieldCatalog lists known spellings of the assessment column, strongest signal first.
// Generic names such as Status and Score sit near the end so that fuzzy matching
// prefers assessment-like headers.
var fieldCatalog = []string{
	"Pass/Fail",
	"PASS_FAIL",
	"Pass_Fail",
	"pass_fail",
	"PassFail",
	"Pass Fail",
	"Assessment",
	"Assessment Status",
	"Assessment Result",
	"assessment_status",
	"assessment_result",
	"Grade",
	"Final Grade",
	"final_grade",
	"Result",
	"Final Result",
	"Outcome",
	"Status",
	"Score",
	"Final Score",
	"P/F",
	"PF",
}

// FieldCatalog returns a copy of the built-in column catalog in priority order.
func FieldCatalog() []string {
	return append([]string(nil), fieldCatalog...)
}

// DetectField returns the row key that holds the assessment outcome.
//
// Passes run in order and the first hit wins: caller custom names, exact catalog
// match, then (unless strict) case-insensitive equality and finally substring
// containment in either direction. The fuzzy passes walk the catalog in its own
// order, so an earlier catalog entry beats a later one regardless of which key matched.
func DetectField(row domain.Row, cfg domain.ProcessingConfig) (string, bool) {
	if len(row) == 0 {
		return "", false
	}

	if name, ok := matchCustom(row, cfg.CustomFieldMappings); ok {
		return name, true
	}

	if name, ok := matchExact(row); ok {
		return name, true
	}

	if cfg.StrictColumnMatching {
		return "", false
	}

	return matchFuzzy(row)
}

func matchCustom(row domain.Row, names []string) (string, bool) {
	for _, name := range names {
		if _, ok := row[name]; ok {
			return name, true
		}
	}

	return "", false
}

func matchExact(row domain.Row) (string, bool) {
	for _, candidate := range fieldCatalog {
		if _, ok := row[candidate]; ok {
			return candidate, true
		}
	}

	return "", false
}

type foldedKey struct {
	key    string
	folded string
}

func matchFuzzy(row domain.Row) (string, bool) {
	caser := cases.Fold()
	keys := foldKeys(row, caser)

	folded := make([]string, len(fieldCatalog))
	for i, candidate := range fieldCatalog {
		folded[i] = caser.String(candidate)
	}

	for _, candidate := range folded {
		for _, k := range keys {
			if k.folded == candidate {
				return k.key, true
			}
		}
	}

	for _, candidate := range folded {
		for _, k := range keys {
			if strings.Contains(k.folded, candidate) || strings.Contains(candidate, k.folded) {
				return k.key, true
			}
		}
	}

	return "", false
}

// foldKeys returns the row's non-blank keys, sorted so map iteration order never leaks into results.
func foldKeys(row domain.Row, caser cases.Caser) []foldedKey {
	keys := make([]foldedKey, 0, len(row))

	for k := range row {
		f := caser.String(strings.TrimSpace(k))
		if f == "" {
			continue
		}

		keys = append(keys, foldedKey{key: k, folded: f})
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].key < keys[j].key })

	return keys
}
