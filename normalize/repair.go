package normalize

import (
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	singleQuotedRe  = regexp.MustCompile(`([:\s])'([^']*)'`)
	bareKeyFixRe    = regexp.MustCompile(`([{,]\s*)([A-Za-z0-9_\-]+)\s*:`)

	salvagePairRe = regexp.MustCompile(`([A-Za-z0-9_\- ]{1,60})\s*[:=]\s*("[^"]*"|'[^']*'|[^,\n]+)`)
)

// repairJSON recovers a structured value from near-JSON text. The ladder is
// bounded and ordered: conservative textual fixes with a strict re-parse,
// then jsonrepair, then salvage key/value extraction. The final rung never
// fails, so repairJSON always returns a value (possibly an empty map).
func repairJSON(s string) any {
	if v, err := strictDecode(s); err == nil {
		return v
	}

	if v, err := strictDecode(applyTextualFixes(s)); err == nil {
		return v
	}

	// jsonrepair handles what the conservative fixes cannot (unbalanced
	// brackets, stray text). Only container results are trusted; a scalar
	// means it gave up on the structure.
	if repaired, err := jsonrepair.JSONRepair(s); err == nil {
		if v, err := strictDecode(repaired); err == nil {
			switch v.(type) {
			case map[string]any, []any:
				return v
			}
		}
	}

	return salvageKeyValues(s)
}

// applyTextualFixes performs the conservative repairs: strip trailing
// commas before a closing bracket, normalize single-quoted values, and
// quote bare identifier keys.
func applyTextualFixes(s string) string {
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = singleQuotedRe.ReplaceAllString(s, `$1"$2"`)
	s = bareKeyFixRe.ReplaceAllString(s, `$1"$2":`)
	return s
}

// salvageKeyValues extracts key:value-shaped substrings into a flat map.
// It never fails; hopeless input yields an empty map.
func salvageKeyValues(s string) map[string]any {
	out := make(map[string]any)
	for _, m := range salvagePairRe.FindAllStringSubmatch(s, -1) {
		key := strings.TrimSpace(m[1])
		val := strings.TrimSpace(m[2])
		val = strings.Trim(val, `"'`)
		if key == "" {
			continue
		}
		out[key] = strings.TrimSpace(val)
	}
	return out
}
