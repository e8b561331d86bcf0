package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

var jsLiteralRe = regexp.MustCompile(`=\s*(\{[\s\S]*\})\s*;?\s*$`)

// jsObjectValue extracts the object literal from a script-style assignment
// and converts it. Quote normalization plus a strict parse handles the
// common case; anything messier falls back to the malformed-JSON repair
// ladder, which always yields a value.
func jsObjectValue(text string) (any, error) {
	m := jsLiteralRe.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("no object literal in assignment")
	}
	obj := m[1]

	normalized := strings.ReplaceAll(obj, "'", `"`)
	if v, err := strictDecode(normalized); err == nil {
		return v, nil
	}
	return repairJSON(obj), nil
}
