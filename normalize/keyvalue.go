package normalize

import "strings"

// keyValuePairs splits each line on its first colon or equals separator.
// Values lose surrounding quote characters. Lines with no separator are
// skipped.
func keyValuePairs(text string) map[string]any {
	out := make(map[string]any)
	for _, ln := range strings.Split(text, "\n") {
		sep := separatorIndex(ln)
		if sep < 0 {
			continue
		}
		key := strings.TrimSpace(ln[:sep])
		val := strings.TrimSpace(ln[sep+1:])
		val = strings.Trim(val, `"'`)
		if key == "" {
			continue
		}
		out[key] = val
	}
	return out
}

// separatorIndex finds the first colon or equals sign, whichever comes
// first on the line.
func separatorIndex(ln string) int {
	colon := strings.IndexByte(ln, ':')
	equals := strings.IndexByte(ln, '=')
	switch {
	case colon < 0:
		return equals
	case equals < 0:
		return colon
	case colon < equals:
		return colon
	default:
		return equals
	}
}
