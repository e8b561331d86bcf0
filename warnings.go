package fragmenta

import "strings"

// Warning represents a non-fatal issue encountered during parsing.
// Parsing succeeded, but part of the result may be incomplete: a detector
// failed and contributed nothing, or a fragment could not be normalized
// into a structured value.
type Warning struct {
	Message string
}

// FormatWarnings formats a slice of warnings as a single string,
// one warning per line. Returns an empty string if there are no warnings.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(w.Message)
	}
	return sb.String()
}
