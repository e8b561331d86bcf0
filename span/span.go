// Package span provides low-level text span utilities used by the fragment
// detectors: a quote- and escape-aware balanced-brace scanner with a bounded
// lookahead window, and a line-to-offset index.
package span

import "strings"

// DefaultScanWindow bounds how far FindBalancedObject scans past the opening
// brace before giving up. The cap keeps a single pathological span (such as
// an unterminated brace run in a huge file) from making the scan unbounded.
const DefaultScanWindow = 200000

// FindBalancedObject scans forward to the first '{' at or after from, then
// tracks nesting depth until it returns to zero. Braces inside single- or
// double-quoted strings are ignored, and escape sequences are honored so an
// escaped quote does not end a string.
//
// It returns the half-open span (start, end) of the balanced object, where
// text[start] == '{' and text[end-1] == '}'. If no opening brace exists, or
// depth never returns to zero within window bytes of the opening brace, it
// fails closed with ok == false. A window <= 0 selects DefaultScanWindow.
func FindBalancedObject(text string, from, window int) (start, end int, ok bool) {
	if window <= 0 {
		window = DefaultScanWindow
	}
	if from < 0 {
		from = 0
	}
	if from > len(text) {
		return 0, 0, false
	}

	rel := strings.IndexByte(text[from:], '{')
	if rel < 0 {
		return 0, 0, false
	}
	start = from + rel

	depth := 0
	inString := false
	escaped := false
	var quote byte

	limit := len(text)
	if start+window < limit {
		limit = start + window
	}

	for i := start; i < limit; i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == quote:
				inString = false
			}
			continue
		}
		switch ch {
		case '"', '\'':
			inString = true
			quote = ch
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start, i + 1, true
			}
		}
	}

	// Depth never returned to zero within the window.
	return 0, 0, false
}

// LineIndex maps line numbers to absolute byte offsets. It is built in one
// linear pass and answers lookups in constant time.
type LineIndex struct {
	starts []int
	size   int
}

// NewLineIndex builds a line index over text. Lines are separated by '\n';
// the final line need not be newline-terminated.
func NewLineIndex(text string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{starts: starts, size: len(text)}
}

// Lines returns the number of lines in the indexed text.
func (ix *LineIndex) Lines() int {
	return len(ix.starts)
}

// Start returns the absolute byte offset of the start of line (0-based).
// Out-of-range lines clamp to the text bounds.
func (ix *LineIndex) Start(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(ix.starts) {
		return ix.size
	}
	return ix.starts[line]
}

// End returns the absolute byte offset one past the last content byte of
// line, excluding the trailing newline.
func (ix *LineIndex) End(line int) int {
	if line < 0 {
		return 0
	}
	if line+1 < len(ix.starts) {
		return ix.starts[line+1] - 1
	}
	return ix.size
}
