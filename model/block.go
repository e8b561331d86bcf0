// Package model provides the shared data types passed between the fragmenta
// detection, resolution, and normalization stages.
package model

import "github.com/tsawler/fragmenta/format"

// Block is one detected fragment: a contiguous span of the original document
// believed to encode a single structured-data format.
//
// Start and End are byte offsets into the original input text, half-open
// (text[Start:End] == Text). Offsets always refer to the caller-supplied
// text, never to any repaired copy produced during normalization, so the
// caller can re-slice the source regardless of normalization outcome.
type Block struct {
	// Format identifies the detected format.
	Format format.Format

	// Start is the inclusive byte offset of the fragment.
	Start int

	// End is the exclusive byte offset of the fragment.
	End int

	// Confidence is a heuristic priority hint in [0,1], not a probability.
	Confidence float64

	// Text is the raw fragment text, text[Start:End].
	Text string

	// Meta holds small detector-specific diagnostics (delimiter, row count,
	// variable name, and so on).
	Meta map[string]any
}

// Len returns the fragment span length in bytes.
func (b Block) Len() int {
	return b.End - b.Start
}

// Contains reports whether o lies fully inside b.
func (b Block) Contains(o Block) bool {
	return o.Start >= b.Start && o.End <= b.End
}

// Overlaps reports whether b and o intersect, using half-open interval
// overlap testing.
func (b Block) Overlaps(o Block) bool {
	return b.Start < o.End && o.Start < b.End
}
