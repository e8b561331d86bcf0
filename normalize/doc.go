// Package normalize converts detected fragments into structured values.
//
// Normalization is pure and deterministic: the same fragment always yields
// the same value. Failures are contained at the fragment boundary and
// reported as an error carrying the reason, never as a panic, so one bad
// fragment cannot abort the document.
//
// Malformed JSON goes through a bounded repair ladder: conservative textual
// fixes, then jsonrepair, then a salvage pass that extracts key/value pairs
// by pattern matching and never fails. SQL statements are retained verbatim
// and never parsed or executed.
package normalize
