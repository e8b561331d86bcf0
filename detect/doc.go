// Package detect locates embedded structured-data fragments inside
// unstructured text.
//
// Detection is performed by a fixed sequence of per-format detectors running
// over a per-call [Context]. Detectors run most-structurally-unambiguous
// first, and high-trust detections (the JSON family, tables, markup, and
// frontmatter) reserve their spans in an occupancy [Tracker] so weaker
// detectors skip text that is already claimed. The occupancy set is an
// optimization to reduce detector collisions, not the final authority on
// overlap; the resolve package makes the final call.
//
// Every detector is failure-isolated: an internal fault in one detector
// contributes zero blocks from that detector only and never aborts the
// document.
//
//	ctx := detect.NewContext(text, detect.DefaultConfig(), nil)
//	candidates := ctx.Run()
//
// The candidate list is heavily overlapping by design and must be passed
// through resolve.Resolve before use.
package detect
