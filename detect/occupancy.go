package detect

// Tracker is an append-only set of half-open intervals reserved by
// high-trust detections within a single pass. Intervals are never merged or
// removed; the set only ever grows while one document is being scanned.
type Tracker struct {
	spans []interval
}

type interval struct {
	start, end int
}

// Reserve records [start,end) as claimed.
func (t *Tracker) Reserve(start, end int) {
	t.spans = append(t.spans, interval{start, end})
}

// IsOccupied reports whether [start,end) intersects any reserved interval.
func (t *Tracker) IsOccupied(start, end int) bool {
	for _, s := range t.spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// Spans returns a copy of the reserved intervals as (start, end) pairs in
// reservation order.
func (t *Tracker) Spans() [][2]int {
	out := make([][2]int, len(t.spans))
	for i, s := range t.spans {
		out[i] = [2]int{s.start, s.end}
	}
	return out
}
