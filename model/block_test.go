package model

import (
	"testing"

	"github.com/tsawler/fragmenta/format"
)

func TestBlockRelations(t *testing.T) {
	outer := Block{Format: format.HTML, Start: 10, End: 50}
	inner := Block{Format: format.HTMLTable, Start: 20, End: 40}
	partial := Block{Format: format.CSV, Start: 45, End: 60}
	disjoint := Block{Format: format.SQL, Start: 50, End: 70}

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if inner.Contains(outer) {
		t.Error("inner should not contain outer")
	}
	if !outer.Overlaps(partial) || !partial.Overlaps(outer) {
		t.Error("partial overlap not detected")
	}
	// Half-open intervals: touching spans do not overlap.
	if outer.Overlaps(disjoint) {
		t.Error("adjacent spans must not overlap")
	}
	if got := outer.Len(); got != 40 {
		t.Errorf("Len() = %d, want 40", got)
	}
}
