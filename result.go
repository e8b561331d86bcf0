package fragmenta

import (
	"github.com/tsawler/fragmenta/format"
	"github.com/tsawler/fragmenta/model"
	"github.com/tsawler/fragmenta/schema"
)

// Record is a normalized structured value recovered from one fragment.
// Start and End are byte offsets into the original input.
type Record struct {
	Format format.Format
	Start  int
	End    int
	Data   any
}

// Result holds the output of a parse.
type Result struct {
	// Fragments are the resolved, non-overlapping fragments in document
	// order. Every fragment is reported here whether or not it produced a
	// record.
	Fragments []model.Block

	// Records holds the normalized values, one per fragment that yielded
	// structured data. Fragments that could not be normalized are reported
	// as warnings instead.
	Records []Record

	// Fields is the flattened field inventory across all records. It is
	// only populated when schema discovery is enabled.
	Fields []schema.Field

	// Summary counts resolved fragments per format.
	Summary map[format.Format]int
}
