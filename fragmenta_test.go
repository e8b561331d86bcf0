package fragmenta

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/fragmenta/format"
)

func TestParseEmbeddedJSON(t *testing.T) {
	doc := "Intro prose before the payload.\n\n" +
		`{"a": [1, 2, 3], "b": {"c": "d"}}` +
		"\n\nClosing prose after the payload."

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	var jsonFrags int
	for _, f := range result.Fragments {
		if f.Format != format.JSON {
			continue
		}
		jsonFrags++
		if f.Confidence <= 0.9 {
			t.Errorf("JSON confidence = %f, want > 0.9", f.Confidence)
		}
		if f.Text != `{"a": [1, 2, 3], "b": {"c": "d"}}` {
			t.Errorf("fragment text = %q", f.Text)
		}
	}
	if jsonFrags != 1 {
		t.Fatalf("got %d JSON fragments, want 1", jsonFrags)
	}

	recs := result.RecordsOf(format.JSON)
	if len(recs) != 1 {
		t.Fatalf("got %d JSON records, want 1", len(recs))
	}
	want := map[string]any{
		"a": []any{json.Number("1"), json.Number("2"), json.Number("3")},
		"b": map[string]any{"c": "d"},
	}
	if !reflect.DeepEqual(recs[0].Data, want) {
		t.Errorf("record data = %v, want %v", recs[0].Data, want)
	}
}

func TestParseMalformedJSONRepair(t *testing.T) {
	doc := "Report follows.\n\n{ \"a\": 1, \"b\": 2, }\n\nEnd of report."

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	recs := result.RecordsOf(format.MalformedJSON)
	if len(recs) != 1 {
		t.Fatalf("got %d malformed-JSON records, want 1", len(recs))
	}
	want := map[string]any{"a": json.Number("1"), "b": json.Number("2")}
	if !reflect.DeepEqual(recs[0].Data, want) {
		t.Errorf("repaired data = %v, want %v", recs[0].Data, want)
	}
}

func TestParseEmbeddedCSV(t *testing.T) {
	doc := "Quarterly figures are below.\n\n" +
		"name,age\nAlice,30\nBob,25\n\n" +
		"Those are the figures we have on file."

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	recs := result.RecordsOf(format.CSV)
	if len(recs) != 1 {
		t.Fatalf("got %d CSV records, want 1", len(recs))
	}
	rows, ok := recs[0].Data.([]any)
	if !ok {
		t.Fatalf("CSV data is %T, want slice", recs[0].Data)
	}
	want := []any{
		map[string]any{"name": "Alice", "age": "30"},
		map[string]any{"name": "Bob", "age": "25"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("rows = %v, want %v", rows, want)
	}
}

func TestParseHTMLTable(t *testing.T) {
	doc := "See the table.\n\n" +
		"<table><tr><th>sku</th><th>qty</th></tr>" +
		"<tr><td>WA-1</td><td>3</td></tr></table>\n\nDone."

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	recs := result.RecordsOf(format.HTMLTable)
	if len(recs) != 1 {
		t.Fatalf("got %d table records, want 1", len(recs))
	}
	want := []any{map[string]any{"sku": "WA-1", "qty": "3"}}
	if !reflect.DeepEqual(recs[0].Data, want) {
		t.Errorf("table data = %v, want %v", recs[0].Data, want)
	}
}

func TestParseProseOnly(t *testing.T) {
	doc := "This paragraph is ordinary prose with no structure in it at all, " +
		"just words about nothing in particular, going on long enough to " +
		"register as a text region."

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if len(result.Records) != 0 {
		t.Errorf("got %d records for prose, want 0", len(result.Records))
	}
	if result.Summary[format.RawText] == 0 {
		t.Error("expected at least one raw text fragment")
	}
	for _, f := range result.Fragments {
		if f.Format != format.RawText {
			t.Errorf("unexpected fragment format %s in prose", f.Format)
		}
	}
}

func TestParseUnterminatedBrace(t *testing.T) {
	doc := `{ "a": 1, "b": ` + strings.Repeat("x", 5000)

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(result.Fragments) == 0 {
		t.Fatal("expected at least one fragment")
	}
	if result.Summary[format.MalformedJSON] == 0 {
		t.Error("expected an unterminated brace to yield a malformed JSON fragment")
	}
}

func TestParseOffsetsIndexOriginal(t *testing.T) {
	docs := []string{
		"plain prose only, nothing else here worth mentioning at all today",
		`before {"a": 1} middle {"b": [2, 3]} after`,
		"---\ntitle: Post\n---\nBody text follows the front matter block here.",
		"<div><table><tr><td>1</td></tr></table></div>",
		"a,b,c\n1,2,3\n4,5,6",
		"host: localhost\nport = 8080\nname: svc",
		`var cfg = {"debug": true};`,
		"SELECT id FROM t WHERE x > 1;",
		`{ "broken": `,
		"",
	}

	for _, doc := range docs {
		result, _, err := Parse(doc)
		if err != nil {
			t.Fatalf("parse failed for %q: %v", doc, err)
		}
		for _, f := range result.Fragments {
			if f.Start < 0 || f.End > len(doc) || f.Start >= f.End {
				t.Errorf("doc %q: bad span [%d,%d)", doc, f.Start, f.End)
				continue
			}
			if doc[f.Start:f.End] != f.Text {
				t.Errorf("doc %q: text does not match span [%d,%d)", doc, f.Start, f.End)
			}
		}
	}
}

func TestParseNoPartialOverlaps(t *testing.T) {
	doc := "Header prose.\n\n" +
		`{"a": 1}` + "\n\n" +
		"<div><table><tr><th>h</th></tr><tr><td>v</td></tr></table></div>\n\n" +
		"k1: v1\nk2: v2\n\n" +
		"x,y\n1,2\n\n" +
		"Trailing prose to close the document out."

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	for i, a := range result.Fragments {
		for _, b := range result.Fragments[i+1:] {
			disjoint := a.End <= b.Start || b.End <= a.Start
			contained := a.Contains(b) || b.Contains(a)
			if !disjoint && !contained {
				t.Errorf("fragments [%d,%d) %s and [%d,%d) %s partially overlap",
					a.Start, a.End, a.Format, b.Start, b.End, b.Format)
			}
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	doc := "Prose.\n\n" + `{"a": 1, "b": [true, null]}` + "\n\nname,age\nAlice,30\n\nMore prose here."

	first, w1, err1 := Parse(doc)
	second, w2, err2 := Parse(doc)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !reflect.DeepEqual(first.Fragments, second.Fragments) {
		t.Error("fragments differ between identical parses")
	}
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("records differ between identical parses")
	}
	if !reflect.DeepEqual(w1, w2) {
		t.Error("warnings differ between identical parses")
	}
}

func TestParseSummaryMatchesFragments(t *testing.T) {
	doc := `{"a": 1}` + "\n\nSome prose between the two payloads here.\n\n" + `{"b": 2}`

	result, _, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	counts := make(map[format.Format]int)
	for _, f := range result.Fragments {
		counts[f.Format]++
	}
	if !reflect.DeepEqual(counts, result.Summary) {
		t.Errorf("summary = %v, fragment counts = %v", result.Summary, counts)
	}
}

func TestParseInvalidUTF8(t *testing.T) {
	_, _, err := Parse("valid prefix \xff\xfe invalid suffix")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestParseBytesRejectsBinary(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}
	_, _, err := New().ParseBytes(png)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestParseBytesAcceptsText(t *testing.T) {
	result, _, err := New().ParseBytes([]byte(`prefix {"a": 1} suffix`))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Summary[format.JSON] != 1 {
		t.Errorf("summary = %v, want one JSON fragment", result.Summary)
	}
}

func TestSchemaDiscovery(t *testing.T) {
	doc := `{"id": "x-1", "specs": {"color": "red", "weight": 0.5}, "active": true}`

	result, _, err := New().SchemaDiscovery().Parse(doc)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(result.Fields) == 0 {
		t.Fatal("expected discovered fields")
	}

	byPath := make(map[string]string)
	for _, f := range result.Fields {
		byPath[f.Path] = string(f.Type)
	}
	if byPath[".specs.weight"] != "number" {
		t.Errorf("weight type = %q, want number", byPath[".specs.weight"])
	}
	if byPath[".active"] != "boolean" {
		t.Errorf("active type = %q, want boolean", byPath[".active"])
	}
}

func TestSchemaDiscoveryOffByDefault(t *testing.T) {
	result, _, err := Parse(`{"a": 1}`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Fields != nil {
		t.Errorf("fields should be nil without schema discovery, got %v", result.Fields)
	}
}

func TestParserImmutability(t *testing.T) {
	base := New()
	withSchema := base.SchemaDiscovery()
	if base.options.schemaDiscovery {
		t.Error("configuring a derived parser mutated the base")
	}
	if !withSchema.options.schemaDiscovery {
		t.Error("derived parser lost its configuration")
	}
}

func TestMaxScanWindow(t *testing.T) {
	// A tiny window keeps the scanner from finding the closing brace of a
	// large object, so the object degrades to malformed instead of JSON.
	body := `{"a": "` + strings.Repeat("x", 500) + `"}`

	result, _, err := New().MaxScanWindow(50).Parse(body)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if result.Summary[format.JSON] != 0 {
		t.Errorf("summary = %v, want no strict JSON with a 50-byte window", result.Summary)
	}
}

func TestFormatWarnings(t *testing.T) {
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("FormatWarnings(nil) = %q, want empty", got)
	}
	got := FormatWarnings([]Warning{{Message: "one"}, {Message: "two"}})
	if got != "one\ntwo" {
		t.Errorf("FormatWarnings = %q", got)
	}
}

func TestMustParse(t *testing.T) {
	result := MustParse(Parse(`{"a": 1}`))
	if result == nil || result.Summary[format.JSON] != 1 {
		t.Error("MustParse returned unexpected result")
	}

	defer func() {
		if recover() == nil {
			t.Error("MustParse should panic on error")
		}
	}()
	MustParse(Parse("\xff"))
}
