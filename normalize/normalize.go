package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/fragmenta/format"
	"github.com/tsawler/fragmenta/model"
)

// ErrNoStructuredValue is returned for formats that carry no structured
// value (raw text, generic HTML, unrecognized tags).
var ErrNoStructuredValue = errors.New("format carries no structured value")

// Normalize converts one fragment into a structured value: a nested
// map[string]any / []any tree with scalar leaves. Numbers decode as
// json.Number so integer and floating-point values stay distinguishable.
//
// The returned error carries the reason normalization failed; callers that
// only need null-on-failure semantics can discard it. Normalize never
// panics, whatever the fragment contains.
func Normalize(b model.Block) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = fmt.Errorf("normalizing %s fragment: %v", b.Format, r)
		}
	}()

	text := strings.TrimSpace(b.Text)

	switch b.Format {
	case format.JSON, format.JSONLD:
		v, err := strictDecode(text)
		if err != nil {
			return nil, fmt.Errorf("strict JSON parse: %w", err)
		}
		return v, nil

	case format.MalformedJSON:
		return repairJSON(text), nil

	case format.HTMLTable:
		return tableRows(text)

	case format.CSV:
		return csvRows(text, false)

	case format.CSVNoHeader:
		return csvRows(text, true)

	case format.KeyValue:
		return keyValuePairs(text), nil

	case format.JSObject:
		return jsObjectValue(text)

	case format.YAMLFrontmatter:
		return yamlMapping(text)

	case format.SQL:
		return map[string]any{"sql": text}, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrNoStructuredValue, b.Format)
	}
}

// strictDecode parses s as a single JSON value with numbers preserved as
// json.Number. Trailing non-whitespace content is an error.
func strictDecode(s string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing content after JSON value")
	}
	return v, nil
}
