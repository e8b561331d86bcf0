package normalize

import (
	"encoding/csv"
	"fmt"
	"strings"
)

// csvRows converts delimiter-separated text into one mapping per data row.
// The delimiter is inferred from the first line. Row one is the header
// unless noHeader is set or fewer than two rows exist, in which case
// positional col_i names are synthesized. Any reader failure falls back to
// a naive single-character split.
func csvRows(text string, noHeader bool) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty fragment")
	}

	delim := inferDelimiter(firstLine(text))

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		rows = naiveSplit(text, delim)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows parsed")
	}

	if noHeader || len(rows) < 2 {
		headers := syntheticHeaders(len(rows[0]))
		return zipRows(headers, rows), nil
	}
	return zipRows(rows[0], rows[1:]), nil
}

// inferDelimiter picks the first of comma, tab, semicolon present in line,
// defaulting to comma.
func inferDelimiter(line string) rune {
	for _, d := range []rune{',', '\t', ';'} {
		if strings.ContainsRune(line, d) {
			return d
		}
	}
	return ','
}

func firstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}

// naiveSplit is the fallback when the csv reader rejects the text.
func naiveSplit(text string, delim rune) [][]string {
	var rows [][]string
	for _, ln := range strings.Split(text, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		rows = append(rows, strings.Split(ln, string(delim)))
	}
	return rows
}

func syntheticHeaders(width int) []string {
	headers := make([]string, width)
	for i := range headers {
		headers[i] = fmt.Sprintf("col_%d", i)
	}
	return headers
}

// zipRows pairs headers with cells, truncating to the shorter of the two.
func zipRows(headers []string, rows [][]string) []any {
	out := make([]any, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]any, len(headers))
		n := len(headers)
		if len(row) < n {
			n = len(row)
		}
		for i := 0; i < n; i++ {
			rec[headers[i]] = row[i]
		}
		out = append(out, rec)
	}
	return out
}
