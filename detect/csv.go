package detect

import (
	"strings"
	"unicode"

	"github.com/tsawler/fragmenta/format"
)

var csvDelimiters = []string{",", "\t", ";"}

// detectCSV finds runs of consecutive non-blank lines sharing a delimiter.
// The run is kept when the modal delimiter count covers at least half the
// lines. Header presence is inferred from the first field of the first row
// containing a letter.
func (c *Context) detectCSV() {
	lines := strings.Split(c.text, "\n")
	n := len(lines)

	i := 0
	for i < n {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}

		delim := ""
		for _, d := range csvDelimiters {
			if strings.Contains(lines[i], d) &&
				!strings.ContainsAny(lines[i], "{}") {
				delim = d
				break
			}
		}
		if delim == "" {
			i++
			continue
		}

		counts := []int{strings.Count(lines[i], delim)}
		j := i + 1
		for j < n && j-i < c.cfg.MaxCSVLines &&
			strings.TrimSpace(lines[j]) != "" && strings.Count(lines[j], delim) > 0 {
			counts = append(counts, strings.Count(lines[j], delim))
			j++
		}

		if len(counts) >= 2 && modalFrequency(counts) >= len(counts)/2 {
			start := c.lines.Start(i)
			end := c.lines.End(j - 1)
			if !c.occupied.IsOccupied(start, end) {
				first := strings.SplitN(lines[i], delim, 2)[0]
				hasHeader := strings.IndexFunc(first, unicode.IsLetter) >= 0

				f, conf := format.CSV, 0.9
				if !hasHeader {
					f, conf = format.CSVNoHeader, 0.7
				}
				c.add(c.block(f, start, end, conf, map[string]any{
					"delimiter": delim,
					"rows":      len(counts),
				}))
				i = j
				continue
			}
		}
		i++
	}
}

// modalFrequency returns how often the most common value occurs.
func modalFrequency(counts []int) int {
	freq := make(map[int]int, len(counts))
	best := 0
	for _, v := range counts {
		freq[v]++
		if freq[v] > best {
			best = freq[v]
		}
	}
	if best < 1 {
		best = 1
	}
	return best
}
