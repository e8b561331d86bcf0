package detect

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/fragmenta/format"
)

// detectRawText claims whatever the occupancy set left behind. Each
// unreserved region is split into blank-line-separated paragraphs, and each
// non-empty paragraph becomes a low-confidence raw-text block.
func (c *Context) detectRawText() {
	free := c.freeRegions()
	for _, reg := range free {
		if len(strings.TrimSpace(c.text[reg[0]:reg[1]])) < c.cfg.MinRawTextLen {
			continue
		}
		for _, p := range splitParagraphs(c.text, reg[0], reg[1]) {
			if c.occupied.IsOccupied(p[0], p[1]) {
				continue
			}
			c.add(c.block(format.RawText, p[0], p[1], 0.35, nil))
		}
	}
}

// freeRegions subtracts the reserved intervals from [0, len(text)).
func (c *Context) freeRegions() [][2]int {
	reserved := c.occupied.Spans()
	sort.Slice(reserved, func(i, j int) bool { return reserved[i][0] < reserved[j][0] })

	regions := [][2]int{{0, len(c.text)}}
	for _, r := range reserved {
		var next [][2]int
		for _, reg := range regions {
			s, e := reg[0], reg[1]
			if r[1] <= s || r[0] >= e {
				next = append(next, reg)
				continue
			}
			if s < r[0] {
				next = append(next, [2]int{s, r[0]})
			}
			if r[1] < e {
				next = append(next, [2]int{r[1], e})
			}
		}
		regions = next
	}
	return regions
}

// splitParagraphs returns trimmed paragraph spans within [start,end),
// splitting on blank lines. Offsets refer to the original text.
func splitParagraphs(text string, start, end int) [][2]int {
	var parts [][2]int
	prev := start
	for _, m := range blankLineRe.FindAllStringIndex(text[start:end], -1) {
		parts = append(parts, [2]int{prev, start + m[0]})
		prev = start + m[1]
	}
	parts = append(parts, [2]int{prev, end})

	var out [][2]int
	for _, p := range parts {
		s, e := trimSpan(text, p[0], p[1])
		if e > s {
			out = append(out, [2]int{s, e})
		}
	}
	return out
}

// trimSpan shrinks [s,e) past leading and trailing whitespace, moving by
// whole runes so multibyte characters are never split.
func trimSpan(text string, s, e int) (int, int) {
	for s < e {
		r, size := utf8.DecodeRuneInString(text[s:e])
		if !unicode.IsSpace(r) {
			break
		}
		s += size
	}
	for e > s {
		r, size := utf8.DecodeLastRuneInString(text[s:e])
		if !unicode.IsSpace(r) {
			break
		}
		e -= size
	}
	return s, e
}
