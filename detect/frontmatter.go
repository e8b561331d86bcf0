package detect

import (
	"regexp"
	"strings"

	"github.com/tsawler/fragmenta/format"
)

var frontmatterFenceRe = regexp.MustCompile(`(?:^|\n)---[ \t]*\n`)

// Frontmatter body bounds in bytes. regexp rejects counted repeats past
// 1000, so the closing fence is located by scanning instead.
const (
	frontmatterMinBody = 5
	frontmatterMaxBody = 2000
)

// detectYAMLFrontmatter finds ----delimited frontmatter blocks. The body
// runs from an opening fence line to the nearest closing fence within the
// size bounds. Confidence scales with the fraction of non-blank lines
// carrying a colon.
func (c *Context) detectYAMLFrontmatter() {
	for _, m := range frontmatterFenceRe.FindAllStringIndex(c.text, -1) {
		start := m[1]
		window := start + frontmatterMaxBody + len("\n---")
		if window > len(c.text) {
			window = len(c.text)
		}
		rel := strings.Index(c.text[start:window], "\n---")
		if rel < frontmatterMinBody {
			continue
		}
		end := start + rel
		if c.occupied.IsOccupied(start, end) {
			continue
		}

		body := c.text[start:end]
		total, withColon := 0, 0
		for _, ln := range strings.Split(body, "\n") {
			if strings.TrimSpace(ln) == "" {
				continue
			}
			total++
			if strings.Contains(ln, ":") {
				withColon++
			}
		}
		ratio := 0.0
		if total > 0 {
			ratio = float64(withColon) / float64(total)
		}
		conf := 0.6
		if ratio > 0.5 {
			conf = 0.95
		}
		c.add(c.block(format.YAMLFrontmatter, start, end, conf, map[string]any{"colon_ratio": ratio}))
	}
}
