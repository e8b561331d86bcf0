package detect

import (
	"regexp"
	"strings"

	"github.com/tsawler/fragmenta/format"
)

var (
	kvFirstLineRe = regexp.MustCompile(`^\s*[#\-]*\s*[\w \t-]{1,80}[:=]\s*.+`)
	kvLineRe      = regexp.MustCompile(`^\s*[\w \t-]{1,80}[:=]\s*.+`)
)

// detectKeyValue finds runs of consecutive key: value / key = value lines.
func (c *Context) detectKeyValue() {
	lines := strings.Split(c.text, "\n")
	n := len(lines)

	i := 0
	for i < n {
		if kvFirstLineRe.MatchString(lines[i]) {
			j := i
			pairs := 0
			for j < n && kvLineRe.MatchString(lines[j]) {
				pairs++
				j++
			}
			if pairs >= 2 {
				start := c.lines.Start(i)
				end := c.lines.End(j - 1)
				if !c.occupied.IsOccupied(start, end) {
					c.add(c.block(format.KeyValue, start, end, 0.9, map[string]any{"pairs": pairs}))
					i = j
					continue
				}
			}
		}
		i++
	}
}
