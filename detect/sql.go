package detect

import (
	"regexp"

	"github.com/tsawler/fragmenta/format"
)

var (
	sqlStmtRe   = regexp.MustCompile(`(?i)(?:--[^\n]*\n\s*)?(?:SELECT|INSERT|UPDATE|DELETE|CREATE|DROP)\b[\s\S]{0,400}?;`)
	sqlSelectRe = regexp.MustCompile(`(?i)\bSELECT\b`)
	sqlFromRe   = regexp.MustCompile(`(?i)\bFROM\b`)
)

// detectSQL finds statement-keyword-through-semicolon spans, optionally led
// by a -- comment line. Statements carrying both a selection keyword and a
// source clause score higher.
func (c *Context) detectSQL() {
	for _, m := range sqlStmtRe.FindAllStringIndex(c.text, -1) {
		start, end := m[0], m[1]
		if c.occupied.IsOccupied(start, end) {
			continue
		}
		snippet := c.text[start:end]
		conf := 0.6
		if sqlSelectRe.MatchString(snippet) && sqlFromRe.MatchString(snippet) {
			conf = 0.9
		}
		c.add(c.block(format.SQL, start, end, conf, nil))
	}
}
