package detect

import (
	"regexp"

	"github.com/tsawler/fragmenta/format"
	"github.com/tsawler/fragmenta/span"
)

var jsAssignRe = regexp.MustCompile(`\b(var|let|const)\s+([A-Za-z0-9_$]+)\s*=\s*\{`)

// detectJSObjects finds script-style object-literal assignments. The block
// covers the declaration keyword through the object's closing brace.
func (c *Context) detectJSObjects() {
	for _, m := range jsAssignRe.FindAllStringSubmatchIndex(c.text, -1) {
		start := m[0]
		if c.occupied.IsOccupied(start, start+1) {
			continue
		}
		// The object literal begins at the trailing '{' of the match.
		braceAt := m[1] - 1
		s, e, ok := span.FindBalancedObject(c.text, braceAt, c.cfg.MaxScanWindow)
		if !ok || c.occupied.IsOccupied(s, e) {
			continue
		}
		varName := c.text[m[4]:m[5]]
		c.add(c.block(format.JSObject, start, e, 0.88, map[string]any{"var_name": varName}))
	}
}
