package detect

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tsawler/fragmenta/format"
)

var jsonLDRe = regexp.MustCompile(`(?is)<script\b[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)

// detectJSONLD finds script tags carrying the JSON-LD content type. The
// block covers the embedded content, not the surrounding tag.
func (c *Context) detectJSONLD() {
	for _, m := range jsonLDRe.FindAllStringSubmatchIndex(c.text, -1) {
		start, end := m[2], m[3]
		content := strings.TrimSpace(c.text[start:end])

		conf := 0.6
		parsed := false
		if json.Valid([]byte(content)) {
			conf = 0.99
			parsed = true
		}
		c.add(c.block(format.JSONLD, start, end, conf, map[string]any{"parsed": parsed}))
	}
}
