package detect

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tsawler/fragmenta/format"
	"github.com/tsawler/fragmenta/span"
)

var (
	sectionHeaderRe = regexp.MustCompile(`(?:^|\n)---[ \t]*([A-Za-z0-9][A-Za-z0-9 _\-()]*)[ \t]*\n`)
	sectionNextRe   = regexp.MustCompile(`\n---[ \t]*[\w \-()/:]*\n`)

	quotedKeyRe    = regexp.MustCompile(`"\w+"\s*:`)
	bareKeyRe      = regexp.MustCompile(`\w+\s*:`)
	blankLineRe    = regexp.MustCompile(`\n\s*\n`)
	keyShapedRe    = regexp.MustCompile(`["']\w+["']\s*:`)
	looseKeyRe     = regexp.MustCompile(`\w+\s*:\s*`)
)

// detectSectionedJSON handles documents that mark their regions with
// "--- HEADER" divider lines. A section whose header mentions JSON scopes a
// balanced-object scan to that section's body, so a malformed fragment is
// bounded by its section instead of bleeding into the next one.
func (c *Context) detectSectionedJSON() {
	for _, m := range sectionHeaderRe.FindAllStringSubmatchIndex(c.text, -1) {
		header := strings.ToUpper(strings.TrimSpace(c.text[m[2]:m[3]]))
		if !strings.Contains(header, "JSON") {
			continue
		}

		bodyStart := m[1]
		bodyEnd := len(c.text)
		if next := sectionNextRe.FindStringIndex(c.text[bodyStart:]); next != nil {
			bodyEnd = bodyStart + next[0]
		}
		if strings.TrimSpace(c.text[bodyStart:bodyEnd]) == "" {
			continue
		}
		if c.occupied.IsOccupied(bodyStart, bodyEnd) {
			continue
		}

		meta := map[string]any{"section_header": header}
		if s, e, ok := span.FindBalancedObject(c.text, bodyStart, c.cfg.MaxScanWindow); ok && e <= bodyEnd {
			if json.Valid([]byte(c.text[s:e])) {
				c.add(c.block(format.JSON, s, e, 0.99, meta))
			} else {
				c.add(c.block(format.MalformedJSON, s, e, 0.45, meta))
			}
			continue
		}
		// No matching closing brace: the whole body is a malformed candidate.
		c.add(c.block(format.MalformedJSON, bodyStart, bodyEnd, 0.4, meta))
	}
}

// detectJSONGlobal walks the document for unclaimed opening braces. A
// balanced span that strictly parses is JSON; one that does not is a
// malformed-JSON candidate scored by the density of key:value-shaped
// tokens. An opening brace with no closure inside the scan window claims
// text up to the next blank line as a low-confidence malformed fragment.
func (c *Context) detectJSONGlobal() {
	i := 0
	n := len(c.text)
	for i < n {
		rel := strings.IndexByte(c.text[i:], '{')
		if rel < 0 {
			return
		}
		pos := i + rel
		if c.occupied.IsOccupied(pos, pos+1) {
			i = pos + 1
			continue
		}

		s, e, ok := span.FindBalancedObject(c.text, pos, c.cfg.MaxScanWindow)
		if ok {
			if c.occupied.IsOccupied(s, e) {
				i = e
				continue
			}
			snippet := c.text[s:e]
			if json.Valid([]byte(snippet)) {
				c.add(c.block(format.JSON, s, e, 0.98, nil))
			} else {
				kvLike := len(quotedKeyRe.FindAllString(snippet, -1)) + len(bareKeyRe.FindAllString(snippet, -1))
				conf := 0.25
				if kvLike >= 2 {
					conf = 0.5
				}
				c.add(c.block(format.MalformedJSON, s, e, conf, map[string]any{"kv_like": kvLike}))
			}
			i = e
			continue
		}

		// Unterminated brace: bound the claim at the next blank line, or
		// 2000 bytes, whichever comes first.
		end := pos + 2000
		if end > n {
			end = n
		}
		if dn := blankLineRe.FindStringIndex(c.text[pos:end]); dn != nil {
			end = pos + dn[0]
		}
		if !c.occupied.IsOccupied(pos, end) {
			snippet := c.text[pos:end]
			if keyShapedRe.MatchString(snippet) || looseKeyRe.MatchString(snippet) {
				c.add(c.block(format.MalformedJSON, pos, end, 0.35, map[string]any{"note": "unclosed"}))
			}
		}
		i = end
		if i <= pos {
			i = pos + 1
		}
	}
}
