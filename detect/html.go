package detect

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/fragmenta/format"
)

var (
	tableOpenRe  = regexp.MustCompile(`(?i)<table\b`)
	tableCloseRe = regexp.MustCompile(`(?i)</table[ \t]*>`)
	blockOpenRe  = regexp.MustCompile(`(?i)<(div|section|article|header|footer|main|nav|body)\b`)
	openTagRe    = regexp.MustCompile(`<[A-Za-z]`)

	blockCloseRes = map[string]*regexp.Regexp{
		"div":     regexp.MustCompile(`(?i)</div[ \t]*>`),
		"section": regexp.MustCompile(`(?i)</section[ \t]*>`),
		"article": regexp.MustCompile(`(?i)</article[ \t]*>`),
		"header":  regexp.MustCompile(`(?i)</header[ \t]*>`),
		"footer":  regexp.MustCompile(`(?i)</footer[ \t]*>`),
		"main":    regexp.MustCompile(`(?i)</main[ \t]*>`),
		"nav":     regexp.MustCompile(`(?i)</nav[ \t]*>`),
		"body":    regexp.MustCompile(`(?i)</body[ \t]*>`),
	}
)

// detectHTMLTables finds <table>...</table> spans. Confidence scales with
// whether the parsed table actually has rows and cells.
func (c *Context) detectHTMLTables() {
	for _, m := range tableOpenRe.FindAllStringIndex(c.text, -1) {
		start := m[0]
		if c.occupied.IsOccupied(start, start+1) {
			continue
		}
		closeIdx := tableCloseRe.FindStringIndex(c.text[start:])
		if closeIdx == nil {
			continue
		}
		end := start + closeIdx[1]
		if c.occupied.IsOccupied(start, end) {
			continue
		}

		rows, cols := tableShape(c.text[start:end])
		conf := 0.6
		if rows > 0 && cols >= 1 {
			conf = 0.95
		}
		c.add(c.block(format.HTMLTable, start, end, conf, map[string]any{"rows": rows, "cols": cols}))
	}
}

// detectHTMLBlocks finds generic block-level markup regions with a matching
// closing tag. Confidence scales with the balance of open and close tags.
func (c *Context) detectHTMLBlocks() {
	for _, m := range blockOpenRe.FindAllStringSubmatchIndex(c.text, -1) {
		start := m[0]
		if c.occupied.IsOccupied(start, start+1) {
			continue
		}
		tag := strings.ToLower(c.text[m[2]:m[3]])
		closeRe := blockCloseRes[tag]
		if closeRe == nil {
			continue
		}
		closeIdx := closeRe.FindStringIndex(c.text[start:])
		if closeIdx == nil {
			continue
		}
		end := start + closeIdx[1]
		if end-start <= c.cfg.MinHTMLBlockLen || c.occupied.IsOccupied(start, end) {
			continue
		}

		snippet := c.text[start:end]
		tagCount := len(openTagRe.FindAllString(snippet, -1))
		closeCount := strings.Count(snippet, "</")
		balanced := tagCount
		if closeCount < balanced {
			balanced = closeCount
		}
		conf := 0.5 + minFloat(0.4, float64(balanced)*0.03)
		c.add(c.block(format.HTML, start, end, conf, map[string]any{"tag_count": tagCount}))
	}
}

// tableShape parses snippet as HTML and reports the row count and the
// widest row's cell count. A snippet that cannot be parsed reports (0, 0).
func tableShape(snippet string) (rows, cols int) {
	doc, err := html.Parse(strings.NewReader(snippet))
	if err != nil {
		return 0, 0
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows++
			cells := 0
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells++
				}
			}
			if cells > cols {
				cols = cells
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return rows, cols
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
