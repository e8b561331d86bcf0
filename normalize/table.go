package normalize

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// tableRows converts an HTML table fragment into one record per data row.
// Header cells come from an explicit <thead> when present, otherwise the
// first row acts as the header. A data row produces a record only when its
// column count matches the header width. Tables with no header cells get
// synthesized positional column names.
func tableRows(text string) (any, error) {
	doc, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parsing table markup: %w", err)
	}

	table := findElement(doc, "table")
	if table == nil {
		return nil, fmt.Errorf("no table element in fragment")
	}

	var headers []string
	thead := findElement(table, "thead")
	if thead != nil {
		for _, th := range findAll(thead, "th") {
			headers = append(headers, cellText(th))
		}
	}

	trs := findAll(table, "tr")
	if len(headers) > 0 {
		// Header rows are not data rows.
		trs = excludeWithin(trs, thead)
	}
	if len(headers) == 0 && len(trs) > 0 {
		for _, cell := range rowCells(trs[0]) {
			headers = append(headers, cellText(cell))
		}
		trs = trs[1:]
	}

	var rows []any
	for _, tr := range trs {
		cells := rowCells(tr)
		switch {
		case len(headers) > 0 && len(cells) == len(headers):
			rec := make(map[string]any, len(cells))
			for i, cell := range cells {
				rec[headers[i]] = cellText(cell)
			}
			rows = append(rows, rec)
		case len(headers) == 0 && len(cells) > 0:
			rec := make(map[string]any, len(cells))
			for i, cell := range cells {
				rec[fmt.Sprintf("col_%d", i)] = cellText(cell)
			}
			rows = append(rows, rec)
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("table has no usable data rows")
	}
	return rows, nil
}

// excludeWithin filters out nodes that descend from ancestor.
func excludeWithin(nodes []*html.Node, ancestor *html.Node) []*html.Node {
	if ancestor == nil {
		return nodes
	}
	var out []*html.Node
	for _, n := range nodes {
		inside := false
		for p := n.Parent; p != nil; p = p.Parent {
			if p == ancestor {
				inside = true
				break
			}
		}
		if !inside {
			out = append(out, n)
		}
	}
	return out
}

// rowCells returns the direct td/th children of a tr.
func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

// cellText returns the trimmed, NFC-normalized text content of a node.
func cellText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(norm.NFC.String(sb.String()))
}

// findElement returns the first element named name in depth-first order.
func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every element named name in depth-first order.
func findAll(n *html.Node, name string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == name {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
