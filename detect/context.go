package detect

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/fragmenta/format"
	"github.com/tsawler/fragmenta/model"
	"github.com/tsawler/fragmenta/span"
)

// Context holds the shared state for one detection pass over one document:
// the input text, the occupancy tracker, and the accumulated candidates.
// A Context is constructed per call and never shared between documents, so
// independent documents can be processed concurrently without locking.
type Context struct {
	text  string
	cfg   Config
	log   *slog.Logger
	lines *span.LineIndex

	occupied Tracker
	blocks   []model.Block
	diags    []string
}

// NewContext creates a detection context for text. A nil logger disables
// debug logging.
func NewContext(text string, cfg Config, log *slog.Logger) *Context {
	if cfg.MaxScanWindow <= 0 {
		cfg.MaxScanWindow = DefaultConfig().MaxScanWindow
	}
	if cfg.MaxCSVLines <= 0 {
		cfg.MaxCSVLines = DefaultConfig().MaxCSVLines
	}
	if cfg.MinRawTextLen <= 0 {
		cfg.MinRawTextLen = DefaultConfig().MinRawTextLen
	}
	if cfg.MinHTMLBlockLen <= 0 {
		cfg.MinHTMLBlockLen = DefaultConfig().MinHTMLBlockLen
	}
	return &Context{
		text:  text,
		cfg:   cfg,
		log:   log,
		lines: span.NewLineIndex(text),
	}
}

// Run executes every detector in fixed order and returns the raw candidate
// list, sorted by detector emission order. The list overlaps heavily; pass
// it to resolve.Resolve.
func (c *Context) Run() []model.Block {
	c.isolated("json_ld", c.detectJSONLD)
	c.isolated("yaml_frontmatter", c.detectYAMLFrontmatter)
	c.isolated("sectioned_json", c.detectSectionedJSON)
	c.isolated("json", c.detectJSONGlobal)
	c.isolated("html_table", c.detectHTMLTables)
	c.isolated("html", c.detectHTMLBlocks)
	c.isolated("js_object", c.detectJSObjects)
	c.isolated("csv", c.detectCSV)
	c.isolated("key_value", c.detectKeyValue)
	c.isolated("sql", c.detectSQL)
	c.isolated("raw_text", c.detectRawText)
	return c.blocks
}

// Occupancy exposes the tracker, primarily for tests and diagnostics.
func (c *Context) Occupancy() *Tracker {
	return &c.occupied
}

// Diagnostics returns descriptions of detector-local failures contained
// during the pass. An entry here means one detector contributed nothing;
// it never means the pass failed.
func (c *Context) Diagnostics() []string {
	return c.diags
}

// isolated runs one detector, converting any panic into a diagnostic so a
// single faulty detector cannot take down the document.
func (c *Context) isolated(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.diags = append(c.diags, fmt.Sprintf("detector %s failed: %v", name, r))
			if c.log != nil {
				c.log.Debug("detector failed", "detector", name, "error", fmt.Sprint(r))
			}
		}
	}()
	fn()
}

// add records a candidate block. Detections considered inherently high-trust
// reserve their span so later, weaker detectors skip it.
func (c *Context) add(b model.Block) {
	c.blocks = append(c.blocks, b)
	switch b.Format {
	case format.JSONLD, format.JSON, format.MalformedJSON,
		format.HTMLTable, format.HTML, format.YAMLFrontmatter:
		c.occupied.Reserve(b.Start, b.End)
	}
}

// block builds a Block over [start,end) with the raw slice filled in.
func (c *Context) block(f format.Format, start, end int, conf float64, meta map[string]any) model.Block {
	return model.Block{
		Format:     f,
		Start:      start,
		End:        end,
		Confidence: conf,
		Text:       c.text[start:end],
		Meta:       meta,
	}
}
