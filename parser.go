package fragmenta

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"

	"github.com/tsawler/fragmenta/detect"
	"github.com/tsawler/fragmenta/format"
	"github.com/tsawler/fragmenta/normalize"
	"github.com/tsawler/fragmenta/resolve"
	"github.com/tsawler/fragmenta/schema"
)

// Parser provides a fluent interface for locating and extracting embedded
// structured fragments from text. Each configuration method returns a new
// Parser instance, making it safe for concurrent use and allowing method
// chaining.
type Parser struct {
	// Configuration
	options ParseOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Parser with a copy of options.
// This ensures immutability; each chain method returns a new instance.
func (p *Parser) clone() *Parser {
	return &Parser{
		options: p.options.clone(),
		err:     p.err,
	}
}

// ============================================================================
// Configuration Methods (return new Parser instance)
// ============================================================================

// SchemaDiscovery enables field flattening: every record is walked and its
// leaves reported as typed fields in Result.Fields.
//
// Example:
//
//	result, _, err := fragmenta.New().SchemaDiscovery().Parse(text)
func (p *Parser) SchemaDiscovery() *Parser {
	newP := p.clone()
	newP.options.schemaDiscovery = true
	return newP
}

// MaxScanWindow bounds how far the brace scanner looks for a closing brace
// from any opening brace. Values below one leave the default in place.
//
// Example:
//
//	result, _, err := fragmenta.New().MaxScanWindow(50000).Parse(text)
func (p *Parser) MaxScanWindow(n int) *Parser {
	newP := p.clone()
	newP.options.maxScanWindow = n
	return newP
}

// DetectorConfig replaces the detector configuration wholesale. Zero fields
// fall back to their defaults.
//
// Example:
//
//	cfg := detect.DefaultConfig()
//	cfg.MinRawTextLen = 50
//	result, _, err := fragmenta.New().DetectorConfig(cfg).Parse(text)
func (p *Parser) DetectorConfig(cfg detect.Config) *Parser {
	newP := p.clone()
	newP.options.detector = cfg
	return newP
}

// WithLogger attaches a logger used for debug-level detector diagnostics.
// A nil logger disables logging, which is the default.
//
// Example:
//
//	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	result, _, err := fragmenta.New().WithLogger(log).Parse(text)
func (p *Parser) WithLogger(log *slog.Logger) *Parser {
	newP := p.clone()
	newP.options.logger = log
	return newP
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Parse runs the full pipeline over text: detection, overlap resolution,
// normalization, and optional schema discovery.
//
// Returns the result, any warnings encountered during processing, and an
// error if the input could not be parsed at all. Warnings indicate
// non-fatal issues (a detector failed, a fragment would not normalize)
// where parsing succeeded but results may be incomplete.
//
// Example:
//
//	result, warnings, err := fragmenta.New().Parse(text)
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", fragmenta.FormatWarnings(warnings))
//	}
func (p *Parser) Parse(text string) (*Result, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	if !utf8.ValidString(text) {
		return nil, nil, fmt.Errorf("%w: input is not valid UTF-8", ErrInvalidInput)
	}

	cfg := p.options.detector
	if p.options.maxScanWindow > 0 {
		cfg.MaxScanWindow = p.options.maxScanWindow
	}

	ctx := detect.NewContext(text, cfg, p.options.logger)
	candidates := ctx.Run()

	var warnings []Warning
	for _, d := range ctx.Diagnostics() {
		warnings = append(warnings, Warning{Message: d})
	}

	fragments := resolve.Resolve(candidates)

	result := &Result{
		Fragments: fragments,
		Summary:   make(map[format.Format]int),
	}

	for _, f := range fragments {
		result.Summary[f.Format]++

		value, err := normalize.Normalize(f)
		if err != nil {
			// Formats that never carry a structured value are not worth
			// a warning; everything else failing to normalize is.
			if !errors.Is(err, normalize.ErrNoStructuredValue) {
				warnings = append(warnings, Warning{
					Message: fmt.Sprintf("fragment %s at [%d,%d): %v", f.Format, f.Start, f.End, err),
				})
				if p.options.logger != nil {
					p.options.logger.Debug("normalization failed",
						"format", f.Format.String(), "start", f.Start, "end", f.End, "error", err)
				}
			}
			continue
		}

		result.Records = append(result.Records, Record{
			Format: f.Format,
			Start:  f.Start,
			End:    f.End,
			Data:   value,
		})
	}

	if p.options.schemaDiscovery {
		result.Fields = discoverFields(result.Records)
	}

	return result, warnings, nil
}

// ParseBytes parses raw bytes. The bytes must hold text; binary content is
// rejected before detection runs.
//
// Example:
//
//	data, _ := os.ReadFile("page.html")
//	result, warnings, err := fragmenta.New().ParseBytes(data)
func (p *Parser) ParseBytes(data []byte) (*Result, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	mime := mimetype.Detect(data)
	if !isTextual(mime) {
		return nil, nil, fmt.Errorf("%w: binary content (%s)", ErrInvalidInput, mime.String())
	}

	return p.Parse(string(data))
}

// isTextual walks the MIME hierarchy looking for text/plain. All textual
// formats mimetype knows about descend from it.
func isTextual(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// discoverFields flattens every record's value into fields. Flatten
// already descends into list-shaped values (table rows, CSV rows), so
// each row's columns appear once per row.
func discoverFields(records []Record) []schema.Field {
	var fields []schema.Field
	for _, r := range records {
		fields = append(fields, schema.Flatten(r.Data)...)
	}
	return fields
}

// RecordsOf returns the records of a single format, in document order.
//
// Example:
//
//	tables := result.RecordsOf(format.HTMLTable)
func (r *Result) RecordsOf(f format.Format) []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Format == f {
			out = append(out, rec)
		}
	}
	return out
}
