// Package fragmenta provides a fluent API for locating and extracting
// embedded structured data (JSON, HTML tables, CSV, key/value blocks, and
// more) from arbitrary text.
//
// Basic usage:
//
//	result, warnings, err := fragmenta.New().Parse(text)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", fragmenta.FormatWarnings(warnings))
//	}
//	for _, rec := range result.Records {
//	    fmt.Printf("%s at [%d,%d): %v\n", rec.Format, rec.Start, rec.End, rec.Data)
//	}
//
// With options:
//
//	result, _, err := fragmenta.New().
//	    SchemaDiscovery().
//	    MaxScanWindow(50000).
//	    Parse(text)
//
// For advanced use cases, the lower-level detect, resolve, normalize, and
// schema packages are also available.
package fragmenta

import "errors"

// ErrInvalidInput is returned when the input cannot be treated as text:
// it is not valid UTF-8, or ParseBytes received binary content.
var ErrInvalidInput = errors.New("invalid input")

// New returns a Parser with default options, ready for fluent
// configuration.
//
// Example:
//
//	result, warnings, err := fragmenta.New().Parse(text)
func New() *Parser {
	return &Parser{
		options: defaultOptions(),
	}
}

// Parse parses text with default options. It is shorthand for
// New().Parse(text).
//
// Example:
//
//	result, warnings, err := fragmenta.Parse(text)
func Parse(text string) (*Result, []Warning, error) {
	return New().Parse(text)
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	n := fragmenta.Must(strconv.Atoi(s))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustParse is a helper that wraps a call to Parse and panics if the error
// is non-nil. It discards warnings and returns just the result. It is
// intended for use in scripts or tests where error handling would be
// cumbersome.
//
// Example:
//
//	result := fragmenta.MustParse(fragmenta.Parse(text))
func MustParse(val *Result, _ []Warning, err error) *Result {
	if err != nil {
		panic(err)
	}
	return val
}
