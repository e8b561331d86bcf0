package detect

// Config holds detector tunables.
type Config struct {
	// MaxScanWindow bounds how far a balanced-object scan may look past an
	// opening brace before failing closed.
	MaxScanWindow int

	// MaxCSVLines caps how many consecutive lines one CSV candidate may span.
	MaxCSVLines int

	// MinRawTextLen is the minimum trimmed length for a residual region to
	// be reported as raw text.
	MinRawTextLen int

	// MinHTMLBlockLen is the minimum span length for a generic HTML block.
	MinHTMLBlockLen int
}

// DefaultConfig returns default detector configuration.
func DefaultConfig() Config {
	return Config{
		MaxScanWindow:   200000,
		MaxCSVLines:     200,
		MinRawTextLen:   20,
		MinHTMLBlockLen: 20,
	}
}
