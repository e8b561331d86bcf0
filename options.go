package fragmenta

import (
	"log/slog"

	"github.com/tsawler/fragmenta/detect"
)

// ParseOptions holds configuration for a parse.
type ParseOptions struct {
	// Schema discovery
	schemaDiscovery bool

	// Detection tuning
	detector      detect.Config
	maxScanWindow int

	// Debug logging (nil disables)
	logger *slog.Logger
}

// defaultOptions returns the default parse options.
func defaultOptions() ParseOptions {
	return ParseOptions{
		schemaDiscovery: false,
		detector:        detect.DefaultConfig(),
		maxScanWindow:   0, // 0 means use the detector config's window
		logger:          nil,
	}
}

// clone creates a copy of ParseOptions.
func (o ParseOptions) clone() ParseOptions {
	return ParseOptions{
		schemaDiscovery: o.schemaDiscovery,
		detector:        o.detector,
		maxScanWindow:   o.maxScanWindow,
		logger:          o.logger,
	}
}
