package semmeta

import (
	"log/slog"
	"runtime"

	"github.com/semtools/semmeta/internal/instrument"
	"github.com/semtools/semmeta/internal/logging"
)

// Option configures how images are opened and metadata is extracted.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	res, err := semmeta.ExtractFile("sample.tif",
//	    semmeta.WithFinalLinePolicy(semmeta.FinalLineDiscard),
//	    semmeta.WithTextEncoding("windows-1252"),
//	)
type Option func(*openOptions)

// openOptions holds configuration for extraction.
type openOptions struct {
	strictParsing  bool // Fail on any warning
	ignoreWarnings bool // Suppress all warnings
	finalLine      FinalLinePolicy
	textEncoding   string
	instrumentTag  TagID
	logger         *slog.Logger
	concurrency    int // ExtractMany worker limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		finalLine:     FinalLineSynthesize,
		textEncoding:  instrument.DefaultEncoding,
		instrumentTag: InstrumentTag,
		logger:        logging.NewNop(),
		concurrency:   runtime.NumCPU(),
	}
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, extraction continues when the instrument tag is missing,
// its bytes are not valid text, or a line cannot be paired, returning
// warnings alongside the metadata.
//
// Example:
//
//	res, err := semmeta.ExtractFile("sample.tif", semmeta.WithStrictParsing())
//	// err != nil if ANY issue is encountered
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Example:
//
//	res, err := semmeta.ExtractFile("sample.tif", semmeta.WithIgnoreWarnings())
//	// res.Warnings will always be empty
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithFinalLinePolicy selects how a trailing line without a value is
// handled. The default is FinalLineSynthesize, which stores it under
// Unknown_<n>.
func WithFinalLinePolicy(p FinalLinePolicy) Option {
	return func(o *openOptions) {
		o.finalLine = p
	}
}

// WithTextEncoding sets the charset used to decode instrument bytes.
// Names follow the WHATWG encoding labels ("utf-8", "windows-1252",
// "shift_jis"). Unknown names fall back to UTF-8 with a warning.
func WithTextEncoding(name string) Option {
	return func(o *openOptions) {
		o.textEncoding = name
	}
}

// WithInstrumentTag overrides the tag id read for instrument text.
// Default is 34118.
func WithInstrumentTag(id TagID) Option {
	return func(o *openOptions) {
		if id != 0 {
			o.instrumentTag = id
		}
	}
}

// WithLogger sets the logger used for debug output and warnings.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *openOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency limits how many images ExtractMany processes at once.
// Values below 1 keep the default of runtime.NumCPU().
func WithConcurrency(n int) Option {
	return func(o *openOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
