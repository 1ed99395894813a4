package semmeta

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/semtools/semmeta/internal/logging"
	"github.com/semtools/semmeta/internal/registry"

	_ "github.com/semtools/semmeta/internal/tiff" // Register TIFF decoder
)

// Image is an opened image container exposing its tag directory.
//
// Image reads only the primary tag directory, never pixel data.
//
// Always call Close() when done to release file resources:
//
//	img, err := semmeta.Open("sample.tif")
//	if err != nil {
//		return err
//	}
//	defer img.Close()
type Image struct {
	// Path to the image file
	Path string

	// Detected container format
	Format Format

	// File size in bytes
	Size int64

	// Warnings encountered while decoding the container (non-fatal issues)
	Warnings []Warning

	reader io.ReaderAt
	tags   TagSet
}

// Open opens an image file and decodes its tag directory.
//
// Supported formats: TIFF (including SEM vendor exports)
//
// Every failure is returned as an *ImageUnreadableError. Use errors.As to
// reach the underlying *UnsupportedFormatError or *CorruptedFileError.
//
// Example:
//
//	img, err := semmeta.Open("sample.tif")
//	if err != nil {
//		return err
//	}
//	defer img.Close()
//	fmt.Println(len(img.Tags()), "tags")
func Open(path string, opts ...Option) (*Image, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return openFile(path, options)
}

func openFile(path string, options *openOptions) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ImageUnreadableError{Path: path, Err: fmt.Errorf("open file: %w", err)}
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &ImageUnreadableError{Path: path, Err: fmt.Errorf("stat file: %w", err)}
	}

	img, err := openReader(f, stat.Size(), path, options)
	if err != nil {
		f.Close()
		return nil, err
	}
	img.reader = f

	if options.strictParsing && len(img.Warnings) > 0 {
		f.Close()
		return nil, &ImageUnreadableError{
			Path: path,
			Err:  fmt.Errorf("strict parsing failed: %s", img.Warnings[0].Message),
		}
	}
	return img, nil
}

// openReader decodes an image from an io.ReaderAt (internal, for testing).
func openReader(r io.ReaderAt, size int64, path string, options *openOptions) (*Image, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, &ImageUnreadableError{Path: path, Err: err}
	}

	decoder := registry.Get(format)
	if decoder == nil {
		return nil, &ImageUnreadableError{Path: path, Err: &UnsupportedFormatError{
			Path:   path,
			Reason: fmt.Sprintf("no decoder available for format %s", format),
		}}
	}

	tags, warnings, err := decoder.Decode(r, size, path)
	if err != nil {
		return nil, &ImageUnreadableError{Path: path, Err: fmt.Errorf("decode %s: %w", format, err)}
	}

	options.logger.Debug("image opened",
		slog.String(logging.FieldFile, path),
		slog.String("format", format.String()),
		slog.Int("tags", len(tags)),
	)

	img := &Image{
		Path:     path,
		Format:   format,
		Size:     size,
		Warnings: warnings,
		tags:     tags,
	}
	if options.ignoreWarnings {
		img.Warnings = nil
	}
	return img, nil
}

// Tags returns the id→value mapping of the primary tag directory.
//
// The returned set should not be modified.
func (img *Image) Tags() TagSet {
	if img == nil {
		return nil
	}
	return img.tags
}

// Close releases resources held by the image.
//
// After Close is called, the Image should not be used.
func (img *Image) Close() error {
	if closer, ok := img.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// OpenContext opens an image with context support for cancellation.
//
// The context is checked before the file is opened; decoding a single tag
// directory is bounded and not interruptible.
func OpenContext(ctx context.Context, path string, opts ...Option) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

var _ TagSource = (*Image)(nil)
