package semmeta

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/semtools/semmeta/internal/catalog"
	"github.com/semtools/semmeta/internal/exif"
	"github.com/semtools/semmeta/internal/instrument"
	"github.com/semtools/semmeta/internal/logging"
	"github.com/semtools/semmeta/internal/merge"
	"github.com/semtools/semmeta/internal/tagstore"
)

// ErrNoImage is wrapped in an *ImageUnreadableError when Extract is given
// a nil tag source.
var ErrNoImage = errors.New("no image")

// TagSource is anything that exposes an id→value tag mapping, such as an
// opened *Image.
type TagSource interface {
	Tags() TagSet
}

// Result is the outcome of extracting one image.
type Result struct {
	// Metadata is the merged EXIF and instrument metadata
	Metadata MergedMetadata

	// Warnings are the non-fatal issues met along the way
	Warnings []Warning
}

// BatchResult is the outcome for one path passed to ExtractMany.
type BatchResult struct {
	Path   string
	Result *Result
	Err    error
}

// Extract runs the metadata pipeline over an already opened image.
//
// The standard tags are resolved against the image, the instrument tag is
// decoded and parsed, and both are merged under fileName. Data problems
// never fail extraction; they are returned as warnings. The only error is
// a nil source, or any warning when WithStrictParsing is set.
//
// Example:
//
//	img, err := semmeta.Open("sample.tif")
//	if err != nil {
//		return err
//	}
//	defer img.Close()
//
//	res, err := semmeta.Extract(img, "sample.tif")
//	if err != nil {
//		return err
//	}
//	wd, _ := res.Metadata.Instrument.Get("AP_WD")
func Extract(src TagSource, fileName string, opts ...Option) (*Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return extract(src, fileName, nil, options)
}

// ExtractFile opens path, extracts its metadata and closes it. The file's
// base name is used as FileName.
func ExtractFile(path string, opts ...Option) (*Result, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return extractFile(path, options)
}

func extractFile(path string, options *openOptions) (*Result, error) {
	img, err := openFile(path, options)
	if err != nil {
		return nil, err
	}
	defer img.Close()

	return extract(img, filepath.Base(path), img.Warnings, options)
}

func extract(src TagSource, fileName string, containerWarnings []Warning, options *openOptions) (*Result, error) {
	if img, ok := src.(*Image); src == nil || ok && img == nil {
		return nil, &ImageUnreadableError{Path: fileName, Err: ErrNoImage}
	}
	warnings := slices.Clone(containerWarnings)

	store := tagstore.New(src)

	names, ids := catalog.Standard().NamesAndIDs()
	found, missing := exif.Resolve(store, names, ids)
	exifRecord := exif.Merge(found, missing)

	decoder := instrument.Decoder{Tag: options.instrumentTag, Encoding: options.textEncoding}
	lines, decodeWarnings := decoder.Decode(store)
	warnings = append(warnings, decodeWarnings...)

	parser := instrument.Parser{Policy: options.finalLine}
	instRecord, parseWarnings := parser.Parse(lines)
	warnings = append(warnings, parseWarnings...)

	res := &Result{
		Metadata: merge.Merge(fileName, exifRecord, instRecord),
		Warnings: warnings,
	}

	options.logger.Debug("metadata extracted",
		logging.FieldFile, fileName,
		"exif_found", len(found),
		"instrument_entries", instRecord.Len(),
	)
	for _, w := range res.Warnings {
		options.logger.Warn(w.Message, logging.WarningAttrs(fileName, w)...)
	}

	if options.strictParsing && len(res.Warnings) > 0 {
		return nil, fmt.Errorf("%s: strict parsing failed: %s", fileName, res.Warnings[0].Message)
	}
	if options.ignoreWarnings {
		res.Warnings = nil
	}
	return res, nil
}

// ExtractMany extracts metadata from many images concurrently.
//
// Each image runs its own independent pipeline, up to WithConcurrency
// at a time (runtime.NumCPU() by default). Results are returned in the
// same order as paths. A failing image does not affect the others; its
// error is carried in BatchResult.Err. Once ctx is cancelled no further
// images are started and the remaining results carry ctx.Err().
//
// Example:
//
//	for _, r := range semmeta.ExtractMany(ctx, paths) {
//		if r.Err != nil {
//			log.Printf("%s: %v", r.Path, r.Err)
//			continue
//		}
//		fmt.Println(r.Result.Metadata.FileName)
//	}
func ExtractMany(ctx context.Context, paths []string, opts ...Option) []BatchResult {
	if len(paths) == 0 {
		return nil
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	var g errgroup.Group
	g.SetLimit(options.concurrency)

	results := make([]BatchResult, len(paths))
	for i, path := range paths {
		results[i].Path = path
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			select {
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return nil
			default:
			}

			res, err := extractFile(path, options)
			results[i].Result = res
			results[i].Err = err
			return nil
		})
	}

	// Workers never return errors; failures live in the results.
	_ = g.Wait()
	return results
}
