// Package semmeta extracts structured metadata from scanning electron
// microscope (SEM) images.
//
// SEM vendors store images as TIFF files. The standard tags describe the
// raster, while tag 34118 carries a free-form block of instrument settings
// (working distance, beam current, pixel size). semmeta reads both and
// merges them into one record ready for JSON export.
//
// # Quick Start
//
// Extracting metadata from an image:
//
//	res, err := semmeta.ExtractFile("sample.tif")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	wd, _ := res.Metadata.Instrument.Get("AP_WD")
//	width, _ := res.Metadata.EXIF.Get("ImageWidth")
//	fmt.Println(wd, width)
//
// The result marshals to the persisted form:
//
//	{
//	  "FileName": "sample.tif",
//	  "EXIF_Metadata": {"ImageWidth": 1024, "Artist": null, ...},
//	  "Instrument_Metadata": {"AP_WD": "10.2 mm", ...}
//	}
//
// # Pipeline
//
// Each extraction runs the same steps over one image:
//
//	[Image]                 - Open() decodes the primary tag directory
//	  ├─ [tag store]        - immutable snapshot of id→value pairs
//	  ├─ [EXIF resolver]    - standard tag names, null when absent
//	  ├─ [instrument text]  - tag 34118 decoded to clean lines
//	  │    └─ [parser]      - "key = value" and identifier/value pairs
//	  └─ [merge]            - FileName + EXIF_Metadata + Instrument_Metadata
//
// Entries keep a stable order: EXIF tags found in the image come first in
// dictionary order, followed by the declared-but-absent tags. The palette
// tag ColorMap is never reported.
//
// # Instrument Text
//
// Instrument blocks mix two conventions:
//
//	Beam Current = 80 uA     explicit separator ("=" preferred, then ":")
//	AP_WD                    identifier line ...
//	10.2 mm                  ... followed by its value
//
// A trailing identifier with no value line is stored as Unknown_<n> by
// default. Use WithFinalLinePolicy(FinalLineDiscard) to drop it instead.
// Repeated keys keep the last value.
//
// # Advanced Usage
//
// Extract from an image you opened yourself:
//
//	img, err := semmeta.Open("sample.tif")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer img.Close()
//	res, err := semmeta.Extract(img, "sample.tif")
//
// Process many images concurrently:
//
//	for _, r := range semmeta.ExtractMany(ctx, paths, semmeta.WithConcurrency(4)) {
//		if r.Err != nil {
//			log.Printf("%s: %v", r.Path, r.Err)
//		}
//	}
//
// Flatten both records into one namespace (instrument keys win):
//
//	flat := semmeta.Flatten(res.Metadata)
//
// # Error Handling
//
// semmeta distinguishes between fatal errors and warnings:
//
//   - Fatal errors mean the image could not be read (*ImageUnreadableError)
//   - Warnings describe data problems that extraction worked around:
//     WarnTagAbsent, WarnDecodeDegraded and WarnMalformedLine
//
// Check Result.Warnings and branch on Warning.Code:
//
//	for _, w := range res.Warnings {
//		if w.Code == semmeta.WarnTagAbsent {
//			log.Printf("%s has no instrument block", res.Metadata.FileName)
//		}
//	}
//
// WithStrictParsing turns any warning into an error.
package semmeta
