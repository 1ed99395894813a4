// Command semmeta extracts EXIF and instrument metadata from SEM TIFF
// images, writes JSON sidecars, and keeps a searchable index of results.
//
// Usage:
//
//	semmeta extract image.tif [image2.tif ...]
//	semmeta show image.tif
//	semmeta index *.tif
//	semmeta query AP_WD
package main
