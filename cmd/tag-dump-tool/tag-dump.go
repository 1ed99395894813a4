package main

import (
	"fmt"
	"os"

	"github.com/semtools/semmeta/internal/binary"
	"github.com/semtools/semmeta/internal/catalog"
	"github.com/semtools/semmeta/internal/instrument"
	"github.com/semtools/semmeta/internal/tiff"
	"github.com/semtools/semmeta/internal/types"
)

const (
	asciiType  = 2
	previewLen = 80
)

var typeNames = map[uint16]string{
	1:  "BYTE",
	2:  "ASCII",
	3:  "SHORT",
	4:  "LONG",
	5:  "RATIONAL",
	6:  "SBYTE",
	7:  "UNDEFINED",
	8:  "SSHORT",
	9:  "SLONG",
	10: "SRATIONAL",
	11: "FLOAT",
	12: "DOUBLE",
}

// Debug helper that lists every raw IFD entry of a TIFF file, including
// tags the metadata pipeline ignores.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tag-dump <file.tif>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	std := catalog.Standard()
	sr := binary.NewSafeReader(f, stat.Size(), os.Args[1])
	lastIFD := -1
	err = tiff.Walk(f, stat.Size(), os.Args[1], func(e tiff.RawEntry) error {
		if e.IFD != lastIFD {
			fmt.Printf("IFD %d\n", e.IFD)
			lastIFD = e.IFD
		}
		fmt.Printf("  %5d %-28s %-9s count: %-6d value/offset: %d (entry at %d)\n",
			e.Tag, tagName(std, e.Tag), typeName(e.Type), e.Count, e.ValueOffset, e.Offset)
		if e.Type == asciiType && e.Count > 4 {
			if preview, err := asciiPreview(sr, e); err == nil {
				fmt.Printf("        %q\n", preview)
			}
		}
		return nil
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func tagName(std *catalog.Catalog, tag uint16) string {
	if types.TagID(tag) == instrument.Tag {
		return "(instrument text)"
	}
	if name, ok := std.Name(types.TagID(tag)); ok {
		return name
	}
	return "?"
}

func typeName(t uint16) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", t)
}

// asciiPreview reads the start of an out-of-line ASCII value.
func asciiPreview(sr *binary.SafeReader, e tiff.RawEntry) (string, error) {
	r := binary.NewReader(sr, 0, e.Order)
	r.Seek(int64(e.ValueOffset))
	b, err := r.ReadBytes(int(min(e.Count, previewLen)), "ASCII value")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
