package semmeta_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/semtools/semmeta"
	"github.com/semtools/semmeta/internal/binary"
	"github.com/semtools/semmeta/internal/testsupport"
)

const feiText = "AP_WD\r\n10.2 mm\r\nBeam Current = 80 uA;\r\n\r\nAP_MAG\x00\r\n"

func TestExtractFile_SEMImage(t *testing.T) {
	path := testsupport.WriteTemp(t, "sem*.tif", testsupport.SEMImage(feiText))

	res, err := semmeta.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}

	md := res.Metadata
	if md.FileName != filepath.Base(path) {
		t.Errorf("FileName = %q, want %q", md.FileName, filepath.Base(path))
	}

	wantInstrument := [][2]string{
		{"AP_WD", "10.2 mm"},
		{"Beam Current", "80 uA"},
		{"Unknown_1", "AP_MAG"},
	}
	keys := md.Instrument.Keys()
	if len(keys) != len(wantInstrument) {
		t.Fatalf("instrument keys = %v", keys)
	}
	for i, kv := range wantInstrument {
		got, _ := md.Instrument.Get(kv[0])
		if keys[i] != kv[0] || got != kv[1] {
			t.Errorf("entry %d = %s:%q, want %s:%q", i, keys[i], got, kv[0], kv[1])
		}
	}

	exifChecks := map[string]any{
		"ImageWidth":     int64(1024),
		"ImageLength":    int64(768),
		"BitsPerSample":  int64(8),
		"Make":           "FEI Company",
		"Model":          "Quanta 250",
		"XResolution":    semmeta.Rational{Num: 72, Den: 1},
		"ResolutionUnit": int64(2),
		"Artist":         nil,
	}
	for name, want := range exifChecks {
		got, ok := md.EXIF.Get(name)
		if !ok {
			t.Errorf("EXIF %s missing", name)
			continue
		}
		if got != want {
			t.Errorf("EXIF %s = %#v, want %#v", name, got, want)
		}
	}
	if md.EXIF.Has("ColorMap") {
		t.Error("ColorMap must never be reported")
	}

	if len(res.Warnings) != 1 || res.Warnings[0].Code != semmeta.WarnMalformedLine {
		t.Errorf("expected one malformed_line warning, got %v", res.Warnings)
	}
}

func TestExtractFile_JSONShape(t *testing.T) {
	path := testsupport.WriteTemp(t, "sem*.tif", testsupport.SEMImage("AP_WD = 10.2 mm"))

	res, err := semmeta.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}

	data, err := json.Marshal(res.Metadata)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	doc := string(data)

	for _, want := range []string{
		`{"FileName":"` + filepath.Base(path) + `","EXIF_Metadata":{"ImageWidth":1024,`,
		`"XResolution":72,`,
		`"Artist":null`,
		`"Instrument_Metadata":{"AP_WD":"10.2 mm"}}`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("JSON missing %s\n%s", want, doc)
		}
	}

	// Found tags come before every absent tag.
	if strings.Index(doc, `"ResolutionUnit":2`) > strings.Index(doc, `:null`) {
		t.Error("found entries should precede missing entries")
	}

	var back semmeta.MergedMetadata
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.EXIF.Len() != res.Metadata.EXIF.Len() {
		t.Errorf("round trip EXIF len = %d, want %d", back.EXIF.Len(), res.Metadata.EXIF.Len())
	}
}

func TestExtractFile_Options(t *testing.T) {
	path := testsupport.WriteTemp(t, "sem*.tif", testsupport.SEMImage("A=1\nTrailing"))

	tests := []struct {
		name         string
		opts         []semmeta.Option
		wantErr      bool
		wantKeys     []string
		wantWarnings int
	}{
		{
			name:         "defaults synthesize",
			wantKeys:     []string{"A", "Unknown_1"},
			wantWarnings: 1,
		},
		{
			name:         "discard",
			opts:         []semmeta.Option{semmeta.WithFinalLinePolicy(semmeta.FinalLineDiscard)},
			wantKeys:     []string{"A"},
			wantWarnings: 1,
		},
		{
			name:     "ignore warnings",
			opts:     []semmeta.Option{semmeta.WithIgnoreWarnings()},
			wantKeys: []string{"A", "Unknown_1"},
		},
		{
			name:    "strict",
			opts:    []semmeta.Option{semmeta.WithStrictParsing()},
			wantErr: true,
		},
		{
			name:         "other instrument tag",
			opts:         []semmeta.Option{semmeta.WithInstrumentTag(271)},
			wantKeys:     []string{"Unknown_1"},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := semmeta.ExtractFile(path, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractFile failed: %v", err)
			}
			keys := res.Metadata.Instrument.Keys()
			if strings.Join(keys, ",") != strings.Join(tt.wantKeys, ",") {
				t.Errorf("keys = %v, want %v", keys, tt.wantKeys)
			}
			if len(res.Warnings) != tt.wantWarnings {
				t.Errorf("warnings = %v, want %d", res.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestExtractFile_TextEncoding(t *testing.T) {
	data := testsupport.Build(binary.LittleEndian,
		testsupport.ASCII(testsupport.InstrumentTag, "Chamber=20\xb0C"),
	)
	path := testsupport.WriteTemp(t, "sem*.tif", data)

	res, err := semmeta.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if got, _ := res.Metadata.Instrument.Get("Chamber"); got != "20�C" {
		t.Errorf("utf-8 decode = %q", got)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != semmeta.WarnDecodeDegraded {
		t.Errorf("expected decode_degraded warning, got %v", res.Warnings)
	}

	res, err = semmeta.ExtractFile(path, semmeta.WithTextEncoding("windows-1252"))
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if got, _ := res.Metadata.Instrument.Get("Chamber"); got != "20°C" {
		t.Errorf("windows-1252 decode = %q", got)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestExtractFile_NoInstrumentTag(t *testing.T) {
	data := testsupport.Build(binary.BigEndian, testsupport.Long(256, 640))
	path := testsupport.WriteTemp(t, "plain*.tif", data)

	res, err := semmeta.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if res.Metadata.Instrument.Len() != 0 {
		t.Errorf("expected empty instrument record, got %v", res.Metadata.Instrument.Keys())
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Code != semmeta.WarnTagAbsent {
		t.Errorf("expected tag_absent warning, got %v", res.Warnings)
	}
}

func TestOpen_Unreadable(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		as   func(error) bool
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.tif") },
			as:   func(err error) bool { return errors.Is(err, os.ErrNotExist) },
		},
		{
			name: "not a tiff",
			path: func(t *testing.T) string {
				return testsupport.WriteTemp(t, "test*.xyz", []byte("this is not an image file"))
			},
			as: func(err error) bool {
				var u *semmeta.UnsupportedFormatError
				return errors.As(err, &u)
			},
		},
		{
			name: "bigtiff has no decoder",
			path: func(t *testing.T) string {
				return testsupport.WriteTemp(t, "big*.tif", []byte("II+\x00\x08\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00"))
			},
			as: func(err error) bool {
				var u *semmeta.UnsupportedFormatError
				return errors.As(err, &u)
			},
		},
		{
			name: "corrupt directory",
			path: func(t *testing.T) string {
				return testsupport.WriteTemp(t, "bad*.tif", []byte("MM\x00\x2a\x00\x00\x00\x08\x00\x05\x01"))
			},
			as: func(err error) bool {
				var c *semmeta.CorruptedFileError
				return errors.As(err, &c)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := semmeta.Open(tt.path(t))
			var unreadable *semmeta.ImageUnreadableError
			if !errors.As(err, &unreadable) {
				t.Fatalf("expected ImageUnreadableError, got %v", err)
			}
			if !tt.as(err) {
				t.Errorf("unexpected cause: %v", err)
			}
		})
	}
}

type staticSource semmeta.TagSet

func (s staticSource) Tags() semmeta.TagSet { return semmeta.TagSet(s) }

func TestExtract_CustomSource(t *testing.T) {
	src := staticSource{
		272:   semmeta.Text("Sigma"),
		320:   semmeta.Values{int64(0), int64(65535)},
		34118: semmeta.WrappedBytes{Data: []byte("WD = 10mm\x00\r\n\r\nBeam = 5kV\x00")},
	}

	res, err := semmeta.Extract(src, "custom.tif")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if got, _ := res.Metadata.EXIF.Get("Model"); got != "Sigma" {
		t.Errorf("Model = %v", got)
	}
	if res.Metadata.EXIF.Has("ColorMap") {
		t.Error("ColorMap must be excluded")
	}
	if got, _ := res.Metadata.Instrument.Get("Beam"); got != "5kV" {
		t.Errorf("Beam = %q", got)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestExtract_NilSource(t *testing.T) {
	_, err := semmeta.Extract(nil, "none.tif")
	if !errors.Is(err, semmeta.ErrNoImage) {
		t.Errorf("expected ErrNoImage, got %v", err)
	}
}

func TestExtract_TypedNilImage(t *testing.T) {
	var img *semmeta.Image
	if img.Tags() != nil {
		t.Error("nil image should have no tags")
	}

	_, err := semmeta.Extract(img, "none.tif")
	if !errors.Is(err, semmeta.ErrNoImage) {
		t.Errorf("expected ErrNoImage, got %v", err)
	}
}

func TestExtractFile_NonFiniteFloat(t *testing.T) {
	data := testsupport.Build(binary.LittleEndian,
		testsupport.Long(256, 1024),
		testsupport.Double(282, math.NaN()),
		testsupport.Double(283, math.Inf(1)),
		testsupport.ASCII(testsupport.InstrumentTag, "AP_WD=10 mm"),
	)
	path := testsupport.WriteTemp(t, "sem*.tif", data)

	res, err := semmeta.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	for _, name := range []string{"XResolution", "YResolution"} {
		if got, ok := res.Metadata.EXIF.Get(name); !ok || got != nil {
			t.Errorf("EXIF %s = %#v, want nil", name, got)
		}
	}
	if _, err := json.Marshal(res.Metadata); err != nil {
		t.Errorf("json.Marshal failed: %v", err)
	}
}

func TestExtractFile_AtypicalEntries(t *testing.T) {
	data := testsupport.Build(binary.LittleEndian,
		testsupport.ASCII(271, "FEI Company"),
		testsupport.Empty(315, testsupport.TypeASCII),
		testsupport.IFD(34665, 0),
		testsupport.ASCII(testsupport.InstrumentTag, "AP_WD=10 mm"),
	)
	path := testsupport.WriteTemp(t, "sem*.tif", testsupport.LoopBack(binary.LittleEndian, data))

	res, err := semmeta.ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile failed: %v", err)
	}
	if got, _ := res.Metadata.Instrument.Get("AP_WD"); got != "10 mm" {
		t.Errorf("AP_WD = %q", got)
	}
	if got, _ := res.Metadata.EXIF.Get("Make"); got != "FEI Company" {
		t.Errorf("Make = %#v", got)
	}
	degraded := 0
	for _, w := range res.Warnings {
		if w.Code == semmeta.WarnDecodeDegraded {
			degraded++
		}
	}
	if degraded != 1 {
		t.Errorf("expected one decode_degraded warning, got %v", res.Warnings)
	}
}

func TestExtract_Deterministic(t *testing.T) {
	img, err := semmeta.Open(testsupport.WriteTemp(t, "sem*.tif", testsupport.SEMImage(feiText)))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer img.Close()

	var first []byte
	for i := range 3 {
		res, err := semmeta.Extract(img, "sem.tif")
		if err != nil {
			t.Fatalf("Extract failed: %v", err)
		}
		data, err := json.Marshal(res.Metadata)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if i == 0 {
			first = data
		} else if !bytes.Equal(first, data) {
			t.Fatalf("run %d differs:\n%s\n%s", i, first, data)
		}
	}
}

func TestFlatten_InstrumentPrecedence(t *testing.T) {
	src := staticSource{
		271:   semmeta.Text("FEI"),
		34118: semmeta.Bytes("Make=Thermo Fisher"),
	}
	res, err := semmeta.Extract(src, "x.tif")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	flat := semmeta.Flatten(res.Metadata)
	if got, _ := flat.Get("Make"); got != "Thermo Fisher" {
		t.Errorf("Make = %v, want instrument value", got)
	}
}

func TestGetVersionInfo(t *testing.T) {
	info := semmeta.GetVersionInfo()
	if info.Version != semmeta.Version {
		t.Errorf("Version = %q, want %q", info.Version, semmeta.Version)
	}
	if info.GoVersion == "" || info.GitCommit == "" {
		t.Errorf("incomplete version info: %+v", info)
	}
	if !strings.HasPrefix(info.String(), "semmeta "+semmeta.Version) {
		t.Errorf("String() = %q", info.String())
	}
}
