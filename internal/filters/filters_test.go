package filters

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		filename  string
		want      Filter
		wantInner string
	}{
		{"drawing.cgm", None, "drawing.cgm"},
		{"drawing.cgm.gz", Gzip, "drawing.cgm"},
		{"drawing.CGM.GZ", Gzip, "drawing.CGM"},
		{"drawing.cgmt.zst", Zstd, "drawing.cgmt"},
		{"drawing.cgm.lz4", LZ4, "drawing.cgm"},
		{"/a/b.gz/drawing.cgm", None, "/a/b.gz/drawing.cgm"},
		{"", None, ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, inner := Detect(tt.filename)
			if got != tt.want || inner != tt.wantInner {
				t.Errorf("Detect(%q) = %v, %q; want %v, %q", tt.filename, got, inner, tt.want, tt.wantInner)
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	tests := map[Filter]string{
		None:       "none",
		Gzip:       "gzip",
		Zstd:       "zstd",
		LZ4:        "lz4",
		Filter(42): "unknown(42)",
	}
	for f, want := range tests {
		if got := f.String(); got != want {
			t.Errorf("Filter(%d).String() = %q, want %q", int(f), got, want)
		}
	}
}

// compress produces test input with the matching writer
func compress(t *testing.T, f Filter, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch f {
	case Gzip:
		w = gzip.NewWriter(&buf)
	case Zstd:
		enc, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatal(err)
		}
		w = enc
	case LZ4:
		w = lz4.NewWriter(&buf)
	default:
		return data
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestNewReader(t *testing.T) {
	data := bytes.Repeat([]byte("BEGMF 'compressed'; ENDMF;\n"), 100)

	for _, f := range []Filter{None, Gzip, Zstd, LZ4} {
		t.Run(f.String(), func(t *testing.T) {
			rc, err := NewReader(bytes.NewReader(compress(t, f, data)), f)
			if err != nil {
				t.Fatal(err)
			}
			defer rc.Close()

			got, err := io.ReadAll(rc)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, data) {
				t.Errorf("decompressed %d bytes, want %d", len(got), len(data))
			}
		})
	}
}

func TestNewReaderErrors(t *testing.T) {
	if _, err := NewReader(bytes.NewReader([]byte("not gzip")), Gzip); err == nil {
		t.Error("gzip reader accepted bad header")
	}
	if _, err := NewReader(bytes.NewReader(nil), Filter(42)); err == nil {
		t.Error("unknown filter succeeded")
	}
}
