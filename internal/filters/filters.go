package filters

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Filter is a compression wrapper around a metafile.
type Filter int

const (
	// None indicates an uncompressed metafile.
	None Filter = iota
	// Gzip indicates RFC 1952 gzip.
	Gzip
	// Zstd indicates a Zstandard frame.
	Zstd
	// LZ4 indicates an LZ4 frame.
	LZ4
)

// String returns the human-readable name of the filter.
func (f Filter) String() string {
	switch f {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Detect returns the filter named by the file name suffix and the name with
// that suffix removed.
func Detect(filename string) (Filter, string) {
	ext := filepath.Ext(filename)
	var f Filter
	switch strings.ToLower(ext) {
	case ".gz", ".gzip":
		f = Gzip
	case ".zst", ".zstd":
		f = Zstd
	case ".lz4":
		f = LZ4
	default:
		return None, filename
	}
	return f, strings.TrimSuffix(filename, ext)
}

// NewReader returns a reader of the decompressed stream. Closing it does
// not close r.
func NewReader(r io.Reader, f Filter) (io.ReadCloser, error) {
	switch f {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return zr, nil
	case Zstd:
		d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return d.IOReadCloser(), nil
	case LZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported compression %v", f)
	}
}
