// Package cgminfo provides a fluent API for decoding Computer Graphics
// Metafiles (ISO/IEC 8632) in either the binary or the clear text encoding.
//
// Basic usage:
//
//	cmds, err := cgminfo.Open("drawing.cgm").Commands()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	err := cgminfo.Open("drawing.txt").
//	    Encoding(format.Text).
//	    Logger(logger).
//	    Walk(visitor, nil)
//
// For streaming use, the lower-level binaryencoding and textencoding
// readers are also available.
package cgminfo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/cgminfo/binaryencoding"
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
	"github.com/tsawler/cgminfo/format"
	"github.com/tsawler/cgminfo/internal/filters"
	"github.com/tsawler/cgminfo/textencoding"
)

// CommandReader is implemented by the readers of both encodings. ReadCommand
// returns nil and a nil error once the input is exhausted.
type CommandReader interface {
	ReadCommand() (commands.Command, error)
	Descriptor() core.Descriptor
}

// NewReader returns the reader for enc over r. A nil logger discards all
// log output.
func NewReader(r io.Reader, enc format.Encoding, logger *slog.Logger) (CommandReader, error) {
	switch enc {
	case format.Binary:
		return binaryencoding.NewReader(r, binaryencoding.WithLogger(logger)), nil
	case format.Text:
		return textencoding.NewReader(r, textencoding.WithLogger(logger)), nil
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", enc)
	}
}

// Walk reads every command from r and dispatches it to v with ctx. It stops
// at the end of the input or at the first decode error.
func Walk(r CommandReader, v commands.Visitor, ctx any) error {
	for {
		cmd, err := r.ReadCommand()
		if err != nil {
			return err
		}
		if cmd == nil {
			return nil
		}
		cmd.Accept(v, ctx)
	}
}

// Open returns a Metafile for fluent configuration. The encoding is taken
// from the file extension unless Encoding overrides it. A trailing .gz, .zst
// or .lz4 suffix selects decompression and the encoding comes from the
// name before it. The file is opened by the first terminal operation and
// closed when it returns.
//
// Example:
//
//	cmds, err := cgminfo.Open("drawing.cgm").Commands()
func Open(filename string) *Metafile {
	compression, inner := filters.Detect(filename)
	opts := defaultOptions()
	opts.encoding = format.Detect(inner)
	return &Metafile{
		filename:    filename,
		compression: compression,
		options:     opts,
	}
}

// FromReader returns a Metafile over an already-opened stream. The caller
// selects the encoding and remains responsible for closing r.
//
// Example:
//
//	cmds, err := cgminfo.FromReader(f).Encoding(format.Binary).Commands()
func FromReader(r io.Reader) *Metafile {
	return &Metafile{
		src:     r,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cmds := cgminfo.Must(cgminfo.Open("drawing.cgm").Commands())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
