package cgminfo

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
	"github.com/tsawler/cgminfo/format"
	"github.com/tsawler/cgminfo/internal/filters"
)

// Metafile provides a fluent interface for decoding a CGM file or stream.
// Each configuration method returns a new Metafile instance, so a
// configured Metafile can be shared and extended safely.
type Metafile struct {
	// Source
	filename    string
	src         io.Reader
	compression filters.Filter

	// Lifecycle
	file    *os.File      // set while a file opened by Open is in use
	decoder io.ReadCloser // decompressor over file

	// Configuration
	options ReadOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Metafile with a copy of options.
func (m *Metafile) clone() *Metafile {
	return &Metafile{
		filename:    m.filename,
		src:         m.src,
		compression: m.compression,
		options:     m.options.clone(),
		err:         m.err,
	}
}

// ============================================================================
// Configuration Methods (return new Metafile instance)
// ============================================================================

// Encoding selects the encoding of the input. It overrides the encoding
// derived from the file extension.
//
// Example:
//
//	cmds, err := cgminfo.Open("drawing.dat").Encoding(format.Text).Commands()
func (m *Metafile) Encoding(enc format.Encoding) *Metafile {
	newMeta := m.clone()
	newMeta.options.encoding = enc
	return newMeta
}

// Logger sets the logger the reader reports unsupported elements and
// descriptor changes to, at debug level.
//
// Example:
//
//	cmds, err := cgminfo.Open("drawing.cgm").Logger(slog.Default()).Commands()
func (m *Metafile) Logger(logger *slog.Logger) *Metafile {
	newMeta := m.clone()
	newMeta.options.logger = logger
	return newMeta
}

// open returns the input stream, opening the file if needed.
func (m *Metafile) open() (io.Reader, error) {
	if m.src != nil {
		return m.src, nil
	}
	if m.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}
	f, err := os.Open(m.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open metafile: %w", err)
	}
	decoder, err := filters.NewReader(f, m.compression)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open metafile: %w", err)
	}
	m.file = f
	m.decoder = decoder
	return decoder, nil
}

// Close releases the file opened by a terminal operation.
// It is safe to call Close multiple times.
func (m *Metafile) Close() error {
	if m.file == nil {
		return nil
	}
	var err error
	if m.decoder != nil {
		err = m.decoder.Close()
		m.decoder = nil
	}
	if cerr := m.file.Close(); err == nil {
		err = cerr
	}
	m.file = nil
	return err
}

// Reader opens the input and returns a reader over it. Unlike the terminal
// operations it leaves the file open; call Close when done.
//
// Example:
//
//	m := cgminfo.Open("drawing.cgm")
//	defer m.Close()
//	r, err := m.Reader()
func (m *Metafile) Reader() (CommandReader, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.options.encoding == format.Unknown {
		return nil, fmt.Errorf("no encoding selected for %q", m.name())
	}
	src, err := m.open()
	if err != nil {
		return nil, err
	}
	r, err := NewReader(src, m.options.encoding, m.options.logger)
	if err != nil {
		m.Close()
		return nil, err
	}
	return r, nil
}

// name identifies the input in error messages.
func (m *Metafile) name() string {
	if m.filename != "" {
		return m.filename
	}
	return "stream"
}

// ============================================================================
// Terminal Operations (decode the input and close it)
// ============================================================================

// Commands decodes the whole input and returns its commands in stream
// order. This is a terminal operation that closes the underlying file.
//
// On a decode error the commands read so far are returned together with
// the error.
//
// Example:
//
//	cmds, err := cgminfo.Open("drawing.cgm").Commands()
func (m *Metafile) Commands() ([]commands.Command, error) {
	r, err := m.Reader()
	if err != nil {
		return nil, err
	}
	defer m.Close()

	var out []commands.Command
	for {
		cmd, err := r.ReadCommand()
		if err != nil {
			return out, fmt.Errorf("%s: %w", m.name(), err)
		}
		if cmd == nil {
			return out, nil
		}
		out = append(out, cmd)
	}
}

// Walk decodes the input and dispatches each command to v with ctx as it
// is read. This is a terminal operation that closes the underlying file.
//
// Example:
//
//	err := cgminfo.Open("drawing.cgm").Walk(printer, nil)
func (m *Metafile) Walk(v commands.Visitor, ctx any) error {
	r, err := m.Reader()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := Walk(r, v, ctx); err != nil {
		return fmt.Errorf("%s: %w", m.name(), err)
	}
	return nil
}

// Descriptor decodes the whole input and returns the decode state after
// the last command, which reflects the last declaration of every
// precision and mode. This is a terminal operation that closes the
// underlying file.
//
// Example:
//
//	d, err := cgminfo.Open("drawing.cgm").Descriptor()
//	fmt.Println(d.VdcType)
func (m *Metafile) Descriptor() (core.Descriptor, error) {
	r, err := m.Reader()
	if err != nil {
		return core.Descriptor{}, err
	}
	defer m.Close()

	if err := Walk(r, commands.NopVisitor{}, nil); err != nil {
		return r.Descriptor(), fmt.Errorf("%s: %w", m.name(), err)
	}
	return r.Descriptor(), nil
}
