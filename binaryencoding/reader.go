package binaryencoding

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Header field layout of ISO/IEC 8632-3 5.4
const (
	classShift  = 12
	idShift     = 5
	idMask      = 0x7F
	lengthMask  = 0x1F
	longForm    = 31
	continueBit = 0x8000
	partMask    = 0x7FFF
)

// Option configures a Reader
type Option func(*Reader)

// WithLogger sets the logger for unsupported elements and descriptor
// changes. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Reader decodes binary encoded metafiles (ISO/IEC 8632-3) one element at
// a time.
type Reader struct {
	src        *bufio.Reader
	offset     int64
	descriptor *core.Descriptor
	logger     *slog.Logger

	// parameter data of the element being decoded
	buf         []byte
	pos         int
	bit         int
	paramOffset int64

	err error
}

// NewReader creates a reader over r with a default Descriptor
func NewReader(r io.Reader, opts ...Option) *Reader {
	reader := &Reader{
		src:        bufio.NewReader(r),
		descriptor: core.NewDescriptor(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(reader)
	}
	return reader
}

// Descriptor returns a copy of the current decode state
func (r *Reader) Descriptor() core.Descriptor {
	return *r.descriptor
}

// ReadCommand returns the next element, or nil and a nil error once the
// input is exhausted. After a failure every call returns the same error.
func (r *Reader) ReadCommand() (commands.Command, error) {
	if r.err != nil {
		return nil, r.err
	}
	cmd, err := r.next()
	if err != nil {
		r.err = err
		return nil, err
	}
	return cmd, nil
}

// next decodes one element. It returns nil, nil at the end of the input.
func (r *Reader) next() (commands.Command, error) {
	for {
		start := r.offset
		el, params, err := r.readElement()
		if err == io.EOF {
			return nil, nil
		}
		if err != nil {
			var name string
			if r.offset-start >= 2 {
				name = el.String()
			}
			return nil, &core.CommandError{Offset: start, Element: name, Err: err}
		}

		// no-op element
		if el.Class == 0 && el.ID == 0 {
			continue
		}

		decode, ok := commandTable[el]
		if !ok {
			r.logger.Debug("unsupported element", "class", el.Class, "id", el.ID, "offset", start)
			return commands.NewUnsupportedBinary(el.Class, el.ID, params), nil
		}

		r.buf, r.pos, r.bit = params, 0, 0
		cmd, err := decode(r)
		if err != nil {
			var cmdErr *core.CommandError
			if errors.As(err, &cmdErr) {
				return nil, err
			}
			return nil, &core.CommandError{Offset: start, Element: el.String(), Err: err}
		}
		return cmd, nil
	}
}

// readElement reads one element header and its parameter data, joining
// the partitions of long form elements and dropping the padding byte. It
// returns io.EOF only when the input ends exactly before a header.
func (r *Reader) readElement() (commands.Element, []byte, error) {
	header, err := r.readWord()
	if err != nil {
		if err == io.EOF {
			return commands.Element{}, nil, io.EOF
		}
		return commands.Element{}, nil, core.ErrUnexpectedEndOfData
	}
	el := commands.Element{
		Class: int(header >> classShift),
		ID:    int(header>>idShift) & idMask,
	}

	length := int(header & lengthMask)
	if length != longForm {
		r.paramOffset = r.offset
		data, err := r.readPartition(length)
		return el, data, err
	}

	var data []byte
	for first := true; ; first = false {
		word, err := r.readWord()
		if err != nil {
			return el, nil, core.ErrUnexpectedEndOfData
		}
		if first {
			r.paramOffset = r.offset
		}
		part, err := r.readPartition(int(word & partMask))
		if err != nil {
			return el, nil, err
		}
		data = append(data, part...)
		if word&continueBit == 0 {
			return el, data, nil
		}
	}
}

// readPartition reads n bytes of parameter data and the padding byte that
// follows an odd count
func (r *Reader) readPartition(n int) ([]byte, error) {
	padded := n + n%2
	data := make([]byte, padded)
	read, err := io.ReadFull(r.src, data)
	r.offset += int64(read)
	if err != nil {
		return nil, core.ErrUnexpectedEndOfData
	}
	return data[:n], nil
}

// readWord reads a big-endian 16-bit word from the input. A clean end of
// input is io.EOF; a single trailing byte is io.ErrUnexpectedEOF.
func (r *Reader) readWord() (uint16, error) {
	var b [2]byte
	n, err := io.ReadFull(r.src, b[:])
	r.offset += int64(n)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

// subReader decodes nested elements from data with the same descriptor.
// base is the absolute offset of data, so nested errors report positions
// in the whole input.
func (r *Reader) subReader(data []byte, base int64) *Reader {
	return &Reader{
		src:        bufio.NewReader(bytes.NewReader(data)),
		offset:     base,
		descriptor: r.descriptor,
		logger:     r.logger,
	}
}

// setDescriptor applies a descriptor change and logs it
func (r *Reader) setDescriptor(field string, value any, apply func(d *core.Descriptor)) {
	apply(r.descriptor)
	r.logger.Debug("descriptor changed", "field", field, "value", value)
}

// checkPrecision returns an UnsupportedConfigurationError unless bits is
// one of widths
func checkPrecision(setting string, bits int, widths []int) error {
	for _, w := range widths {
		if bits == w {
			return nil
		}
	}
	return &core.UnsupportedConfigurationError{Setting: setting, Value: fmt.Sprintf("%d bits", bits)}
}
