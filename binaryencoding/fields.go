package binaryencoding

import (
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/cgminfo/core"
)

// Parameter widths allowed by ISO/IEC 8632-3
var (
	integerWidths = []int{8, 16, 24, 32}
	colorWidths   = []int{1, 2, 4, 8, 16, 24, 32}
)

// hasMoreData reports whether any parameter data is left
func (r *Reader) hasMoreData() bool {
	return r.pos < len(r.buf)
}

// remainingBits is the amount of unread parameter data in bits
func (r *Reader) remainingBits() int {
	return (len(r.buf)-r.pos)*8 - r.bit
}

// align moves a partially consumed byte forward to the next byte boundary.
// Every field except packed colour values starts on a byte boundary.
func (r *Reader) align() {
	if r.bit != 0 {
		r.bit = 0
		r.pos++
	}
}

// alignWord moves forward to the next 16-bit boundary of the parameter data
func (r *Reader) alignWord() {
	r.align()
	if r.pos%2 != 0 && r.pos < len(r.buf) {
		r.pos++
	}
}

func (r *Reader) readByte() (byte, error) {
	r.align()
	if r.pos >= len(r.buf) {
		return 0, core.ErrUnexpectedEndOfData
	}
	b := r.buf[r.pos]
	r.pos++
	return b, nil
}

func (r *Reader) readBytes(n int) ([]byte, error) {
	r.align()
	if n < 0 || r.pos+n > len(r.buf) {
		return nil, core.ErrUnexpectedEndOfData
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// readUnsigned reads a byte-aligned big-endian unsigned value of bits width
func (r *Reader) readUnsigned(bits int) (uint32, error) {
	b, err := r.readBytes(bits / 8)
	if err != nil {
		return 0, err
	}
	var v uint32
	for _, c := range b {
		v = v<<8 | uint32(c)
	}
	return v, nil
}

// readSigned reads a byte-aligned big-endian two's complement value
func (r *Reader) readSigned(bits int) (int, error) {
	v, err := r.readUnsigned(bits)
	if err != nil {
		return 0, err
	}
	shift := 32 - bits
	return int(int32(v<<shift) >> shift), nil
}

// readBits reads an unaligned unsigned value, most significant bit first.
// Packed colour components below 8 bits are read this way.
func (r *Reader) readBits(bits int) (uint32, error) {
	if r.bit == 0 && bits%8 == 0 {
		return r.readUnsigned(bits)
	}
	var v uint32
	for i := 0; i < bits; i++ {
		if r.pos >= len(r.buf) {
			return 0, core.ErrUnexpectedEndOfData
		}
		b := (r.buf[r.pos] >> (7 - r.bit)) & 1
		v = v<<1 | uint32(b)
		r.bit++
		if r.bit == 8 {
			r.bit = 0
			r.pos++
		}
	}
	return v, nil
}

func (r *Reader) readSignedWidth(setting string, bits int) (int, error) {
	if err := checkPrecision(setting, bits, integerWidths); err != nil {
		return 0, err
	}
	return r.readSigned(bits)
}

func (r *Reader) readInteger() (int, error) {
	return r.readSignedWidth("INTEGER PRECISION", r.descriptor.IntegerPrecision)
}

func (r *Reader) readIndex() (int, error) {
	return r.readSignedWidth("INDEX PRECISION", r.descriptor.IndexPrecision)
}

func (r *Reader) readName() (int, error) {
	return r.readSignedWidth("NAME PRECISION", r.descriptor.NamePrecision)
}

// readEnum reads an enumeration, always a signed 16-bit value
func (r *Reader) readEnum() (int, error) {
	return r.readSigned(16)
}

// readColorIndexBits reads an unsigned colour index of the given width
func (r *Reader) readColorIndexBits(bits int) (int, error) {
	if err := checkPrecision("COLOUR INDEX PRECISION", bits, colorWidths); err != nil {
		return 0, err
	}
	v, err := r.readBits(bits)
	return int(v), err
}

func (r *Reader) readColorIndex() (int, error) {
	r.align()
	return r.readColorIndexBits(r.descriptor.ColorIndexPrecision)
}

// readComponent reads one direct colour component of the given width
func (r *Reader) readComponent(bits int) (int, error) {
	if err := checkPrecision("COLOUR PRECISION", bits, colorWidths); err != nil {
		return 0, err
	}
	v, err := r.readBits(bits)
	return int(v), err
}

// readRealWith reads a real in the given precision
func (r *Reader) readRealWith(p core.RealPrecision) (float64, error) {
	switch p {
	case core.Float32Precision:
		return r.readFloat32()
	case core.Float64Precision:
		v, err := r.readBytes(8)
		if err != nil {
			return 0, err
		}
		var bits uint64
		for _, c := range v {
			bits = bits<<8 | uint64(c)
		}
		return math.Float64frombits(bits), nil
	case core.Fixed32Precision:
		whole, err := r.readSigned(16)
		if err != nil {
			return 0, err
		}
		frac, err := r.readUnsigned(16)
		if err != nil {
			return 0, err
		}
		return float64(whole) + float64(frac)/(1<<16), nil
	case core.Fixed64Precision:
		whole, err := r.readSigned(32)
		if err != nil {
			return 0, err
		}
		frac, err := r.readUnsigned(32)
		if err != nil {
			return 0, err
		}
		return float64(whole) + float64(frac)/(1<<32), nil
	default:
		return 0, &core.UnsupportedConfigurationError{Setting: "REAL PRECISION", Value: p}
	}
}

func (r *Reader) readFloat32() (float64, error) {
	v, err := r.readUnsigned(32)
	if err != nil {
		return 0, err
	}
	return float64(math.Float32frombits(v)), nil
}

func (r *Reader) readReal() (float64, error) {
	return r.readRealWith(r.descriptor.RealPrecision)
}

// readVdc reads an integer or a real depending on VDC TYPE
func (r *Reader) readVdc() (float64, error) {
	if err := r.descriptor.CheckVdcType(); err != nil {
		return 0, err
	}
	if r.descriptor.VdcType == core.VdcInteger {
		n, err := r.readSignedWidth("VDC INTEGER PRECISION", r.descriptor.VdcIntegerPrecision)
		return float64(n), err
	}
	return r.readRealWith(r.descriptor.VdcRealPrecision)
}

// readSizeSpecification reads a VDC in absolute mode and a real otherwise
func (r *Reader) readSizeSpecification(mode core.SpecificationMode) (float64, error) {
	if core.SizeIsVdc(mode) {
		return r.readVdc()
	}
	return r.readReal()
}

func (r *Reader) readPoint() (core.Point, error) {
	x, err := r.readVdc()
	if err != nil {
		return core.Point{}, err
	}
	y, err := r.readVdc()
	if err != nil {
		return core.Point{}, err
	}
	return core.Point{X: x, Y: y}, nil
}

// readPoints reads points until the parameter data is exhausted
func (r *Reader) readPoints() ([]core.Point, error) {
	var points []core.Point
	for r.hasMoreData() {
		p, err := r.readPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

func (r *Reader) readViewportCoordinate() (float64, error) {
	isInteger, err := r.descriptor.ViewportIsInteger()
	if err != nil {
		return 0, err
	}
	if isInteger {
		n, err := r.readInteger()
		return float64(n), err
	}
	return r.readReal()
}

func (r *Reader) readViewportPoint() (core.Point, error) {
	x, err := r.readViewportCoordinate()
	if err != nil {
		return core.Point{}, err
	}
	y, err := r.readViewportCoordinate()
	if err != nil {
		return core.Point{}, err
	}
	return core.Point{X: x, Y: y}, nil
}

// readString reads a length prefixed ISO 8859-1 string. A length byte of
// 255 is followed by 16-bit partition words: bit 15 flags another
// partition, bits 14..0 hold the partition length.
func (r *Reader) readString() (string, error) {
	n, err := r.readByte()
	if err != nil {
		return "", err
	}
	if n < 255 {
		b, err := r.readBytes(int(n))
		if err != nil {
			return "", err
		}
		return decodeLatin1(b), nil
	}

	var data []byte
	for {
		word, err := r.readUnsigned(16)
		if err != nil {
			return "", err
		}
		b, err := r.readBytes(int(word & partMask))
		if err != nil {
			return "", err
		}
		data = append(data, b...)
		if word&continueBit == 0 {
			return decodeLatin1(data), nil
		}
	}
}

func decodeLatin1(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = charmap.ISO8859_1.DecodeByte(c)
	}
	return string(runes)
}

// readColor reads an indexed or direct colour depending on COLOUR
// SELECTION MODE
func (r *Reader) readColor() (core.Color, error) {
	if r.descriptor.ColorSelectionMode == core.ColorDirect {
		return r.readDirectColor()
	}
	return r.readIndexedColor()
}

func (r *Reader) readIndexedColor() (core.Color, error) {
	index, err := r.readColorIndex()
	if err != nil {
		return nil, err
	}
	return core.ColorIndex{Index: index}, nil
}

func (r *Reader) readDirectColor() (core.Color, error) {
	r.align()
	return r.readDirectColorBits(r.descriptor.ColorPrecision)
}

// readDirectColorBits reads the components of one direct colour in the
// current COLOUR MODEL without aligning first, so packed colour lists stay
// packed.
func (r *Reader) readDirectColorBits(bits int) (core.Color, error) {
	model := r.descriptor.ColorModel
	count := 3
	if model == core.ColorModelCMYK {
		count = 4
	}
	var c [4]int
	for i := 0; i < count; i++ {
		v, err := r.readComponent(bits)
		if err != nil {
			return nil, err
		}
		c[i] = v
	}
	switch model {
	case core.ColorModelRGB:
		return core.ColorRGB{R: c[0], G: c[1], B: c[2]}, nil
	case core.ColorModelCMYK:
		return core.ColorCMYK{C: c[0], M: c[1], Y: c[2], K: c[3]}, nil
	default:
		return core.ColorCIE{Model: model, First: float64(c[0]), Second: float64(c[1]), Third: float64(c[2])}, nil
	}
}

// readColorBits reads one colour of a packed list with an explicit
// precision for the current selection mode
func (r *Reader) readColorBits(bits int) (core.Color, error) {
	if r.descriptor.ColorSelectionMode == core.ColorDirect {
		return r.readDirectColorBits(bits)
	}
	index, err := r.readColorIndexBits(bits)
	if err != nil {
		return nil, err
	}
	return core.ColorIndex{Index: index}, nil
}

// localColorPrecision resolves a local colour precision of zero to the
// descriptor precision of the current selection mode
func (r *Reader) localColorPrecision(lcp int) int {
	if lcp != 0 {
		return lcp
	}
	if r.descriptor.ColorSelectionMode == core.ColorDirect {
		return r.descriptor.ColorPrecision
	}
	return r.descriptor.ColorIndexPrecision
}

// readIntegers reads n integers
func (r *Reader) readIntegers(n int) ([]int, error) {
	if n < 0 || n > len(r.buf) {
		return nil, core.ErrUnexpectedEndOfData
	}
	values := make([]int, n)
	for i := range values {
		v, err := r.readInteger()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// readReals reads n reals
func (r *Reader) readReals(n int) ([]float64, error) {
	if n < 0 || n > len(r.buf) {
		return nil, core.ErrUnexpectedEndOfData
	}
	values := make([]float64, n)
	for i := range values {
		v, err := r.readReal()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// readFinalFlag reads the FINAL/NOTFINAL enumeration of text elements
func (r *Reader) readFinalFlag() (bool, error) {
	v, err := r.readEnum()
	return v == 1, err
}
