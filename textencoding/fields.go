package textencoding

import (
	"strconv"
	"strings"

	"github.com/tsawler/cgminfo/core"
)

func (r *Reader) readToken() (Token, error) {
	if r.index >= len(r.tokens) {
		return Token{}, core.ErrUnexpectedEndOfData
	}
	tok := r.tokens[r.index]
	r.index++
	return tok, nil
}

// hasMoreData reports whether at least n parameter tokens are left
func (r *Reader) hasMoreData(n int) bool {
	return r.index+n <= len(r.tokens)
}

func (r *Reader) readString() (string, error) {
	tok, err := r.readToken()
	return tok.Value, err
}

// readEnum returns the upper cased enumeration keyword
func (r *Reader) readEnum() (string, error) {
	tok, err := r.readToken()
	return strings.ToUpper(tok.Value), err
}

func (r *Reader) readToEndOfElement() []string {
	var values []string
	for r.hasMoreData(1) {
		tok, _ := r.readToken()
		values = append(values, tok.Value)
	}
	return values
}

func (r *Reader) readInteger() (int, error) {
	tok, err := r.readToken()
	if err != nil {
		return 0, err
	}
	return ParseInteger(tok.Value)
}

func (r *Reader) readIndex() (int, error) { return r.readInteger() }
func (r *Reader) readName() (int, error)  { return r.readInteger() }

func (r *Reader) readReal() (float64, error) {
	tok, err := r.readToken()
	if err != nil {
		return 0, err
	}
	return ParseReal(tok.Value)
}

// readVdc reads an integer or a real depending on VDC TYPE
func (r *Reader) readVdc() (float64, error) {
	if err := r.descriptor.CheckVdcType(); err != nil {
		return 0, err
	}
	if r.descriptor.VdcType == core.VdcInteger {
		n, err := r.readInteger()
		return float64(n), err
	}
	return r.readReal()
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

// readPoints reads points until the parameters are exhausted
func (r *Reader) readPoints() ([]core.Point, error) {
	var points []core.Point
	for r.hasMoreData(1) {
		p, err := r.readPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// readIncrementalPoints reads an absolute start point followed by offsets
// from the previous point, and returns the absolute points.
func (r *Reader) readIncrementalPoints() ([]core.Point, error) {
	points, err := r.readPoints()
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(points); i++ {
		points[i] = points[i-1].Add(points[i])
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

// readColor reads an indexed or a direct colour depending on the colour
// selection mode
func (r *Reader) readColor() (core.Color, error) {
	if r.descriptor.ColorSelectionMode == core.ColorDirect {
		return r.readDirectColor()
	}
	return r.readIndexedColor()
}

func (r *Reader) readIndexedColor() (core.Color, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	return core.ColorIndex{Index: index}, nil
}

// readDirectColor reads three integers for RGB, four for CMYK and three
// reals for every other model.
func (r *Reader) readDirectColor() (core.Color, error) {
	switch model := r.descriptor.ColorModel; model {
	case core.ColorModelRGB:
		v, err := r.readIntegers(3)
		if err != nil {
			return nil, err
		}
		return core.ColorRGB{R: v[0], G: v[1], B: v[2]}, nil
	case core.ColorModelCMYK:
		v, err := r.readIntegers(4)
		if err != nil {
			return nil, err
		}
		return core.ColorCMYK{C: v[0], M: v[1], Y: v[2], K: v[3]}, nil
	default:
		var v [3]float64
		for i := range v {
			f, err := r.readReal()
			if err != nil {
				return nil, err
			}
			v[i] = f
		}
		return core.ColorCIE{Model: model, First: v[0], Second: v[1], Third: v[2]}, nil
	}
}

func (r *Reader) readIntegers(n int) ([]int, error) {
	if n < 0 {
		return nil, &core.RangeError{Kind: "Count", Input: strconv.Itoa(n), Reason: "negative"}
	}
	if !r.hasMoreData(n) {
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

// readColors reads colours until the parameters are exhausted
func (r *Reader) readColors(read func() (core.Color, error)) ([]core.Color, error) {
	var colors []core.Color
	for r.hasMoreData(1) {
		c, err := read()
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// readFinalFlag reads the FINAL/NOTFINAL flag of text elements
func (r *Reader) readFinalFlag() (bool, error) {
	e, err := r.readEnum()
	return e == "FINAL", err
}

// readEnumValue maps an enumeration keyword to its value. Unknown keywords
// map to fallback.
func readEnumValue[T any](r *Reader, values map[string]T, fallback T) (T, error) {
	e, err := r.readEnum()
	if err != nil {
		return fallback, err
	}
	if v, ok := values[e]; ok {
		return v, nil
	}
	return fallback, nil
}
