package binaryencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Attribute elements (ISO/IEC 8632-3 8.7)

func indexParam(build func(int) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readIndex()
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

func colorParam(build func(core.Color) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		c, err := r.readColor()
		if err != nil {
			return nil, err
		}
		return build(c), nil
	}
}

func realParam(build func(float64) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readReal()
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

func vdcParam(build func(float64) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readVdc()
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

// sizeParam returns a decoder for a size specification governed by mode
func sizeParam(mode func(*core.Descriptor) core.SpecificationMode, build func(float64) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readSizeSpecification(mode(r.descriptor))
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

func lineWidthMode(d *core.Descriptor) core.SpecificationMode  { return d.LineWidthSpecificationMode }
func markerSizeMode(d *core.Descriptor) core.SpecificationMode { return d.MarkerSizeSpecificationMode }
func edgeWidthMode(d *core.Descriptor) core.SpecificationMode  { return d.EdgeWidthSpecificationMode }

func readCharacterOrientation(r *Reader) (commands.Command, error) {
	up, base, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.CharacterOrientation{Up: up, Base: base}, nil
}

func readTextAlignment(r *Reader) (commands.Command, error) {
	horizontal, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	vertical, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	continuous, err := r.readReals(2)
	if err != nil {
		return nil, err
	}
	return &commands.TextAlignment{
		Horizontal:           commands.HorizontalAlignment(horizontal),
		Vertical:             commands.VerticalAlignment(vertical),
		ContinuousHorizontal: continuous[0],
		ContinuousVertical:   continuous[1],
	}, nil
}

func readFillReferencePoint(r *Reader) (commands.Command, error) {
	p, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	return &commands.FillReferencePoint{Point: p}, nil
}

// readPatternTable reads the index, dimensions and local colour precision
// followed by nx*ny packed colours
func readPatternTable(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	dims, err := r.readIntegers(3)
	if err != nil {
		return nil, err
	}
	nx, ny, lcp := dims[0], dims[1], dims[2]
	bits := r.localColorPrecision(lcp)
	if err := r.checkCellCount(nx, ny, bits, true); err != nil {
		return nil, err
	}
	colors := make([]core.Color, 0, nx*ny)
	for i := 0; i < nx*ny; i++ {
		c, err := r.readColorBits(bits)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return &commands.PatternTable{Index: index, NX: nx, NY: ny, LocalColorPrecision: lcp, Colors: colors}, nil
}

func readPatternSize(r *Reader) (commands.Command, error) {
	mode := r.descriptor.InteriorStyleSpecificationMode
	var v [4]float64
	for i := range v {
		f, err := r.readSizeSpecification(mode)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return &commands.PatternSize{Height: core.Point{X: v[0], Y: v[1]}, Width: core.Point{X: v[2], Y: v[3]}}, nil
}

// readColorTable reads the starting colour index and direct colours up to
// the end of the parameter data. Colours are packed when the colour
// precision is below 8 bits.
func readColorTable(r *Reader) (commands.Command, error) {
	start, err := r.readColorIndex()
	if err != nil {
		return nil, err
	}
	bits := r.descriptor.ColorPrecision
	count := 3
	if r.descriptor.ColorModel == core.ColorModelCMYK {
		count = 4
	}
	var colors []core.Color
	// stop before trailing padding bits that cannot hold a whole colour
	for r.remainingBits() >= bits*count {
		c, err := r.readDirectColorBits(bits)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return &commands.ColorTable{StartIndex: start, Colors: colors}, nil
}

func readLineCap(r *Reader) (commands.Command, error) {
	lineCap, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	dashCap, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	return &commands.LineCap{LineCapIndicator: lineCap, DashCapIndicator: dashCap}, nil
}

func readEdgeCap(r *Reader) (commands.Command, error) {
	edgeCap, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	dashCap, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	return &commands.EdgeCap{EdgeCapIndicator: edgeCap, DashCapIndicator: dashCap}, nil
}
