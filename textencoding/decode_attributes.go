package textencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Attribute elements (ISO/IEC 8632-4 7.6)

// indexParam returns a decoder for elements with a single index parameter
func indexParam(build func(int) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readIndex()
		if err != nil {
			return nil, err
		}
		return build(v), nil
	}
}

// colorParam returns a decoder for elements with a single colour parameter
func colorParam(build func(core.Color) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		c, err := r.readColor()
		if err != nil {
			return nil, err
		}
		return build(c), nil
	}
}

// realParam returns a decoder for elements with a single real parameter
func realParam(build func(float64) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		v, err := r.readReal()
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

func readTextPrecision(r *Reader) (commands.Command, error) {
	p, err := readEnumValue(r, textPrecisionKeywords, commands.PrecisionString)
	if err != nil {
		return nil, err
	}
	return &commands.TextPrecision{Precision: p}, nil
}

func readCharacterHeight(r *Reader) (commands.Command, error) {
	h, err := r.readVdc()
	if err != nil {
		return nil, err
	}
	return &commands.CharacterHeight{Height: h}, nil
}

func readCharacterOrientation(r *Reader) (commands.Command, error) {
	up, base, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.CharacterOrientation{Up: up, Base: base}, nil
}

func readTextPath(r *Reader) (commands.Command, error) {
	p, err := readEnumValue(r, textPathKeywords, commands.PathRight)
	if err != nil {
		return nil, err
	}
	return &commands.TextPath{Path: p}, nil
}

func readTextAlignment(r *Reader) (commands.Command, error) {
	horizontal, err := readEnumValue(r, horizontalAlignmentKeywords, commands.HorizontalNormal)
	if err != nil {
		return nil, err
	}
	vertical, err := readEnumValue(r, verticalAlignmentKeywords, commands.VerticalNormal)
	if err != nil {
		return nil, err
	}
	ch, err := r.readReal()
	if err != nil {
		return nil, err
	}
	cv, err := r.readReal()
	if err != nil {
		return nil, err
	}
	return &commands.TextAlignment{Horizontal: horizontal, Vertical: vertical, ContinuousHorizontal: ch, ContinuousVertical: cv}, nil
}

func readInteriorStyle(r *Reader) (commands.Command, error) {
	s, err := readEnumValue(r, interiorStyleKeywords, commands.StyleHollow)
	if err != nil {
		return nil, err
	}
	return &commands.InteriorStyle{Style: s}, nil
}

func readEdgeVisibility(r *Reader) (commands.Command, error) {
	v, err := readEnumValue(r, onOffKeywords, commands.Off)
	if err != nil {
		return nil, err
	}
	return &commands.EdgeVisibility{Visibility: v}, nil
}

func readFillReferencePoint(r *Reader) (commands.Command, error) {
	p, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	return &commands.FillReferencePoint{Point: p}, nil
}

func readPatternTable(r *Reader) (commands.Command, error) {
	v, err := r.readIntegers(4)
	if err != nil {
		return nil, err
	}
	colors, err := r.readColors(r.readColor)
	if err != nil {
		return nil, err
	}
	return &commands.PatternTable{Index: v[0], NX: v[1], NY: v[2], LocalColorPrecision: v[3], Colors: colors}, nil
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

func readColorTable(r *Reader) (commands.Command, error) {
	start, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	colors, err := r.readColors(r.readDirectColor)
	if err != nil {
		return nil, err
	}
	return &commands.ColorTable{StartIndex: start, Colors: colors}, nil
}

func readLineCap(r *Reader) (commands.Command, error) {
	v, err := r.readIntegers(2)
	if err != nil {
		return nil, err
	}
	return &commands.LineCap{LineCapIndicator: v[0], DashCapIndicator: v[1]}, nil
}

func readEdgeCap(r *Reader) (commands.Command, error) {
	v, err := r.readIntegers(2)
	if err != nil {
		return nil, err
	}
	return &commands.EdgeCap{EdgeCapIndicator: v[0], DashCapIndicator: v[1]}, nil
}
