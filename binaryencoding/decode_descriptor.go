package binaryencoding

import (
	"strconv"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Metafile descriptor elements (ISO/IEC 8632-3 8.3)

func readMetafileVersion(r *Reader) (commands.Command, error) {
	v, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	return &commands.MetafileVersion{Version: v}, nil
}

func readMetafileDescription(r *Reader) (commands.Command, error) {
	s, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.MetafileDescription{Description: s}, nil
}

func readVdcType(r *Reader) (commands.Command, error) {
	v, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	t := core.VdcType(v)
	if t != core.VdcInteger && t != core.VdcReal {
		return nil, &core.UnsupportedConfigurationError{Setting: "VDC TYPE", Value: v}
	}
	r.setDescriptor("VdcType", t, func(d *core.Descriptor) { d.VdcType = t })
	return &commands.VdcType{Specification: t}, nil
}

// readPrecision reads a bit count and checks it against widths
func (r *Reader) readPrecision(setting string, widths []int) (int, error) {
	bits, err := r.readInteger()
	if err != nil {
		return 0, err
	}
	if err := checkPrecision(setting, bits, widths); err != nil {
		return 0, err
	}
	return bits, nil
}

func readIntegerPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readPrecision("INTEGER PRECISION", integerWidths)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("IntegerPrecision", bits, func(d *core.Descriptor) { d.IntegerPrecision = bits })
	return &commands.IntegerPrecision{Precision: bits}, nil
}

// readRealSpecification reads the form, exponent width and fraction width
// of REAL PRECISION and VDC REAL PRECISION. Only the four precisions of
// ISO/IEC 8632-3 are accepted.
func (r *Reader) readRealSpecification(setting string) (core.RealPrecision, error) {
	form, err := r.readEnum()
	if err != nil {
		return core.RealPrecision{}, err
	}
	exp, err := r.readInteger()
	if err != nil {
		return core.RealPrecision{}, err
	}
	frac, err := r.readInteger()
	if err != nil {
		return core.RealPrecision{}, err
	}
	p := core.RealPrecision{
		Representation: core.RealRepresentation(form),
		ExponentWidth:  exp,
		FractionWidth:  frac,
	}
	switch p {
	case core.Float32Precision, core.Float64Precision, core.Fixed32Precision, core.Fixed64Precision:
		return p, nil
	default:
		return core.RealPrecision{}, &core.UnsupportedConfigurationError{Setting: setting, Value: p}
	}
}

func readRealPrecision(r *Reader) (commands.Command, error) {
	p, err := r.readRealSpecification("REAL PRECISION")
	if err != nil {
		return nil, err
	}
	r.setDescriptor("RealPrecision", p, func(d *core.Descriptor) { d.RealPrecision = p })
	return &commands.RealPrecision{Specification: p}, nil
}

func readIndexPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readPrecision("INDEX PRECISION", integerWidths)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("IndexPrecision", bits, func(d *core.Descriptor) { d.IndexPrecision = bits })
	return &commands.IndexPrecision{Precision: bits}, nil
}

func readColorPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readPrecision("COLOUR PRECISION", colorWidths)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("ColorPrecision", bits, func(d *core.Descriptor) { d.ColorPrecision = bits })
	return &commands.ColorPrecision{Precision: bits}, nil
}

func readColorIndexPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readPrecision("COLOUR INDEX PRECISION", integerWidths)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("ColorIndexPrecision", bits, func(d *core.Descriptor) { d.ColorIndexPrecision = bits })
	return &commands.ColorIndexPrecision{Precision: bits}, nil
}

func readMaximumColorIndex(r *Reader) (commands.Command, error) {
	index, err := r.readColorIndex()
	if err != nil {
		return nil, err
	}
	return &commands.MaximumColorIndex{Index: index}, nil
}

// readColorValueExtent reads two direct colours for RGB and CMYK and three
// scale reals for the CIE based models. The values are not clamped.
func readColorValueExtent(r *Reader) (commands.Command, error) {
	model := r.descriptor.ColorModel
	switch {
	case model == core.ColorModelRGB || model == core.ColorModelCMYK:
		min, err := r.readDirectColor()
		if err != nil {
			return nil, err
		}
		max, err := r.readDirectColor()
		if err != nil {
			return nil, err
		}
		space := commands.ColorSpaceRGB
		if model == core.ColorModelCMYK {
			space = commands.ColorSpaceCMYK
		}
		return &commands.ColorValueExtent{ColorSpace: space, Minimum: min, Maximum: max}, nil
	case model.IsCIE():
		scale, err := r.readReals(3)
		if err != nil {
			return nil, err
		}
		return &commands.ColorValueExtent{
			ColorSpace:  commands.ColorSpaceCIE,
			FirstScale:  scale[0],
			SecondScale: scale[1],
			ThirdScale:  scale[2],
		}, nil
	default:
		return &commands.ColorValueExtent{ColorSpace: commands.ColorSpaceUnknown}, nil
	}
}

// Names of the element sets that MFELEMLIST may reference with class -1
var elementSetNames = map[int]string{
	0: "DRAWINGSET",
	1: "DRAWINGPLUS",
	2: "VERSION2",
	3: "EXTDPRIM",
	4: "VERSION2GKSM",
	5: "VERSION3",
	6: "VERSION4",
}

// readMetafileElementList reads (class, id) pairs and names them the way
// the clear text encoding does
func readMetafileElementList(r *Reader) (commands.Command, error) {
	n, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	var names []string
	for i := 0; i < n; i++ {
		class, err := r.readIndex()
		if err != nil {
			return nil, err
		}
		id, err := r.readIndex()
		if err != nil {
			return nil, err
		}
		names = append(names, elementListName(class, id))
	}
	return &commands.MetafileElementList{Elements: names}, nil
}

func elementListName(class, id int) string {
	if class == -1 {
		if name, ok := elementSetNames[id]; ok {
			return name
		}
	}
	el := commands.Element{Class: class, ID: id}
	if keyword, ok := commands.Keyword(el); ok {
		return keyword
	}
	return el.String()
}

// readMetafileDefaultsReplacement decodes the element records held in the
// parameter data with the same descriptor
func readMetafileDefaultsReplacement(r *Reader) (commands.Command, error) {
	sub := r.subReader(r.buf, r.paramOffset)
	var nested []commands.Command
	for {
		cmd, err := sub.next()
		if err != nil {
			return nil, err
		}
		if cmd == nil {
			break
		}
		nested = append(nested, cmd)
	}
	r.pos = len(r.buf)
	return &commands.MetafileDefaultsReplacement{Commands: nested}, nil
}

func readFontList(r *Reader) (commands.Command, error) {
	var fonts []string
	for r.hasMoreData() {
		s, err := r.readString()
		if err != nil {
			return nil, err
		}
		fonts = append(fonts, s)
	}
	return &commands.FontList{Fonts: fonts}, nil
}

func readCharacterSetList(r *Reader) (commands.Command, error) {
	var entries []commands.CharacterSetListEntry
	for r.hasMoreData() {
		typ, err := r.readEnum()
		if err != nil {
			return nil, err
		}
		designation, err := r.readString()
		if err != nil {
			return nil, err
		}
		entries = append(entries, commands.CharacterSetListEntry{
			Type:        commands.CharacterSetType(typ),
			Designation: designation,
		})
	}
	return &commands.CharacterSetList{Entries: entries}, nil
}

func readCharacterCodingAnnouncer(r *Reader) (commands.Command, error) {
	v, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	return &commands.CharacterCodingAnnouncer{Announcer: commands.CharacterCodingAnnouncerType(v)}, nil
}

func readNamePrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readPrecision("NAME PRECISION", integerWidths)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("NamePrecision", bits, func(d *core.Descriptor) { d.NamePrecision = bits })
	return &commands.NamePrecision{Precision: bits}, nil
}

func readMaximumVdcExtent(r *Reader) (commands.Command, error) {
	first, second, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.MaximumVdcExtent{FirstCorner: first, SecondCorner: second}, nil
}

func readSegmentPriorityExtent(r *Reader) (commands.Command, error) {
	v, err := r.readIntegers(2)
	if err != nil {
		return nil, err
	}
	return &commands.SegmentPriorityExtent{Minimum: v[0], Maximum: v[1]}, nil
}

func readColorModel(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	model := core.ColorModel(index)
	if !model.Valid() {
		return nil, &core.RangeError{Kind: "Colour model", Input: strconv.Itoa(index), Reason: "reserved value"}
	}
	r.setDescriptor("ColorModel", model, func(d *core.Descriptor) { d.ColorModel = model })
	return &commands.ColorModel{Model: model}, nil
}

// Picture descriptor elements (ISO/IEC 8632-3 8.4)

// readScalingMode reads the metric scaling factor as a 32-bit float
// whatever REAL PRECISION says
func readScalingMode(r *Reader) (commands.Command, error) {
	mode, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	factor, err := r.readFloat32()
	if err != nil {
		return nil, err
	}
	return &commands.ScalingMode{Mode: commands.ScalingModeType(mode), MetricScalingFactor: factor}, nil
}

func readColorSelectionMode(r *Reader) (commands.Command, error) {
	v, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	mode := core.ColorSelectionMode(v)
	r.setDescriptor("ColorSelectionMode", mode, func(d *core.Descriptor) { d.ColorSelectionMode = mode })
	return &commands.ColorSelectionMode{Mode: mode}, nil
}

func (r *Reader) readSpecificationMode() (core.SpecificationMode, error) {
	v, err := r.readEnum()
	return core.SpecificationMode(v), err
}

func readLineWidthSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := r.readSpecificationMode()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("LineWidthSpecificationMode", mode, func(d *core.Descriptor) { d.LineWidthSpecificationMode = mode })
	return &commands.LineWidthSpecificationMode{Mode: mode}, nil
}

func readMarkerSizeSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := r.readSpecificationMode()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("MarkerSizeSpecificationMode", mode, func(d *core.Descriptor) { d.MarkerSizeSpecificationMode = mode })
	return &commands.MarkerSizeSpecificationMode{Mode: mode}, nil
}

func readEdgeWidthSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := r.readSpecificationMode()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("EdgeWidthSpecificationMode", mode, func(d *core.Descriptor) { d.EdgeWidthSpecificationMode = mode })
	return &commands.EdgeWidthSpecificationMode{Mode: mode}, nil
}

func readVdcExtent(r *Reader) (commands.Command, error) {
	first, second, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.VdcExtent{FirstCorner: first, SecondCorner: second}, nil
}

func readBackgroundColor(r *Reader) (commands.Command, error) {
	c, err := r.readDirectColor()
	if err != nil {
		return nil, err
	}
	return &commands.BackgroundColor{Color: c}, nil
}

func readDeviceViewport(r *Reader) (commands.Command, error) {
	first, err := r.readViewportPoint()
	if err != nil {
		return nil, err
	}
	second, err := r.readViewportPoint()
	if err != nil {
		return nil, err
	}
	return &commands.DeviceViewport{FirstCorner: first, SecondCorner: second}, nil
}

// readDeviceViewportSpecificationMode reads the scale factor as a 32-bit
// float whatever REAL PRECISION says
func readDeviceViewportSpecificationMode(r *Reader) (commands.Command, error) {
	v, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	factor, err := r.readFloat32()
	if err != nil {
		return nil, err
	}
	mode := core.DeviceViewportSpecificationMode(v)
	r.setDescriptor("DeviceViewportSpecificationMode", mode, func(d *core.Descriptor) { d.DeviceViewportSpecificationMode = mode })
	return &commands.DeviceViewportSpecificationMode{Mode: mode, ScaleFactor: factor}, nil
}

func readDeviceViewportMapping(r *Reader) (commands.Command, error) {
	var v [3]int
	for i := range v {
		e, err := r.readEnum()
		if err != nil {
			return nil, err
		}
		v[i] = e
	}
	return &commands.DeviceViewportMapping{
		Isotropy:   commands.Isotropy(v[0]),
		Horizontal: commands.HorizontalPlacement(v[1]),
		Vertical:   commands.VerticalPlacement(v[2]),
	}, nil
}

func readInteriorStyleSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := r.readSpecificationMode()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("InteriorStyleSpecificationMode", mode, func(d *core.Descriptor) { d.InteriorStyleSpecificationMode = mode })
	return &commands.InteriorStyleSpecificationMode{Mode: mode}, nil
}

func readLineAndEdgeTypeDefinition(r *Reader) (commands.Command, error) {
	lineType, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	length, err := r.readSizeSpecification(r.descriptor.LineWidthSpecificationMode)
	if err != nil {
		return nil, err
	}
	var dashes []int
	for r.hasMoreData() {
		d, err := r.readInteger()
		if err != nil {
			return nil, err
		}
		dashes = append(dashes, d)
	}
	return &commands.LineAndEdgeTypeDefinition{LineType: lineType, DashCycleRepeatLength: length, DashElements: dashes}, nil
}

func readHatchStyleDefinition(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	style, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	mode := r.descriptor.InteriorStyleSpecificationMode
	var v [5]float64
	for i := range v {
		if v[i], err = r.readSizeSpecification(mode); err != nil {
			return nil, err
		}
	}
	n, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	gaps, err := r.readIntegers(n)
	if err != nil {
		return nil, err
	}
	lineTypes, err := r.readIntegers(n)
	if err != nil {
		return nil, err
	}
	return &commands.HatchStyleDefinition{
		HatchIndex:      index,
		Style:           commands.HatchStyleIndicator(style),
		FirstDirection:  core.Point{X: v[0], Y: v[1]},
		SecondDirection: core.Point{X: v[2], Y: v[3]},
		DutyCycleLength: v[4],
		GapWidths:       gaps,
		LineTypes:       lineTypes,
	}, nil
}

func readGeometricPatternDefinition(r *Reader) (commands.Command, error) {
	index, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	segment, err := r.readName()
	if err != nil {
		return nil, err
	}
	first, second, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.GeometricPatternDefinition{
		PatternIndex:      index,
		SegmentIdentifier: segment,
		FirstCorner:       first,
		SecondCorner:      second,
	}, nil
}

func (r *Reader) readTwoPoints() (core.Point, core.Point, error) {
	first, err := r.readPoint()
	if err != nil {
		return core.Point{}, core.Point{}, err
	}
	second, err := r.readPoint()
	if err != nil {
		return core.Point{}, core.Point{}, err
	}
	return first, second, nil
}
