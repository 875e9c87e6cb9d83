package textencoding

import (
	"strconv"
	"strings"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Metafile descriptor elements (ISO/IEC 8632-4 7.2)

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
	t, err := readEnumValue(r, vdcTypeKeywords, core.VdcInteger)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("VdcType", t, func(d *core.Descriptor) { d.VdcType = t })
	return &commands.VdcType{Specification: t}, nil
}

// readSignedRange reads a minimum and maximum and converts them to bits
func (r *Reader) readSignedRange() (int, error) {
	min, err := r.readInteger()
	if err != nil {
		return 0, err
	}
	max, err := r.readInteger()
	if err != nil {
		return 0, err
	}
	return signedBitPrecision(min, max), nil
}

func readIntegerPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readSignedRange()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("IntegerPrecision", bits, func(d *core.Descriptor) { d.IntegerPrecision = bits })
	return &commands.IntegerPrecision{Precision: bits}, nil
}

// readRealSpecification reads the minimum, maximum and significant digits
// of REALPREC and VDCREALPREC. The digit count does not affect decoding.
func (r *Reader) readRealSpecification() (core.RealPrecision, error) {
	min, err := r.readReal()
	if err != nil {
		return core.RealPrecision{}, err
	}
	max, err := r.readReal()
	if err != nil {
		return core.RealPrecision{}, err
	}
	if _, err := r.readInteger(); err != nil {
		return core.RealPrecision{}, err
	}
	return realPrecisionFor(min, max), nil
}

func readRealPrecision(r *Reader) (commands.Command, error) {
	p, err := r.readRealSpecification()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("RealPrecision", p, func(d *core.Descriptor) { d.RealPrecision = p })
	return &commands.RealPrecision{Specification: p}, nil
}

func readIndexPrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readSignedRange()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("IndexPrecision", bits, func(d *core.Descriptor) { d.IndexPrecision = bits })
	return &commands.IndexPrecision{Precision: bits}, nil
}

func readColorPrecision(r *Reader) (commands.Command, error) {
	max, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	bits := unsignedBitPrecision(max, colorWidths)
	r.setDescriptor("ColorPrecision", bits, func(d *core.Descriptor) { d.ColorPrecision = bits })
	return &commands.ColorPrecision{Precision: bits}, nil
}

func readColorIndexPrecision(r *Reader) (commands.Command, error) {
	max, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	bits := unsignedBitPrecision(max, colorIndexWidths)
	r.setDescriptor("ColorIndexPrecision", bits, func(d *core.Descriptor) { d.ColorIndexPrecision = bits })
	return &commands.ColorIndexPrecision{Precision: bits}, nil
}

func readMaximumColorIndex(r *Reader) (commands.Command, error) {
	index, err := r.readInteger()
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
		var scale [3]float64
		for i := range scale {
			f, err := r.readReal()
			if err != nil {
				return nil, err
			}
			scale[i] = f
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

// readMetafileElementList splits the quoted list into element and set names
func readMetafileElementList(r *Reader) (commands.Command, error) {
	var names []string
	for _, s := range r.readToEndOfElement() {
		names = append(names, strings.Fields(strings.ToUpper(s))...)
	}
	return &commands.MetafileElementList{Elements: names}, nil
}

// readMetafileDefaultsReplacement decodes the nested elements up to the
// matching ENDMFDEFAULTS (or the end of the input) with the same reader.
func readMetafileDefaultsReplacement(r *Reader) (commands.Command, error) {
	r.defaultDepth++
	defer func() { r.defaultDepth-- }()

	var nested []commands.Command
	for {
		cmd, err := r.next()
		if err == errEndOfDefaults {
			break
		}
		if err != nil {
			return nil, err
		}
		if cmd == nil {
			break
		}
		nested = append(nested, cmd)
	}
	return &commands.MetafileDefaultsReplacement{Commands: nested}, nil
}

func readFontList(r *Reader) (commands.Command, error) {
	return &commands.FontList{Fonts: r.readToEndOfElement()}, nil
}

// readCharacterSetList reads (type, designation) pairs; a trailing half
// pair is dropped
func readCharacterSetList(r *Reader) (commands.Command, error) {
	var entries []commands.CharacterSetListEntry
	for r.hasMoreData(2) {
		typ, _ := readEnumValue(r, characterSetKeywords, commands.GSet94Characters)
		designation, _ := r.readString()
		entries = append(entries, commands.CharacterSetListEntry{Type: typ, Designation: designation})
	}
	return &commands.CharacterSetList{Entries: entries}, nil
}

func readCharacterCodingAnnouncer(r *Reader) (commands.Command, error) {
	a, err := readEnumValue(r, characterCodingKeywords, commands.Basic7Bit)
	if err != nil {
		return nil, err
	}
	return &commands.CharacterCodingAnnouncer{Announcer: a}, nil
}

func readNamePrecision(r *Reader) (commands.Command, error) {
	bits, err := r.readSignedRange()
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

// Picture descriptor elements (ISO/IEC 8632-4 7.3)

func readScalingMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, scalingModeKeywords, commands.ScalingAbstract)
	if err != nil {
		return nil, err
	}
	factor, err := r.readReal()
	if err != nil {
		return nil, err
	}
	return &commands.ScalingMode{Mode: mode, MetricScalingFactor: factor}, nil
}

func readColorSelectionMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, colorSelectionKeywords, core.ColorIndexed)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("ColorSelectionMode", mode, func(d *core.Descriptor) { d.ColorSelectionMode = mode })
	return &commands.ColorSelectionMode{Mode: mode}, nil
}

func readLineWidthSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, specificationModeKeywords, core.Absolute)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("LineWidthSpecificationMode", mode, func(d *core.Descriptor) { d.LineWidthSpecificationMode = mode })
	return &commands.LineWidthSpecificationMode{Mode: mode}, nil
}

func readMarkerSizeSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, specificationModeKeywords, core.Absolute)
	if err != nil {
		return nil, err
	}
	r.setDescriptor("MarkerSizeSpecificationMode", mode, func(d *core.Descriptor) { d.MarkerSizeSpecificationMode = mode })
	return &commands.MarkerSizeSpecificationMode{Mode: mode}, nil
}

func readEdgeWidthSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, specificationModeKeywords, core.Absolute)
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

func readDeviceViewportSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, viewportModeKeywords, core.FractionOfDrawingSurface)
	if err != nil {
		return nil, err
	}
	factor, err := r.readReal()
	if err != nil {
		return nil, err
	}
	r.setDescriptor("DeviceViewportSpecificationMode", mode, func(d *core.Descriptor) { d.DeviceViewportSpecificationMode = mode })
	return &commands.DeviceViewportSpecificationMode{Mode: mode, ScaleFactor: factor}, nil
}

func readDeviceViewportMapping(r *Reader) (commands.Command, error) {
	isotropy, err := readEnumValue(r, isotropyKeywords, commands.IsotropyNotForced)
	if err != nil {
		return nil, err
	}
	horizontal, err := readEnumValue(r, horizontalPlacementKeywords, commands.PlaceLeft)
	if err != nil {
		return nil, err
	}
	vertical, err := readEnumValue(r, verticalPlacementKeywords, commands.PlaceBottom)
	if err != nil {
		return nil, err
	}
	return &commands.DeviceViewportMapping{Isotropy: isotropy, Horizontal: horizontal, Vertical: vertical}, nil
}

func readInteriorStyleSpecificationMode(r *Reader) (commands.Command, error) {
	mode, err := readEnumValue(r, specificationModeKeywords, core.Absolute)
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
	for r.hasMoreData(1) {
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
	style, err := readEnumValue(r, hatchStyleKeywords, commands.HatchParallel)
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
		Style:           style,
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
