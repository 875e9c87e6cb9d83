package core

import (
	"fmt"
	"strconv"
)

// Point is a metafile point in VDC space. Integer VDC values are widened to
// float64 so both VDC types share one representation.
type Point struct {
	X, Y float64
}

// String returns the point as "(x,y)"
func (p Point) String() string {
	return "(" + formatFloat(p.X) + "," + formatFloat(p.Y) + ")"
}

// Add returns p offset by q. Incremental point lists in the clear text
// encoding are accumulated this way.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Color is a decoded colour value. Its concrete type depends on the
// COLOUR SELECTION MODE and COLOUR MODEL in effect when it was decoded:
// ColorIndex, ColorRGB, ColorCMYK or ColorCIE.
type Color interface {
	String() string
	isColor()
}

// ColorIndex is an indexed colour (a colour table reference)
type ColorIndex struct {
	Index int
}

func (ColorIndex) isColor() {}

func (c ColorIndex) String() string {
	return "Index " + strconv.Itoa(c.Index)
}

// ColorRGB is a direct colour in the RGB model. Components are raw values
// within the COLOUR VALUE EXTENT, not normalized.
type ColorRGB struct {
	R, G, B int
}

func (ColorRGB) isColor() {}

func (c ColorRGB) String() string {
	return fmt.Sprintf("RGB(%d,%d,%d)", c.R, c.G, c.B)
}

// ColorCMYK is a direct colour in the CMYK model
type ColorCMYK struct {
	C, M, Y, K int
}

func (ColorCMYK) isColor() {}

func (c ColorCMYK) String() string {
	return fmt.Sprintf("CMYK(%d,%d,%d,%d)", c.C, c.M, c.Y, c.K)
}

// ColorCIE is a direct colour in one of the CIE based models (CIELAB,
// CIELUV) or RGB-related. Components are not clamped.
type ColorCIE struct {
	Model                ColorModel
	First, Second, Third float64
}

func (ColorCIE) isColor() {}

func (c ColorCIE) String() string {
	return fmt.Sprintf("%s(%s,%s,%s)", c.Model, formatFloat(c.First), formatFloat(c.Second), formatFloat(c.Third))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// VdcType selects whether VDC values are integers or reals
type VdcType int

const (
	VdcInteger VdcType = iota
	VdcReal
)

// String returns the VDC type name
func (t VdcType) String() string {
	switch t {
	case VdcInteger:
		return "Integer"
	case VdcReal:
		return "Real"
	default:
		return "Unknown(" + strconv.Itoa(int(t)) + ")"
	}
}

// RealRepresentation is the encoding form of real numbers
type RealRepresentation int

const (
	FloatingPoint RealRepresentation = iota
	FixedPoint
)

// String returns the representation name
func (r RealRepresentation) String() string {
	switch r {
	case FloatingPoint:
		return "FloatingPoint"
	case FixedPoint:
		return "FixedPoint"
	default:
		return "Unknown(" + strconv.Itoa(int(r)) + ")"
	}
}

// RealPrecision describes how reals are encoded. For floating point the
// widths are the exponent and fraction bit counts; for fixed point they are
// the whole and fractional part bit counts.
type RealPrecision struct {
	Representation RealRepresentation
	ExponentWidth  int
	FractionWidth  int
}

// String returns the precision as "Form(exp,frac)"
func (p RealPrecision) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.Representation, p.ExponentWidth, p.FractionWidth)
}

// Common real precisions
var (
	Float32Precision = RealPrecision{Representation: FloatingPoint, ExponentWidth: 9, FractionWidth: 23}
	Float64Precision = RealPrecision{Representation: FloatingPoint, ExponentWidth: 12, FractionWidth: 52}
	Fixed32Precision = RealPrecision{Representation: FixedPoint, ExponentWidth: 16, FractionWidth: 16}
	Fixed64Precision = RealPrecision{Representation: FixedPoint, ExponentWidth: 32, FractionWidth: 32}
)

// ColorSelectionMode selects indexed or direct colour
type ColorSelectionMode int

const (
	ColorIndexed ColorSelectionMode = iota
	ColorDirect
)

// String returns the colour selection mode name
func (m ColorSelectionMode) String() string {
	switch m {
	case ColorIndexed:
		return "Indexed"
	case ColorDirect:
		return "Direct"
	default:
		return "Unknown(" + strconv.Itoa(int(m)) + ")"
	}
}

// ColorModel is the colour model of direct colours. Values match the
// COLOUR MODEL element (1=RGB, 2=CIELAB, 3=CIELUV, 4=CMYK, 5=RGB-related).
type ColorModel int

const (
	ColorModelRGB        ColorModel = 1
	ColorModelCIELAB     ColorModel = 2
	ColorModelCIELUV     ColorModel = 3
	ColorModelCMYK       ColorModel = 4
	ColorModelRGBRelated ColorModel = 5
)

// String returns the colour model name
func (m ColorModel) String() string {
	switch m {
	case ColorModelRGB:
		return "RGB"
	case ColorModelCIELAB:
		return "CIELAB"
	case ColorModelCIELUV:
		return "CIELUV"
	case ColorModelCMYK:
		return "CMYK"
	case ColorModelRGBRelated:
		return "RGBrelated"
	default:
		return "Reserved(" + strconv.Itoa(int(m)) + ")"
	}
}

// Valid reports whether m is one of the five models of ISO/IEC 8632-1.
// Other values are reserved.
func (m ColorModel) Valid() bool {
	return m >= ColorModelRGB && m <= ColorModelRGBRelated
}

// IsCIE reports whether direct colours in this model are three reals
func (m ColorModel) IsCIE() bool {
	return m == ColorModelCIELAB || m == ColorModelCIELUV || m == ColorModelRGBRelated
}

// SpecificationMode governs the type of size specification parameters
// (line width, marker size, edge width, interior style sizes).
type SpecificationMode int

const (
	Absolute SpecificationMode = iota
	Scaled
	Fractional
	Millimetres
)

// String returns the specification mode name
func (m SpecificationMode) String() string {
	switch m {
	case Absolute:
		return "Absolute"
	case Scaled:
		return "Scaled"
	case Fractional:
		return "Fractional"
	case Millimetres:
		return "Millimetres"
	default:
		return "Unknown(" + strconv.Itoa(int(m)) + ")"
	}
}

// DeviceViewportSpecificationMode governs the type of viewport coordinates
type DeviceViewportSpecificationMode int

const (
	FractionOfDrawingSurface DeviceViewportSpecificationMode = iota
	MillimetresWithScaleFactor
	PhysicalDeviceCoordinates
)

// String returns the viewport specification mode name
func (m DeviceViewportSpecificationMode) String() string {
	switch m {
	case FractionOfDrawingSurface:
		return "FractionOfDrawingSurface"
	case MillimetresWithScaleFactor:
		return "MillimetresWithScaleFactor"
	case PhysicalDeviceCoordinates:
		return "PhysicalDeviceCoordinates"
	default:
		return "Unknown(" + strconv.Itoa(int(m)) + ")"
	}
}
