package commands

import "github.com/tsawler/cgminfo/core"

// ScalingMode is SCALING MODE (2/1)
type ScalingMode struct {
	Mode                ScalingModeType
	MetricScalingFactor float64
}

func (*ScalingMode) Element() Element            { return Element{2, 1} }
func (c *ScalingMode) Accept(v Visitor, ctx any) { v.VisitScalingMode(c, ctx) }

// ColorSelectionMode is COLOUR SELECTION MODE (2/2)
type ColorSelectionMode struct {
	Mode core.ColorSelectionMode
}

func (*ColorSelectionMode) Element() Element            { return Element{2, 2} }
func (c *ColorSelectionMode) Accept(v Visitor, ctx any) { v.VisitColorSelectionMode(c, ctx) }

// LineWidthSpecificationMode is LINE WIDTH SPECIFICATION MODE (2/3)
type LineWidthSpecificationMode struct {
	Mode core.SpecificationMode
}

func (*LineWidthSpecificationMode) Element() Element { return Element{2, 3} }
func (c *LineWidthSpecificationMode) Accept(v Visitor, ctx any) {
	v.VisitLineWidthSpecificationMode(c, ctx)
}

// MarkerSizeSpecificationMode is MARKER SIZE SPECIFICATION MODE (2/4)
type MarkerSizeSpecificationMode struct {
	Mode core.SpecificationMode
}

func (*MarkerSizeSpecificationMode) Element() Element { return Element{2, 4} }
func (c *MarkerSizeSpecificationMode) Accept(v Visitor, ctx any) {
	v.VisitMarkerSizeSpecificationMode(c, ctx)
}

// EdgeWidthSpecificationMode is EDGE WIDTH SPECIFICATION MODE (2/5)
type EdgeWidthSpecificationMode struct {
	Mode core.SpecificationMode
}

func (*EdgeWidthSpecificationMode) Element() Element { return Element{2, 5} }
func (c *EdgeWidthSpecificationMode) Accept(v Visitor, ctx any) {
	v.VisitEdgeWidthSpecificationMode(c, ctx)
}

// VdcExtent is VDC EXTENT (2/6)
type VdcExtent struct {
	FirstCorner  core.Point
	SecondCorner core.Point
}

func (*VdcExtent) Element() Element            { return Element{2, 6} }
func (c *VdcExtent) Accept(v Visitor, ctx any) { v.VisitVdcExtent(c, ctx) }

// BackgroundColor is BACKGROUND COLOUR (2/7); always a direct colour
type BackgroundColor struct {
	Color core.Color
}

func (*BackgroundColor) Element() Element            { return Element{2, 7} }
func (c *BackgroundColor) Accept(v Visitor, ctx any) { v.VisitBackgroundColor(c, ctx) }

// DeviceViewport is DEVICE VIEWPORT (2/8)
type DeviceViewport struct {
	FirstCorner  core.Point
	SecondCorner core.Point
}

func (*DeviceViewport) Element() Element            { return Element{2, 8} }
func (c *DeviceViewport) Accept(v Visitor, ctx any) { v.VisitDeviceViewport(c, ctx) }

// DeviceViewportSpecificationMode is DEVICE VIEWPORT SPECIFICATION MODE (2/9)
type DeviceViewportSpecificationMode struct {
	Mode        core.DeviceViewportSpecificationMode
	ScaleFactor float64
}

func (*DeviceViewportSpecificationMode) Element() Element { return Element{2, 9} }
func (c *DeviceViewportSpecificationMode) Accept(v Visitor, ctx any) {
	v.VisitDeviceViewportSpecificationMode(c, ctx)
}

// DeviceViewportMapping is DEVICE VIEWPORT MAPPING (2/10)
type DeviceViewportMapping struct {
	Isotropy   Isotropy
	Horizontal HorizontalPlacement
	Vertical   VerticalPlacement
}

func (*DeviceViewportMapping) Element() Element            { return Element{2, 10} }
func (c *DeviceViewportMapping) Accept(v Visitor, ctx any) { v.VisitDeviceViewportMapping(c, ctx) }

// InteriorStyleSpecificationMode is INTERIOR STYLE SPECIFICATION MODE (2/16)
type InteriorStyleSpecificationMode struct {
	Mode core.SpecificationMode
}

func (*InteriorStyleSpecificationMode) Element() Element { return Element{2, 16} }
func (c *InteriorStyleSpecificationMode) Accept(v Visitor, ctx any) {
	v.VisitInteriorStyleSpecificationMode(c, ctx)
}

// LineAndEdgeTypeDefinition is LINE AND EDGE TYPE DEFINITION (2/17)
type LineAndEdgeTypeDefinition struct {
	LineType              int
	DashCycleRepeatLength float64
	DashElements          []int
}

func (*LineAndEdgeTypeDefinition) Element() Element { return Element{2, 17} }
func (c *LineAndEdgeTypeDefinition) Accept(v Visitor, ctx any) {
	v.VisitLineAndEdgeTypeDefinition(c, ctx)
}

// HatchStyleDefinition is HATCH STYLE DEFINITION (2/18)
type HatchStyleDefinition struct {
	HatchIndex      int
	Style           HatchStyleIndicator
	FirstDirection  core.Point
	SecondDirection core.Point
	DutyCycleLength float64
	GapWidths       []int
	LineTypes       []int
}

func (*HatchStyleDefinition) Element() Element            { return Element{2, 18} }
func (c *HatchStyleDefinition) Accept(v Visitor, ctx any) { v.VisitHatchStyleDefinition(c, ctx) }

// GeometricPatternDefinition is GEOMETRIC PATTERN DEFINITION (2/19)
type GeometricPatternDefinition struct {
	PatternIndex      int
	SegmentIdentifier int
	FirstCorner       core.Point
	SecondCorner      core.Point
}

func (*GeometricPatternDefinition) Element() Element { return Element{2, 19} }
func (c *GeometricPatternDefinition) Accept(v Visitor, ctx any) {
	v.VisitGeometricPatternDefinition(c, ctx)
}
