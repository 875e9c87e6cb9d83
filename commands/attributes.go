package commands

import "github.com/tsawler/cgminfo/core"

// LineBundleIndex is LINE BUNDLE INDEX (5/1)
type LineBundleIndex struct {
	Index int
}

func (*LineBundleIndex) Element() Element            { return Element{5, 1} }
func (c *LineBundleIndex) Accept(v Visitor, ctx any) { v.VisitLineBundleIndex(c, ctx) }

// LineType is LINE TYPE (5/2)
type LineType struct {
	Index int
}

func (*LineType) Element() Element            { return Element{5, 2} }
func (c *LineType) Accept(v Visitor, ctx any) { v.VisitLineType(c, ctx) }

// LineWidth is LINE WIDTH (5/3)
type LineWidth struct {
	Width float64
}

func (*LineWidth) Element() Element            { return Element{5, 3} }
func (c *LineWidth) Accept(v Visitor, ctx any) { v.VisitLineWidth(c, ctx) }

// LineColor is LINE COLOUR (5/4)
type LineColor struct {
	Color core.Color
}

func (*LineColor) Element() Element            { return Element{5, 4} }
func (c *LineColor) Accept(v Visitor, ctx any) { v.VisitLineColor(c, ctx) }

// MarkerBundleIndex is MARKER BUNDLE INDEX (5/5)
type MarkerBundleIndex struct {
	Index int
}

func (*MarkerBundleIndex) Element() Element            { return Element{5, 5} }
func (c *MarkerBundleIndex) Accept(v Visitor, ctx any) { v.VisitMarkerBundleIndex(c, ctx) }

// MarkerType is MARKER TYPE (5/6)
type MarkerType struct {
	Index int
}

func (*MarkerType) Element() Element            { return Element{5, 6} }
func (c *MarkerType) Accept(v Visitor, ctx any) { v.VisitMarkerType(c, ctx) }

// MarkerSize is MARKER SIZE (5/7)
type MarkerSize struct {
	Size float64
}

func (*MarkerSize) Element() Element            { return Element{5, 7} }
func (c *MarkerSize) Accept(v Visitor, ctx any) { v.VisitMarkerSize(c, ctx) }

// MarkerColor is MARKER COLOUR (5/8)
type MarkerColor struct {
	Color core.Color
}

func (*MarkerColor) Element() Element            { return Element{5, 8} }
func (c *MarkerColor) Accept(v Visitor, ctx any) { v.VisitMarkerColor(c, ctx) }

// TextBundleIndex is TEXT BUNDLE INDEX (5/9)
type TextBundleIndex struct {
	Index int
}

func (*TextBundleIndex) Element() Element            { return Element{5, 9} }
func (c *TextBundleIndex) Accept(v Visitor, ctx any) { v.VisitTextBundleIndex(c, ctx) }

// TextFontIndex is TEXT FONT INDEX (5/10)
type TextFontIndex struct {
	Index int
}

func (*TextFontIndex) Element() Element            { return Element{5, 10} }
func (c *TextFontIndex) Accept(v Visitor, ctx any) { v.VisitTextFontIndex(c, ctx) }

// TextPrecision is TEXT PRECISION (5/11)
type TextPrecision struct {
	Precision TextPrecisionType
}

func (*TextPrecision) Element() Element            { return Element{5, 11} }
func (c *TextPrecision) Accept(v Visitor, ctx any) { v.VisitTextPrecision(c, ctx) }

// CharacterExpansionFactor is CHARACTER EXPANSION FACTOR (5/12)
type CharacterExpansionFactor struct {
	Factor float64
}

func (*CharacterExpansionFactor) Element() Element { return Element{5, 12} }
func (c *CharacterExpansionFactor) Accept(v Visitor, ctx any) {
	v.VisitCharacterExpansionFactor(c, ctx)
}

// CharacterSpacing is CHARACTER SPACING (5/13)
type CharacterSpacing struct {
	Spacing float64
}

func (*CharacterSpacing) Element() Element            { return Element{5, 13} }
func (c *CharacterSpacing) Accept(v Visitor, ctx any) { v.VisitCharacterSpacing(c, ctx) }

// TextColor is TEXT COLOUR (5/14)
type TextColor struct {
	Color core.Color
}

func (*TextColor) Element() Element            { return Element{5, 14} }
func (c *TextColor) Accept(v Visitor, ctx any) { v.VisitTextColor(c, ctx) }

// CharacterHeight is CHARACTER HEIGHT (5/15)
type CharacterHeight struct {
	Height float64
}

func (*CharacterHeight) Element() Element            { return Element{5, 15} }
func (c *CharacterHeight) Accept(v Visitor, ctx any) { v.VisitCharacterHeight(c, ctx) }

// CharacterOrientation is CHARACTER ORIENTATION (5/16)
type CharacterOrientation struct {
	Up   core.Point
	Base core.Point
}

func (*CharacterOrientation) Element() Element            { return Element{5, 16} }
func (c *CharacterOrientation) Accept(v Visitor, ctx any) { v.VisitCharacterOrientation(c, ctx) }

// TextPath is TEXT PATH (5/17)
type TextPath struct {
	Path TextPathType
}

func (*TextPath) Element() Element            { return Element{5, 17} }
func (c *TextPath) Accept(v Visitor, ctx any) { v.VisitTextPath(c, ctx) }

// TextAlignment is TEXT ALIGNMENT (5/18). The continuous values only
// apply with the continuous alignments.
type TextAlignment struct {
	Horizontal           HorizontalAlignment
	Vertical             VerticalAlignment
	ContinuousHorizontal float64
	ContinuousVertical   float64
}

func (*TextAlignment) Element() Element            { return Element{5, 18} }
func (c *TextAlignment) Accept(v Visitor, ctx any) { v.VisitTextAlignment(c, ctx) }

// CharacterSetIndex is CHARACTER SET INDEX (5/19)
type CharacterSetIndex struct {
	Index int
}

func (*CharacterSetIndex) Element() Element            { return Element{5, 19} }
func (c *CharacterSetIndex) Accept(v Visitor, ctx any) { v.VisitCharacterSetIndex(c, ctx) }

// AlternateCharacterSetIndex is ALTERNATE CHARACTER SET INDEX (5/20)
type AlternateCharacterSetIndex struct {
	Index int
}

func (*AlternateCharacterSetIndex) Element() Element { return Element{5, 20} }
func (c *AlternateCharacterSetIndex) Accept(v Visitor, ctx any) {
	v.VisitAlternateCharacterSetIndex(c, ctx)
}

// FillBundleIndex is FILL BUNDLE INDEX (5/21)
type FillBundleIndex struct {
	Index int
}

func (*FillBundleIndex) Element() Element            { return Element{5, 21} }
func (c *FillBundleIndex) Accept(v Visitor, ctx any) { v.VisitFillBundleIndex(c, ctx) }

// InteriorStyle is INTERIOR STYLE (5/22)
type InteriorStyle struct {
	Style InteriorStyleType
}

func (*InteriorStyle) Element() Element            { return Element{5, 22} }
func (c *InteriorStyle) Accept(v Visitor, ctx any) { v.VisitInteriorStyle(c, ctx) }

// FillColor is FILL COLOUR (5/23)
type FillColor struct {
	Color core.Color
}

func (*FillColor) Element() Element            { return Element{5, 23} }
func (c *FillColor) Accept(v Visitor, ctx any) { v.VisitFillColor(c, ctx) }

// HatchIndex is HATCH INDEX (5/24)
type HatchIndex struct {
	Index int
}

func (*HatchIndex) Element() Element            { return Element{5, 24} }
func (c *HatchIndex) Accept(v Visitor, ctx any) { v.VisitHatchIndex(c, ctx) }

// PatternIndex is PATTERN INDEX (5/25)
type PatternIndex struct {
	Index int
}

func (*PatternIndex) Element() Element            { return Element{5, 25} }
func (c *PatternIndex) Accept(v Visitor, ctx any) { v.VisitPatternIndex(c, ctx) }

// EdgeBundleIndex is EDGE BUNDLE INDEX (5/26)
type EdgeBundleIndex struct {
	Index int
}

func (*EdgeBundleIndex) Element() Element            { return Element{5, 26} }
func (c *EdgeBundleIndex) Accept(v Visitor, ctx any) { v.VisitEdgeBundleIndex(c, ctx) }

// EdgeType is EDGE TYPE (5/27)
type EdgeType struct {
	Index int
}

func (*EdgeType) Element() Element            { return Element{5, 27} }
func (c *EdgeType) Accept(v Visitor, ctx any) { v.VisitEdgeType(c, ctx) }

// EdgeWidth is EDGE WIDTH (5/28)
type EdgeWidth struct {
	Width float64
}

func (*EdgeWidth) Element() Element            { return Element{5, 28} }
func (c *EdgeWidth) Accept(v Visitor, ctx any) { v.VisitEdgeWidth(c, ctx) }

// EdgeColor is EDGE COLOUR (5/29)
type EdgeColor struct {
	Color core.Color
}

func (*EdgeColor) Element() Element            { return Element{5, 29} }
func (c *EdgeColor) Accept(v Visitor, ctx any) { v.VisitEdgeColor(c, ctx) }

// EdgeVisibility is EDGE VISIBILITY (5/30)
type EdgeVisibility struct {
	Visibility OnOff
}

func (*EdgeVisibility) Element() Element            { return Element{5, 30} }
func (c *EdgeVisibility) Accept(v Visitor, ctx any) { v.VisitEdgeVisibility(c, ctx) }

// FillReferencePoint is FILL REFERENCE POINT (5/31)
type FillReferencePoint struct {
	Point core.Point
}

func (*FillReferencePoint) Element() Element            { return Element{5, 31} }
func (c *FillReferencePoint) Accept(v Visitor, ctx any) { v.VisitFillReferencePoint(c, ctx) }

// PatternTable is PATTERN TABLE (5/32)
type PatternTable struct {
	Index               int
	NX                  int
	NY                  int
	LocalColorPrecision int
	Colors              []core.Color
}

func (*PatternTable) Element() Element            { return Element{5, 32} }
func (c *PatternTable) Accept(v Visitor, ctx any) { v.VisitPatternTable(c, ctx) }

// PatternSize is PATTERN SIZE (5/33)
type PatternSize struct {
	Height core.Point
	Width  core.Point
}

func (*PatternSize) Element() Element            { return Element{5, 33} }
func (c *PatternSize) Accept(v Visitor, ctx any) { v.VisitPatternSize(c, ctx) }

// ColorTable is COLOUR TABLE (5/34). Colors are direct colours assigned
// to consecutive indexes starting at StartIndex.
type ColorTable struct {
	StartIndex int
	Colors     []core.Color
}

func (*ColorTable) Element() Element            { return Element{5, 34} }
func (c *ColorTable) Accept(v Visitor, ctx any) { v.VisitColorTable(c, ctx) }

var lineCapNames = map[int]string{
	1: "Unspecified",
	2: "Butt",
	3: "Round",
	4: "Projecting Square",
	5: "Triangle",
}

var dashCapNames = map[int]string{
	1: "Unspecified",
	2: "Butt",
	3: "Match",
}

var joinNames = map[int]string{
	1: "Unspecified",
	2: "Mitre",
	3: "Round",
	4: "Bevel",
}

var continuationNames = map[int]string{
	1: "Unspecified",
	2: "Continue",
	3: "Restart",
	4: "Adaptive Continue",
}

// LineCap is LINE CAP (5/37)
type LineCap struct {
	LineCapIndicator int
	DashCapIndicator int
}

// LineCapName returns the name of the line cap indicator
func (c *LineCap) LineCapName() string { return indicatorName(lineCapNames, c.LineCapIndicator) }

// DashCapName returns the name of the dash cap indicator
func (c *LineCap) DashCapName() string { return indicatorName(dashCapNames, c.DashCapIndicator) }

func (*LineCap) Element() Element            { return Element{5, 37} }
func (c *LineCap) Accept(v Visitor, ctx any) { v.VisitLineCap(c, ctx) }

// LineJoin is LINE JOIN (5/38)
type LineJoin struct {
	Index int
}

func (c *LineJoin) Name() string              { return indicatorName(joinNames, c.Index) }
func (*LineJoin) Element() Element            { return Element{5, 38} }
func (c *LineJoin) Accept(v Visitor, ctx any) { v.VisitLineJoin(c, ctx) }

// LineTypeContinuation is LINE TYPE CONTINUATION (5/39)
type LineTypeContinuation struct {
	Index int
}

func (c *LineTypeContinuation) Name() string   { return indicatorName(continuationNames, c.Index) }
func (*LineTypeContinuation) Element() Element { return Element{5, 39} }
func (c *LineTypeContinuation) Accept(v Visitor, ctx any) {
	v.VisitLineTypeContinuation(c, ctx)
}

// LineTypeInitialOffset is LINE TYPE INITIAL OFFSET (5/40)
type LineTypeInitialOffset struct {
	Offset float64
}

func (*LineTypeInitialOffset) Element() Element { return Element{5, 40} }
func (c *LineTypeInitialOffset) Accept(v Visitor, ctx any) {
	v.VisitLineTypeInitialOffset(c, ctx)
}

// EdgeCap is EDGE CAP (5/44)
type EdgeCap struct {
	EdgeCapIndicator int
	DashCapIndicator int
}

// EdgeCapName returns the name of the edge cap indicator
func (c *EdgeCap) EdgeCapName() string { return indicatorName(lineCapNames, c.EdgeCapIndicator) }

// DashCapName returns the name of the dash cap indicator
func (c *EdgeCap) DashCapName() string { return indicatorName(dashCapNames, c.DashCapIndicator) }

func (*EdgeCap) Element() Element            { return Element{5, 44} }
func (c *EdgeCap) Accept(v Visitor, ctx any) { v.VisitEdgeCap(c, ctx) }

// EdgeJoin is EDGE JOIN (5/45)
type EdgeJoin struct {
	Index int
}

func (c *EdgeJoin) Name() string              { return indicatorName(joinNames, c.Index) }
func (*EdgeJoin) Element() Element            { return Element{5, 45} }
func (c *EdgeJoin) Accept(v Visitor, ctx any) { v.VisitEdgeJoin(c, ctx) }

// EdgeTypeContinuation is EDGE TYPE CONTINUATION (5/46)
type EdgeTypeContinuation struct {
	Index int
}

func (c *EdgeTypeContinuation) Name() string   { return indicatorName(continuationNames, c.Index) }
func (*EdgeTypeContinuation) Element() Element { return Element{5, 46} }
func (c *EdgeTypeContinuation) Accept(v Visitor, ctx any) {
	v.VisitEdgeTypeContinuation(c, ctx)
}

// EdgeTypeInitialOffset is EDGE TYPE INITIAL OFFSET (5/47)
type EdgeTypeInitialOffset struct {
	Offset float64
}

func (*EdgeTypeInitialOffset) Element() Element { return Element{5, 47} }
func (c *EdgeTypeInitialOffset) Accept(v Visitor, ctx any) {
	v.VisitEdgeTypeInitialOffset(c, ctx)
}
