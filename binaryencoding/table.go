package binaryencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// decodeFunc decodes the parameter data of one element
type decodeFunc func(*Reader) (commands.Command, error)

// commandTable maps element identities to their decoders. It is filled in
// init because METAFILE DEFAULTS REPLACEMENT decodes nested elements
// through it.
var commandTable map[commands.Element]decodeFunc

func init() {
	commandTable = map[commands.Element]decodeFunc{
		// delimiter elements
		{Class: 0, ID: 1}:  readBeginMetafile,
		{Class: 0, ID: 2}:  empty(func() commands.Command { return &commands.EndMetafile{} }),
		{Class: 0, ID: 3}:  readBeginPicture,
		{Class: 0, ID: 4}:  empty(func() commands.Command { return &commands.BeginPictureBody{} }),
		{Class: 0, ID: 5}:  empty(func() commands.Command { return &commands.EndPicture{} }),
		{Class: 0, ID: 6}:  readBeginSegment,
		{Class: 0, ID: 7}:  empty(func() commands.Command { return &commands.EndSegment{} }),
		{Class: 0, ID: 8}:  empty(func() commands.Command { return &commands.BeginFigure{} }),
		{Class: 0, ID: 9}:  empty(func() commands.Command { return &commands.EndFigure{} }),
		{Class: 0, ID: 13}: readBeginProtectionRegion,
		{Class: 0, ID: 14}: empty(func() commands.Command { return &commands.EndProtectionRegion{} }),
		{Class: 0, ID: 15}: empty(func() commands.Command { return &commands.BeginCompoundLine{} }),
		{Class: 0, ID: 16}: empty(func() commands.Command { return &commands.EndCompoundLine{} }),
		{Class: 0, ID: 17}: empty(func() commands.Command { return &commands.BeginCompoundTextPath{} }),
		{Class: 0, ID: 18}: empty(func() commands.Command { return &commands.EndCompoundTextPath{} }),
		{Class: 0, ID: 19}: readBeginTileArray,
		{Class: 0, ID: 20}: empty(func() commands.Command { return &commands.EndTileArray{} }),
		{Class: 0, ID: 21}: readBeginApplicationStructure,
		{Class: 0, ID: 22}: empty(func() commands.Command { return &commands.BeginApplicationStructureBody{} }),
		{Class: 0, ID: 23}: empty(func() commands.Command { return &commands.EndApplicationStructure{} }),

		// metafile descriptor elements
		{Class: 1, ID: 1}:  readMetafileVersion,
		{Class: 1, ID: 2}:  readMetafileDescription,
		{Class: 1, ID: 3}:  readVdcType,
		{Class: 1, ID: 4}:  readIntegerPrecision,
		{Class: 1, ID: 5}:  readRealPrecision,
		{Class: 1, ID: 6}:  readIndexPrecision,
		{Class: 1, ID: 7}:  readColorPrecision,
		{Class: 1, ID: 8}:  readColorIndexPrecision,
		{Class: 1, ID: 9}:  readMaximumColorIndex,
		{Class: 1, ID: 10}: readColorValueExtent,
		{Class: 1, ID: 11}: readMetafileElementList,
		{Class: 1, ID: 12}: readMetafileDefaultsReplacement,
		{Class: 1, ID: 13}: readFontList,
		{Class: 1, ID: 14}: readCharacterSetList,
		{Class: 1, ID: 15}: readCharacterCodingAnnouncer,
		{Class: 1, ID: 16}: readNamePrecision,
		{Class: 1, ID: 17}: readMaximumVdcExtent,
		{Class: 1, ID: 18}: readSegmentPriorityExtent,
		{Class: 1, ID: 19}: readColorModel,

		// picture descriptor elements
		{Class: 2, ID: 1}:  readScalingMode,
		{Class: 2, ID: 2}:  readColorSelectionMode,
		{Class: 2, ID: 3}:  readLineWidthSpecificationMode,
		{Class: 2, ID: 4}:  readMarkerSizeSpecificationMode,
		{Class: 2, ID: 5}:  readEdgeWidthSpecificationMode,
		{Class: 2, ID: 6}:  readVdcExtent,
		{Class: 2, ID: 7}:  readBackgroundColor,
		{Class: 2, ID: 8}:  readDeviceViewport,
		{Class: 2, ID: 9}:  readDeviceViewportSpecificationMode,
		{Class: 2, ID: 10}: readDeviceViewportMapping,
		{Class: 2, ID: 16}: readInteriorStyleSpecificationMode,
		{Class: 2, ID: 17}: readLineAndEdgeTypeDefinition,
		{Class: 2, ID: 18}: readHatchStyleDefinition,
		{Class: 2, ID: 19}: readGeometricPatternDefinition,

		// control elements
		{Class: 3, ID: 1}:  readVdcIntegerPrecision,
		{Class: 3, ID: 2}:  readVdcRealPrecision,
		{Class: 3, ID: 3}:  colorParam(func(c core.Color) commands.Command { return &commands.AuxiliaryColor{Color: c} }),
		{Class: 3, ID: 4}:  enumParam(func(v commands.OnOff) commands.Command { return &commands.Transparency{Indicator: v} }),
		{Class: 3, ID: 5}:  readClipRectangle,
		{Class: 3, ID: 6}:  enumParam(func(v commands.OnOff) commands.Command { return &commands.ClipIndicator{Indicator: v} }),
		{Class: 3, ID: 7}:  enumParam(func(v commands.ClippingMode) commands.Command { return &commands.LineClippingMode{Mode: v} }),
		{Class: 3, ID: 8}:  enumParam(func(v commands.ClippingMode) commands.Command { return &commands.MarkerClippingMode{Mode: v} }),
		{Class: 3, ID: 9}:  enumParam(func(v commands.ClippingMode) commands.Command { return &commands.EdgeClippingMode{Mode: v} }),
		{Class: 3, ID: 10}: empty(func() commands.Command { return &commands.NewRegion{} }),
		{Class: 3, ID: 11}: nameParam(func(v int) commands.Command { return &commands.SavePrimitiveContext{ContextName: v} }),
		{Class: 3, ID: 12}: nameParam(func(v int) commands.Command { return &commands.RestorePrimitiveContext{ContextName: v} }),
		{Class: 3, ID: 17}: readProtectionRegionIndicator,
		{Class: 3, ID: 18}: enumParam(func(v commands.TextPathMode) commands.Command { return &commands.GeneralizedTextPathMode{Mode: v} }),
		{Class: 3, ID: 19}: realParam(func(v float64) commands.Command { return &commands.MiterLimit{Limit: v} }),

		// graphical primitive elements
		{Class: 4, ID: 1}:  pointList(func(p []core.Point) commands.Command { return &commands.Polyline{Points: p} }),
		{Class: 4, ID: 2}:  pointList(func(p []core.Point) commands.Command { return &commands.DisjointPolyline{Points: p} }),
		{Class: 4, ID: 3}:  pointList(func(p []core.Point) commands.Command { return &commands.Polymarker{Points: p} }),
		{Class: 4, ID: 4}:  readText,
		{Class: 4, ID: 5}:  readRestrictedText,
		{Class: 4, ID: 6}:  readAppendText,
		{Class: 4, ID: 7}:  pointList(func(p []core.Point) commands.Command { return &commands.Polygon{Points: p} }),
		{Class: 4, ID: 8}:  readPolygonSet,
		{Class: 4, ID: 9}:  readCellArray,
		{Class: 4, ID: 10}: readGeneralizedDrawingPrimitive,
		{Class: 4, ID: 11}: readRectangle,
		{Class: 4, ID: 12}: readCircle,
		{Class: 4, ID: 13}: readCircularArc3Point,
		{Class: 4, ID: 14}: readCircularArc3PointClose,
		{Class: 4, ID: 15}: readCircularArcCenter,
		{Class: 4, ID: 16}: readCircularArcCenterClose,
		{Class: 4, ID: 17}: readEllipse,
		{Class: 4, ID: 18}: readEllipticalArc,
		{Class: 4, ID: 19}: readEllipticalArcClose,
		{Class: 4, ID: 21}: empty(func() commands.Command { return &commands.ConnectingEdge{} }),
		{Class: 4, ID: 24}: readNonUniformBSpline,
		{Class: 4, ID: 25}: readNonUniformRationalBSpline,
		{Class: 4, ID: 26}: readPolybezier,

		// attribute elements
		{Class: 5, ID: 1}:  indexParam(func(v int) commands.Command { return &commands.LineBundleIndex{Index: v} }),
		{Class: 5, ID: 2}:  indexParam(func(v int) commands.Command { return &commands.LineType{Index: v} }),
		{Class: 5, ID: 3}:  sizeParam(lineWidthMode, func(v float64) commands.Command { return &commands.LineWidth{Width: v} }),
		{Class: 5, ID: 4}:  colorParam(func(c core.Color) commands.Command { return &commands.LineColor{Color: c} }),
		{Class: 5, ID: 5}:  indexParam(func(v int) commands.Command { return &commands.MarkerBundleIndex{Index: v} }),
		{Class: 5, ID: 6}:  indexParam(func(v int) commands.Command { return &commands.MarkerType{Index: v} }),
		{Class: 5, ID: 7}:  sizeParam(markerSizeMode, func(v float64) commands.Command { return &commands.MarkerSize{Size: v} }),
		{Class: 5, ID: 8}:  colorParam(func(c core.Color) commands.Command { return &commands.MarkerColor{Color: c} }),
		{Class: 5, ID: 9}:  indexParam(func(v int) commands.Command { return &commands.TextBundleIndex{Index: v} }),
		{Class: 5, ID: 10}: indexParam(func(v int) commands.Command { return &commands.TextFontIndex{Index: v} }),
		{Class: 5, ID: 11}: enumParam(func(v commands.TextPrecisionType) commands.Command { return &commands.TextPrecision{Precision: v} }),
		{Class: 5, ID: 12}: realParam(func(v float64) commands.Command { return &commands.CharacterExpansionFactor{Factor: v} }),
		{Class: 5, ID: 13}: realParam(func(v float64) commands.Command { return &commands.CharacterSpacing{Spacing: v} }),
		{Class: 5, ID: 14}: colorParam(func(c core.Color) commands.Command { return &commands.TextColor{Color: c} }),
		{Class: 5, ID: 15}: vdcParam(func(v float64) commands.Command { return &commands.CharacterHeight{Height: v} }),
		{Class: 5, ID: 16}: readCharacterOrientation,
		{Class: 5, ID: 17}: enumParam(func(v commands.TextPathType) commands.Command { return &commands.TextPath{Path: v} }),
		{Class: 5, ID: 18}: readTextAlignment,
		{Class: 5, ID: 19}: indexParam(func(v int) commands.Command { return &commands.CharacterSetIndex{Index: v} }),
		{Class: 5, ID: 20}: indexParam(func(v int) commands.Command { return &commands.AlternateCharacterSetIndex{Index: v} }),
		{Class: 5, ID: 21}: indexParam(func(v int) commands.Command { return &commands.FillBundleIndex{Index: v} }),
		{Class: 5, ID: 22}: enumParam(func(v commands.InteriorStyleType) commands.Command { return &commands.InteriorStyle{Style: v} }),
		{Class: 5, ID: 23}: colorParam(func(c core.Color) commands.Command { return &commands.FillColor{Color: c} }),
		{Class: 5, ID: 24}: indexParam(func(v int) commands.Command { return &commands.HatchIndex{Index: v} }),
		{Class: 5, ID: 25}: indexParam(func(v int) commands.Command { return &commands.PatternIndex{Index: v} }),
		{Class: 5, ID: 26}: indexParam(func(v int) commands.Command { return &commands.EdgeBundleIndex{Index: v} }),
		{Class: 5, ID: 27}: indexParam(func(v int) commands.Command { return &commands.EdgeType{Index: v} }),
		{Class: 5, ID: 28}: sizeParam(edgeWidthMode, func(v float64) commands.Command { return &commands.EdgeWidth{Width: v} }),
		{Class: 5, ID: 29}: colorParam(func(c core.Color) commands.Command { return &commands.EdgeColor{Color: c} }),
		{Class: 5, ID: 30}: enumParam(func(v commands.OnOff) commands.Command { return &commands.EdgeVisibility{Visibility: v} }),
		{Class: 5, ID: 31}: readFillReferencePoint,
		{Class: 5, ID: 32}: readPatternTable,
		{Class: 5, ID: 33}: readPatternSize,
		{Class: 5, ID: 34}: readColorTable,
		{Class: 5, ID: 37}: readLineCap,
		{Class: 5, ID: 38}: indexParam(func(v int) commands.Command { return &commands.LineJoin{Index: v} }),
		{Class: 5, ID: 39}: indexParam(func(v int) commands.Command { return &commands.LineTypeContinuation{Index: v} }),
		{Class: 5, ID: 40}: realParam(func(v float64) commands.Command { return &commands.LineTypeInitialOffset{Offset: v} }),
		{Class: 5, ID: 44}: readEdgeCap,
		{Class: 5, ID: 45}: indexParam(func(v int) commands.Command { return &commands.EdgeJoin{Index: v} }),
		{Class: 5, ID: 46}: indexParam(func(v int) commands.Command { return &commands.EdgeTypeContinuation{Index: v} }),
		{Class: 5, ID: 47}: realParam(func(v float64) commands.Command { return &commands.EdgeTypeInitialOffset{Offset: v} }),

		// escape and external elements
		{Class: 6, ID: 1}: readEscape,
		{Class: 7, ID: 1}: readMessage,
		{Class: 7, ID: 2}: readApplicationData,

		// application structure descriptor elements
		{Class: 9, ID: 1}: readApplicationStructureAttribute,
	}
}
