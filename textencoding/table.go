package textencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// decodeFunc decodes the parameters of one element
type decodeFunc func(*Reader) (commands.Command, error)

// commandTable maps upper case element keywords to their decoders. It is
// filled in init because BEGMFDEFAULTS decodes nested elements through it.
var commandTable map[string]decodeFunc

func init() {
	commandTable = map[string]decodeFunc{
		// delimiter elements
		"BEGMF":           readBeginMetafile,
		"ENDMF":           empty(func() commands.Command { return &commands.EndMetafile{} }),
		"BEGPIC":          readBeginPicture,
		"BEGPICBODY":      empty(func() commands.Command { return &commands.BeginPictureBody{} }),
		"ENDPIC":          empty(func() commands.Command { return &commands.EndPicture{} }),
		"BEGSEG":          readBeginSegment,
		"ENDSEG":          empty(func() commands.Command { return &commands.EndSegment{} }),
		"BEGFIGURE":       empty(func() commands.Command { return &commands.BeginFigure{} }),
		"ENDFIGURE":       empty(func() commands.Command { return &commands.EndFigure{} }),
		"BEGPROTREGION":   readBeginProtectionRegion,
		"ENDPROTREGION":   empty(func() commands.Command { return &commands.EndProtectionRegion{} }),
		"BEGCOMPOLINE":    empty(func() commands.Command { return &commands.BeginCompoundLine{} }),
		"ENDCOMPOLINE":    empty(func() commands.Command { return &commands.EndCompoundLine{} }),
		"BEGCOMPTEXTPATH": empty(func() commands.Command { return &commands.BeginCompoundTextPath{} }),
		"ENDCOMPTEXTPATH": empty(func() commands.Command { return &commands.EndCompoundTextPath{} }),
		"BEGTILEARRAY":    readBeginTileArray,
		"ENDTILEARRAY":    empty(func() commands.Command { return &commands.EndTileArray{} }),
		"BEGAPS":          readBeginApplicationStructure,
		"BEGAPSBODY":      empty(func() commands.Command { return &commands.BeginApplicationStructureBody{} }),
		"ENDAPS":          empty(func() commands.Command { return &commands.EndApplicationStructure{} }),

		// metafile descriptor elements
		"MFVERSION":     readMetafileVersion,
		"MFDESC":        readMetafileDescription,
		"VDCTYPE":       readVdcType,
		"INTEGERPREC":   readIntegerPrecision,
		"REALPREC":      readRealPrecision,
		"INDEXPREC":     readIndexPrecision,
		"COLRPREC":      readColorPrecision,
		"COLRINDEXPREC": readColorIndexPrecision,
		"MAXCOLRINDEX":  readMaximumColorIndex,
		"COLRVALUEEXT":  readColorValueExtent,
		"MFELEMLIST":    readMetafileElementList,
		"BEGMFDEFAULTS": readMetafileDefaultsReplacement,
		"FONTLIST":      readFontList,
		"CHARSETLIST":   readCharacterSetList,
		"CHARCODING":    readCharacterCodingAnnouncer,
		"NAMEPREC":      readNamePrecision,
		"MAXVDCEXT":     readMaximumVdcExtent,
		"SEGPRIEXT":     readSegmentPriorityExtent,
		"COLRMODEL":     readColorModel,

		// picture descriptor elements
		"SCALEMODE":       readScalingMode,
		"COLRMODE":        readColorSelectionMode,
		"LINEWIDTHMODE":   readLineWidthSpecificationMode,
		"MARKERSIZEMODE":  readMarkerSizeSpecificationMode,
		"EDGEWIDTHMODE":   readEdgeWidthSpecificationMode,
		"VDCEXT":          readVdcExtent,
		"BACKCOLR":        readBackgroundColor,
		"DEVVP":           readDeviceViewport,
		"DEVVPMODE":       readDeviceViewportSpecificationMode,
		"DEVVPMAP":        readDeviceViewportMapping,
		"INTSTYLEMODE":    readInteriorStyleSpecificationMode,
		"LINEEDGETYPEDEF": readLineAndEdgeTypeDefinition,
		"HATCHSTYLEDEF":   readHatchStyleDefinition,
		"GEOPATDEF":       readGeometricPatternDefinition,

		// control elements
		"VDCINTEGERPREC":  readVdcIntegerPrecision,
		"VDCREALPREC":     readVdcRealPrecision,
		"AUXCOLR":         readAuxiliaryColor,
		"TRANSPARENCY":    readTransparency,
		"CLIPRECT":        readClipRectangle,
		"CLIP":            readClipIndicator,
		"LINECLIPMODE":    readLineClippingMode,
		"MARKERCLIPMODE":  readMarkerClippingMode,
		"EDGECLIPMODE":    readEdgeClippingMode,
		"NEWREGION":       empty(func() commands.Command { return &commands.NewRegion{} }),
		"SAVEPRIMCONT":    readSavePrimitiveContext,
		"RESPRIMCONT":     readRestorePrimitiveContext,
		"PROTREGION":      readProtectionRegionIndicator,
		"GENTEXTPATHMODE": readGeneralizedTextPathMode,
		"MITRELIMIT":      readMiterLimit,

		// graphical primitive elements
		"LINE":           pointList(false, polyline),
		"INCRLINE":       pointList(true, polyline),
		"DISJTLINE":      pointList(false, disjointPolyline),
		"INCRDISJTLINE":  pointList(true, disjointPolyline),
		"MARKER":         pointList(false, polymarker),
		"INCRMARKER":     pointList(true, polymarker),
		"TEXT":           readText,
		"RESTRTEXT":      readRestrictedText,
		"APNDTEXT":       readAppendText,
		"POLYGON":        pointList(false, polygon),
		"INCRPOLYGON":    pointList(true, polygon),
		"POLYGONSET":     readPolygonSet(false),
		"INCRPOLYGONSET": readPolygonSet(true),
		"CELLARRAY":      readCellArray,
		"GDP":            readGeneralizedDrawingPrimitive,
		"RECT":           readRectangle,
		"CIRCLE":         readCircle,
		"ARC3PT":         readCircularArc3Point,
		"ARC3PTCLOSE":    readCircularArc3PointClose,
		"ARCCTR":         readCircularArcCenter,
		"ARCCTRCLOSE":    readCircularArcCenterClose,
		"ELLIPSE":        readEllipse,
		"ELLIPARC":       readEllipticalArc,
		"ELLIPARCCLOSE":  readEllipticalArcClose,
		"CONNEDGE":       empty(func() commands.Command { return &commands.ConnectingEdge{} }),
		"NUB":            readNonUniformBSpline,
		"NURB":           readNonUniformRationalBSpline,
		"POLYBEZIER":     readPolybezier,

		// attribute elements
		"LINEINDEX":          indexParam(func(v int) commands.Command { return &commands.LineBundleIndex{Index: v} }),
		"LINETYPE":           indexParam(func(v int) commands.Command { return &commands.LineType{Index: v} }),
		"LINEWIDTH":          sizeParam(lineWidthMode, func(v float64) commands.Command { return &commands.LineWidth{Width: v} }),
		"LINECOLR":           colorParam(func(c core.Color) commands.Command { return &commands.LineColor{Color: c} }),
		"MARKERINDEX":        indexParam(func(v int) commands.Command { return &commands.MarkerBundleIndex{Index: v} }),
		"MARKERTYPE":         indexParam(func(v int) commands.Command { return &commands.MarkerType{Index: v} }),
		"MARKERSIZE":         sizeParam(markerSizeMode, func(v float64) commands.Command { return &commands.MarkerSize{Size: v} }),
		"MARKERCOLR":         colorParam(func(c core.Color) commands.Command { return &commands.MarkerColor{Color: c} }),
		"TEXTINDEX":          indexParam(func(v int) commands.Command { return &commands.TextBundleIndex{Index: v} }),
		"TEXTFONTINDEX":      indexParam(func(v int) commands.Command { return &commands.TextFontIndex{Index: v} }),
		"TEXTPREC":           readTextPrecision,
		"CHAREXPAN":          realParam(func(v float64) commands.Command { return &commands.CharacterExpansionFactor{Factor: v} }),
		"CHARSPACE":          realParam(func(v float64) commands.Command { return &commands.CharacterSpacing{Spacing: v} }),
		"TEXTCOLR":           colorParam(func(c core.Color) commands.Command { return &commands.TextColor{Color: c} }),
		"CHARHEIGHT":         readCharacterHeight,
		"CHARORI":            readCharacterOrientation,
		"TEXTPATH":           readTextPath,
		"TEXTALIGN":          readTextAlignment,
		"CHARSETINDEX":       indexParam(func(v int) commands.Command { return &commands.CharacterSetIndex{Index: v} }),
		"ALTCHARSETINDEX":    indexParam(func(v int) commands.Command { return &commands.AlternateCharacterSetIndex{Index: v} }),
		"FILLINDEX":          indexParam(func(v int) commands.Command { return &commands.FillBundleIndex{Index: v} }),
		"INTSTYLE":           readInteriorStyle,
		"FILLCOLR":           colorParam(func(c core.Color) commands.Command { return &commands.FillColor{Color: c} }),
		"HATCHINDEX":         indexParam(func(v int) commands.Command { return &commands.HatchIndex{Index: v} }),
		"PATINDEX":           indexParam(func(v int) commands.Command { return &commands.PatternIndex{Index: v} }),
		"EDGEINDEX":          indexParam(func(v int) commands.Command { return &commands.EdgeBundleIndex{Index: v} }),
		"EDGETYPE":           indexParam(func(v int) commands.Command { return &commands.EdgeType{Index: v} }),
		"EDGEWIDTH":          sizeParam(edgeWidthMode, func(v float64) commands.Command { return &commands.EdgeWidth{Width: v} }),
		"EDGECOLR":           colorParam(func(c core.Color) commands.Command { return &commands.EdgeColor{Color: c} }),
		"EDGEVIS":            readEdgeVisibility,
		"FILLREFPT":          readFillReferencePoint,
		"PATTABLE":           readPatternTable,
		"PATSIZE":            readPatternSize,
		"COLRTABLE":          readColorTable,
		"LINECAP":            readLineCap,
		"LINEJOIN":           indexParam(func(v int) commands.Command { return &commands.LineJoin{Index: v} }),
		"LINETYPECONT":       indexParam(func(v int) commands.Command { return &commands.LineTypeContinuation{Index: v} }),
		"LINETYPEINITOFFSET": realParam(func(v float64) commands.Command { return &commands.LineTypeInitialOffset{Offset: v} }),
		"EDGECAP":            readEdgeCap,
		"EDGEJOIN":           indexParam(func(v int) commands.Command { return &commands.EdgeJoin{Index: v} }),
		"EDGETYPECONT":       indexParam(func(v int) commands.Command { return &commands.EdgeTypeContinuation{Index: v} }),
		"EDGETYPEINITOFFSET": realParam(func(v float64) commands.Command { return &commands.EdgeTypeInitialOffset{Offset: v} }),

		// escape and external elements
		"ESCAPE":   readEscape,
		"MESSAGE":  readMessage,
		"APPLDATA": readApplicationData,

		// application structure descriptor elements
		"APSATTR": readApplicationStructureAttribute,
	}
}
