package commands

// Visitor receives decoded commands. Each command calls the method named
// after its type from Accept; ctx is whatever the caller passed to Accept.
//
// Embed NopVisitor to implement only the methods of interest.
type Visitor interface {
	// Delimiter elements
	VisitBeginMetafile(c *BeginMetafile, ctx any)
	VisitEndMetafile(c *EndMetafile, ctx any)
	VisitBeginPicture(c *BeginPicture, ctx any)
	VisitBeginPictureBody(c *BeginPictureBody, ctx any)
	VisitEndPicture(c *EndPicture, ctx any)
	VisitBeginSegment(c *BeginSegment, ctx any)
	VisitEndSegment(c *EndSegment, ctx any)
	VisitBeginFigure(c *BeginFigure, ctx any)
	VisitEndFigure(c *EndFigure, ctx any)
	VisitBeginProtectionRegion(c *BeginProtectionRegion, ctx any)
	VisitEndProtectionRegion(c *EndProtectionRegion, ctx any)
	VisitBeginCompoundLine(c *BeginCompoundLine, ctx any)
	VisitEndCompoundLine(c *EndCompoundLine, ctx any)
	VisitBeginCompoundTextPath(c *BeginCompoundTextPath, ctx any)
	VisitEndCompoundTextPath(c *EndCompoundTextPath, ctx any)
	VisitBeginTileArray(c *BeginTileArray, ctx any)
	VisitEndTileArray(c *EndTileArray, ctx any)
	VisitBeginApplicationStructure(c *BeginApplicationStructure, ctx any)
	VisitBeginApplicationStructureBody(c *BeginApplicationStructureBody, ctx any)
	VisitEndApplicationStructure(c *EndApplicationStructure, ctx any)

	// Metafile descriptor elements
	VisitMetafileVersion(c *MetafileVersion, ctx any)
	VisitMetafileDescription(c *MetafileDescription, ctx any)
	VisitVdcType(c *VdcType, ctx any)
	VisitIntegerPrecision(c *IntegerPrecision, ctx any)
	VisitRealPrecision(c *RealPrecision, ctx any)
	VisitIndexPrecision(c *IndexPrecision, ctx any)
	VisitColorPrecision(c *ColorPrecision, ctx any)
	VisitColorIndexPrecision(c *ColorIndexPrecision, ctx any)
	VisitMaximumColorIndex(c *MaximumColorIndex, ctx any)
	VisitColorValueExtent(c *ColorValueExtent, ctx any)
	VisitMetafileElementList(c *MetafileElementList, ctx any)
	VisitMetafileDefaultsReplacement(c *MetafileDefaultsReplacement, ctx any)
	VisitFontList(c *FontList, ctx any)
	VisitCharacterSetList(c *CharacterSetList, ctx any)
	VisitCharacterCodingAnnouncer(c *CharacterCodingAnnouncer, ctx any)
	VisitNamePrecision(c *NamePrecision, ctx any)
	VisitMaximumVdcExtent(c *MaximumVdcExtent, ctx any)
	VisitSegmentPriorityExtent(c *SegmentPriorityExtent, ctx any)
	VisitColorModel(c *ColorModel, ctx any)

	// Picture descriptor elements
	VisitScalingMode(c *ScalingMode, ctx any)
	VisitColorSelectionMode(c *ColorSelectionMode, ctx any)
	VisitLineWidthSpecificationMode(c *LineWidthSpecificationMode, ctx any)
	VisitMarkerSizeSpecificationMode(c *MarkerSizeSpecificationMode, ctx any)
	VisitEdgeWidthSpecificationMode(c *EdgeWidthSpecificationMode, ctx any)
	VisitVdcExtent(c *VdcExtent, ctx any)
	VisitBackgroundColor(c *BackgroundColor, ctx any)
	VisitDeviceViewport(c *DeviceViewport, ctx any)
	VisitDeviceViewportSpecificationMode(c *DeviceViewportSpecificationMode, ctx any)
	VisitDeviceViewportMapping(c *DeviceViewportMapping, ctx any)
	VisitInteriorStyleSpecificationMode(c *InteriorStyleSpecificationMode, ctx any)
	VisitLineAndEdgeTypeDefinition(c *LineAndEdgeTypeDefinition, ctx any)
	VisitHatchStyleDefinition(c *HatchStyleDefinition, ctx any)
	VisitGeometricPatternDefinition(c *GeometricPatternDefinition, ctx any)

	// Control elements
	VisitVdcIntegerPrecision(c *VdcIntegerPrecision, ctx any)
	VisitVdcRealPrecision(c *VdcRealPrecision, ctx any)
	VisitAuxiliaryColor(c *AuxiliaryColor, ctx any)
	VisitTransparency(c *Transparency, ctx any)
	VisitClipRectangle(c *ClipRectangle, ctx any)
	VisitClipIndicator(c *ClipIndicator, ctx any)
	VisitLineClippingMode(c *LineClippingMode, ctx any)
	VisitMarkerClippingMode(c *MarkerClippingMode, ctx any)
	VisitEdgeClippingMode(c *EdgeClippingMode, ctx any)
	VisitNewRegion(c *NewRegion, ctx any)
	VisitSavePrimitiveContext(c *SavePrimitiveContext, ctx any)
	VisitRestorePrimitiveContext(c *RestorePrimitiveContext, ctx any)
	VisitProtectionRegionIndicator(c *ProtectionRegionIndicator, ctx any)
	VisitGeneralizedTextPathMode(c *GeneralizedTextPathMode, ctx any)
	VisitMiterLimit(c *MiterLimit, ctx any)

	// Graphical primitive elements
	VisitPolyline(c *Polyline, ctx any)
	VisitDisjointPolyline(c *DisjointPolyline, ctx any)
	VisitPolymarker(c *Polymarker, ctx any)
	VisitText(c *Text, ctx any)
	VisitRestrictedText(c *RestrictedText, ctx any)
	VisitAppendText(c *AppendText, ctx any)
	VisitPolygon(c *Polygon, ctx any)
	VisitPolygonSet(c *PolygonSet, ctx any)
	VisitCellArray(c *CellArray, ctx any)
	VisitGeneralizedDrawingPrimitive(c *GeneralizedDrawingPrimitive, ctx any)
	VisitRectangle(c *Rectangle, ctx any)
	VisitCircle(c *Circle, ctx any)
	VisitCircularArc3Point(c *CircularArc3Point, ctx any)
	VisitCircularArc3PointClose(c *CircularArc3PointClose, ctx any)
	VisitCircularArcCenter(c *CircularArcCenter, ctx any)
	VisitCircularArcCenterClose(c *CircularArcCenterClose, ctx any)
	VisitEllipse(c *Ellipse, ctx any)
	VisitEllipticalArc(c *EllipticalArc, ctx any)
	VisitEllipticalArcClose(c *EllipticalArcClose, ctx any)
	VisitConnectingEdge(c *ConnectingEdge, ctx any)
	VisitNonUniformBSpline(c *NonUniformBSpline, ctx any)
	VisitNonUniformRationalBSpline(c *NonUniformRationalBSpline, ctx any)
	VisitPolybezier(c *Polybezier, ctx any)

	// Attribute elements
	VisitLineBundleIndex(c *LineBundleIndex, ctx any)
	VisitLineType(c *LineType, ctx any)
	VisitLineWidth(c *LineWidth, ctx any)
	VisitLineColor(c *LineColor, ctx any)
	VisitMarkerBundleIndex(c *MarkerBundleIndex, ctx any)
	VisitMarkerType(c *MarkerType, ctx any)
	VisitMarkerSize(c *MarkerSize, ctx any)
	VisitMarkerColor(c *MarkerColor, ctx any)
	VisitTextBundleIndex(c *TextBundleIndex, ctx any)
	VisitTextFontIndex(c *TextFontIndex, ctx any)
	VisitTextPrecision(c *TextPrecision, ctx any)
	VisitCharacterExpansionFactor(c *CharacterExpansionFactor, ctx any)
	VisitCharacterSpacing(c *CharacterSpacing, ctx any)
	VisitTextColor(c *TextColor, ctx any)
	VisitCharacterHeight(c *CharacterHeight, ctx any)
	VisitCharacterOrientation(c *CharacterOrientation, ctx any)
	VisitTextPath(c *TextPath, ctx any)
	VisitTextAlignment(c *TextAlignment, ctx any)
	VisitCharacterSetIndex(c *CharacterSetIndex, ctx any)
	VisitAlternateCharacterSetIndex(c *AlternateCharacterSetIndex, ctx any)
	VisitFillBundleIndex(c *FillBundleIndex, ctx any)
	VisitInteriorStyle(c *InteriorStyle, ctx any)
	VisitFillColor(c *FillColor, ctx any)
	VisitHatchIndex(c *HatchIndex, ctx any)
	VisitPatternIndex(c *PatternIndex, ctx any)
	VisitEdgeBundleIndex(c *EdgeBundleIndex, ctx any)
	VisitEdgeType(c *EdgeType, ctx any)
	VisitEdgeWidth(c *EdgeWidth, ctx any)
	VisitEdgeColor(c *EdgeColor, ctx any)
	VisitEdgeVisibility(c *EdgeVisibility, ctx any)
	VisitFillReferencePoint(c *FillReferencePoint, ctx any)
	VisitPatternTable(c *PatternTable, ctx any)
	VisitPatternSize(c *PatternSize, ctx any)
	VisitColorTable(c *ColorTable, ctx any)
	VisitLineCap(c *LineCap, ctx any)
	VisitLineJoin(c *LineJoin, ctx any)
	VisitLineTypeContinuation(c *LineTypeContinuation, ctx any)
	VisitLineTypeInitialOffset(c *LineTypeInitialOffset, ctx any)
	VisitEdgeCap(c *EdgeCap, ctx any)
	VisitEdgeJoin(c *EdgeJoin, ctx any)
	VisitEdgeTypeContinuation(c *EdgeTypeContinuation, ctx any)
	VisitEdgeTypeInitialOffset(c *EdgeTypeInitialOffset, ctx any)

	// Escape, external and application structure elements
	VisitEscape(c *Escape, ctx any)
	VisitMessage(c *Message, ctx any)
	VisitApplicationData(c *ApplicationData, ctx any)
	VisitApplicationStructureAttribute(c *ApplicationStructureAttribute, ctx any)

	VisitUnsupportedCommand(c *UnsupportedCommand, ctx any)
}

// NopVisitor implements Visitor with methods that do nothing.
type NopVisitor struct{}

var _ Visitor = NopVisitor{}

func (NopVisitor) VisitBeginMetafile(*BeginMetafile, any)                                     {}
func (NopVisitor) VisitEndMetafile(*EndMetafile, any)                                         {}
func (NopVisitor) VisitBeginPicture(*BeginPicture, any)                                       {}
func (NopVisitor) VisitBeginPictureBody(*BeginPictureBody, any)                               {}
func (NopVisitor) VisitEndPicture(*EndPicture, any)                                           {}
func (NopVisitor) VisitBeginSegment(*BeginSegment, any)                                       {}
func (NopVisitor) VisitEndSegment(*EndSegment, any)                                           {}
func (NopVisitor) VisitBeginFigure(*BeginFigure, any)                                         {}
func (NopVisitor) VisitEndFigure(*EndFigure, any)                                             {}
func (NopVisitor) VisitBeginProtectionRegion(*BeginProtectionRegion, any)                     {}
func (NopVisitor) VisitEndProtectionRegion(*EndProtectionRegion, any)                         {}
func (NopVisitor) VisitBeginCompoundLine(*BeginCompoundLine, any)                             {}
func (NopVisitor) VisitEndCompoundLine(*EndCompoundLine, any)                                 {}
func (NopVisitor) VisitBeginCompoundTextPath(*BeginCompoundTextPath, any)                     {}
func (NopVisitor) VisitEndCompoundTextPath(*EndCompoundTextPath, any)                         {}
func (NopVisitor) VisitBeginTileArray(*BeginTileArray, any)                                   {}
func (NopVisitor) VisitEndTileArray(*EndTileArray, any)                                       {}
func (NopVisitor) VisitBeginApplicationStructure(*BeginApplicationStructure, any)             {}
func (NopVisitor) VisitBeginApplicationStructureBody(*BeginApplicationStructureBody, any)     {}
func (NopVisitor) VisitEndApplicationStructure(*EndApplicationStructure, any)                 {}
func (NopVisitor) VisitMetafileVersion(*MetafileVersion, any)                                 {}
func (NopVisitor) VisitMetafileDescription(*MetafileDescription, any)                         {}
func (NopVisitor) VisitVdcType(*VdcType, any)                                                 {}
func (NopVisitor) VisitIntegerPrecision(*IntegerPrecision, any)                               {}
func (NopVisitor) VisitRealPrecision(*RealPrecision, any)                                     {}
func (NopVisitor) VisitIndexPrecision(*IndexPrecision, any)                                   {}
func (NopVisitor) VisitColorPrecision(*ColorPrecision, any)                                   {}
func (NopVisitor) VisitColorIndexPrecision(*ColorIndexPrecision, any)                         {}
func (NopVisitor) VisitMaximumColorIndex(*MaximumColorIndex, any)                             {}
func (NopVisitor) VisitColorValueExtent(*ColorValueExtent, any)                               {}
func (NopVisitor) VisitMetafileElementList(*MetafileElementList, any)                         {}
func (NopVisitor) VisitMetafileDefaultsReplacement(*MetafileDefaultsReplacement, any)         {}
func (NopVisitor) VisitFontList(*FontList, any)                                               {}
func (NopVisitor) VisitCharacterSetList(*CharacterSetList, any)                               {}
func (NopVisitor) VisitCharacterCodingAnnouncer(*CharacterCodingAnnouncer, any)               {}
func (NopVisitor) VisitNamePrecision(*NamePrecision, any)                                     {}
func (NopVisitor) VisitMaximumVdcExtent(*MaximumVdcExtent, any)                               {}
func (NopVisitor) VisitSegmentPriorityExtent(*SegmentPriorityExtent, any)                     {}
func (NopVisitor) VisitColorModel(*ColorModel, any)                                           {}
func (NopVisitor) VisitScalingMode(*ScalingMode, any)                                         {}
func (NopVisitor) VisitColorSelectionMode(*ColorSelectionMode, any)                           {}
func (NopVisitor) VisitLineWidthSpecificationMode(*LineWidthSpecificationMode, any)           {}
func (NopVisitor) VisitMarkerSizeSpecificationMode(*MarkerSizeSpecificationMode, any)         {}
func (NopVisitor) VisitEdgeWidthSpecificationMode(*EdgeWidthSpecificationMode, any)           {}
func (NopVisitor) VisitVdcExtent(*VdcExtent, any)                                             {}
func (NopVisitor) VisitBackgroundColor(*BackgroundColor, any)                                 {}
func (NopVisitor) VisitDeviceViewport(*DeviceViewport, any)                                   {}
func (NopVisitor) VisitDeviceViewportSpecificationMode(*DeviceViewportSpecificationMode, any) {}
func (NopVisitor) VisitDeviceViewportMapping(*DeviceViewportMapping, any)                     {}
func (NopVisitor) VisitInteriorStyleSpecificationMode(*InteriorStyleSpecificationMode, any)   {}
func (NopVisitor) VisitLineAndEdgeTypeDefinition(*LineAndEdgeTypeDefinition, any)             {}
func (NopVisitor) VisitHatchStyleDefinition(*HatchStyleDefinition, any)                       {}
func (NopVisitor) VisitGeometricPatternDefinition(*GeometricPatternDefinition, any)           {}
func (NopVisitor) VisitVdcIntegerPrecision(*VdcIntegerPrecision, any)                         {}
func (NopVisitor) VisitVdcRealPrecision(*VdcRealPrecision, any)                               {}
func (NopVisitor) VisitAuxiliaryColor(*AuxiliaryColor, any)                                   {}
func (NopVisitor) VisitTransparency(*Transparency, any)                                       {}
func (NopVisitor) VisitClipRectangle(*ClipRectangle, any)                                     {}
func (NopVisitor) VisitClipIndicator(*ClipIndicator, any)                                     {}
func (NopVisitor) VisitLineClippingMode(*LineClippingMode, any)                               {}
func (NopVisitor) VisitMarkerClippingMode(*MarkerClippingMode, any)                           {}
func (NopVisitor) VisitEdgeClippingMode(*EdgeClippingMode, any)                               {}
func (NopVisitor) VisitNewRegion(*NewRegion, any)                                             {}
func (NopVisitor) VisitSavePrimitiveContext(*SavePrimitiveContext, any)                       {}
func (NopVisitor) VisitRestorePrimitiveContext(*RestorePrimitiveContext, any)                 {}
func (NopVisitor) VisitProtectionRegionIndicator(*ProtectionRegionIndicator, any)             {}
func (NopVisitor) VisitGeneralizedTextPathMode(*GeneralizedTextPathMode, any)                 {}
func (NopVisitor) VisitMiterLimit(*MiterLimit, any)                                           {}
func (NopVisitor) VisitPolyline(*Polyline, any)                                               {}
func (NopVisitor) VisitDisjointPolyline(*DisjointPolyline, any)                               {}
func (NopVisitor) VisitPolymarker(*Polymarker, any)                                           {}
func (NopVisitor) VisitText(*Text, any)                                                       {}
func (NopVisitor) VisitRestrictedText(*RestrictedText, any)                                   {}
func (NopVisitor) VisitAppendText(*AppendText, any)                                           {}
func (NopVisitor) VisitPolygon(*Polygon, any)                                                 {}
func (NopVisitor) VisitPolygonSet(*PolygonSet, any)                                           {}
func (NopVisitor) VisitCellArray(*CellArray, any)                                             {}
func (NopVisitor) VisitGeneralizedDrawingPrimitive(*GeneralizedDrawingPrimitive, any)         {}
func (NopVisitor) VisitRectangle(*Rectangle, any)                                             {}
func (NopVisitor) VisitCircle(*Circle, any)                                                   {}
func (NopVisitor) VisitCircularArc3Point(*CircularArc3Point, any)                             {}
func (NopVisitor) VisitCircularArc3PointClose(*CircularArc3PointClose, any)                   {}
func (NopVisitor) VisitCircularArcCenter(*CircularArcCenter, any)                             {}
func (NopVisitor) VisitCircularArcCenterClose(*CircularArcCenterClose, any)                   {}
func (NopVisitor) VisitEllipse(*Ellipse, any)                                                 {}
func (NopVisitor) VisitEllipticalArc(*EllipticalArc, any)                                     {}
func (NopVisitor) VisitEllipticalArcClose(*EllipticalArcClose, any)                           {}
func (NopVisitor) VisitConnectingEdge(*ConnectingEdge, any)                                   {}
func (NopVisitor) VisitNonUniformBSpline(*NonUniformBSpline, any)                             {}
func (NopVisitor) VisitNonUniformRationalBSpline(*NonUniformRationalBSpline, any)             {}
func (NopVisitor) VisitPolybezier(*Polybezier, any)                                           {}
func (NopVisitor) VisitLineBundleIndex(*LineBundleIndex, any)                                 {}
func (NopVisitor) VisitLineType(*LineType, any)                                               {}
func (NopVisitor) VisitLineWidth(*LineWidth, any)                                             {}
func (NopVisitor) VisitLineColor(*LineColor, any)                                             {}
func (NopVisitor) VisitMarkerBundleIndex(*MarkerBundleIndex, any)                             {}
func (NopVisitor) VisitMarkerType(*MarkerType, any)                                           {}
func (NopVisitor) VisitMarkerSize(*MarkerSize, any)                                           {}
func (NopVisitor) VisitMarkerColor(*MarkerColor, any)                                         {}
func (NopVisitor) VisitTextBundleIndex(*TextBundleIndex, any)                                 {}
func (NopVisitor) VisitTextFontIndex(*TextFontIndex, any)                                     {}
func (NopVisitor) VisitTextPrecision(*TextPrecision, any)                                     {}
func (NopVisitor) VisitCharacterExpansionFactor(*CharacterExpansionFactor, any)               {}
func (NopVisitor) VisitCharacterSpacing(*CharacterSpacing, any)                               {}
func (NopVisitor) VisitTextColor(*TextColor, any)                                             {}
func (NopVisitor) VisitCharacterHeight(*CharacterHeight, any)                                 {}
func (NopVisitor) VisitCharacterOrientation(*CharacterOrientation, any)                       {}
func (NopVisitor) VisitTextPath(*TextPath, any)                                               {}
func (NopVisitor) VisitTextAlignment(*TextAlignment, any)                                     {}
func (NopVisitor) VisitCharacterSetIndex(*CharacterSetIndex, any)                             {}
func (NopVisitor) VisitAlternateCharacterSetIndex(*AlternateCharacterSetIndex, any)           {}
func (NopVisitor) VisitFillBundleIndex(*FillBundleIndex, any)                                 {}
func (NopVisitor) VisitInteriorStyle(*InteriorStyle, any)                                     {}
func (NopVisitor) VisitFillColor(*FillColor, any)                                             {}
func (NopVisitor) VisitHatchIndex(*HatchIndex, any)                                           {}
func (NopVisitor) VisitPatternIndex(*PatternIndex, any)                                       {}
func (NopVisitor) VisitEdgeBundleIndex(*EdgeBundleIndex, any)                                 {}
func (NopVisitor) VisitEdgeType(*EdgeType, any)                                               {}
func (NopVisitor) VisitEdgeWidth(*EdgeWidth, any)                                             {}
func (NopVisitor) VisitEdgeColor(*EdgeColor, any)                                             {}
func (NopVisitor) VisitEdgeVisibility(*EdgeVisibility, any)                                   {}
func (NopVisitor) VisitFillReferencePoint(*FillReferencePoint, any)                           {}
func (NopVisitor) VisitPatternTable(*PatternTable, any)                                       {}
func (NopVisitor) VisitPatternSize(*PatternSize, any)                                         {}
func (NopVisitor) VisitColorTable(*ColorTable, any)                                           {}
func (NopVisitor) VisitLineCap(*LineCap, any)                                                 {}
func (NopVisitor) VisitLineJoin(*LineJoin, any)                                               {}
func (NopVisitor) VisitLineTypeContinuation(*LineTypeContinuation, any)                       {}
func (NopVisitor) VisitLineTypeInitialOffset(*LineTypeInitialOffset, any)                     {}
func (NopVisitor) VisitEdgeCap(*EdgeCap, any)                                                 {}
func (NopVisitor) VisitEdgeJoin(*EdgeJoin, any)                                               {}
func (NopVisitor) VisitEdgeTypeContinuation(*EdgeTypeContinuation, any)                       {}
func (NopVisitor) VisitEdgeTypeInitialOffset(*EdgeTypeInitialOffset, any)                     {}
func (NopVisitor) VisitEscape(*Escape, any)                                                   {}
func (NopVisitor) VisitMessage(*Message, any)                                                 {}
func (NopVisitor) VisitApplicationData(*ApplicationData, any)                                 {}
func (NopVisitor) VisitApplicationStructureAttribute(*ApplicationStructureAttribute, any)     {}
func (NopVisitor) VisitUnsupportedCommand(*UnsupportedCommand, any)                           {}
