package commands

import "github.com/tsawler/cgminfo/core"

// VdcIntegerPrecision is VDC INTEGER PRECISION (3/1), in bits
type VdcIntegerPrecision struct {
	Precision int
}

func (*VdcIntegerPrecision) Element() Element            { return Element{3, 1} }
func (c *VdcIntegerPrecision) Accept(v Visitor, ctx any) { v.VisitVdcIntegerPrecision(c, ctx) }

// VdcRealPrecision is VDC REAL PRECISION (3/2)
type VdcRealPrecision struct {
	Specification core.RealPrecision
}

func (*VdcRealPrecision) Element() Element            { return Element{3, 2} }
func (c *VdcRealPrecision) Accept(v Visitor, ctx any) { v.VisitVdcRealPrecision(c, ctx) }

// AuxiliaryColor is AUXILIARY COLOUR (3/3)
type AuxiliaryColor struct {
	Color core.Color
}

func (*AuxiliaryColor) Element() Element            { return Element{3, 3} }
func (c *AuxiliaryColor) Accept(v Visitor, ctx any) { v.VisitAuxiliaryColor(c, ctx) }

// Transparency is TRANSPARENCY (3/4)
type Transparency struct {
	Indicator OnOff
}

func (*Transparency) Element() Element            { return Element{3, 4} }
func (c *Transparency) Accept(v Visitor, ctx any) { v.VisitTransparency(c, ctx) }

// ClipRectangle is CLIP RECTANGLE (3/5)
type ClipRectangle struct {
	FirstCorner  core.Point
	SecondCorner core.Point
}

func (*ClipRectangle) Element() Element            { return Element{3, 5} }
func (c *ClipRectangle) Accept(v Visitor, ctx any) { v.VisitClipRectangle(c, ctx) }

// ClipIndicator is CLIP INDICATOR (3/6)
type ClipIndicator struct {
	Indicator OnOff
}

func (*ClipIndicator) Element() Element            { return Element{3, 6} }
func (c *ClipIndicator) Accept(v Visitor, ctx any) { v.VisitClipIndicator(c, ctx) }

// LineClippingMode is LINE CLIPPING MODE (3/7)
type LineClippingMode struct {
	Mode ClippingMode
}

func (*LineClippingMode) Element() Element            { return Element{3, 7} }
func (c *LineClippingMode) Accept(v Visitor, ctx any) { v.VisitLineClippingMode(c, ctx) }

// MarkerClippingMode is MARKER CLIPPING MODE (3/8)
type MarkerClippingMode struct {
	Mode ClippingMode
}

func (*MarkerClippingMode) Element() Element            { return Element{3, 8} }
func (c *MarkerClippingMode) Accept(v Visitor, ctx any) { v.VisitMarkerClippingMode(c, ctx) }

// EdgeClippingMode is EDGE CLIPPING MODE (3/9)
type EdgeClippingMode struct {
	Mode ClippingMode
}

func (*EdgeClippingMode) Element() Element            { return Element{3, 9} }
func (c *EdgeClippingMode) Accept(v Visitor, ctx any) { v.VisitEdgeClippingMode(c, ctx) }

// NewRegion is NEW REGION (3/10)
type NewRegion struct{}

func (*NewRegion) Element() Element            { return Element{3, 10} }
func (c *NewRegion) Accept(v Visitor, ctx any) { v.VisitNewRegion(c, ctx) }

// SavePrimitiveContext is SAVE PRIMITIVE CONTEXT (3/11)
type SavePrimitiveContext struct {
	ContextName int
}

func (*SavePrimitiveContext) Element() Element            { return Element{3, 11} }
func (c *SavePrimitiveContext) Accept(v Visitor, ctx any) { v.VisitSavePrimitiveContext(c, ctx) }

// RestorePrimitiveContext is RESTORE PRIMITIVE CONTEXT (3/12)
type RestorePrimitiveContext struct {
	ContextName int
}

func (*RestorePrimitiveContext) Element() Element { return Element{3, 12} }
func (c *RestorePrimitiveContext) Accept(v Visitor, ctx any) {
	v.VisitRestorePrimitiveContext(c, ctx)
}

// ProtectionRegionIndicator is PROTECTION REGION INDICATOR (3/17)
type ProtectionRegionIndicator struct {
	Index     int
	Indicator RegionIndicator
}

func (*ProtectionRegionIndicator) Element() Element { return Element{3, 17} }
func (c *ProtectionRegionIndicator) Accept(v Visitor, ctx any) {
	v.VisitProtectionRegionIndicator(c, ctx)
}

// GeneralizedTextPathMode is GENERALIZED TEXT PATH MODE (3/18)
type GeneralizedTextPathMode struct {
	Mode TextPathMode
}

func (*GeneralizedTextPathMode) Element() Element { return Element{3, 18} }
func (c *GeneralizedTextPathMode) Accept(v Visitor, ctx any) {
	v.VisitGeneralizedTextPathMode(c, ctx)
}

// MiterLimit is MITRE LIMIT (3/19)
type MiterLimit struct {
	Limit float64
}

func (*MiterLimit) Element() Element            { return Element{3, 19} }
func (c *MiterLimit) Accept(v Visitor, ctx any) { v.VisitMiterLimit(c, ctx) }
