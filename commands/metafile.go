package commands

import "github.com/tsawler/cgminfo/core"

// MetafileVersion is METAFILE VERSION (1/1)
type MetafileVersion struct {
	Version int
}

func (*MetafileVersion) Element() Element            { return Element{1, 1} }
func (c *MetafileVersion) Accept(v Visitor, ctx any) { v.VisitMetafileVersion(c, ctx) }

// MetafileDescription is METAFILE DESCRIPTION (1/2)
type MetafileDescription struct {
	Description string
}

func (*MetafileDescription) Element() Element            { return Element{1, 2} }
func (c *MetafileDescription) Accept(v Visitor, ctx any) { v.VisitMetafileDescription(c, ctx) }

// VdcType is VDC TYPE (1/3)
type VdcType struct {
	Specification core.VdcType
}

func (*VdcType) Element() Element            { return Element{1, 3} }
func (c *VdcType) Accept(v Visitor, ctx any) { v.VisitVdcType(c, ctx) }

// IntegerPrecision is INTEGER PRECISION (1/4), in bits
type IntegerPrecision struct {
	Precision int
}

func (*IntegerPrecision) Element() Element            { return Element{1, 4} }
func (c *IntegerPrecision) Accept(v Visitor, ctx any) { v.VisitIntegerPrecision(c, ctx) }

// RealPrecision is REAL PRECISION (1/5)
type RealPrecision struct {
	Specification core.RealPrecision
}

func (*RealPrecision) Element() Element            { return Element{1, 5} }
func (c *RealPrecision) Accept(v Visitor, ctx any) { v.VisitRealPrecision(c, ctx) }

// IndexPrecision is INDEX PRECISION (1/6), in bits
type IndexPrecision struct {
	Precision int
}

func (*IndexPrecision) Element() Element            { return Element{1, 6} }
func (c *IndexPrecision) Accept(v Visitor, ctx any) { v.VisitIndexPrecision(c, ctx) }

// ColorPrecision is COLOUR PRECISION (1/7), in bits
type ColorPrecision struct {
	Precision int
}

func (*ColorPrecision) Element() Element            { return Element{1, 7} }
func (c *ColorPrecision) Accept(v Visitor, ctx any) { v.VisitColorPrecision(c, ctx) }

// ColorIndexPrecision is COLOUR INDEX PRECISION (1/8), in bits
type ColorIndexPrecision struct {
	Precision int
}

func (*ColorIndexPrecision) Element() Element            { return Element{1, 8} }
func (c *ColorIndexPrecision) Accept(v Visitor, ctx any) { v.VisitColorIndexPrecision(c, ctx) }

// MaximumColorIndex is MAXIMUM COLOUR INDEX (1/9)
type MaximumColorIndex struct {
	Index int
}

func (*MaximumColorIndex) Element() Element            { return Element{1, 9} }
func (c *MaximumColorIndex) Accept(v Visitor, ctx any) { v.VisitMaximumColorIndex(c, ctx) }

// ColorValueExtent is COLOUR VALUE EXTENT (1/10). RGB and CMYK extents use
// Minimum and Maximum; CIE based models use the three scale values.
type ColorValueExtent struct {
	ColorSpace  ColorSpace
	Minimum     core.Color
	Maximum     core.Color
	FirstScale  float64
	SecondScale float64
	ThirdScale  float64
}

func (*ColorValueExtent) Element() Element            { return Element{1, 10} }
func (c *ColorValueExtent) Accept(v Visitor, ctx any) { v.VisitColorValueExtent(c, ctx) }

// MetafileElementList is METAFILE ELEMENT LIST (1/11). Entries are element
// names or set names such as "DRAWINGPLUS".
type MetafileElementList struct {
	Elements []string
}

func (*MetafileElementList) Element() Element            { return Element{1, 11} }
func (c *MetafileElementList) Accept(v Visitor, ctx any) { v.VisitMetafileElementList(c, ctx) }

// MetafileDefaultsReplacement is METAFILE DEFAULTS REPLACEMENT (1/12). It
// wraps the elements declared between BEGMFDEFAULTS and ENDMFDEFAULTS.
type MetafileDefaultsReplacement struct {
	Commands []Command
}

func (*MetafileDefaultsReplacement) Element() Element { return Element{1, 12} }
func (c *MetafileDefaultsReplacement) Accept(v Visitor, ctx any) {
	v.VisitMetafileDefaultsReplacement(c, ctx)
}

// FontList is FONT LIST (1/13)
type FontList struct {
	Fonts []string
}

func (*FontList) Element() Element            { return Element{1, 13} }
func (c *FontList) Accept(v Visitor, ctx any) { v.VisitFontList(c, ctx) }

// CharacterSetListEntry is one entry of a CHARACTER SET LIST
type CharacterSetListEntry struct {
	Type        CharacterSetType
	Designation string
}

// CharacterSetList is CHARACTER SET LIST (1/14)
type CharacterSetList struct {
	Entries []CharacterSetListEntry
}

func (*CharacterSetList) Element() Element            { return Element{1, 14} }
func (c *CharacterSetList) Accept(v Visitor, ctx any) { v.VisitCharacterSetList(c, ctx) }

// CharacterCodingAnnouncer is CHARACTER CODING ANNOUNCER (1/15)
type CharacterCodingAnnouncer struct {
	Announcer CharacterCodingAnnouncerType
}

func (*CharacterCodingAnnouncer) Element() Element { return Element{1, 15} }
func (c *CharacterCodingAnnouncer) Accept(v Visitor, ctx any) {
	v.VisitCharacterCodingAnnouncer(c, ctx)
}

// NamePrecision is NAME PRECISION (1/16), in bits
type NamePrecision struct {
	Precision int
}

func (*NamePrecision) Element() Element            { return Element{1, 16} }
func (c *NamePrecision) Accept(v Visitor, ctx any) { v.VisitNamePrecision(c, ctx) }

// MaximumVdcExtent is MAXIMUM VDC EXTENT (1/17)
type MaximumVdcExtent struct {
	FirstCorner  core.Point
	SecondCorner core.Point
}

func (*MaximumVdcExtent) Element() Element            { return Element{1, 17} }
func (c *MaximumVdcExtent) Accept(v Visitor, ctx any) { v.VisitMaximumVdcExtent(c, ctx) }

// SegmentPriorityExtent is SEGMENT PRIORITY EXTENT (1/18)
type SegmentPriorityExtent struct {
	Minimum int
	Maximum int
}

func (*SegmentPriorityExtent) Element() Element            { return Element{1, 18} }
func (c *SegmentPriorityExtent) Accept(v Visitor, ctx any) { v.VisitSegmentPriorityExtent(c, ctx) }

// ColorModel is COLOUR MODEL (1/19)
type ColorModel struct {
	Model core.ColorModel
}

func (*ColorModel) Element() Element            { return Element{1, 19} }
func (c *ColorModel) Accept(v Visitor, ctx any) { v.VisitColorModel(c, ctx) }
