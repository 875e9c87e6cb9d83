package commands

import "github.com/tsawler/cgminfo/core"

// BeginMetafile is BEGIN METAFILE (0/1)
type BeginMetafile struct {
	Name string
}

func (*BeginMetafile) Element() Element            { return Element{0, 1} }
func (c *BeginMetafile) Accept(v Visitor, ctx any) { v.VisitBeginMetafile(c, ctx) }

// EndMetafile is END METAFILE (0/2)
type EndMetafile struct{}

func (*EndMetafile) Element() Element            { return Element{0, 2} }
func (c *EndMetafile) Accept(v Visitor, ctx any) { v.VisitEndMetafile(c, ctx) }

// BeginPicture is BEGIN PICTURE (0/3)
type BeginPicture struct {
	Name string
}

func (*BeginPicture) Element() Element            { return Element{0, 3} }
func (c *BeginPicture) Accept(v Visitor, ctx any) { v.VisitBeginPicture(c, ctx) }

// BeginPictureBody is BEGIN PICTURE BODY (0/4)
type BeginPictureBody struct{}

func (*BeginPictureBody) Element() Element            { return Element{0, 4} }
func (c *BeginPictureBody) Accept(v Visitor, ctx any) { v.VisitBeginPictureBody(c, ctx) }

// EndPicture is END PICTURE (0/5)
type EndPicture struct{}

func (*EndPicture) Element() Element            { return Element{0, 5} }
func (c *EndPicture) Accept(v Visitor, ctx any) { v.VisitEndPicture(c, ctx) }

// BeginSegment is BEGIN SEGMENT (0/6)
type BeginSegment struct {
	Identifier int
}

func (*BeginSegment) Element() Element            { return Element{0, 6} }
func (c *BeginSegment) Accept(v Visitor, ctx any) { v.VisitBeginSegment(c, ctx) }

// EndSegment is END SEGMENT (0/7)
type EndSegment struct{}

func (*EndSegment) Element() Element            { return Element{0, 7} }
func (c *EndSegment) Accept(v Visitor, ctx any) { v.VisitEndSegment(c, ctx) }

// BeginFigure is BEGIN FIGURE (0/8)
type BeginFigure struct{}

func (*BeginFigure) Element() Element            { return Element{0, 8} }
func (c *BeginFigure) Accept(v Visitor, ctx any) { v.VisitBeginFigure(c, ctx) }

// EndFigure is END FIGURE (0/9)
type EndFigure struct{}

func (*EndFigure) Element() Element            { return Element{0, 9} }
func (c *EndFigure) Accept(v Visitor, ctx any) { v.VisitEndFigure(c, ctx) }

// BeginProtectionRegion is BEGIN PROTECTION REGION (0/13)
type BeginProtectionRegion struct {
	RegionIndex int
}

func (*BeginProtectionRegion) Element() Element            { return Element{0, 13} }
func (c *BeginProtectionRegion) Accept(v Visitor, ctx any) { v.VisitBeginProtectionRegion(c, ctx) }

// EndProtectionRegion is END PROTECTION REGION (0/14)
type EndProtectionRegion struct{}

func (*EndProtectionRegion) Element() Element            { return Element{0, 14} }
func (c *EndProtectionRegion) Accept(v Visitor, ctx any) { v.VisitEndProtectionRegion(c, ctx) }

// BeginCompoundLine is BEGIN COMPOUND LINE (0/15)
type BeginCompoundLine struct{}

func (*BeginCompoundLine) Element() Element            { return Element{0, 15} }
func (c *BeginCompoundLine) Accept(v Visitor, ctx any) { v.VisitBeginCompoundLine(c, ctx) }

// EndCompoundLine is END COMPOUND LINE (0/16)
type EndCompoundLine struct{}

func (*EndCompoundLine) Element() Element            { return Element{0, 16} }
func (c *EndCompoundLine) Accept(v Visitor, ctx any) { v.VisitEndCompoundLine(c, ctx) }

// BeginCompoundTextPath is BEGIN COMPOUND TEXT PATH (0/17)
type BeginCompoundTextPath struct{}

func (*BeginCompoundTextPath) Element() Element            { return Element{0, 17} }
func (c *BeginCompoundTextPath) Accept(v Visitor, ctx any) { v.VisitBeginCompoundTextPath(c, ctx) }

// EndCompoundTextPath is END COMPOUND TEXT PATH (0/18)
type EndCompoundTextPath struct{}

func (*EndCompoundTextPath) Element() Element            { return Element{0, 18} }
func (c *EndCompoundTextPath) Accept(v Visitor, ctx any) { v.VisitEndCompoundTextPath(c, ctx) }

// BeginTileArray is BEGIN TILE ARRAY (0/19). Directions are in degrees
// (0, 90, 180 or 270).
type BeginTileArray struct {
	Position                 core.Point
	CellPathDirection        int
	LineProgressionDirection int
	PathDirectionTileCount   int
	LineDirectionTileCount   int
	PathDirectionCellCount   int
	LineDirectionCellCount   int
	CellSizePath             float64
	CellSizeLine             float64
	ImageOffsetPath          int
	ImageOffsetLine          int
	ImageCellCountPath       int
	ImageCellCountLine       int
}

func (*BeginTileArray) Element() Element            { return Element{0, 19} }
func (c *BeginTileArray) Accept(v Visitor, ctx any) { v.VisitBeginTileArray(c, ctx) }

// EndTileArray is END TILE ARRAY (0/20)
type EndTileArray struct{}

func (*EndTileArray) Element() Element            { return Element{0, 20} }
func (c *EndTileArray) Accept(v Visitor, ctx any) { v.VisitEndTileArray(c, ctx) }

// BeginApplicationStructure is BEGIN APPLICATION STRUCTURE (0/21)
type BeginApplicationStructure struct {
	Identifier  string
	Type        string
	Inheritance InheritanceFlag
}

func (*BeginApplicationStructure) Element() Element { return Element{0, 21} }
func (c *BeginApplicationStructure) Accept(v Visitor, ctx any) {
	v.VisitBeginApplicationStructure(c, ctx)
}

// BeginApplicationStructureBody is BEGIN APPLICATION STRUCTURE BODY (0/22)
type BeginApplicationStructureBody struct{}

func (*BeginApplicationStructureBody) Element() Element { return Element{0, 22} }
func (c *BeginApplicationStructureBody) Accept(v Visitor, ctx any) {
	v.VisitBeginApplicationStructureBody(c, ctx)
}

// EndApplicationStructure is END APPLICATION STRUCTURE (0/23)
type EndApplicationStructure struct{}

func (*EndApplicationStructure) Element() Element { return Element{0, 23} }
func (c *EndApplicationStructure) Accept(v Visitor, ctx any) {
	v.VisitEndApplicationStructure(c, ctx)
}
