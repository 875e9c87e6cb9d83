// Package preview collects the outline geometry of a metafile and renders
// it into a raster image.
package preview

import (
	"github.com/tsawler/cgminfo/core"
)

// Shape is an outline in VDC space.
type Shape struct {
	Points []core.Point
	Closed bool
}

// Context is the visitor context of GeometryVisitor. It tracks the VDC
// extent, the bounds of everything drawn and the outlines themselves.
type Context struct {
	Shapes []Shape

	// LastText is the most recent TEXT or RESTRICTED TEXT string
	LastText string

	VdcExtent BBox
	hasExtent bool

	// Directions of the VDC axes: +1 when the extent runs from lower to
	// higher values, -1 otherwise
	DirectionX float64
	DirectionY float64

	GeometryExtent BBox
	hasGeometry    bool
}

// NewContext returns an empty context with default axis directions.
func NewContext() *Context {
	return &Context{DirectionX: 1, DirectionY: 1}
}

// SetExtent records the VDC extent. The corner order gives the axis
// directions.
func (c *Context) SetExtent(lowerLeft, upperRight core.Point) {
	c.VdcExtent = NewBBoxFromPoints(lowerLeft, upperRight)
	c.hasExtent = true
	c.DirectionX = 1
	if lowerLeft.X > upperRight.X {
		c.DirectionX = -1
	}
	c.DirectionY = 1
	if lowerLeft.Y > upperRight.Y {
		c.DirectionY = -1
	}
}

// HasExtent reports whether a VDC extent was seen.
func (c *Context) HasExtent() bool {
	return c.hasExtent
}

// IncreaseBounds grows the geometry extent to include p.
func (c *Context) IncreaseBounds(p core.Point) {
	c.IncreaseBoundsRect(BBox{X: p.X, Y: p.Y, Width: 1, Height: 1})
}

// IncreaseBoundsRect grows the geometry extent to include b.
func (c *Context) IncreaseBoundsRect(b BBox) {
	if !c.hasGeometry {
		c.GeometryExtent = b
		c.hasGeometry = true
		return
	}
	c.GeometryExtent = c.GeometryExtent.Union(b)
}

// Add records a shape and grows the bounds by its points.
func (c *Context) Add(s Shape) {
	if len(s.Points) == 0 {
		return
	}
	c.Shapes = append(c.Shapes, s)
	for _, p := range s.Points {
		c.IncreaseBounds(p)
	}
}

// Frame is the area a preview shows: the VDC extent when one was declared,
// otherwise the geometry extent.
func (c *Context) Frame() (BBox, bool) {
	if c.hasExtent && !c.VdcExtent.IsEmpty() {
		return c.VdcExtent, true
	}
	if c.hasGeometry && !c.GeometryExtent.IsEmpty() {
		return c.GeometryExtent, true
	}
	return BBox{}, false
}
