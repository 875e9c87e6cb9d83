package commands

import "github.com/tsawler/cgminfo/core"

// Polyline is POLYLINE (4/1). The clear text INCRLINE form decodes to the
// same command with its relative offsets resolved to absolute points.
type Polyline struct {
	Points []core.Point
}

func (*Polyline) Element() Element            { return Element{4, 1} }
func (c *Polyline) Accept(v Visitor, ctx any) { v.VisitPolyline(c, ctx) }

// DisjointPolyline is DISJOINT POLYLINE (4/2); points pair up into segments
type DisjointPolyline struct {
	Points []core.Point
}

func (*DisjointPolyline) Element() Element            { return Element{4, 2} }
func (c *DisjointPolyline) Accept(v Visitor, ctx any) { v.VisitDisjointPolyline(c, ctx) }

// Polymarker is POLYMARKER (4/3)
type Polymarker struct {
	Points []core.Point
}

func (*Polymarker) Element() Element            { return Element{4, 3} }
func (c *Polymarker) Accept(v Visitor, ctx any) { v.VisitPolymarker(c, ctx) }

// Text is TEXT (4/4)
type Text struct {
	Position core.Point
	Final    bool
	Text     string
}

func (*Text) Element() Element            { return Element{4, 4} }
func (c *Text) Accept(v Visitor, ctx any) { v.VisitText(c, ctx) }

// RestrictedText is RESTRICTED TEXT (4/5)
type RestrictedText struct {
	DeltaWidth  float64
	DeltaHeight float64
	Position    core.Point
	Final       bool
	Text        string
}

func (*RestrictedText) Element() Element            { return Element{4, 5} }
func (c *RestrictedText) Accept(v Visitor, ctx any) { v.VisitRestrictedText(c, ctx) }

// AppendText is APPEND TEXT (4/6)
type AppendText struct {
	Final bool
	Text  string
}

func (*AppendText) Element() Element            { return Element{4, 6} }
func (c *AppendText) Accept(v Visitor, ctx any) { v.VisitAppendText(c, ctx) }

// Polygon is POLYGON (4/7)
type Polygon struct {
	Points []core.Point
}

func (*Polygon) Element() Element            { return Element{4, 7} }
func (c *Polygon) Accept(v Visitor, ctx any) { v.VisitPolygon(c, ctx) }

// PolygonSet is POLYGON SET (4/8). Flags[i] belongs to Vertices[i].
type PolygonSet struct {
	Vertices []core.Point
	Flags    []EdgeOutFlag
}

func (*PolygonSet) Element() Element            { return Element{4, 8} }
func (c *PolygonSet) Accept(v Visitor, ctx any) { v.VisitPolygonSet(c, ctx) }

// CellArray is CELL ARRAY (4/9). Colors holds NX*NY cells in row order.
// A local colour precision of 0 means the metafile default was used.
type CellArray struct {
	CornerP             core.Point
	CornerQ             core.Point
	CornerR             core.Point
	NX                  int
	NY                  int
	LocalColorPrecision int
	Colors              []core.Color
}

func (*CellArray) Element() Element            { return Element{4, 9} }
func (c *CellArray) Accept(v Visitor, ctx any) { v.VisitCellArray(c, ctx) }

// GeneralizedDrawingPrimitive is GENERALIZED DRAWING PRIMITIVE (4/10)
type GeneralizedDrawingPrimitive struct {
	Identifier int
	Points     []core.Point
	DataRecord core.StructuredDataRecord
}

func (*GeneralizedDrawingPrimitive) Element() Element { return Element{4, 10} }
func (c *GeneralizedDrawingPrimitive) Accept(v Visitor, ctx any) {
	v.VisitGeneralizedDrawingPrimitive(c, ctx)
}

// Rectangle is RECTANGLE (4/11)
type Rectangle struct {
	FirstCorner  core.Point
	SecondCorner core.Point
}

func (*Rectangle) Element() Element            { return Element{4, 11} }
func (c *Rectangle) Accept(v Visitor, ctx any) { v.VisitRectangle(c, ctx) }

// Circle is CIRCLE (4/12)
type Circle struct {
	Center core.Point
	Radius float64
}

func (*Circle) Element() Element            { return Element{4, 12} }
func (c *Circle) Accept(v Visitor, ctx any) { v.VisitCircle(c, ctx) }

// CircularArc3Point is CIRCULAR ARC 3 POINT (4/13)
type CircularArc3Point struct {
	Start        core.Point
	Intermediate core.Point
	End          core.Point
}

func (*CircularArc3Point) Element() Element            { return Element{4, 13} }
func (c *CircularArc3Point) Accept(v Visitor, ctx any) { v.VisitCircularArc3Point(c, ctx) }

// CircularArc3PointClose is CIRCULAR ARC 3 POINT CLOSE (4/14)
type CircularArc3PointClose struct {
	Start        core.Point
	Intermediate core.Point
	End          core.Point
	Closure      ArcClosureType
}

func (*CircularArc3PointClose) Element() Element { return Element{4, 14} }
func (c *CircularArc3PointClose) Accept(v Visitor, ctx any) {
	v.VisitCircularArc3PointClose(c, ctx)
}

// CircularArcCenter is CIRCULAR ARC CENTRE (4/15). The vectors are
// relative to Center.
type CircularArcCenter struct {
	Center      core.Point
	StartVector core.Point
	EndVector   core.Point
	Radius      float64
}

func (*CircularArcCenter) Element() Element            { return Element{4, 15} }
func (c *CircularArcCenter) Accept(v Visitor, ctx any) { v.VisitCircularArcCenter(c, ctx) }

// CircularArcCenterClose is CIRCULAR ARC CENTRE CLOSE (4/16)
type CircularArcCenterClose struct {
	Center      core.Point
	StartVector core.Point
	EndVector   core.Point
	Radius      float64
	Closure     ArcClosureType
}

func (*CircularArcCenterClose) Element() Element { return Element{4, 16} }
func (c *CircularArcCenterClose) Accept(v Visitor, ctx any) {
	v.VisitCircularArcCenterClose(c, ctx)
}

// Ellipse is ELLIPSE (4/17), given by its centre and the end points of two
// conjugate diameters.
type Ellipse struct {
	Center                  core.Point
	FirstConjugateDiameter  core.Point
	SecondConjugateDiameter core.Point
}

func (*Ellipse) Element() Element            { return Element{4, 17} }
func (c *Ellipse) Accept(v Visitor, ctx any) { v.VisitEllipse(c, ctx) }

// EllipticalArc is ELLIPTICAL ARC (4/18)
type EllipticalArc struct {
	Center                  core.Point
	FirstConjugateDiameter  core.Point
	SecondConjugateDiameter core.Point
	StartVector             core.Point
	EndVector               core.Point
}

func (*EllipticalArc) Element() Element            { return Element{4, 18} }
func (c *EllipticalArc) Accept(v Visitor, ctx any) { v.VisitEllipticalArc(c, ctx) }

// EllipticalArcClose is ELLIPTICAL ARC CLOSE (4/19)
type EllipticalArcClose struct {
	Center                  core.Point
	FirstConjugateDiameter  core.Point
	SecondConjugateDiameter core.Point
	StartVector             core.Point
	EndVector               core.Point
	Closure                 ArcClosureType
}

func (*EllipticalArcClose) Element() Element            { return Element{4, 19} }
func (c *EllipticalArcClose) Accept(v Visitor, ctx any) { v.VisitEllipticalArcClose(c, ctx) }

// ConnectingEdge is CONNECTING EDGE (4/21)
type ConnectingEdge struct{}

func (*ConnectingEdge) Element() Element            { return Element{4, 21} }
func (c *ConnectingEdge) Accept(v Visitor, ctx any) { v.VisitConnectingEdge(c, ctx) }

// NonUniformBSpline is NON-UNIFORM B-SPLINE (4/24). There are
// SplineOrder+len(ControlPoints) knots.
type NonUniformBSpline struct {
	SplineOrder   int
	ControlPoints []core.Point
	Knots         []float64
	Start         float64
	End           float64
}

func (*NonUniformBSpline) Element() Element            { return Element{4, 24} }
func (c *NonUniformBSpline) Accept(v Visitor, ctx any) { v.VisitNonUniformBSpline(c, ctx) }

// NonUniformRationalBSpline is NON-UNIFORM RATIONAL B-SPLINE (4/25)
type NonUniformRationalBSpline struct {
	SplineOrder   int
	ControlPoints []core.Point
	Knots         []float64
	Start         float64
	End           float64
	Weights       []float64
}

func (*NonUniformRationalBSpline) Element() Element { return Element{4, 25} }
func (c *NonUniformRationalBSpline) Accept(v Visitor, ctx any) {
	v.VisitNonUniformRationalBSpline(c, ctx)
}

// Polybezier is POLYBEZIER (4/26). Continuity 1 means discontinuous
// (4 points per curve), 2 means continuous (3 points per curve after the
// first).
type Polybezier struct {
	ContinuityIndicator int
	Points              []core.Point
}

func (*Polybezier) Element() Element            { return Element{4, 26} }
func (c *Polybezier) Accept(v Visitor, ctx any) { v.VisitPolybezier(c, ctx) }
