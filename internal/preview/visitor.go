package preview

import (
	"math"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// curveSteps is the number of segments a full circle or a bezier segment
// is flattened into
const curveSteps = 64

// GeometryVisitor collects outlines into a *Context. Commands that carry
// no drawable geometry are ignored.
type GeometryVisitor struct {
	commands.NopVisitor
}

func (GeometryVisitor) VisitVdcExtent(c *commands.VdcExtent, ctx any) {
	ctx.(*Context).SetExtent(c.FirstCorner, c.SecondCorner)
}

func (GeometryVisitor) VisitPolyline(c *commands.Polyline, ctx any) {
	ctx.(*Context).Add(Shape{Points: c.Points})
}

func (GeometryVisitor) VisitDisjointPolyline(c *commands.DisjointPolyline, ctx any) {
	context := ctx.(*Context)
	for i := 0; i+1 < len(c.Points); i += 2 {
		context.Add(Shape{Points: []core.Point{c.Points[i], c.Points[i+1]}})
	}
}

func (GeometryVisitor) VisitPolymarker(c *commands.Polymarker, ctx any) {
	context := ctx.(*Context)
	for _, p := range c.Points {
		context.IncreaseBounds(p)
	}
}

func (GeometryVisitor) VisitText(c *commands.Text, ctx any) {
	context := ctx.(*Context)
	context.LastText = c.Text
	context.IncreaseBounds(c.Position)
}

func (GeometryVisitor) VisitRestrictedText(c *commands.RestrictedText, ctx any) {
	context := ctx.(*Context)
	context.LastText = c.Text
	context.IncreaseBoundsRect(NewBBoxFromPoints(c.Position, core.Point{
		X: c.Position.X + c.DeltaWidth,
		Y: c.Position.Y + c.DeltaHeight,
	}))
}

func (GeometryVisitor) VisitPolygon(c *commands.Polygon, ctx any) {
	ctx.(*Context).Add(Shape{Points: c.Points, Closed: true})
}

// VisitPolygonSet splits the vertex list at every close flag
func (GeometryVisitor) VisitPolygonSet(c *commands.PolygonSet, ctx any) {
	context := ctx.(*Context)
	var current []core.Point
	for i, p := range c.Vertices {
		current = append(current, p)
		if i < len(c.Flags) && (c.Flags[i] == commands.EdgeCloseInvisible || c.Flags[i] == commands.EdgeCloseVisible) {
			context.Add(Shape{Points: current, Closed: true})
			current = nil
		}
	}
	if len(current) > 0 {
		context.Add(Shape{Points: current, Closed: true})
	}
}

func (GeometryVisitor) VisitRectangle(c *commands.Rectangle, ctx any) {
	a, b := c.FirstCorner, c.SecondCorner
	ctx.(*Context).Add(Shape{
		Points: []core.Point{a, {X: b.X, Y: a.Y}, b, {X: a.X, Y: b.Y}},
		Closed: true,
	})
}

func (GeometryVisitor) VisitCircle(c *commands.Circle, ctx any) {
	ctx.(*Context).Add(Shape{Points: arc(c.Center, c.Radius, 0, 2*math.Pi), Closed: true})
}

func (GeometryVisitor) VisitCircularArc3Point(c *commands.CircularArc3Point, ctx any) {
	ctx.(*Context).Add(Shape{Points: arc3Point(c.Start, c.Intermediate, c.End)})
}

func (GeometryVisitor) VisitCircularArc3PointClose(c *commands.CircularArc3PointClose, ctx any) {
	ctx.(*Context).Add(Shape{Points: arc3Point(c.Start, c.Intermediate, c.End), Closed: true})
}

func (GeometryVisitor) VisitCircularArcCenter(c *commands.CircularArcCenter, ctx any) {
	start, sweep := arcAngles(c.StartVector, c.EndVector)
	ctx.(*Context).Add(Shape{Points: arc(c.Center, c.Radius, start, sweep)})
}

func (GeometryVisitor) VisitCircularArcCenterClose(c *commands.CircularArcCenterClose, ctx any) {
	start, sweep := arcAngles(c.StartVector, c.EndVector)
	points := arc(c.Center, c.Radius, start, sweep)
	if c.Closure == commands.ClosurePie {
		points = append(points, c.Center)
	}
	ctx.(*Context).Add(Shape{Points: points, Closed: true})
}

func (GeometryVisitor) VisitEllipse(c *commands.Ellipse, ctx any) {
	ctx.(*Context).Add(Shape{
		Points: ellipse(c.Center, c.FirstConjugateDiameter, c.SecondConjugateDiameter, 0, 2*math.Pi),
		Closed: true,
	})
}

func (GeometryVisitor) VisitEllipticalArc(c *commands.EllipticalArc, ctx any) {
	start, sweep := arcAngles(c.StartVector, c.EndVector)
	ctx.(*Context).Add(Shape{
		Points: ellipse(c.Center, c.FirstConjugateDiameter, c.SecondConjugateDiameter, start, sweep),
	})
}

func (GeometryVisitor) VisitEllipticalArcClose(c *commands.EllipticalArcClose, ctx any) {
	start, sweep := arcAngles(c.StartVector, c.EndVector)
	points := ellipse(c.Center, c.FirstConjugateDiameter, c.SecondConjugateDiameter, start, sweep)
	if c.Closure == commands.ClosurePie {
		points = append(points, c.Center)
	}
	ctx.(*Context).Add(Shape{Points: points, Closed: true})
}

// VisitPolybezier flattens cubic segments. Continuity 1 uses four points
// per segment, otherwise segments after the first share their start point.
func (GeometryVisitor) VisitPolybezier(c *commands.Polybezier, ctx any) {
	p := c.Points
	var points []core.Point
	for i := 0; i+3 < len(p); {
		segment := bezier(p[i], p[i+1], p[i+2], p[i+3])
		if len(points) > 0 && c.ContinuityIndicator != 1 {
			segment = segment[1:]
		}
		points = append(points, segment...)
		if c.ContinuityIndicator == 1 {
			i += 4
		} else {
			i += 3
		}
	}
	ctx.(*Context).Add(Shape{Points: points})
}

// arc samples a circular arc from start sweeping by sweep radians
func arc(center core.Point, radius, start, sweep float64) []core.Point {
	return ellipse(center,
		core.Point{X: center.X + radius, Y: center.Y},
		core.Point{X: center.X, Y: center.Y + radius},
		start, sweep)
}

// ellipse samples the ellipse given by two conjugate diameter end points
func ellipse(center, first, second core.Point, start, sweep float64) []core.Point {
	ux, uy := first.X-center.X, first.Y-center.Y
	vx, vy := second.X-center.X, second.Y-center.Y
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * curveSteps))
	if n < 2 {
		n = 2
	}
	points := make([]core.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		t := start + sweep*float64(i)/float64(n)
		cos, sin := math.Cos(t), math.Sin(t)
		points = append(points, core.Point{
			X: center.X + ux*cos + vx*sin,
			Y: center.Y + uy*cos + vy*sin,
		})
	}
	return points
}

// arcAngles returns the counterclockwise sweep from the start vector to the
// end vector. Equal vectors give a full turn.
func arcAngles(startVector, endVector core.Point) (start, sweep float64) {
	start = math.Atan2(startVector.Y, startVector.X)
	sweep = ccw(start, math.Atan2(endVector.Y, endVector.X))
	if sweep == 0 {
		sweep = 2 * math.Pi
	}
	return start, sweep
}

// ccw returns the counterclockwise angle from a to b in [0, 2π)
func ccw(a, b float64) float64 {
	d := math.Mod(b-a, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}

// arc3Point samples the circular arc from start through mid to end.
// Collinear points give a straight line.
func arc3Point(start, mid, end core.Point) []core.Point {
	ax, ay := start.X, start.Y
	bx, by := mid.X, mid.Y
	cx, cy := end.X, end.Y
	d := 2 * (ax*(by-cy) + bx*(cy-ay) + cx*(ay-by))
	if d == 0 {
		return []core.Point{start, end}
	}
	a2, b2, c2 := ax*ax+ay*ay, bx*bx+by*by, cx*cx+cy*cy
	center := core.Point{
		X: (a2*(by-cy) + b2*(cy-ay) + c2*(ay-by)) / d,
		Y: (a2*(cx-bx) + b2*(ax-cx) + c2*(bx-ax)) / d,
	}
	radius := math.Hypot(ax-center.X, ay-center.Y)

	a0 := math.Atan2(ay-center.Y, ax-center.X)
	a1 := math.Atan2(by-center.Y, bx-center.X)
	a2n := math.Atan2(cy-center.Y, cx-center.X)
	sweep := ccw(a0, a2n)
	if ccw(a0, a1) > sweep {
		sweep -= 2 * math.Pi
	}
	return arc(center, radius, a0, sweep)
}

// bezier samples a cubic bezier segment
func bezier(p0, p1, p2, p3 core.Point) []core.Point {
	const steps = curveSteps / 4
	points := make([]core.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		mt := 1 - t
		a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
		points = append(points, core.Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return points
}
