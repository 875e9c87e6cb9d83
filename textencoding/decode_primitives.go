package textencoding

import (
	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Graphical primitive elements (ISO/IEC 8632-4 7.5). The INCR forms decode
// to the same commands as their absolute forms.

func pointList(incremental bool, build func([]core.Point) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		read := r.readPoints
		if incremental {
			read = r.readIncrementalPoints
		}
		points, err := read()
		if err != nil {
			return nil, err
		}
		return build(points), nil
	}
}

func polyline(p []core.Point) commands.Command         { return &commands.Polyline{Points: p} }
func disjointPolyline(p []core.Point) commands.Command { return &commands.DisjointPolyline{Points: p} }
func polymarker(p []core.Point) commands.Command       { return &commands.Polymarker{Points: p} }
func polygon(p []core.Point) commands.Command          { return &commands.Polygon{Points: p} }

func readText(r *Reader) (commands.Command, error) {
	position, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	final, err := r.readFinalFlag()
	if err != nil {
		return nil, err
	}
	text, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.Text{Position: position, Final: final, Text: text}, nil
}

func readRestrictedText(r *Reader) (commands.Command, error) {
	width, err := r.readVdc()
	if err != nil {
		return nil, err
	}
	height, err := r.readVdc()
	if err != nil {
		return nil, err
	}
	position, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	final, err := r.readFinalFlag()
	if err != nil {
		return nil, err
	}
	text, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.RestrictedText{DeltaWidth: width, DeltaHeight: height, Position: position, Final: final, Text: text}, nil
}

func readAppendText(r *Reader) (commands.Command, error) {
	final, err := r.readFinalFlag()
	if err != nil {
		return nil, err
	}
	text, err := r.readString()
	if err != nil {
		return nil, err
	}
	return &commands.AppendText{Final: final, Text: text}, nil
}

func readPolygonSet(incremental bool) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		var set commands.PolygonSet
		for r.hasMoreData(1) {
			p, err := r.readPoint()
			if err != nil {
				return nil, err
			}
			if incremental && len(set.Vertices) > 0 {
				p = set.Vertices[len(set.Vertices)-1].Add(p)
			}
			flag, err := readEnumValue(r, edgeOutKeywords, commands.EdgeInvisible)
			if err != nil {
				return nil, err
			}
			set.Vertices = append(set.Vertices, p)
			set.Flags = append(set.Flags, flag)
		}
		return &set, nil
	}
}

// readCellArray reads the corners, dimensions and local colour precision
// followed by the cell colours. The precision only matters in the binary
// encoding.
func readCellArray(r *Reader) (commands.Command, error) {
	var corners [3]core.Point
	for i := range corners {
		p, err := r.readPoint()
		if err != nil {
			return nil, err
		}
		corners[i] = p
	}
	dims, err := r.readIntegers(3)
	if err != nil {
		return nil, err
	}
	colors, err := r.readColors(r.readColor)
	if err != nil {
		return nil, err
	}
	return &commands.CellArray{
		CornerP:             corners[0],
		CornerQ:             corners[1],
		CornerR:             corners[2],
		NX:                  dims[0],
		NY:                  dims[1],
		LocalColorPrecision: dims[2],
		Colors:              colors,
	}, nil
}

// readGeneralizedDrawingPrimitive reads the identifier, the points and a
// trailing data record string. The record is kept opaque.
func readGeneralizedDrawingPrimitive(r *Reader) (commands.Command, error) {
	id, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	var points []core.Point
	for r.hasMoreData(2) {
		p, err := r.readPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	var record string
	if r.hasMoreData(1) {
		record, _ = r.readString()
	}
	return &commands.GeneralizedDrawingPrimitive{Identifier: id, Points: points, DataRecord: core.OpaqueRecord(record)}, nil
}

func readRectangle(r *Reader) (commands.Command, error) {
	first, second, err := r.readTwoPoints()
	if err != nil {
		return nil, err
	}
	return &commands.Rectangle{FirstCorner: first, SecondCorner: second}, nil
}

func readCircle(r *Reader) (commands.Command, error) {
	center, err := r.readPoint()
	if err != nil {
		return nil, err
	}
	radius, err := r.readVdc()
	if err != nil {
		return nil, err
	}
	return &commands.Circle{Center: center, Radius: radius}, nil
}

func (r *Reader) readThreePoints() ([3]core.Point, error) {
	var points [3]core.Point
	for i := range points {
		p, err := r.readPoint()
		if err != nil {
			return points, err
		}
		points[i] = p
	}
	return points, nil
}

func readClosure(r *Reader) (commands.ArcClosureType, error) {
	return readEnumValue(r, closureKeywords, commands.ClosurePie)
}

func readCircularArc3Point(r *Reader) (commands.Command, error) {
	p, err := r.readThreePoints()
	if err != nil {
		return nil, err
	}
	return &commands.CircularArc3Point{Start: p[0], Intermediate: p[1], End: p[2]}, nil
}

func readCircularArc3PointClose(r *Reader) (commands.Command, error) {
	p, err := r.readThreePoints()
	if err != nil {
		return nil, err
	}
	closure, err := readClosure(r)
	if err != nil {
		return nil, err
	}
	return &commands.CircularArc3PointClose{Start: p[0], Intermediate: p[1], End: p[2], Closure: closure}, nil
}

// readArcCenter reads the centre, start and end vectors and radius
func (r *Reader) readArcCenter() (commands.CircularArcCenter, error) {
	var arc commands.CircularArcCenter
	var err error
	if arc.Center, err = r.readPoint(); err != nil {
		return arc, err
	}
	if arc.StartVector, err = r.readPoint(); err != nil {
		return arc, err
	}
	if arc.EndVector, err = r.readPoint(); err != nil {
		return arc, err
	}
	arc.Radius, err = r.readVdc()
	return arc, err
}

func readCircularArcCenter(r *Reader) (commands.Command, error) {
	arc, err := r.readArcCenter()
	if err != nil {
		return nil, err
	}
	return &arc, nil
}

func readCircularArcCenterClose(r *Reader) (commands.Command, error) {
	arc, err := r.readArcCenter()
	if err != nil {
		return nil, err
	}
	closure, err := readClosure(r)
	if err != nil {
		return nil, err
	}
	return &commands.CircularArcCenterClose{
		Center:      arc.Center,
		StartVector: arc.StartVector,
		EndVector:   arc.EndVector,
		Radius:      arc.Radius,
		Closure:     closure,
	}, nil
}

func readEllipse(r *Reader) (commands.Command, error) {
	p, err := r.readThreePoints()
	if err != nil {
		return nil, err
	}
	return &commands.Ellipse{Center: p[0], FirstConjugateDiameter: p[1], SecondConjugateDiameter: p[2]}, nil
}

func (r *Reader) readEllipticalArc() (commands.EllipticalArc, error) {
	var arc commands.EllipticalArc
	p, err := r.readThreePoints()
	if err != nil {
		return arc, err
	}
	arc.Center, arc.FirstConjugateDiameter, arc.SecondConjugateDiameter = p[0], p[1], p[2]
	if arc.StartVector, err = r.readPoint(); err != nil {
		return arc, err
	}
	arc.EndVector, err = r.readPoint()
	return arc, err
}

func readEllipticalArc(r *Reader) (commands.Command, error) {
	arc, err := r.readEllipticalArc()
	if err != nil {
		return nil, err
	}
	return &arc, nil
}

func readEllipticalArcClose(r *Reader) (commands.Command, error) {
	arc, err := r.readEllipticalArc()
	if err != nil {
		return nil, err
	}
	closure, err := readClosure(r)
	if err != nil {
		return nil, err
	}
	return &commands.EllipticalArcClose{
		Center:                  arc.Center,
		FirstConjugateDiameter:  arc.FirstConjugateDiameter,
		SecondConjugateDiameter: arc.SecondConjugateDiameter,
		StartVector:             arc.StartVector,
		EndVector:               arc.EndVector,
		Closure:                 closure,
	}, nil
}

// readSpline reads the order, control points, knots and parameter range
// shared by NUB and NURB.
func (r *Reader) readSpline() (commands.NonUniformBSpline, error) {
	var s commands.NonUniformBSpline
	var err error
	if s.SplineOrder, err = r.readInteger(); err != nil {
		return s, err
	}
	n, err := r.readInteger()
	if err != nil {
		return s, err
	}
	for i := 0; i < n; i++ {
		p, err := r.readPoint()
		if err != nil {
			return s, err
		}
		s.ControlPoints = append(s.ControlPoints, p)
	}
	if s.Knots, err = r.readReals(s.SplineOrder + n); err != nil {
		return s, err
	}
	if s.Start, err = r.readReal(); err != nil {
		return s, err
	}
	s.End, err = r.readReal()
	return s, err
}

func (r *Reader) readReals(n int) ([]float64, error) {
	if n < 0 || !r.hasMoreData(n) {
		return nil, core.ErrUnexpectedEndOfData
	}
	values := make([]float64, n)
	for i := range values {
		v, err := r.readReal()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func readNonUniformBSpline(r *Reader) (commands.Command, error) {
	s, err := r.readSpline()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func readNonUniformRationalBSpline(r *Reader) (commands.Command, error) {
	s, err := r.readSpline()
	if err != nil {
		return nil, err
	}
	weights, err := r.readReals(len(s.ControlPoints))
	if err != nil {
		return nil, err
	}
	return &commands.NonUniformRationalBSpline{
		SplineOrder:   s.SplineOrder,
		ControlPoints: s.ControlPoints,
		Knots:         s.Knots,
		Start:         s.Start,
		End:           s.End,
		Weights:       weights,
	}, nil
}

func readPolybezier(r *Reader) (commands.Command, error) {
	continuity, err := r.readIndex()
	if err != nil {
		return nil, err
	}
	points, err := r.readPoints()
	if err != nil {
		return nil, err
	}
	return &commands.Polybezier{ContinuityIndicator: continuity, Points: points}, nil
}
