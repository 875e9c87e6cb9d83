package binaryencoding

import (
	"fmt"
	"strconv"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// Graphical primitive elements (ISO/IEC 8632-3 8.6)

func pointList(build func([]core.Point) commands.Command) decodeFunc {
	return func(r *Reader) (commands.Command, error) {
		points, err := r.readPoints()
		if err != nil {
			return nil, err
		}
		return build(points), nil
	}
}

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

func readPolygonSet(r *Reader) (commands.Command, error) {
	var set commands.PolygonSet
	for r.hasMoreData() {
		p, err := r.readPoint()
		if err != nil {
			return nil, err
		}
		flag, err := r.readEnum()
		if err != nil {
			return nil, err
		}
		set.Vertices = append(set.Vertices, p)
		set.Flags = append(set.Flags, commands.EdgeOutFlag(flag))
	}
	return &set, nil
}

// Cell representation modes of CELL ARRAY
const (
	cellRunLength = 0
	cellPacked    = 1
)

// readCellArray reads the corners, dimensions, local colour precision and
// representation mode followed by the cell rows. Every row starts on a
// 16-bit boundary. Run-length rows hold (count, colour) pairs.
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
	nx, ny, lcp := dims[0], dims[1], dims[2]
	mode, err := r.readEnum()
	if err != nil {
		return nil, err
	}
	if mode != cellRunLength && mode != cellPacked {
		return nil, &core.RangeError{Kind: "Cell representation mode", Input: strconv.Itoa(mode), Reason: "neither run length nor packed"}
	}
	bits := r.localColorPrecision(lcp)
	if err := r.checkCellCount(nx, ny, bits, mode == cellPacked); err != nil {
		return nil, err
	}
	colors := make([]core.Color, 0, nx*ny)
	for row := 0; row < ny; row++ {
		r.alignWord()
		for cells := 0; cells < nx; {
			count := 1
			if mode == cellRunLength {
				if count, err = r.readInteger(); err != nil {
					return nil, err
				}
				if count < 1 || count > nx-cells {
					return nil, &core.RangeError{Kind: "Run length", Input: strconv.Itoa(count), Reason: "run exceeds row"}
				}
			}
			c, err := r.readColorBits(bits)
			if err != nil {
				return nil, err
			}
			for i := 0; i < count; i++ {
				colors = append(colors, c)
			}
			cells += count
		}
	}
	return &commands.CellArray{
		CornerP:             corners[0],
		CornerQ:             corners[1],
		CornerR:             corners[2],
		NX:                  nx,
		NY:                  ny,
		LocalColorPrecision: lcp,
		Colors:              colors,
	}, nil
}

// maxCells bounds the decoded size of a cell array or pattern table.
// Run-length rows expand a single run to any number of cells.
const maxCells = 1 << 22

// checkCellCount rejects negative dimensions, more than maxCells cells, and
// packed cells that cannot fit in the remaining parameter data.
func (r *Reader) checkCellCount(nx, ny, bits int, packed bool) error {
	size := fmt.Sprintf("%dx%d", nx, ny)
	if nx < 0 || ny < 0 {
		return &core.RangeError{Kind: "Cell array size", Input: size, Reason: "negative cell count"}
	}
	cells := int64(nx) * int64(ny)
	if cells > maxCells {
		return &core.RangeError{Kind: "Cell array size", Input: size, Reason: fmt.Sprintf("more than %d cells", maxCells)}
	}
	if packed && cells*int64(bits) > int64(len(r.buf)-r.pos)*8 {
		return &core.RangeError{Kind: "Cell array size", Input: size, Reason: "exceeds parameter data"}
	}
	return nil
}

// readGeneralizedDrawingPrimitive reads the identifier, a counted point
// list and the data record. The record is kept opaque.
func readGeneralizedDrawingPrimitive(r *Reader) (commands.Command, error) {
	id, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	n, err := r.readInteger()
	if err != nil {
		return nil, err
	}
	if n < 0 || n > len(r.buf) {
		return nil, core.ErrUnexpectedEndOfData
	}
	var points []core.Point
	for i := 0; i < n; i++ {
		p, err := r.readPoint()
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	record, err := r.optionalString()
	if err != nil {
		return nil, err
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

func (r *Reader) readClosure() (commands.ArcClosureType, error) {
	v, err := r.readEnum()
	return commands.ArcClosureType(v), err
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
	closure, err := r.readClosure()
	if err != nil {
		return nil, err
	}
	return &commands.CircularArc3PointClose{Start: p[0], Intermediate: p[1], End: p[2], Closure: closure}, nil
}

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
	closure, err := r.readClosure()
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
	closure, err := r.readClosure()
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
	if n < 0 || n > len(r.buf) {
		return s, core.ErrUnexpectedEndOfData
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
