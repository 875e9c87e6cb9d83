package textencoding

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// readAll decodes every element of input
func readAll(t *testing.T, input string) ([]commands.Command, *Reader) {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var out []commands.Command
	for {
		cmd, err := r.ReadCommand()
		if err != nil {
			t.Fatalf("ReadCommand() unexpected error: %v", err)
		}
		if cmd == nil {
			return out, r
		}
		out = append(out, cmd)
	}
}

// readError decodes input until the first error
func readError(t *testing.T, input string) error {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	for {
		cmd, err := r.ReadCommand()
		if err != nil {
			return err
		}
		if cmd == nil {
			t.Fatalf("expected an error decoding %q", input)
		}
	}
}

// TestReaderMinimalMetafile tests a complete metafile decodes in order
func TestReaderMinimalMetafile(t *testing.T) {
	input := `BEGMF 'example';
MFVERSION 1;
VDCTYPE REAL;
BEGPIC 'page 1';
VDCEXT 0.0 0.0 100.0 100.0;
BEGPICBODY;
LINE (0.0,0.0) (50.5,50.5);
TEXT 10.0 20.0 FINAL 'hello';
ENDPIC;
ENDMF;`

	got, r := readAll(t, input)
	want := []commands.Command{
		&commands.BeginMetafile{Name: "example"},
		&commands.MetafileVersion{Version: 1},
		&commands.VdcType{Specification: core.VdcReal},
		&commands.BeginPicture{Name: "page 1"},
		&commands.VdcExtent{FirstCorner: core.Point{X: 0, Y: 0}, SecondCorner: core.Point{X: 100, Y: 100}},
		&commands.BeginPictureBody{},
		&commands.Polyline{Points: []core.Point{{X: 0, Y: 0}, {X: 50.5, Y: 50.5}}},
		&commands.Text{Position: core.Point{X: 10, Y: 20}, Final: true, Text: "hello"},
		&commands.EndPicture{},
		&commands.EndMetafile{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("commands mismatch\ngot:  %#v\nwant: %#v", got, want)
	}
	if d := r.Descriptor(); d.VdcType != core.VdcReal {
		t.Errorf("Descriptor().VdcType = %v, want Real", d.VdcType)
	}

	// the end is reported repeatedly
	cmd, err := r.ReadCommand()
	if cmd != nil || err != nil {
		t.Errorf("ReadCommand() after end = %v, %v; want nil, nil", cmd, err)
	}
}

// TestReaderElementBoundaries tests empty elements, case and a final
// element without terminator
func TestReaderElementBoundaries(t *testing.T) {
	got, _ := readAll(t, ";;  ; mfversion 2/ %comment% ;MFVersion 3")
	want := []commands.Command{
		&commands.MetafileVersion{Version: 2},
		&commands.MetafileVersion{Version: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

// TestReaderUnsupported tests unknown keywords
func TestReaderUnsupported(t *testing.T) {
	got, _ := readAll(t, "FOOBAR 1 2 3; Bar; ENDMFDEFAULTS;")
	if len(got) != 3 {
		t.Fatalf("got %d commands, want 3", len(got))
	}

	tests := []struct {
		name string
		raw  string
	}{
		{"FOOBAR", "1 2 3"},
		{"Bar", ""},
		{"ENDMFDEFAULTS", ""},
	}
	for i, tt := range tests {
		u, ok := got[i].(*commands.UnsupportedCommand)
		if !ok {
			t.Fatalf("command %d is %T, want *UnsupportedCommand", i, got[i])
		}
		if u.ElementName != tt.name || u.RawParameters != tt.raw {
			t.Errorf("command %d = %q %q, want %q %q", i, u.ElementName, u.RawParameters, tt.name, tt.raw)
		}
		if !u.IsTextEncoding() {
			t.Errorf("command %d IsTextEncoding() = false", i)
		}
	}
}

// TestReaderVdcType tests that VDC parameters follow VDC TYPE
func TestReaderVdcType(t *testing.T) {
	got, _ := readAll(t, "CIRCLE 1 2 3; VDCTYPE REAL; CIRCLE 1.5 2.5 .5; VDCTYPE INTEGER; CIRCLE 4 5 6;")
	want := []commands.Command{
		&commands.Circle{Center: core.Point{X: 1, Y: 2}, Radius: 3},
		&commands.VdcType{Specification: core.VdcReal},
		&commands.Circle{Center: core.Point{X: 1.5, Y: 2.5}, Radius: 0.5},
		&commands.VdcType{Specification: core.VdcInteger},
		&commands.Circle{Center: core.Point{X: 4, Y: 5}, Radius: 6},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	err := readError(t, "CIRCLE 1.5 2 3;")
	var fmtErr *core.FormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("error = %v, want FormatError", err)
	}
}

// TestReaderColors tests that colour parameters consume the right tokens
func TestReaderColors(t *testing.T) {
	input := `LINECOLR 5;
COLRMODE DIRECT;
LINECOLR 255 0 128;
COLRMODEL 4;
FILLCOLR 1 2 3 4;
COLRMODEL 2;
TEXTCOLR 50.0 -1.5 2;
COLRMODE INDEXED;
EDGECOLR 7;`

	got, r := readAll(t, input)
	want := []commands.Command{
		&commands.LineColor{Color: core.ColorIndex{Index: 5}},
		&commands.ColorSelectionMode{Mode: core.ColorDirect},
		&commands.LineColor{Color: core.ColorRGB{R: 255, G: 0, B: 128}},
		&commands.ColorModel{Model: core.ColorModelCMYK},
		&commands.FillColor{Color: core.ColorCMYK{C: 1, M: 2, Y: 3, K: 4}},
		&commands.ColorModel{Model: core.ColorModelCIELAB},
		&commands.TextColor{Color: core.ColorCIE{Model: core.ColorModelCIELAB, First: 50, Second: -1.5, Third: 2}},
		&commands.ColorSelectionMode{Mode: core.ColorIndexed},
		&commands.EdgeColor{Color: core.ColorIndex{Index: 7}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	if d := r.Descriptor(); d.ColorModel != core.ColorModelCIELAB || d.ColorSelectionMode != core.ColorIndexed {
		t.Errorf("descriptor = %+v", d)
	}

	err := readError(t, "COLRMODE DIRECT; LINECOLR 1 2;")
	if !errors.Is(err, core.ErrUnexpectedEndOfData) {
		t.Fatalf("error = %v, want ErrUnexpectedEndOfData", err)
	}
}

// TestReaderPrecisions tests the conversion of declared ranges to widths
func TestReaderPrecisions(t *testing.T) {
	input := `INTEGERPREC -128 127;
INDEXPREC -32768 32767;
COLRPREC 15;
COLRINDEXPREC 65535;
NAMEPREC -8388608 8388607;
REALPREC -1E300 1E300 12;
VDCINTEGERPREC -2147483648 2147483647;
VDCREALPREC -32767.0 32767.0 4;`

	got, r := readAll(t, input)
	want := []commands.Command{
		&commands.IntegerPrecision{Precision: 8},
		&commands.IndexPrecision{Precision: 16},
		&commands.ColorPrecision{Precision: 4},
		&commands.ColorIndexPrecision{Precision: 16},
		&commands.NamePrecision{Precision: 24},
		&commands.RealPrecision{Specification: core.Float64Precision},
		&commands.VdcIntegerPrecision{Precision: 32},
		&commands.VdcRealPrecision{Specification: core.Float32Precision},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	d := r.Descriptor()
	wantDescriptor := *core.NewDescriptor()
	wantDescriptor.IntegerPrecision = 8
	wantDescriptor.IndexPrecision = 16
	wantDescriptor.ColorPrecision = 4
	wantDescriptor.ColorIndexPrecision = 16
	wantDescriptor.NamePrecision = 24
	wantDescriptor.RealPrecision = core.Float64Precision
	wantDescriptor.VdcIntegerPrecision = 32
	wantDescriptor.VdcRealPrecision = core.Float32Precision
	if d != wantDescriptor {
		t.Errorf("Descriptor() = %+v, want %+v", d, wantDescriptor)
	}
}

// TestReaderSizeSpecification tests that widths follow their modes
func TestReaderSizeSpecification(t *testing.T) {
	got, _ := readAll(t, "LINEWIDTH 2; LINEWIDTHMODE SCALED; LINEWIDTH 1.5; MARKERSIZE 3; EDGEWIDTHMODE MM; EDGEWIDTH 0.25;")
	want := []commands.Command{
		&commands.LineWidth{Width: 2},
		&commands.LineWidthSpecificationMode{Mode: core.Scaled},
		&commands.LineWidth{Width: 1.5},
		&commands.MarkerSize{Size: 3},
		&commands.EdgeWidthSpecificationMode{Mode: core.Millimetres},
		&commands.EdgeWidth{Width: 0.25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

// TestReaderViewport tests that viewport coordinates follow DEVVPMODE
func TestReaderViewport(t *testing.T) {
	got, _ := readAll(t, "DEVVP 0.0 0.0 1.0 0.5; DEVVPMODE MM 2.5; DEVVP 0 0 200 100;")
	want := []commands.Command{
		&commands.DeviceViewport{FirstCorner: core.Point{}, SecondCorner: core.Point{X: 1, Y: 0.5}},
		&commands.DeviceViewportSpecificationMode{Mode: core.MillimetresWithScaleFactor, ScaleFactor: 2.5},
		&commands.DeviceViewport{FirstCorner: core.Point{}, SecondCorner: core.Point{X: 200, Y: 100}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

// TestReaderMetafileDefaults tests nesting of BEGMFDEFAULTS
func TestReaderMetafileDefaults(t *testing.T) {
	got, _ := readAll(t, "BEGMFDEFAULTS; LINEWIDTH 2; LINECOLR 3; ENDMFDEFAULTS; ENDMF;")
	want := []commands.Command{
		&commands.MetafileDefaultsReplacement{Commands: []commands.Command{
			&commands.LineWidth{Width: 2},
			&commands.LineColor{Color: core.ColorIndex{Index: 3}},
		}},
		&commands.EndMetafile{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	t.Run("unterminated", func(t *testing.T) {
		got, _ := readAll(t, "BEGMFDEFAULTS; MFVERSION 2;")
		want := []commands.Command{
			&commands.MetafileDefaultsReplacement{Commands: []commands.Command{
				&commands.MetafileVersion{Version: 2},
			}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %#v, want %#v", got, want)
		}
	})

	t.Run("descriptor changes apply", func(t *testing.T) {
		got, r := readAll(t, "BEGMFDEFAULTS; VDCTYPE REAL; ENDMFDEFAULTS; RECT 0.5 0.5 1.5 1.5;")
		if len(got) != 2 {
			t.Fatalf("got %d commands, want 2", len(got))
		}
		rect := &commands.Rectangle{FirstCorner: core.Point{X: 0.5, Y: 0.5}, SecondCorner: core.Point{X: 1.5, Y: 1.5}}
		if !reflect.DeepEqual(got[1], rect) {
			t.Errorf("got %#v, want %#v", got[1], rect)
		}
		if r.Descriptor().VdcType != core.VdcReal {
			t.Errorf("VdcType not updated inside defaults block")
		}
	})
}

// TestReaderErrors tests error wrapping and stickiness
func TestReaderErrors(t *testing.T) {
	r := NewReader(strings.NewReader("MFVERSION 1; LINE 1 x; MFVERSION 2;"))
	if _, err := r.ReadCommand(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.ReadCommand()
	var cmdErr *core.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("error = %v, want CommandError", err)
	}
	if cmdErr.Offset != 12 {
		t.Errorf("Offset = %d, want 12", cmdErr.Offset)
	}
	if cmdErr.Element != "LINE" {
		t.Errorf("Element = %q, want LINE", cmdErr.Element)
	}
	var fmtErr *core.FormatError
	if !errors.As(err, &fmtErr) || fmtErr.Input != "x" {
		t.Errorf("error = %v, want FormatError for x", err)
	}

	cmd, again := r.ReadCommand()
	if cmd != nil || again != err {
		t.Errorf("ReadCommand() after failure = %v, %v; want nil, %v", cmd, again, err)
	}

	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"missing parameter", "MFVERSION;", core.ErrUnexpectedEndOfData},
		{"missing point coordinate", "RECT 1 2 3;", core.ErrUnexpectedEndOfData},
		{"text without string", "TEXT 1 2 FINAL;", core.ErrUnexpectedEndOfData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := readError(t, tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

// TestReaderPrimitives tests the graphical primitive elements
func TestReaderPrimitives(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  commands.Command
	}{
		{"incremental line", "INCRLINE 1 1 2 2 -1 0;",
			&commands.Polyline{Points: []core.Point{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 2, Y: 3}}}},
		{"disjoint line", "DISJTLINE 0 0 1 1 2 2 3 3;",
			&commands.DisjointPolyline{Points: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}}},
		{"marker", "MARKER (5,6);",
			&commands.Polymarker{Points: []core.Point{{X: 5, Y: 6}}}},
		{"incremental polygon", "INCRPOLYGON 0 0 10 0 0 10;",
			&commands.Polygon{Points: []core.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}}},
		{"polygon set", "POLYGONSET 0 0 VIS 1 0 INVIS 1 1 CLOSEVIS;",
			&commands.PolygonSet{
				Vertices: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}},
				Flags:    []commands.EdgeOutFlag{commands.EdgeVisible, commands.EdgeInvisible, commands.EdgeCloseVisible},
			}},
		{"incremental polygon set", "INCRPOLYGONSET 1 1 VIS 1 0 CLOSEINVIS;",
			&commands.PolygonSet{
				Vertices: []core.Point{{X: 1, Y: 1}, {X: 2, Y: 1}},
				Flags:    []commands.EdgeOutFlag{commands.EdgeVisible, commands.EdgeCloseInvisible},
			}},
		{"restricted text", "RESTRTEXT 10 5 1 2 NOTFINAL 'abc';",
			&commands.RestrictedText{DeltaWidth: 10, DeltaHeight: 5, Position: core.Point{X: 1, Y: 2}, Text: "abc"}},
		{"append text", "APNDTEXT FINAL 'xyz';",
			&commands.AppendText{Final: true, Text: "xyz"}},
		{"cell array", "CELLARRAY 0 0 2 2 2 0 2 2 0 (1 2) (3 4);",
			&commands.CellArray{
				CornerP: core.Point{}, CornerQ: core.Point{X: 2, Y: 2}, CornerR: core.Point{X: 2},
				NX: 2, NY: 2, LocalColorPrecision: 0,
				Colors: []core.Color{core.ColorIndex{Index: 1}, core.ColorIndex{Index: 2}, core.ColorIndex{Index: 3}, core.ColorIndex{Index: 4}},
			}},
		{"gdp", "GDP 7 0 0 1 1 'data';",
			&commands.GeneralizedDrawingPrimitive{Identifier: 7, Points: []core.Point{{}, {X: 1, Y: 1}}, DataRecord: core.OpaqueRecord("data")}},
		{"arc 3 point close", "ARC3PTCLOSE 0 0 1 1 2 0 CHORD;",
			&commands.CircularArc3PointClose{Start: core.Point{}, Intermediate: core.Point{X: 1, Y: 1}, End: core.Point{X: 2}, Closure: commands.ClosureChord}},
		{"arc centre", "ARCCTR 5 5 1 0 0 1 10;",
			&commands.CircularArcCenter{Center: core.Point{X: 5, Y: 5}, StartVector: core.Point{X: 1}, EndVector: core.Point{Y: 1}, Radius: 10}},
		{"arc centre close", "ARCCTRCLOSE 5 5 1 0 0 1 10 PIE;",
			&commands.CircularArcCenterClose{Center: core.Point{X: 5, Y: 5}, StartVector: core.Point{X: 1}, EndVector: core.Point{Y: 1}, Radius: 10, Closure: commands.ClosurePie}},
		{"ellipse", "ELLIPSE 0 0 4 0 0 2;",
			&commands.Ellipse{Center: core.Point{}, FirstConjugateDiameter: core.Point{X: 4}, SecondConjugateDiameter: core.Point{Y: 2}}},
		{"elliptical arc close", "ELLIPARCCLOSE 0 0 4 0 0 2 1 0 0 1 CHORD;",
			&commands.EllipticalArcClose{
				Center: core.Point{}, FirstConjugateDiameter: core.Point{X: 4}, SecondConjugateDiameter: core.Point{Y: 2},
				StartVector: core.Point{X: 1}, EndVector: core.Point{Y: 1}, Closure: commands.ClosureChord,
			}},
		{"connecting edge", "CONNEDGE;", &commands.ConnectingEdge{}},
		{"nub", "NUB 2 2 0 0 1 1 0 0 1 1 0 1;",
			&commands.NonUniformBSpline{
				SplineOrder: 2, ControlPoints: []core.Point{{}, {X: 1, Y: 1}},
				Knots: []float64{0, 0, 1, 1}, Start: 0, End: 1,
			}},
		{"nurb", "NURB 2 2 0 0 1 1 0 0 1 1 0 1 1 .5;",
			&commands.NonUniformRationalBSpline{
				SplineOrder: 2, ControlPoints: []core.Point{{}, {X: 1, Y: 1}},
				Knots: []float64{0, 0, 1, 1}, Start: 0, End: 1, Weights: []float64{1, 0.5},
			}},
		{"polybezier", "POLYBEZIER 1 0 0 1 1 2 1 3 0;",
			&commands.Polybezier{ContinuityIndicator: 1, Points: []core.Point{{}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := readAll(t, tt.input)
			if len(got) != 1 {
				t.Fatalf("got %d commands, want 1", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("got %#v\nwant %#v", got[0], tt.want)
			}
		})
	}
}

// TestReaderAttributesAndControl tests enumerations and their fallbacks
func TestReaderAttributesAndControl(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  commands.Command
	}{
		{"text precision", "TEXTPREC STROKE;", &commands.TextPrecision{Precision: commands.PrecisionStroke}},
		{"text precision fallback", "TEXTPREC BOGUS;", &commands.TextPrecision{Precision: commands.PrecisionString}},
		{"text path", "TEXTPATH up;", &commands.TextPath{Path: commands.PathUp}},
		{"text alignment", "TEXTALIGN CTR HALF 0.0 0.0;", &commands.TextAlignment{Horizontal: commands.HorizontalCenter, Vertical: commands.VerticalHalf}},
		{"interior style", "INTSTYLE HATCH;", &commands.InteriorStyle{Style: commands.StyleHatch}},
		{"edge visibility", "EDGEVIS ON;", &commands.EdgeVisibility{Visibility: commands.On}},
		{"character orientation", "CHARORI 0 1 1 0;", &commands.CharacterOrientation{Up: core.Point{Y: 1}, Base: core.Point{X: 1}}},
		{"character height", "CHARHEIGHT 12;", &commands.CharacterHeight{Height: 12}},
		{"character expansion", "CHAREXPAN 1.25;", &commands.CharacterExpansionFactor{Factor: 1.25}},
		{"line cap", "LINECAP 3 2;", &commands.LineCap{LineCapIndicator: 3, DashCapIndicator: 2}},
		{"line join", "LINEJOIN 4;", &commands.LineJoin{Index: 4}},
		{"edge type offset", "EDGETYPEINITOFFSET 0.5;", &commands.EdgeTypeInitialOffset{Offset: 0.5}},
		{"pattern size", "PATSIZE 0 10 10 0;", &commands.PatternSize{Height: core.Point{Y: 10}, Width: core.Point{X: 10}}},
		{"colour table", "COLRTABLE 4 255 0 0 0 255 0;", &commands.ColorTable{StartIndex: 4, Colors: []core.Color{core.ColorRGB{R: 255}, core.ColorRGB{G: 255}}}},
		{"pattern table", "PATTABLE 1 1 2 0 3 4;", &commands.PatternTable{Index: 1, NX: 1, NY: 2, Colors: []core.Color{core.ColorIndex{Index: 3}, core.ColorIndex{Index: 4}}}},
		{"transparency", "TRANSPARENCY ON;", &commands.Transparency{Indicator: commands.On}},
		{"clip", "CLIP OFF;", &commands.ClipIndicator{Indicator: commands.Off}},
		{"clip rectangle", "CLIPRECT 0 0 10 10;", &commands.ClipRectangle{SecondCorner: core.Point{X: 10, Y: 10}}},
		{"line clip mode", "LINECLIPMODE LOCUSTHENSHAPE;", &commands.LineClippingMode{Mode: commands.ClipLocusThenShape}},
		{"protection region", "PROTREGION 2 SHIELD;", &commands.ProtectionRegionIndicator{Index: 2, Indicator: commands.RegionShield}},
		{"text path mode", "GENTEXTPATHMODE AXIS;", &commands.GeneralizedTextPathMode{Mode: commands.TextPathModeAxis}},
		{"mitre limit", "MITRELIMIT 32;", &commands.MiterLimit{Limit: 32}},
		{"save context", "SAVEPRIMCONT 3;", &commands.SavePrimitiveContext{ContextName: 3}},
		{"auxiliary colour", "AUXCOLR 9;", &commands.AuxiliaryColor{Color: core.ColorIndex{Index: 9}}},
		{"scaling mode", "SCALEMODE METRIC 0.5;", &commands.ScalingMode{Mode: commands.ScalingMetric, MetricScalingFactor: 0.5}},
		{"viewport mapping", "DEVVPMAP FORCED CTR TOP;", &commands.DeviceViewportMapping{Isotropy: commands.IsotropyForced, Horizontal: commands.PlaceHorizontalCenter, Vertical: commands.PlaceTop}},
		{"background colour", "BACKCOLR 255 255 255;", &commands.BackgroundColor{Color: core.ColorRGB{R: 255, G: 255, B: 255}}},
		{"line type definition", "LINEEDGETYPEDEF -1 20 5 3 2;", &commands.LineAndEdgeTypeDefinition{LineType: -1, DashCycleRepeatLength: 20, DashElements: []int{5, 3, 2}}},
		{"hatch style", "HATCHSTYLEDEF -1 CROSSHATCH 1 0 0 1 10 2 1 2 1 1;", &commands.HatchStyleDefinition{
			HatchIndex: -1, Style: commands.HatchCrossHatch,
			FirstDirection: core.Point{X: 1}, SecondDirection: core.Point{Y: 1}, DutyCycleLength: 10,
			GapWidths: []int{1, 2}, LineTypes: []int{1, 1},
		}},
		{"geometric pattern", "GEOPATDEF 1 5 0 0 10 10;", &commands.GeometricPatternDefinition{PatternIndex: 1, SegmentIdentifier: 5, SecondCorner: core.Point{X: 10, Y: 10}}},
		{"tile array", "BEGTILEARRAY 0 0 90 180 2 3 4 5 1.5 2.5 0 1 2 3;", &commands.BeginTileArray{
			CellPathDirection: 90, LineProgressionDirection: 180,
			PathDirectionTileCount: 2, LineDirectionTileCount: 3, PathDirectionCellCount: 4, LineDirectionCellCount: 5,
			CellSizePath: 1.5, CellSizeLine: 2.5,
			ImageOffsetPath: 0, ImageOffsetLine: 1, ImageCellCountPath: 2, ImageCellCountLine: 3,
		}},
		{"application structure", "BEGAPS 'id1' 'layer' APS;", &commands.BeginApplicationStructure{Identifier: "id1", Type: "layer", Inheritance: commands.InheritApplicationStructure}},
		{"segment", "BEGSEG 12;", &commands.BeginSegment{Identifier: 12}},
		{"segment priority extent", "SEGPRIEXT 0 255;", &commands.SegmentPriorityExtent{Minimum: 0, Maximum: 255}},
		{"message", "MESSAGE ACTION 'check';", &commands.Message{Action: commands.ActionRequired, Message: "check"}},
		{"font list", "FONTLIST 'Helvetica' 'Times';", &commands.FontList{Fonts: []string{"Helvetica", "Times"}}},
		{"element list", "MFELEMLIST 'DRAWINGPLUS version2';", &commands.MetafileElementList{Elements: []string{"DRAWINGPLUS", "VERSION2"}}},
		{"character set list", "CHARSETLIST STD94 'B' STD96 'A' COMPLETECODE;", &commands.CharacterSetList{Entries: []commands.CharacterSetListEntry{
			{Type: commands.GSet94Characters, Designation: "B"},
			{Type: commands.GSet96Characters, Designation: "A"},
		}}},
		{"character coding", "CHARCODING EXTD8BIT;", &commands.CharacterCodingAnnouncer{Announcer: commands.Extended8Bit}},
		{"colour value extent", "COLRVALUEEXT 0 0 0 255 255 255;", &commands.ColorValueExtent{ColorSpace: commands.ColorSpaceRGB, Minimum: core.ColorRGB{}, Maximum: core.ColorRGB{R: 255, G: 255, B: 255}}},
		{"maximum colour index", "MAXCOLRINDEX 255;", &commands.MaximumColorIndex{Index: 255}},
		{"maximum vdc extent", "MAXVDCEXT 0 0 32767 32767;", &commands.MaximumVdcExtent{SecondCorner: core.Point{X: 32767, Y: 32767}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := readAll(t, tt.input)
			if len(got) != 1 {
				t.Fatalf("got %d commands, want 1", len(got))
			}
			if !reflect.DeepEqual(got[0], tt.want) {
				t.Errorf("got %#v\nwant %#v", got[0], tt.want)
			}
		})
	}
}

// TestReaderReservedColorModel tests that reserved colour models are
// rejected instead of changing how later direct colours are read
func TestReaderReservedColorModel(t *testing.T) {
	for _, input := range []string{"COLRMODEL 0;", "COLRMODEL 6;", "COLRMODEL 99;"} {
		t.Run(input, func(t *testing.T) {
			err := readError(t, input+" COLRMODE DIRECT; LINECOLR 1 2 3;")
			var rangeErr *core.RangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("error = %v, want RangeError", err)
			}
			var cmdErr *core.CommandError
			if !errors.As(err, &cmdErr) || cmdErr.Element != "COLRMODEL" {
				t.Errorf("error = %v, want CommandError for COLRMODEL", err)
			}
		})
	}
}

// TestReaderColorValueExtentCIE tests that CIE extents are not clamped
func TestReaderColorValueExtentCIE(t *testing.T) {
	got, _ := readAll(t, "COLRMODEL 3; COLRVALUEEXT 2.5 -1 300;")
	want := &commands.ColorValueExtent{ColorSpace: commands.ColorSpaceCIE, FirstScale: 2.5, SecondScale: -1, ThirdScale: 300}
	if !reflect.DeepEqual(got[1], want) {
		t.Errorf("got %#v, want %#v", got[1], want)
	}
}

// TestReaderDataRecords tests escape and application structure records
func TestReaderDataRecords(t *testing.T) {
	input := `ESCAPE -1 "6 2 10 20 13 1 'abc'";
ESCAPE 99 'raw data';
APPLDATA 5 '6 1 1';
APSATTR 'name' "14 1 'v' 12 1 2.5";`

	got, _ := readAll(t, input)
	want := []commands.Command{
		&commands.Escape{Identifier: -1, DataRecord: core.StructuredDataRecord{Elements: []core.StructuredDataElement{
			{Type: core.DataInteger, Values: []any{10, 20}},
			{Type: core.DataString, Values: []any{"abc"}},
		}}},
		&commands.Escape{Identifier: 99, DataRecord: core.OpaqueRecord("raw data")},
		&commands.ApplicationData{Identifier: 5, DataRecord: core.OpaqueRecord("6 1 1")},
		&commands.ApplicationStructureAttribute{AttributeType: "name", DataRecord: core.StructuredDataRecord{Elements: []core.StructuredDataElement{
			{Type: core.DataStringFixed, Values: []any{"v"}},
			{Type: core.DataReal, Values: []any{2.5}},
		}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v\nwant %#v", got, want)
	}

	err := readError(t, "APSATTR 'name' '6 3 1 2';")
	if !errors.Is(err, core.ErrUnexpectedEndOfData) {
		t.Errorf("error = %v, want ErrUnexpectedEndOfData", err)
	}
}

// TestReaderVisitorDispatch tests that decoded commands reach the visitor
func TestReaderVisitorDispatch(t *testing.T) {
	got, _ := readAll(t, "LINE 0 0 1 1; FOOBAR 1; TEXT 0 0 FINAL 'a';")

	v := &countingVisitor{}
	for _, cmd := range got {
		cmd.Accept(v, "ctx")
	}
	if v.polylines != 1 || v.unsupported != 1 || v.texts != 1 {
		t.Errorf("visits = %+v", v)
	}
	if v.lastCtx != "ctx" {
		t.Errorf("context = %v, want ctx", v.lastCtx)
	}
}

type countingVisitor struct {
	commands.NopVisitor
	polylines, texts, unsupported int
	lastCtx                       any
}

func (v *countingVisitor) VisitPolyline(c *commands.Polyline, ctx any) {
	v.polylines++
	v.lastCtx = ctx
}

func (v *countingVisitor) VisitText(c *commands.Text, ctx any) {
	v.texts++
	v.lastCtx = ctx
}

func (v *countingVisitor) VisitUnsupportedCommand(c *commands.UnsupportedCommand, ctx any) {
	v.unsupported++
	v.lastCtx = ctx
}
