package binaryencoding

import (
	"reflect"
	"testing"

	"github.com/tsawler/cgminfo/commands"
	"github.com/tsawler/cgminfo/core"
)

// tableCase is one minimal instance of an element, decoded with the
// default descriptor
type tableCase struct {
	data []byte
	want commands.Command
}

func pt(x, y float64) core.Point { return core.Point{X: x, Y: y} }

func tableCases() map[commands.Element]tableCase {
	p := newParams
	sdr := string(p().i16(6).i16(1).i16(7).bytes())

	return map[commands.Element]tableCase{
		// delimiter elements
		{Class: 0, ID: 1}:  {p().str("m").bytes(), &commands.BeginMetafile{Name: "m"}},
		{Class: 0, ID: 2}:  {nil, &commands.EndMetafile{}},
		{Class: 0, ID: 3}:  {p().str("p").bytes(), &commands.BeginPicture{Name: "p"}},
		{Class: 0, ID: 4}:  {nil, &commands.BeginPictureBody{}},
		{Class: 0, ID: 5}:  {nil, &commands.EndPicture{}},
		{Class: 0, ID: 6}:  {p().i16(7).bytes(), &commands.BeginSegment{Identifier: 7}},
		{Class: 0, ID: 7}:  {nil, &commands.EndSegment{}},
		{Class: 0, ID: 8}:  {nil, &commands.BeginFigure{}},
		{Class: 0, ID: 9}:  {nil, &commands.EndFigure{}},
		{Class: 0, ID: 13}: {p().i16(2).bytes(), &commands.BeginProtectionRegion{RegionIndex: 2}},
		{Class: 0, ID: 14}: {nil, &commands.EndProtectionRegion{}},
		{Class: 0, ID: 15}: {nil, &commands.BeginCompoundLine{}},
		{Class: 0, ID: 16}: {nil, &commands.EndCompoundLine{}},
		{Class: 0, ID: 17}: {nil, &commands.BeginCompoundTextPath{}},
		{Class: 0, ID: 18}: {nil, &commands.EndCompoundTextPath{}},
		{Class: 0, ID: 19}: {
			p().point(1, 2).i16(1).i16(0).i16(2).i16(3).i16(4).i16(5).fixed32(1).fixed32(2).i16(0).i16(0).i16(4).i16(5).bytes(),
			&commands.BeginTileArray{
				Position:                 pt(1, 2),
				CellPathDirection:        90,
				LineProgressionDirection: 0,
				PathDirectionTileCount:   2,
				LineDirectionTileCount:   3,
				PathDirectionCellCount:   4,
				LineDirectionCellCount:   5,
				CellSizePath:             1,
				CellSizeLine:             2,
				ImageCellCountPath:       4,
				ImageCellCountLine:       5,
			},
		},
		{Class: 0, ID: 20}: {nil, &commands.EndTileArray{}},
		{Class: 0, ID: 21}: {p().str("id").str("type").i16(1).bytes(), &commands.BeginApplicationStructure{Identifier: "id", Type: "type", Inheritance: commands.InheritApplicationStructure}},
		{Class: 0, ID: 22}: {nil, &commands.BeginApplicationStructureBody{}},
		{Class: 0, ID: 23}: {nil, &commands.EndApplicationStructure{}},

		// metafile descriptor elements
		{Class: 1, ID: 1}:  {p().i16(2).bytes(), &commands.MetafileVersion{Version: 2}},
		{Class: 1, ID: 2}:  {p().str("d").bytes(), &commands.MetafileDescription{Description: "d"}},
		{Class: 1, ID: 3}:  {p().i16(1).bytes(), &commands.VdcType{Specification: core.VdcReal}},
		{Class: 1, ID: 4}:  {p().i16(32).bytes(), &commands.IntegerPrecision{Precision: 32}},
		{Class: 1, ID: 5}:  {p().i16(0).i16(9).i16(23).bytes(), &commands.RealPrecision{Specification: core.Float32Precision}},
		{Class: 1, ID: 6}:  {p().i16(8).bytes(), &commands.IndexPrecision{Precision: 8}},
		{Class: 1, ID: 7}:  {p().i16(16).bytes(), &commands.ColorPrecision{Precision: 16}},
		{Class: 1, ID: 8}:  {p().i16(16).bytes(), &commands.ColorIndexPrecision{Precision: 16}},
		{Class: 1, ID: 9}:  {p().raw(63).bytes(), &commands.MaximumColorIndex{Index: 63}},
		{Class: 1, ID: 10}: {p().raw(0, 0, 0, 255, 255, 255).bytes(), &commands.ColorValueExtent{ColorSpace: commands.ColorSpaceRGB, Minimum: core.ColorRGB{}, Maximum: core.ColorRGB{R: 255, G: 255, B: 255}}},
		{Class: 1, ID: 11}: {p().i16(1).i16(-1).i16(1).bytes(), &commands.MetafileElementList{Elements: []string{"DRAWINGPLUS"}}},
		{Class: 1, ID: 12}: {element(5, 4, []byte{3}), &commands.MetafileDefaultsReplacement{Commands: []commands.Command{&commands.LineColor{Color: core.ColorIndex{Index: 3}}}}},
		{Class: 1, ID: 13}: {p().str("Helvetica").bytes(), &commands.FontList{Fonts: []string{"Helvetica"}}},
		{Class: 1, ID: 14}: {p().i16(1).str("B").bytes(), &commands.CharacterSetList{Entries: []commands.CharacterSetListEntry{{Type: commands.GSet96Characters, Designation: "B"}}}},
		{Class: 1, ID: 15}: {p().i16(1).bytes(), &commands.CharacterCodingAnnouncer{Announcer: commands.Basic8Bit}},
		{Class: 1, ID: 16}: {p().i16(32).bytes(), &commands.NamePrecision{Precision: 32}},
		{Class: 1, ID: 17}: {p().point(0, 0).point(10, 20).bytes(), &commands.MaximumVdcExtent{FirstCorner: pt(0, 0), SecondCorner: pt(10, 20)}},
		{Class: 1, ID: 18}: {p().i16(1).i16(5).bytes(), &commands.SegmentPriorityExtent{Minimum: 1, Maximum: 5}},
		{Class: 1, ID: 19}: {p().i16(4).bytes(), &commands.ColorModel{Model: core.ColorModelCMYK}},

		// picture descriptor elements
		{Class: 2, ID: 1}:  {p().i16(1).f32(0.5).bytes(), &commands.ScalingMode{Mode: commands.ScalingMetric, MetricScalingFactor: 0.5}},
		{Class: 2, ID: 2}:  {p().i16(1).bytes(), &commands.ColorSelectionMode{Mode: core.ColorDirect}},
		{Class: 2, ID: 3}:  {p().i16(1).bytes(), &commands.LineWidthSpecificationMode{Mode: core.Scaled}},
		{Class: 2, ID: 4}:  {p().i16(2).bytes(), &commands.MarkerSizeSpecificationMode{Mode: core.Fractional}},
		{Class: 2, ID: 5}:  {p().i16(3).bytes(), &commands.EdgeWidthSpecificationMode{Mode: core.Millimetres}},
		{Class: 2, ID: 6}:  {p().point(0, 0).point(100, 50).bytes(), &commands.VdcExtent{FirstCorner: pt(0, 0), SecondCorner: pt(100, 50)}},
		{Class: 2, ID: 7}:  {p().raw(1, 2, 3).bytes(), &commands.BackgroundColor{Color: core.ColorRGB{R: 1, G: 2, B: 3}}},
		{Class: 2, ID: 8}:  {p().fixed32(0).fixed32(0).fixed32(1).fixed32(0.5).bytes(), &commands.DeviceViewport{FirstCorner: pt(0, 0), SecondCorner: pt(1, 0.5)}},
		{Class: 2, ID: 9}:  {p().i16(2).f32(1).bytes(), &commands.DeviceViewportSpecificationMode{Mode: core.PhysicalDeviceCoordinates, ScaleFactor: 1}},
		{Class: 2, ID: 10}: {p().i16(1).i16(1).i16(2).bytes(), &commands.DeviceViewportMapping{Isotropy: commands.IsotropyForced, Horizontal: commands.PlaceHorizontalCenter, Vertical: commands.PlaceTop}},
		{Class: 2, ID: 16}: {p().i16(3).bytes(), &commands.InteriorStyleSpecificationMode{Mode: core.Millimetres}},
		{Class: 2, ID: 17}: {p().i16(5).i16(10).i16(2).i16(3).bytes(), &commands.LineAndEdgeTypeDefinition{LineType: 5, DashCycleRepeatLength: 10, DashElements: []int{2, 3}}},
		{Class: 2, ID: 18}: {
			p().i16(1).i16(1).i16(1).i16(0).i16(0).i16(1).i16(4).i16(1).i16(2).i16(1).bytes(),
			&commands.HatchStyleDefinition{
				HatchIndex:      1,
				Style:           commands.HatchCrossHatch,
				FirstDirection:  pt(1, 0),
				SecondDirection: pt(0, 1),
				DutyCycleLength: 4,
				GapWidths:       []int{2},
				LineTypes:       []int{1},
			},
		},
		{Class: 2, ID: 19}: {p().i16(1).i16(2).point(0, 0).point(10, 10).bytes(), &commands.GeometricPatternDefinition{PatternIndex: 1, SegmentIdentifier: 2, FirstCorner: pt(0, 0), SecondCorner: pt(10, 10)}},

		// control elements
		{Class: 3, ID: 1}:  {p().i16(32).bytes(), &commands.VdcIntegerPrecision{Precision: 32}},
		{Class: 3, ID: 2}:  {p().i16(0).i16(12).i16(52).bytes(), &commands.VdcRealPrecision{Specification: core.Float64Precision}},
		{Class: 3, ID: 3}:  {p().raw(2).bytes(), &commands.AuxiliaryColor{Color: core.ColorIndex{Index: 2}}},
		{Class: 3, ID: 4}:  {p().i16(1).bytes(), &commands.Transparency{Indicator: commands.On}},
		{Class: 3, ID: 5}:  {p().point(1, 2).point(3, 4).bytes(), &commands.ClipRectangle{FirstCorner: pt(1, 2), SecondCorner: pt(3, 4)}},
		{Class: 3, ID: 6}:  {p().i16(0).bytes(), &commands.ClipIndicator{Indicator: commands.Off}},
		{Class: 3, ID: 7}:  {p().i16(1).bytes(), &commands.LineClippingMode{Mode: commands.ClipShape}},
		{Class: 3, ID: 8}:  {p().i16(2).bytes(), &commands.MarkerClippingMode{Mode: commands.ClipLocusThenShape}},
		{Class: 3, ID: 9}:  {p().i16(0).bytes(), &commands.EdgeClippingMode{Mode: commands.ClipLocus}},
		{Class: 3, ID: 10}: {nil, &commands.NewRegion{}},
		{Class: 3, ID: 11}: {p().i16(3).bytes(), &commands.SavePrimitiveContext{ContextName: 3}},
		{Class: 3, ID: 12}: {p().i16(4).bytes(), &commands.RestorePrimitiveContext{ContextName: 4}},
		{Class: 3, ID: 17}: {p().i16(1).i16(2).bytes(), &commands.ProtectionRegionIndicator{Index: 1, Indicator: commands.RegionClip}},
		{Class: 3, ID: 18}: {p().i16(2).bytes(), &commands.GeneralizedTextPathMode{Mode: commands.TextPathModeAxis}},
		{Class: 3, ID: 19}: {p().fixed32(2).bytes(), &commands.MiterLimit{Limit: 2}},

		// graphical primitive elements
		{Class: 4, ID: 1}: {p().point(0, 0).point(1, 1).bytes(), &commands.Polyline{Points: []core.Point{pt(0, 0), pt(1, 1)}}},
		{Class: 4, ID: 2}: {p().point(0, 0).point(1, 1).bytes(), &commands.DisjointPolyline{Points: []core.Point{pt(0, 0), pt(1, 1)}}},
		{Class: 4, ID: 3}: {p().point(5, 6).bytes(), &commands.Polymarker{Points: []core.Point{pt(5, 6)}}},
		{Class: 4, ID: 4}: {p().point(10, 20).i16(1).str("hello").bytes(), &commands.Text{Position: pt(10, 20), Final: true, Text: "hello"}},
		{Class: 4, ID: 5}: {p().i16(10).i16(5).point(1, 2).i16(0).str("ab").bytes(), &commands.RestrictedText{DeltaWidth: 10, DeltaHeight: 5, Position: pt(1, 2), Text: "ab"}},
		{Class: 4, ID: 6}: {p().i16(1).str("c").bytes(), &commands.AppendText{Final: true, Text: "c"}},
		{Class: 4, ID: 7}: {p().point(0, 0).point(4, 0).point(4, 4).bytes(), &commands.Polygon{Points: []core.Point{pt(0, 0), pt(4, 0), pt(4, 4)}}},
		{Class: 4, ID: 8}: {p().point(0, 0).i16(1).point(5, 0).i16(3).bytes(), &commands.PolygonSet{Vertices: []core.Point{pt(0, 0), pt(5, 0)}, Flags: []commands.EdgeOutFlag{commands.EdgeVisible, commands.EdgeCloseVisible}}},
		{Class: 4, ID: 9}: {
			p().point(0, 0).point(10, 0).point(0, 10).i16(2).i16(1).i16(0).i16(1).raw(4, 5).bytes(),
			&commands.CellArray{CornerP: pt(0, 0), CornerQ: pt(10, 0), CornerR: pt(0, 10), NX: 2, NY: 1, Colors: []core.Color{core.ColorIndex{Index: 4}, core.ColorIndex{Index: 5}}},
		},
		{Class: 4, ID: 10}: {p().i16(1).i16(1).point(3, 4).str("x").bytes(), &commands.GeneralizedDrawingPrimitive{Identifier: 1, Points: []core.Point{pt(3, 4)}, DataRecord: core.OpaqueRecord("x")}},
		{Class: 4, ID: 11}: {p().point(0, 0).point(5, 5).bytes(), &commands.Rectangle{FirstCorner: pt(0, 0), SecondCorner: pt(5, 5)}},
		{Class: 4, ID: 12}: {p().point(1, 1).i16(5).bytes(), &commands.Circle{Center: pt(1, 1), Radius: 5}},
		{Class: 4, ID: 13}: {p().point(0, 0).point(1, 1).point(2, 0).bytes(), &commands.CircularArc3Point{Start: pt(0, 0), Intermediate: pt(1, 1), End: pt(2, 0)}},
		{Class: 4, ID: 14}: {p().point(0, 0).point(1, 1).point(2, 0).i16(1).bytes(), &commands.CircularArc3PointClose{Start: pt(0, 0), Intermediate: pt(1, 1), End: pt(2, 0), Closure: commands.ClosureChord}},
		{Class: 4, ID: 15}: {p().point(0, 0).point(1, 0).point(0, 1).i16(4).bytes(), &commands.CircularArcCenter{Center: pt(0, 0), StartVector: pt(1, 0), EndVector: pt(0, 1), Radius: 4}},
		{Class: 4, ID: 16}: {p().point(0, 0).point(1, 0).point(0, 1).i16(4).i16(0).bytes(), &commands.CircularArcCenterClose{Center: pt(0, 0), StartVector: pt(1, 0), EndVector: pt(0, 1), Radius: 4, Closure: commands.ClosurePie}},
		{Class: 4, ID: 17}: {p().point(0, 0).point(2, 0).point(0, 1).bytes(), &commands.Ellipse{Center: pt(0, 0), FirstConjugateDiameter: pt(2, 0), SecondConjugateDiameter: pt(0, 1)}},
		{Class: 4, ID: 18}: {
			p().point(0, 0).point(2, 0).point(0, 1).point(1, 0).point(0, 1).bytes(),
			&commands.EllipticalArc{Center: pt(0, 0), FirstConjugateDiameter: pt(2, 0), SecondConjugateDiameter: pt(0, 1), StartVector: pt(1, 0), EndVector: pt(0, 1)},
		},
		{Class: 4, ID: 19}: {
			p().point(0, 0).point(2, 0).point(0, 1).point(1, 0).point(0, 1).i16(1).bytes(),
			&commands.EllipticalArcClose{Center: pt(0, 0), FirstConjugateDiameter: pt(2, 0), SecondConjugateDiameter: pt(0, 1), StartVector: pt(1, 0), EndVector: pt(0, 1), Closure: commands.ClosureChord},
		},
		{Class: 4, ID: 21}: {nil, &commands.ConnectingEdge{}},
		{Class: 4, ID: 24}: {
			p().i16(2).i16(2).point(0, 0).point(10, 10).fixed32(0).fixed32(0).fixed32(1).fixed32(1).fixed32(0).fixed32(1).bytes(),
			&commands.NonUniformBSpline{SplineOrder: 2, ControlPoints: []core.Point{pt(0, 0), pt(10, 10)}, Knots: []float64{0, 0, 1, 1}, Start: 0, End: 1},
		},
		{Class: 4, ID: 25}: {
			p().i16(2).i16(2).point(0, 0).point(10, 10).fixed32(0).fixed32(0).fixed32(1).fixed32(1).fixed32(0).fixed32(1).fixed32(1).fixed32(2).bytes(),
			&commands.NonUniformRationalBSpline{SplineOrder: 2, ControlPoints: []core.Point{pt(0, 0), pt(10, 10)}, Knots: []float64{0, 0, 1, 1}, Start: 0, End: 1, Weights: []float64{1, 2}},
		},
		{Class: 4, ID: 26}: {p().i16(1).point(0, 0).point(1, 1).point(2, 2).point(3, 3).bytes(), &commands.Polybezier{ContinuityIndicator: 1, Points: []core.Point{pt(0, 0), pt(1, 1), pt(2, 2), pt(3, 3)}}},

		// attribute elements
		{Class: 5, ID: 1}:  {p().i16(1).bytes(), &commands.LineBundleIndex{Index: 1}},
		{Class: 5, ID: 2}:  {p().i16(2).bytes(), &commands.LineType{Index: 2}},
		{Class: 5, ID: 3}:  {p().i16(3).bytes(), &commands.LineWidth{Width: 3}},
		{Class: 5, ID: 4}:  {p().raw(4).bytes(), &commands.LineColor{Color: core.ColorIndex{Index: 4}}},
		{Class: 5, ID: 5}:  {p().i16(5).bytes(), &commands.MarkerBundleIndex{Index: 5}},
		{Class: 5, ID: 6}:  {p().i16(6).bytes(), &commands.MarkerType{Index: 6}},
		{Class: 5, ID: 7}:  {p().i16(7).bytes(), &commands.MarkerSize{Size: 7}},
		{Class: 5, ID: 8}:  {p().raw(8).bytes(), &commands.MarkerColor{Color: core.ColorIndex{Index: 8}}},
		{Class: 5, ID: 9}:  {p().i16(9).bytes(), &commands.TextBundleIndex{Index: 9}},
		{Class: 5, ID: 10}: {p().i16(10).bytes(), &commands.TextFontIndex{Index: 10}},
		{Class: 5, ID: 11}: {p().i16(2).bytes(), &commands.TextPrecision{Precision: commands.PrecisionStroke}},
		{Class: 5, ID: 12}: {p().fixed32(1.5).bytes(), &commands.CharacterExpansionFactor{Factor: 1.5}},
		{Class: 5, ID: 13}: {p().fixed32(0.25).bytes(), &commands.CharacterSpacing{Spacing: 0.25}},
		{Class: 5, ID: 14}: {p().raw(14).bytes(), &commands.TextColor{Color: core.ColorIndex{Index: 14}}},
		{Class: 5, ID: 15}: {p().i16(12).bytes(), &commands.CharacterHeight{Height: 12}},
		{Class: 5, ID: 16}: {p().point(0, 1).point(1, 0).bytes(), &commands.CharacterOrientation{Up: pt(0, 1), Base: pt(1, 0)}},
		{Class: 5, ID: 17}: {p().i16(2).bytes(), &commands.TextPath{Path: commands.PathUp}},
		{Class: 5, ID: 18}: {p().i16(2).i16(4).fixed32(0).fixed32(0.5).bytes(), &commands.TextAlignment{Horizontal: commands.HorizontalCenter, Vertical: commands.VerticalBase, ContinuousVertical: 0.5}},
		{Class: 5, ID: 19}: {p().i16(19).bytes(), &commands.CharacterSetIndex{Index: 19}},
		{Class: 5, ID: 20}: {p().i16(20).bytes(), &commands.AlternateCharacterSetIndex{Index: 20}},
		{Class: 5, ID: 21}: {p().i16(21).bytes(), &commands.FillBundleIndex{Index: 21}},
		{Class: 5, ID: 22}: {p().i16(1).bytes(), &commands.InteriorStyle{Style: commands.StyleSolid}},
		{Class: 5, ID: 23}: {p().raw(23).bytes(), &commands.FillColor{Color: core.ColorIndex{Index: 23}}},
		{Class: 5, ID: 24}: {p().i16(24).bytes(), &commands.HatchIndex{Index: 24}},
		{Class: 5, ID: 25}: {p().i16(25).bytes(), &commands.PatternIndex{Index: 25}},
		{Class: 5, ID: 26}: {p().i16(26).bytes(), &commands.EdgeBundleIndex{Index: 26}},
		{Class: 5, ID: 27}: {p().i16(27).bytes(), &commands.EdgeType{Index: 27}},
		{Class: 5, ID: 28}: {p().i16(28).bytes(), &commands.EdgeWidth{Width: 28}},
		{Class: 5, ID: 29}: {p().raw(29).bytes(), &commands.EdgeColor{Color: core.ColorIndex{Index: 29}}},
		{Class: 5, ID: 30}: {p().i16(1).bytes(), &commands.EdgeVisibility{Visibility: commands.On}},
		{Class: 5, ID: 31}: {p().point(3, 4).bytes(), &commands.FillReferencePoint{Point: pt(3, 4)}},
		{Class: 5, ID: 32}: {p().i16(1).i16(2).i16(1).i16(0).raw(1, 2).bytes(), &commands.PatternTable{Index: 1, NX: 2, NY: 1, Colors: []core.Color{core.ColorIndex{Index: 1}, core.ColorIndex{Index: 2}}}},
		{Class: 5, ID: 33}: {p().i16(0).i16(10).i16(10).i16(0).bytes(), &commands.PatternSize{Height: pt(0, 10), Width: pt(10, 0)}},
		{Class: 5, ID: 34}: {p().raw(1, 1, 2, 3).bytes(), &commands.ColorTable{StartIndex: 1, Colors: []core.Color{core.ColorRGB{R: 1, G: 2, B: 3}}}},
		{Class: 5, ID: 37}: {p().i16(3).i16(2).bytes(), &commands.LineCap{LineCapIndicator: 3, DashCapIndicator: 2}},
		{Class: 5, ID: 38}: {p().i16(2).bytes(), &commands.LineJoin{Index: 2}},
		{Class: 5, ID: 39}: {p().i16(3).bytes(), &commands.LineTypeContinuation{Index: 3}},
		{Class: 5, ID: 40}: {p().fixed32(0.5).bytes(), &commands.LineTypeInitialOffset{Offset: 0.5}},
		{Class: 5, ID: 44}: {p().i16(4).i16(3).bytes(), &commands.EdgeCap{EdgeCapIndicator: 4, DashCapIndicator: 3}},
		{Class: 5, ID: 45}: {p().i16(4).bytes(), &commands.EdgeJoin{Index: 4}},
		{Class: 5, ID: 46}: {p().i16(2).bytes(), &commands.EdgeTypeContinuation{Index: 2}},
		{Class: 5, ID: 47}: {p().fixed32(1).bytes(), &commands.EdgeTypeInitialOffset{Offset: 1}},

		// escape and external elements
		{Class: 6, ID: 1}: {p().i16(5).str("data").bytes(), &commands.Escape{Identifier: 5, DataRecord: core.OpaqueRecord("data")}},
		{Class: 7, ID: 1}: {p().i16(1).str("hi").bytes(), &commands.Message{Action: commands.ActionRequired, Message: "hi"}},
		{Class: 7, ID: 2}: {p().i16(3).str("x").bytes(), &commands.ApplicationData{Identifier: 3, DataRecord: core.OpaqueRecord("x")}},

		// application structure descriptor elements
		{Class: 9, ID: 1}: {
			p().str("name").str(sdr).bytes(),
			&commands.ApplicationStructureAttribute{
				AttributeType: "name",
				DataRecord: core.StructuredDataRecord{Elements: []core.StructuredDataElement{
					{Type: core.DataInteger, Values: []any{7}},
				}},
			},
		},
	}
}

// TestCommandTable decodes one instance of every element the command
// table registers, so a new entry without a case fails here
func TestCommandTable(t *testing.T) {
	cases := tableCases()

	for el := range commandTable {
		if _, ok := cases[el]; !ok {
			t.Errorf("no decode case for %v (%d/%d)", el, el.Class, el.ID)
		}
	}

	for el, tt := range cases {
		t.Run(el.String(), func(t *testing.T) {
			if _, ok := commandTable[el]; !ok {
				t.Fatalf("%v is not in the command table", el)
			}
			got := readOne(t, element(el.Class, el.ID, tt.data))
			if got.Element() != el {
				t.Errorf("Element() = %v, want %v", got.Element(), el)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}
