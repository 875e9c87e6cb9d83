package preview

import (
	"math"
	"testing"

	"github.com/tsawler/cgminfo/core"
)

func TestNewBBoxFromPoints(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 core.Point
		want   BBox
	}{
		{"normal", core.Point{X: 10, Y: 20}, core.Point{X: 50, Y: 70}, BBox{10, 20, 40, 50}},
		{"reversed", core.Point{X: 50, Y: 70}, core.Point{X: 10, Y: 20}, BBox{10, 20, 40, 50}},
		{"same point", core.Point{X: 10, Y: 10}, core.Point{X: 10, Y: 10}, BBox{10, 10, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromPoints(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("NewBBoxFromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxUnion(t *testing.T) {
	a := BBox{X: 0, Y: 0, Width: 10, Height: 10}
	b := BBox{X: 5, Y: -5, Width: 10, Height: 10}

	got := a.Union(b)
	want := BBox{X: 0, Y: -5, Width: 15, Height: 15}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
	if got.Right() != 15 || got.Top() != 10 {
		t.Errorf("Right(), Top() = %v, %v; want 15, 10", got.Right(), got.Top())
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	if !(BBox{Width: 0, Height: 5}).IsEmpty() {
		t.Error("zero width box should be empty")
	}
	if (BBox{Width: 1, Height: 1}).IsEmpty() {
		t.Error("unit box should not be empty")
	}
}

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    core.Point
		want core.Point
	}{
		{"translate", Translate(10, 20), core.Point{X: 1, Y: 2}, core.Point{X: 11, Y: 22}},
		{"scale", Scale(2, -3), core.Point{X: 1, Y: 2}, core.Point{X: 2, Y: -6}},
		{"translate then scale", Translate(-1, -1).Multiply(Scale(10, 10)), core.Point{X: 2, Y: 3}, core.Point{X: 10, Y: 20}},
		{"scale then translate", Scale(10, 10).Multiply(Translate(-1, -1)), core.Point{X: 2, Y: 3}, core.Point{X: 19, Y: 29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Transform(tt.p)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Transform(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}
