package preview

import (
	"testing"

	"github.com/tsawler/cgminfo/core"
)

func TestContextDirections(t *testing.T) {
	tests := []struct {
		name                  string
		lowerLeft, upperRight core.Point
		wantX, wantY          float64
	}{
		{"standard", core.Point{X: 0, Y: 0}, core.Point{X: 10, Y: 10}, 1, 1},
		{"y down", core.Point{X: 0, Y: 10}, core.Point{X: 10, Y: 0}, 1, -1},
		{"x left", core.Point{X: 10, Y: 0}, core.Point{X: 0, Y: 10}, -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContext()
			c.SetExtent(tt.lowerLeft, tt.upperRight)
			if c.DirectionX != tt.wantX || c.DirectionY != tt.wantY {
				t.Errorf("directions = %v, %v; want %v, %v", c.DirectionX, c.DirectionY, tt.wantX, tt.wantY)
			}
			if c.VdcExtent != (BBox{0, 0, 10, 10}) {
				t.Errorf("VdcExtent = %+v", c.VdcExtent)
			}
		})
	}
}

func TestContextFrame(t *testing.T) {
	c := NewContext()
	if _, ok := c.Frame(); ok {
		t.Error("empty context has a frame")
	}

	c.Add(Shape{Points: []core.Point{{X: 2, Y: 2}, {X: 8, Y: 4}}})
	frame, ok := c.Frame()
	if !ok {
		t.Fatal("no frame from geometry")
	}
	// each point contributes a unit box
	if want := (BBox{2, 2, 7, 3}); frame != want {
		t.Errorf("geometry frame = %+v, want %+v", frame, want)
	}

	c.SetExtent(core.Point{X: 0, Y: 0}, core.Point{X: 100, Y: 50})
	if frame, _ := c.Frame(); frame != (BBox{0, 0, 100, 50}) {
		t.Errorf("extent frame = %+v", frame)
	}
}

func TestContextAddIgnoresEmptyShapes(t *testing.T) {
	c := NewContext()
	c.Add(Shape{})
	if len(c.Shapes) != 0 {
		t.Errorf("got %d shapes, want 0", len(c.Shapes))
	}
}
