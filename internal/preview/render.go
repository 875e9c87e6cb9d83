package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/tsawler/cgminfo/core"
)

// StrokeWidth is the outline width in pixels
const StrokeWidth = 2.0

// ErrNoGeometry is returned when there is neither a VDC extent nor any
// drawn geometry to frame the preview.
var ErrNoGeometry = errors.New("no geometry to render")

// Render draws the outlines in c into a width x height image. The frame is
// scaled uniformly to fit and the axis directions of the VDC extent are
// honoured so that the picture is upright.
func Render(c *Context, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid preview size %dx%d", width, height)
	}
	frame, ok := c.Frame()
	if !ok {
		return nil, ErrNoGeometry
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	m := viewMatrix(c, frame, width, height)
	z := vector.NewRasterizer(width, height)
	ink := image.NewUniform(color.Black)

	for _, s := range c.Shapes {
		points := s.Points
		if s.Closed && len(points) > 2 {
			points = append(points[:len(points):len(points)], points[0])
		}
		for i := 0; i+1 < len(points); i++ {
			a, b := m.Transform(points[i]), m.Transform(points[i+1])
			r := segmentBounds(a, b, img.Bounds())
			if r.Empty() {
				continue
			}
			// each segment is its own pass over the pixels it can touch,
			// so overlapping quads never cancel out under the nonzero
			// winding rule
			z.Reset(r.Dx(), r.Dy())
			origin := core.Point{X: -float64(r.Min.X), Y: -float64(r.Min.Y)}
			segment(z, a.Add(origin), b.Add(origin))
			z.Draw(img, r, ink, image.Point{})
		}
	}
	return img, nil
}

// viewMatrix maps VDC space onto the image so that the frame fills it
func viewMatrix(c *Context, frame BBox, width, height int) Matrix {
	s := math.Min(float64(width)/frame.Width, float64(height)/frame.Height)

	// image rows grow downward: the top edge of the picture is the frame
	// edge at the far end of the y direction
	x0 := frame.Left()
	if c.DirectionX < 0 {
		x0 = frame.Right()
	}
	y0 := frame.Top()
	if c.DirectionY < 0 {
		y0 = frame.Bottom()
	}
	return Translate(-x0, -y0).Multiply(Scale(c.DirectionX*s, -c.DirectionY*s))
}

// segmentBounds returns the pixels of bounds that the stroke from a to b
// can touch. It is empty when the stroke lies outside bounds or a
// coordinate is NaN.
func segmentBounds(a, b core.Point, bounds image.Rectangle) image.Rectangle {
	if math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(b.X) || math.IsNaN(b.Y) {
		return image.Rectangle{}
	}
	clamp := func(v float64, lo, hi int) int {
		return int(math.Max(float64(lo), math.Min(float64(hi), v)))
	}
	r := image.Rect(
		clamp(math.Floor(math.Min(a.X, b.X)-StrokeWidth), bounds.Min.X, bounds.Max.X),
		clamp(math.Floor(math.Min(a.Y, b.Y)-StrokeWidth), bounds.Min.Y, bounds.Max.Y),
		clamp(math.Ceil(math.Max(a.X, b.X)+StrokeWidth), bounds.Min.X, bounds.Max.X),
		clamp(math.Ceil(math.Max(a.Y, b.Y)+StrokeWidth), bounds.Min.Y, bounds.Max.Y),
	)
	return r.Intersect(bounds)
}

// segment adds a line segment to z as a quad of StrokeWidth
func segment(z *vector.Rasterizer, a, b core.Point) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		// a dot becomes a square
		a.X -= StrokeWidth / 2
		b.X += StrokeWidth / 2
		dx, dy, length = StrokeWidth, 0, StrokeWidth
	}
	nx, ny := -dy/length*StrokeWidth/2, dx/length*StrokeWidth/2
	z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	z.ClosePath()
}

// WritePNG renders c and encodes it as PNG
func WritePNG(w io.Writer, c *Context, width, height int) error {
	img, err := Render(c, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	return nil
}
