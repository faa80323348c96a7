package overlay

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"github.com/ivlev/slidebar/internal/bar"
)

// kappa places cubic control points so four curves approximate an ellipse
const kappa = 0.5522847498

// fillShape paints s onto dst. Shape coordinates are scaled by sx, sy into pixels.
// Only the pixels under the shape's bounding box are rasterized.
func fillShape(dst *image.RGBA, s bar.Shape, sx, sy float64, c color.Color) {
	fx0, fy0 := s.Left*sx, s.Top*sy
	fx1, fy1 := s.Right()*sx, s.Bottom()*sy
	if fx1 <= fx0 || fy1 <= fy0 {
		return
	}

	box := image.Rect(
		int(math.Floor(fx0)), int(math.Floor(fy0)),
		int(math.Ceil(fx1)), int(math.Ceil(fy1)),
	).Intersect(dst.Bounds())
	if box.Empty() {
		return
	}

	// rasterizer space starts at box.Min
	x0 := float32(fx0 - float64(box.Min.X))
	y0 := float32(fy0 - float64(box.Min.Y))
	x1 := float32(fx1 - float64(box.Min.X))
	y1 := float32(fy1 - float64(box.Min.Y))

	z := vector.NewRasterizer(box.Dx(), box.Dy())

	switch s.Kind {
	case bar.KindOval:
		cx, cy := (x0+x1)/2, (y0+y1)/2
		rx, ry := (x1-x0)/2, (y1-y0)/2
		kx, ky := kappa*rx, kappa*ry
		z.MoveTo(cx+rx, cy)
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	default:
		x0, y0 = max(x0, 0), max(y0, 0)
		x1, y1 = min(x1, float32(box.Dx())), min(y1, float32(box.Dy()))
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
	}
	z.ClosePath()
	z.Draw(dst, box, image.NewUniform(c), image.Point{})
}
