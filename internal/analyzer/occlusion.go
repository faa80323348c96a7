package analyzer

import (
	"image"
	"image/color"
	"math"
)

// OcclusionChecker looks for slide content under the area a bar is about to cover.
// Content is detected as Sobel edges: a flat background has none.
type OcclusionChecker struct {
	EdgeThreshold float64 // gradient magnitude that counts as an edge
	MinDensity    float64 // share of edge pixels that counts as content
}

func NewOcclusionChecker() *OcclusionChecker {
	return &OcclusionChecker{
		EdgeThreshold: 30.0,
		MinDensity:    0.01,
	}
}

// Covers reports whether area of img looks like it holds content
func (c *OcclusionChecker) Covers(img image.Image, area image.Rectangle) bool {
	return c.EdgeDensity(img, area) >= c.MinDensity
}

// EdgeDensity returns the share of pixels inside area that lie on an edge.
// The outermost ring of area has no full neighbourhood and is not counted.
func (c *OcclusionChecker) EdgeDensity(img image.Image, area image.Rectangle) float64 {
	area = area.Intersect(img.Bounds())
	if area.Dx() < 3 || area.Dy() < 3 {
		return 0
	}
	gray := toGrayscale(img, area)

	// Sobel kernels
	gx := [3][3]float64{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	gy := [3][3]float64{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

	edges, total := 0, 0
	for y := area.Min.Y + 1; y < area.Max.Y-1; y++ {
		for x := area.Min.X + 1; x < area.Max.X-1; x++ {
			var sumX, sumY float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := float64(gray.GrayAt(x+kx, y+ky).Y)
					sumX += v * gx[ky+1][kx+1]
					sumY += v * gy[ky+1][kx+1]
				}
			}
			if math.Sqrt(sumX*sumX+sumY*sumY) > c.EdgeThreshold {
				edges++
			}
			total++
		}
	}
	return float64(edges) / float64(total)
}

func toGrayscale(img image.Image, area image.Rectangle) *image.Gray {
	gray := image.NewGray(area)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(img.At(x, y)))
		}
	}
	return gray
}
