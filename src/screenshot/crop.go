package screenshot

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// ErrDegenerate reports a crop whose clamped physical extent is empty. The
// caller treats it as fatal for the run; no artifact is written.
var ErrDegenerate = errors.New("selection produces an empty crop")

// Point is a position in logical window coordinates.
type Point struct {
	X float64
	Y float64
}

// Region is a selection in logical window coordinates. Width/Height may be
// negative while a drag is in flight; Normalized folds the sign away.
// Polygon, when present, is the freeshape outline in the same coordinate
// space; Crop masks pixels outside it.
type Region struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Polygon []Point
}

// Normalized returns the region with its origin at the min corner and
// non-negative extents, whatever direction the drag went.
func (r Region) Normalized() Region {
	out := r
	if out.Width < 0 {
		out.X += out.Width
		out.Width = -out.Width
	}
	if out.Height < 0 {
		out.Y += out.Height
		out.Height = -out.Height
	}
	return out
}

// Crop extracts the physical sub-image a logical selection covers. All four
// rectangle parameters are scaled by the frame's device pixel ratio and
// rounded to nearest, then clamped to the buffer: a negative origin goes to
// 0 with the scaled extent preserved; only an extent running past the
// right/bottom edge is truncated. An empty result after clamping is
// ErrDegenerate. The returned image owns its pixels and carries no scale:
// its device pixel ratio is 1.0 by construction.
func Crop(f Frame, r Region) (*image.RGBA, error) {
	sel := r.Normalized()
	dpr := f.Scale()

	physX := int(math.Round(sel.X * dpr))
	physY := int(math.Round(sel.Y * dpr))
	physW := int(math.Round(sel.Width * dpr))
	physH := int(math.Round(sel.Height * dpr))

	bounds := f.Img.Bounds()
	if physX < 0 {
		physX = 0
	}
	if physY < 0 {
		physY = 0
	}
	if physX+physW > bounds.Dx() {
		physW = bounds.Dx() - physX
	}
	if physY+physH > bounds.Dy() {
		physH = bounds.Dy() - physY
	}

	if physW <= 0 || physH <= 0 {
		return nil, ErrDegenerate
	}

	cropped := image.NewRGBA(image.Rect(0, 0, physW, physH))
	src := image.Rect(physX, physY, physX+physW, physY+physH).Add(bounds.Min)
	draw.Draw(cropped, cropped.Bounds(), f.Img, src.Min, draw.Src)

	if len(sel.Polygon) >= 3 {
		maskOutsidePolygon(cropped, sel.Polygon, dpr, physX, physY)
	}

	return cropped, nil
}

// maskOutsidePolygon clears pixels outside the freeshape outline to fully
// transparent. The polygon arrives in logical frame coordinates; scale it to
// physical pixels and translate into the crop's local space first.
func maskOutsidePolygon(img *image.RGBA, polygon []Point, dpr float64, offX, offY int) {
	local := make([]Point, len(polygon))
	for i, p := range polygon {
		local[i] = Point{
			X: p.X*dpr - float64(offX),
			Y: p.Y*dpr - float64(offY),
		}
	}

	clear := color.RGBA{}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !pointInPolygon(float64(x)+0.5, float64(y)+0.5, local) {
				img.SetRGBA(x, y, clear)
			}
		}
	}
}

func pointInPolygon(px, py float64, polygon []Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	for i, j := 0, len(polygon)-1; i < len(polygon); j, i = i, i+1 {
		xi := polygon[i].X
		yi := polygon[i].Y
		xj := polygon[j].X
		yj := polygon[j].Y

		if pointOnSegment(px, py, xi, yi, xj, yj) {
			return true
		}

		intersects := ((yi > py) != (yj > py)) &&
			(px < (xj-xi)*(py-yi)/(yj-yi)+xi)
		if intersects {
			inside = !inside
		}
	}

	return inside
}

func pointOnSegment(px, py, x1, y1, x2, y2 float64) bool {
	const epsilon = 0.5
	cross := (px-x1)*(y2-y1) - (py-y1)*(x2-x1)
	if math.Abs(cross) > epsilon {
		return false
	}

	minX := math.Min(x1, x2) - epsilon
	maxX := math.Max(x1, x2) + epsilon
	minY := math.Min(y1, y2) - epsilon
	maxY := math.Max(y1, y2) + epsilon
	return px >= minX && px <= maxX && py >= minY && py <= maxY
}
