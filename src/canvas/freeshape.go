package canvas

import (
	"fyne.io/fyne/v2"

	"spatial-capture/src/screenshot"
)

// minPointGap is the squared logical distance below which a new sample is
// folded into the previous one. Keeps the path from ballooning on slow drags.
const minPointGap = 4.0

// freeShape accumulates the pointer path. Its region is the bounding box of
// the path plus the path itself, so the crop can blank everything outside
// the drawn outline.
type freeShape struct {
	points []fyne.Position
}

func (f *freeShape) begin(p fyne.Position) {
	f.points = f.points[:0]
	f.points = append(f.points, p)
}

func (f *freeShape) extend(p fyne.Position) {
	last := f.points[len(f.points)-1]
	dx := float64(p.X - last.X)
	dy := float64(p.Y - last.Y)
	if dx*dx+dy*dy < minPointGap {
		return
	}
	f.points = append(f.points, p)
}

// finish records the release point unconditionally so the path always ends
// where the button went up. The polygon is closed implicitly, last back to
// first, by the crop mask.
func (f *freeShape) finish(p fyne.Position) {
	f.points = append(f.points, p)
}

func (f *freeShape) reset() {
	f.points = nil
}

func (f *freeShape) active() bool { return len(f.points) > 0 }

func (f *freeShape) region() (screenshot.Region, bool) {
	if len(f.points) == 0 {
		return screenshot.Region{}, false
	}

	minX, minY := float64(f.points[0].X), float64(f.points[0].Y)
	maxX, maxY := minX, minY
	polygon := make([]screenshot.Point, 0, len(f.points))
	for _, p := range f.points {
		x, y := float64(p.X), float64(p.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
		polygon = append(polygon, screenshot.Point{X: x, Y: y})
	}

	return screenshot.Region{
		X:       minX,
		Y:       minY,
		Width:   maxX - minX,
		Height:  maxY - minY,
		Polygon: polygon,
	}, true
}

func (f *freeShape) paint(pt *painter, committed bool) {
	region, ok := f.region()
	if !ok {
		return
	}
	if committed {
		pt.reveal(region)
		pt.dimOutside(region)
	}
	pt.polyline(f.points)
	pt.anchor(f.points[0])
	pt.sizeLabel(region)
}
