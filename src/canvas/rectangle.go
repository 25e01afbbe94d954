package canvas

import (
	"fyne.io/fyne/v2"

	"spatial-capture/src/screenshot"
)

// rectShape accumulates a press point and a live end point. Any drag
// direction is valid; normalization to a min-corner rectangle happens in the
// Region, not here, so the painter can still tell which corner is anchored.
type rectShape struct {
	start fyne.Position
	end   fyne.Position
	begun bool
}

func (r *rectShape) begin(p fyne.Position) {
	r.start = p
	r.end = p
	r.begun = true
}

func (r *rectShape) extend(p fyne.Position) { r.end = p }
func (r *rectShape) finish(p fyne.Position) { r.end = p }

func (r *rectShape) reset() {
	*r = rectShape{}
}

func (r *rectShape) active() bool { return r.begun }

func (r *rectShape) region() (screenshot.Region, bool) {
	if !r.begun {
		return screenshot.Region{}, false
	}
	raw := screenshot.Region{
		X:      float64(r.start.X),
		Y:      float64(r.start.Y),
		Width:  float64(r.end.X - r.start.X),
		Height: float64(r.end.Y - r.start.Y),
	}
	return raw.Normalized(), true
}

func (r *rectShape) paint(pt *painter, committed bool) {
	region, ok := r.region()
	if !ok {
		return
	}
	pt.reveal(region)
	pt.dimOutside(region)
	pt.strokeRect(region)
	pt.handles(region)
	pt.sizeLabel(region)
}
