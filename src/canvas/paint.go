package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"fyne.io/fyne/v2"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"spatial-capture/src/screenshot"
)

const (
	// fadeDuration is the gradient appearance window. Input is live the
	// whole time.
	fadeDuration = 200 * time.Millisecond

	// dimAlpha darkens the unselected area once a drag exists.
	dimAlpha = 100

	// gradientAlpha is the peak darkening of the idle-hint gradient at the
	// bottom edge.
	gradientAlpha = 110

	// labelAlpha is the translucency of the size label's backing box.
	labelAlpha = 180

	borderWidth  = 2
	handleRadius = 4
	crosshairArm = 20
	labelGap     = 20
)

// painter draws overlay chrome into a physical-pixel buffer. All public
// inputs are logical widget coordinates; sx/sy carry the logical-to-buffer
// scale so chrome lands on the same screen spot at any DPI.
type painter struct {
	dst *image.RGBA
	src *image.RGBA
	sx  float64
	sy  float64
}

func newPainter(w, h int, logical fyne.Size) *painter {
	return &painter{
		dst: image.NewRGBA(image.Rect(0, 0, w, h)),
		sx:  float64(w) / float64(logical.Width),
		sy:  float64(h) / float64(logical.Height),
	}
}

func (p *painter) bufX(x float64) int { return int(x*p.sx + 0.5) }
func (p *painter) bufY(y float64) int { return int(y*p.sy + 0.5) }

// background scales the captured frame to fill the buffer. Same-size frames
// (the common case, scale 1.0) degrade to a plain copy inside the scaler.
func (p *painter) background(src *image.RGBA) {
	if src == nil {
		return
	}
	p.src = src
	if src.Bounds().Dx() == p.dst.Bounds().Dx() && src.Bounds().Dy() == p.dst.Bounds().Dy() {
		draw.Draw(p.dst, p.dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return
	}
	xdraw.ApproxBiLinear.Scale(p.dst, p.dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// gradient darkens the lower two thirds of the frame, ramping from nothing
// at the one-third line to gradientAlpha at the bottom edge, scaled by the
// fade opacity. It hints "this screen is now an overlay" without hiding
// content near the top.
func (p *painter) gradient(opacity float32) {
	if opacity <= 0 {
		return
	}
	h := p.dst.Bounds().Dy()
	start := h / 3
	span := float64(h - start)
	if span <= 0 {
		return
	}
	for y := start; y < h; y++ {
		t := float64(y-start) / span
		a := uint8(float64(gradientAlpha) * t * float64(opacity))
		if a == 0 {
			continue
		}
		p.shadeRow(y, a)
	}
}

func (p *painter) shadeRow(y int, alpha uint8) {
	b := p.dst.Bounds()
	row := p.dst.Pix[p.dst.PixOffset(b.Min.X, y):p.dst.PixOffset(b.Max.X, y)]
	keep := uint32(255 - alpha)
	for i := 0; i < len(row); i += 4 {
		row[i] = uint8(uint32(row[i]) * keep / 255)
		row[i+1] = uint8(uint32(row[i+1]) * keep / 255)
		row[i+2] = uint8(uint32(row[i+2]) * keep / 255)
	}
}

func (p *painter) shadeRect(r image.Rectangle, alpha uint8) {
	r = r.Intersect(p.dst.Bounds())
	keep := uint32(255 - alpha)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := p.dst.Pix[p.dst.PixOffset(r.Min.X, y):p.dst.PixOffset(r.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i] = uint8(uint32(row[i]) * keep / 255)
			row[i+1] = uint8(uint32(row[i+1]) * keep / 255)
			row[i+2] = uint8(uint32(row[i+2]) * keep / 255)
		}
	}
}

// toRect converts a logical region to buffer pixel bounds.
func (p *painter) toRect(region screenshot.Region) image.Rectangle {
	return image.Rect(
		p.bufX(region.X), p.bufY(region.Y),
		p.bufX(region.X+region.Width), p.bufY(region.Y+region.Height),
	)
}

// reveal re-copies the source pixels inside the selection so it stays at
// full brightness no matter what the gradient did underneath.
func (p *painter) reveal(region screenshot.Region) {
	if p.src == nil {
		return
	}
	dstR := p.toRect(region).Intersect(p.dst.Bounds())
	if dstR.Empty() {
		return
	}
	if p.src.Bounds().Size() == p.dst.Bounds().Size() {
		draw.Draw(p.dst, dstR, p.src, dstR.Min.Add(p.src.Bounds().Min), draw.Src)
		return
	}
	fx := float64(p.src.Bounds().Dx()) / float64(p.dst.Bounds().Dx())
	fy := float64(p.src.Bounds().Dy()) / float64(p.dst.Bounds().Dy())
	srcR := image.Rect(
		int(float64(dstR.Min.X)*fx), int(float64(dstR.Min.Y)*fy),
		int(float64(dstR.Max.X)*fx+0.5), int(float64(dstR.Max.Y)*fy+0.5),
	).Add(p.src.Bounds().Min)
	xdraw.ApproxBiLinear.Scale(p.dst, dstR, p.src, srcR, xdraw.Src, nil)
}

// dimOutside darkens everything except the selection, in four bands around
// it, leaving the selected pixels at full brightness.
func (p *painter) dimOutside(region screenshot.Region) {
	sel := p.toRect(region)
	b := p.dst.Bounds()
	sel = sel.Intersect(b)

	p.shadeRect(image.Rect(b.Min.X, b.Min.Y, b.Max.X, sel.Min.Y), dimAlpha)
	p.shadeRect(image.Rect(b.Min.X, sel.Max.Y, b.Max.X, b.Max.Y), dimAlpha)
	p.shadeRect(image.Rect(b.Min.X, sel.Min.Y, sel.Min.X, sel.Max.Y), dimAlpha)
	p.shadeRect(image.Rect(sel.Max.X, sel.Min.Y, b.Max.X, sel.Max.Y), dimAlpha)
}

var chromeWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func (p *painter) fillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(p.dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p.dst.SetRGBA(x, y, c)
		}
	}
}

// strokeRect draws the selection border just outside the selected pixels so
// the border itself is never part of the crop.
func (p *painter) strokeRect(region screenshot.Region) {
	sel := p.toRect(region)
	w := int(float64(borderWidth)*p.sx + 0.5)
	if w < 1 {
		w = 1
	}
	p.fillRect(image.Rect(sel.Min.X-w, sel.Min.Y-w, sel.Max.X+w, sel.Min.Y), chromeWhite)
	p.fillRect(image.Rect(sel.Min.X-w, sel.Max.Y, sel.Max.X+w, sel.Max.Y+w), chromeWhite)
	p.fillRect(image.Rect(sel.Min.X-w, sel.Min.Y, sel.Min.X, sel.Max.Y), chromeWhite)
	p.fillRect(image.Rect(sel.Max.X, sel.Min.Y, sel.Max.X+w, sel.Max.Y), chromeWhite)
}

func (p *painter) fillCircle(cx, cy, r int, c color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				x, y := cx+dx, cy+dy
				if image.Pt(x, y).In(p.dst.Bounds()) {
					p.dst.SetRGBA(x, y, c)
				}
			}
		}
	}
}

// handles marks the four corners with filled dots. Cosmetic only; there is
// no resize interaction in this tool.
func (p *painter) handles(region screenshot.Region) {
	sel := p.toRect(region)
	r := int(float64(handleRadius)*p.sx + 0.5)
	if r < 2 {
		r = 2
	}
	p.fillCircle(sel.Min.X, sel.Min.Y, r, chromeWhite)
	p.fillCircle(sel.Max.X, sel.Min.Y, r, chromeWhite)
	p.fillCircle(sel.Min.X, sel.Max.Y, r, chromeWhite)
	p.fillCircle(sel.Max.X, sel.Max.Y, r, chromeWhite)
}

// sizeLabel draws "W × H" in logical units below the selection, clamped
// back above it when the selection touches the bottom edge.
func (p *painter) sizeLabel(region screenshot.Region) {
	x, y, w, h := region.X, region.Y, region.Width, region.Height
	text := fmt.Sprintf("%d × %d", int(w+0.5), int(h+0.5))

	face := basicfont.Face7x13
	textW := font.MeasureString(face, text).Ceil()
	textH := face.Metrics().Height.Ceil()
	pad := 4

	cx := p.bufX(x + w/2)
	top := p.bufY(y+h) + int(float64(labelGap)*p.sy+0.5)
	if top+textH+2*pad > p.dst.Bounds().Max.Y {
		top = p.bufY(y) - int(float64(labelGap)*p.sy+0.5) - textH - 2*pad
	}

	box := image.Rect(cx-textW/2-pad, top, cx+textW/2+pad, top+textH+2*pad)
	p.shadeRect(box, labelAlpha)

	d := font.Drawer{
		Dst:  p.dst,
		Src:  image.NewUniform(chromeWhite),
		Face: face,
		Dot: fixed.P(
			box.Min.X+pad,
			box.Min.Y+pad+face.Metrics().Ascent.Ceil(),
		),
	}
	d.DrawString(text)
}

// crosshair is the idle cue under the pointer before any drag starts.
func (p *painter) crosshair(pos fyne.Position) {
	cx := p.bufX(float64(pos.X))
	cy := p.bufY(float64(pos.Y))
	arm := int(float64(crosshairArm)*p.sx + 0.5)
	p.fillRect(image.Rect(cx-arm, cy, cx+arm, cy+1), chromeWhite)
	p.fillRect(image.Rect(cx, cy-arm, cx+1, cy+arm), chromeWhite)
}

// polyline strokes the freeshape path with square caps.
func (p *painter) polyline(points []fyne.Position) {
	if len(points) == 0 {
		return
	}
	w := int(float64(borderWidth)*p.sx + 0.5)
	if w < 1 {
		w = 1
	}
	prev := points[0]
	for _, pos := range points[1:] {
		p.line(prev, pos, w)
		prev = pos
	}
}

func (p *painter) line(a, b fyne.Position, width int) {
	x0, y0 := p.bufX(float64(a.X)), p.bufY(float64(a.Y))
	x1, y1 := p.bufX(float64(b.X)), p.bufY(float64(b.Y))

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		p.fillRect(image.Rect(x0-width/2, y0-width/2, x0+width/2+1, y0+width/2+1), chromeWhite)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// anchor marks the path origin so the user can see where the outline will
// close.
func (p *painter) anchor(pos fyne.Position) {
	r := int(float64(handleRadius)*p.sx + 0.5)
	if r < 2 {
		r = 2
	}
	p.fillCircle(p.bufX(float64(pos.X)), p.bufY(float64(pos.Y)), r, chromeWhite)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
