// Package canvas implements the per-display selection surface: a full-screen
// widget that paints the captured frame underneath the pointer affordances
// and runs the Idle → Drawing → Committed selection state machine. The
// rectangle and freeshape variants share the machine and differ only in the
// geometry they accumulate and how it is painted and cropped.
package canvas

import (
	"image"
	"strings"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"spatial-capture/src/screenshot"
)

// Mode selects the geometry variant.
type Mode int

const (
	ModeFreeshape Mode = iota
	ModeRectangle
)

// ParseMode maps a config mode string to a Mode. Freeshape is the default.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "rectangle") {
		return ModeRectangle
	}
	return ModeFreeshape
}

// State is the selection state machine. There is no transition out of
// StateCommitted; a later primary press restarts the machine by clearing
// the old geometry first.
type State int

const (
	StateIdle State = iota
	StateDrawing
	StateCommitted
)

// Callbacks connect a canvas to the process-wide termination protocol.
type Callbacks struct {
	// OnCommit receives the finalized selection in logical coordinates.
	// The region may still be degenerate (a click with no drag); the crop
	// step decides that.
	OnCommit func(screenshot.Region)
	// OnCancel fires on Escape or the quit key, whatever the current state.
	OnCancel func()
}

// Canvas is one display's selection surface.
type Canvas interface {
	fyne.CanvasObject
	fyne.Focusable
	// CurrentRegion returns the normalized selection, if one has been begun.
	CurrentRegion() (screenshot.Region, bool)
	// StartFade begins the gradient appearance animation. Called once, on show.
	StartFade()
	// State exposes the machine for the overlay and tests.
	State() State
}

// shape is the per-variant geometry accumulator.
type shape interface {
	begin(p fyne.Position)
	extend(p fyne.Position)
	finish(p fyne.Position)
	reset()
	active() bool
	region() (screenshot.Region, bool)
	paint(pt *painter, committed bool)
}

// New builds a selection canvas for one captured frame.
func New(mode Mode, frame screenshot.Frame, cb Callbacks) Canvas {
	var sh shape
	if mode == ModeRectangle {
		sh = &rectShape{}
	} else {
		sh = &freeShape{}
	}
	c := &selectionCanvas{frame: frame, shape: sh, cb: cb}
	c.ExtendBaseWidget(c)
	c.raster = fynecanvas.NewRaster(c.draw)
	return c
}

type selectionCanvas struct {
	widget.BaseWidget

	frame screenshot.Frame
	shape shape
	cb    Callbacks

	state   State
	current fyne.Position

	gradient float32
	raster   *fynecanvas.Raster
}

func (c *selectionCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.raster)
}

func (c *selectionCanvas) State() State { return c.state }

func (c *selectionCanvas) CurrentRegion() (screenshot.Region, bool) {
	return c.shape.region()
}

// StartFade animates the gradient overlay from transparent to full over the
// appearance window. The widget is fully interactive during the fade.
func (c *selectionCanvas) StartFade() {
	anim := fyne.NewAnimation(fadeDuration, func(v float32) {
		c.gradient = v
		c.raster.Refresh()
	})
	anim.Curve = fyne.AnimationLinear
	anim.Start()
}

// MouseDown starts a new drag. One selection per canvas lifetime is the
// rule: pressing again after a commit clears the old geometry first, so no
// residue of the previous rectangle survives into the new drag.
func (c *selectionCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if c.shape.active() {
		c.shape.reset()
	}
	c.state = StateDrawing
	c.current = ev.Position
	c.shape.begin(ev.Position)
	c.raster.Refresh()
}

// MouseUp finalizes the drag and commits. StateCommitted is terminal for
// the machine; the commit callback decides the process's fate.
func (c *selectionCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || c.state != StateDrawing {
		return
	}
	c.shape.finish(ev.Position)
	c.state = StateCommitted
	c.raster.Refresh()
	if region, ok := c.shape.region(); ok && c.cb.OnCommit != nil {
		c.cb.OnCommit(region)
	}
}

func (c *selectionCanvas) Dragged(ev *fyne.DragEvent) {
	c.current = ev.Position
	if c.state == StateDrawing {
		c.shape.extend(ev.Position)
	}
	c.raster.Refresh()
}

func (c *selectionCanvas) DragEnd() {}

func (c *selectionCanvas) MouseIn(ev *desktop.MouseEvent) {
	c.current = ev.Position
	c.raster.Refresh()
}

// MouseMoved keeps the crosshair cue tracking the pointer while idle and
// feeds the live end point while drawing.
func (c *selectionCanvas) MouseMoved(ev *desktop.MouseEvent) {
	c.current = ev.Position
	if c.state == StateDrawing {
		c.shape.extend(ev.Position)
	}
	c.raster.Refresh()
}

func (c *selectionCanvas) MouseOut() {}

func (c *selectionCanvas) Cursor() desktop.Cursor {
	return desktop.CrosshairCursor
}

// TypedKey cancels the whole run on Escape or Q, regardless of state.
func (c *selectionCanvas) TypedKey(ev *fyne.KeyEvent) {
	if ev.Name == fyne.KeyEscape || ev.Name == fyne.KeyQ {
		if c.cb.OnCancel != nil {
			c.cb.OnCancel()
		}
	}
}

func (c *selectionCanvas) TypedRune(rune) {}
func (c *selectionCanvas) FocusGained()   {}
func (c *selectionCanvas) FocusLost()     {}

// draw renders one frame of the overlay into the raster buffer. w and h are
// physical raster pixels; selection geometry lives in logical widget
// coordinates, so the painter carries the scale between the two.
func (c *selectionCanvas) draw(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	logical := c.Size()
	if logical.Width <= 0 || logical.Height <= 0 {
		logical = fyne.NewSize(float32(c.frame.Geometry.Dx()), float32(c.frame.Geometry.Dy()))
	}

	pt := newPainter(w, h, logical)
	pt.background(c.frame.Img)
	pt.gradient(c.gradient)

	if c.shape.active() {
		c.shape.paint(pt, c.state == StateCommitted)
	} else {
		pt.crosshair(c.current)
	}
	return pt.dst
}
