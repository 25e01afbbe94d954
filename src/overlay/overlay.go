// Package overlay owns the per-display window: borderless, fullscreen,
// hosting one selection canvas over one captured frame. If any overlay
// cannot be created the whole run is aborted, so the user never sees a
// partial set of covered displays.
package overlay

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/pkg/errors"

	"spatial-capture/src/canvas"
	"spatial-capture/src/screenshot"
)

// ErrNoDesktopDriver means the running driver cannot create borderless
// windows at all (mobile or test drivers).
var ErrNoDesktopDriver = errors.New("driver cannot create borderless windows")

// Window is one display's overlay.
type Window struct {
	win        fyne.Window
	sel        canvas.Canvas
	geometry   image.Rectangle
	suppressor Suppressor
}

// New creates a borderless splash window for one frame. geometry is where
// the overlay should land: the reconciled display bounds when reconciliation
// succeeded, the frame's captured bounds otherwise (degraded placement, the
// selection math is unaffected either way).
func New(app fyne.App, frame screenshot.Frame, geometry image.Rectangle, sel canvas.Canvas, suppressor Suppressor) (*Window, error) {
	drv, ok := app.Driver().(desktop.Driver)
	if !ok {
		return nil, ErrNoDesktopDriver
	}
	win := drv.CreateSplashWindow()
	if win == nil {
		return nil, errors.Errorf("splash window creation failed for %s", frame.Name)
	}

	if suppressor == nil {
		suppressor = noopSuppressor{}
	}

	win.SetContent(sel)
	win.Resize(fyne.NewSize(float32(geometry.Dx()), float32(geometry.Dy())))

	return &Window{win: win, sel: sel, geometry: geometry, suppressor: suppressor}, nil
}

// Show makes the overlay visible, fullscreen, focused, and fading in.
// onClose fires if the window is closed by the system or window manager
// rather than through the selection flow.
func (w *Window) Show(onClose func()) {
	w.win.SetCloseIntercept(onClose)
	w.suppressor.Apply(w.win)

	w.win.SetFullScreen(true)
	w.win.Show()
	// some drivers settle fullscreen on the primary display's size first;
	// reasserting the target size nudges them onto the intended one
	w.win.Resize(fyne.NewSize(float32(w.geometry.Dx()), float32(w.geometry.Dy())))

	w.win.Canvas().Focus(w.sel)
	w.sel.StartFade()
	log.Printf("overlay shown: %dx%d at (%d,%d)",
		w.geometry.Dx(), w.geometry.Dy(), w.geometry.Min.X, w.geometry.Min.Y)
}

// Close tears the overlay down without firing the close intercept.
func (w *Window) Close() {
	w.win.SetCloseIntercept(nil)
	w.win.Close()
}

// Canvas returns the hosted selection surface.
func (w *Window) Canvas() canvas.Canvas { return w.sel }

// Geometry reports where the overlay was placed.
func (w *Window) Geometry() image.Rectangle { return w.geometry }

// PlacementFor picks the overlay geometry for a frame given the
// reconciliation outcome.
func PlacementFor(frame screenshot.Frame, reconciled image.Rectangle, ok bool) image.Rectangle {
	if ok {
		return reconciled
	}
	log.Printf("display %q not reconciled, placing overlay at captured bounds", frame.Name)
	return frame.Geometry
}
