package overlay

import "fyne.io/fyne/v2"

// Suppressor disables the window manager's open/close animation for a
// window. Overlays must appear instantly on every display at once; a staggered
// zoom-in animation per display reads as flicker.
type Suppressor interface {
	Apply(win fyne.Window)
}

type noopSuppressor struct{}

func (noopSuppressor) Apply(fyne.Window) {}

// NewSuppressor returns the platform suppressor, or a no-op when disabled.
func NewSuppressor(enabled bool) Suppressor {
	if !enabled {
		return noopSuppressor{}
	}
	return platformSuppressor()
}
