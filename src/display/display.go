// Package display enumerates live displays and matches captured frames back
// to them. Capture-side display identity and windowing-side display identity
// are not guaranteed to agree across platforms, so matching is best-effort:
// exact name first, exact logical geometry second, nothing third.
package display

import (
	"image"

	"github.com/kbinani/screenshot"
)

// Display is one live display as reported by the windowing subsystem.
type Display struct {
	Name     string
	Geometry image.Rectangle
}

// List returns all active displays in stable index order. Returns an empty
// slice when no display is attached.
func List() []Display {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return nil
	}
	names := deviceNames(n)
	displays := make([]Display, n)
	for i := 0; i < n; i++ {
		displays[i] = Display{
			Name:     names[i],
			Geometry: screenshot.GetDisplayBounds(i),
		}
	}
	return displays
}

// Reconcile finds the live display a captured frame belongs on. Policy, in
// order: exact name equality, exact geometry equality, no match. A no-match
// is not an error: the caller positions the window from the frame's own
// geometry without screen affinity.
func Reconcile(name string, geometry image.Rectangle, displays []Display) (Display, bool) {
	if name != "" {
		for _, d := range displays {
			if d.Name == name {
				return d, true
			}
		}
	}
	for _, d := range displays {
		if d.Geometry == geometry {
			return d, true
		}
	}
	return Display{}, false
}
