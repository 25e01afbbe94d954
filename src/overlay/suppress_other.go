//go:build !windows

package overlay

// Compositor animation control has no portable hook outside Windows; the
// splash window style already skips most managers' map animations.
func platformSuppressor() Suppressor { return noopSuppressor{} }
