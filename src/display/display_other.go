//go:build !windows

package display

import "fmt"

// deviceNames synthesizes stable per-index names. The capture subsystem uses
// the same scheme, so name matching still succeeds; geometry equality is the
// real discriminator on these platforms.
func deviceNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("display-%d", i)
	}
	return names
}
