//go:build !windows

package main

// X11 and Wayland report coordinates in a single space; the frame's
// device-pixel ratio covers scaling there.
func enableDPIAwareness() {}
