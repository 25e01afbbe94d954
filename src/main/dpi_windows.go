//go:build windows

package main

import (
	"log"

	"golang.org/x/sys/windows"
)

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	shcore = windows.NewLazySystemDLL("shcore.dll")

	setProcessDpiAwarenessContext = user32.NewProc("SetProcessDpiAwarenessContext")
	setProcessDPIAware            = user32.NewProc("SetProcessDPIAware")
	setProcessDpiAwareness        = shcore.NewProc("SetProcessDpiAwareness")
)

const (
	// DPI_AWARENESS_CONTEXT_PER_MONITOR_AWARE_V2
	dpiAwarenessContextPerMonitorV2 = ^uintptr(3)
	// PROCESS_PER_MONITOR_DPI_AWARE
	processPerMonitorDPIAware = 2
)

// enableDPIAwareness opts the process into per-monitor DPI awareness before
// any window or capture call. Without it the OS lies about coordinates on
// scaled displays and the crop math drifts. Newest API first, with fallbacks
// down to Vista-era SetProcessDPIAware.
func enableDPIAwareness() {
	if setProcessDpiAwarenessContext.Find() == nil {
		if ret, _, _ := setProcessDpiAwarenessContext.Call(dpiAwarenessContextPerMonitorV2); ret != 0 {
			return
		}
	}
	if setProcessDpiAwareness.Find() == nil {
		if ret, _, _ := setProcessDpiAwareness.Call(processPerMonitorDPIAware); ret == 0 {
			return
		}
	}
	if setProcessDPIAware.Find() == nil {
		if ret, _, _ := setProcessDPIAware.Call(); ret != 0 {
			return
		}
	}
	log.Print("could not enable DPI awareness; scaled displays may misreport coordinates")
}
