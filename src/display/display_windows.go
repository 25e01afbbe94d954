//go:build windows

package display

import (
	"fmt"
	"log"
	"unsafe"

	"github.com/lxn/win"
	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayDevices = user32.NewProc("EnumDisplayDevicesW")
)

type displayDevice struct {
	cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

const displayDeviceAttachedToDesktop = 0x00000001

// deviceNames resolves GDI device names (`\\.\DISPLAY1`, ...) for the n
// active displays, in adapter enumeration order. Falls back to synthetic
// names for any display the enumeration does not cover.
func deviceNames(n int) []string {
	names := make([]string, 0, n)

	for i := uint32(0); len(names) < n; i++ {
		var dd displayDevice
		dd.cb = uint32(unsafe.Sizeof(dd))
		ret, _, _ := procEnumDisplayDevices.Call(0, uintptr(i), uintptr(unsafe.Pointer(&dd)), 0)
		if ret == 0 {
			break
		}
		if dd.StateFlags&displayDeviceAttachedToDesktop == 0 {
			continue
		}
		names = append(names, windows.UTF16ToString(dd.DeviceName[:]))
	}

	if monitors := int(win.GetSystemMetrics(win.SM_CMONITORS)); monitors != n {
		log.Printf("display: capture reports %d displays, system metrics report %d", n, monitors)
	}

	for len(names) < n {
		names = append(names, fmt.Sprintf("display-%d", len(names)))
	}
	return names[:n]
}
