//go:build windows

package overlay

import (
	"log"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

var (
	dwmapi                = windows.NewLazySystemDLL("dwmapi.dll")
	dwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const dwmwaTransitionsForceDisabled = 3

type dwmSuppressor struct{}

func platformSuppressor() Suppressor { return dwmSuppressor{} }

// Apply turns off DWM open/close transitions for the window. Best effort:
// a failure only costs the instant-appearance polish.
func (dwmSuppressor) Apply(win fyne.Window) {
	native, ok := win.(driver.NativeWindow)
	if !ok {
		return
	}
	native.RunNative(func(ctx any) {
		wctx, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			return
		}
		disabled := int32(1)
		ret, _, _ := dwmSetWindowAttribute.Call(
			wctx.HWND,
			dwmwaTransitionsForceDisabled,
			uintptr(unsafe.Pointer(&disabled)),
			unsafe.Sizeof(disabled),
		)
		if ret != 0 {
			log.Printf("DwmSetWindowAttribute failed: 0x%x", ret)
		}
	})
}
