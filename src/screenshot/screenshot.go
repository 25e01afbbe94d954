// Package screenshot is the capture engine: it grabs every active display
// into an immutable frame set before any window exists, and owns the
// logical-to-physical crop arithmetic applied to those frames afterwards.
package screenshot

import (
	"fmt"
	"image"
	"sync"

	kbinani "github.com/kbinani/screenshot"
	"github.com/pkg/errors"

	"spatial-capture/src/display"
	"spatial-capture/src/worker"
)

// Frame is one display's captured pixel buffer plus its geometry and scale
// metadata. Frames are immutable after CaptureAll returns; overlay windows
// get read-only access.
type Frame struct {
	Index            int
	Name             string
	Geometry         image.Rectangle // logical, virtual-screen coordinates
	DevicePixelRatio float64
	Img              *image.RGBA // full-resolution physical pixels
}

// Scale returns the device pixel ratio, treating non-positive values as 1.0.
func (f Frame) Scale() float64 {
	if f.DevicePixelRatio <= 0 {
		return 1.0
	}
	return f.DevicePixelRatio
}

// captureWorkers bounds the per-display grab fan-out. Captures are
// memory-heavy, not CPU-heavy; a large pool buys nothing.
const captureWorkers = 4

// CaptureAll grabs every active display and returns one frame per display in
// stable index order. It must be called exactly once, before any UI exists,
// and blocks until the complete frame set is in. An empty display list or any
// per-display grab failure is fatal for the run: there is no partial frame
// set to show overlays against.
func CaptureAll() ([]Frame, error) {
	n := kbinani.NumActiveDisplays()
	if n <= 0 {
		return nil, fmt.Errorf("no active displays found")
	}

	displays := display.List()

	size := captureWorkers
	if n < size {
		size = n
	}
	pool := worker.New(size)
	defer pool.Close()

	frames := make([]Frame, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		i := i
		bounds := kbinani.GetDisplayBounds(i)
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			img, err := kbinani.CaptureRect(bounds)
			if err != nil {
				errs[i] = errors.Wrapf(err, "capture display %d", i)
				return
			}
			frames[i] = Frame{
				Index:            i,
				Name:             frameName(displays, i),
				Geometry:         bounds,
				DevicePixelRatio: pixelRatio(img.Bounds(), bounds),
				Img:              img,
			}
		})
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return frames, nil
}

func frameName(displays []display.Display, i int) string {
	if i < len(displays) {
		return displays[i].Name
	}
	return fmt.Sprintf("display-%d", i)
}

// pixelRatio derives the physical-to-logical scale from the captured buffer
// and the reported logical bounds. On HiDPI displays the buffer is larger
// than the logical rectangle; everywhere else the ratio is 1.0.
func pixelRatio(physical, logical image.Rectangle) float64 {
	if logical.Dx() <= 0 {
		return 1.0
	}
	return float64(physical.Dx()) / float64(logical.Dx())
}
