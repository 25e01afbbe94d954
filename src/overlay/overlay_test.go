package overlay

import (
	"image"
	"testing"

	"fyne.io/fyne/v2/test"

	"spatial-capture/src/canvas"
	"spatial-capture/src/screenshot"
)

func TestNewRejectsNonDesktopDriver(t *testing.T) {
	app := test.NewApp()
	frame := screenshot.Frame{
		Name:             "test",
		Geometry:         image.Rect(0, 0, 640, 480),
		DevicePixelRatio: 1.0,
		Img:              image.NewRGBA(image.Rect(0, 0, 640, 480)),
	}
	sel := canvas.New(canvas.ModeRectangle, frame, canvas.Callbacks{})

	_, err := New(app, frame, frame.Geometry, sel, nil)
	if err == nil {
		t.Fatal("expected an error from a driver without splash windows")
	}
}

func TestPlacementFor(t *testing.T) {
	frame := screenshot.Frame{
		Name:     "DISPLAY2",
		Geometry: image.Rect(1920, 0, 3840, 1080),
	}

	reconciled := image.Rect(1920, 0, 3840, 1080)
	if got := PlacementFor(frame, reconciled, true); got != reconciled {
		t.Errorf("reconciled placement = %v, want %v", got, reconciled)
	}

	if got := PlacementFor(frame, image.Rectangle{}, false); got != frame.Geometry {
		t.Errorf("fallback placement = %v, want captured bounds %v", got, frame.Geometry)
	}
}

func TestSuppressorDisabled(t *testing.T) {
	if _, ok := NewSuppressor(false).(noopSuppressor); !ok {
		t.Error("disabled suppressor should be the no-op")
	}
}
