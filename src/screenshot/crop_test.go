package screenshot

import (
	"image"
	"image/color"
	"testing"
)

// testFrame builds a synthetic frame: logical w×h at the given ratio, with
// the physical buffer sized round(logical × ratio).
func testFrame(w, h int, dpr float64) Frame {
	pw := int(float64(w)*dpr + 0.5)
	ph := int(float64(h)*dpr + 0.5)
	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return Frame{
		Index:            0,
		Name:             "display-0",
		Geometry:         image.Rect(0, 0, w, h),
		DevicePixelRatio: dpr,
		Img:              img,
	}
}

func TestNormalizedAnyDragDirection(t *testing.T) {
	cases := []Region{
		{X: 10, Y: 20, Width: 30, Height: 40},    // down-right
		{X: 40, Y: 20, Width: -30, Height: 40},   // down-left
		{X: 10, Y: 60, Width: 30, Height: -40},   // up-right
		{X: 40, Y: 60, Width: -30, Height: -40},  // up-left
	}
	for _, r := range cases {
		n := r.Normalized()
		if n.Width < 0 || n.Height < 0 {
			t.Errorf("Normalized(%+v) has negative extent: %+v", r, n)
		}
		if n.X != 10 || n.Y != 20 || n.Width != 30 || n.Height != 40 {
			t.Errorf("Normalized(%+v) = %+v, want (10,20,30,40)", r, n)
		}
	}
}

func TestCropDPIRoundTrip(t *testing.T) {
	f := testFrame(400, 300, 2.0)
	img, err := Crop(f, Region{X: 10, Y: 10, Width: 100, Height: 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("crop dims = %dx%d, want 200x100", img.Bounds().Dx(), img.Bounds().Dy())
	}
	// Pixel at crop origin must be the source pixel at physical (20,20).
	if got, want := img.RGBAAt(0, 0), f.Img.RGBAAt(20, 20); got != want {
		t.Errorf("crop origin pixel = %#v, want %#v", got, want)
	}
}

func TestCropClickWithoutDragIsDegenerate(t *testing.T) {
	f := testFrame(400, 300, 1.0)
	if _, err := Crop(f, Region{}); err != ErrDegenerate {
		t.Errorf("zero-extent crop: got err %v, want ErrDegenerate", err)
	}
}

func TestCropEntirelyOutsideBoundsIsDegenerate(t *testing.T) {
	f := testFrame(100, 100, 1.0)
	if _, err := Crop(f, Region{X: 500, Y: 500, Width: 50, Height: 50}); err != ErrDegenerate {
		t.Errorf("out-of-bounds crop: got err %v, want ErrDegenerate", err)
	}
}

func TestCropNegativeOriginKeepsExtent(t *testing.T) {
	f := testFrame(100, 100, 1.0)
	img, err := Crop(f, Region{X: -20, Y: -10, Width: 50, Height: 40})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	// The origin clamps to 0; the extent survives intact. A drag that ends
	// past the left/top window edge must not narrow the crop.
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 40 {
		t.Errorf("crop dims = %dx%d, want 50x40", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got, want := img.RGBAAt(0, 0), f.Img.RGBAAt(0, 0); got != want {
		t.Errorf("clamped origin pixel = %#v, want %#v", got, want)
	}
}

func TestCropNegativeOriginStillTruncatesAtFarEdge(t *testing.T) {
	f := testFrame(100, 100, 1.0)
	img, err := Crop(f, Region{X: -80, Y: 0, Width: 200, Height: 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	// Origin clamps to 0, then the preserved extent hits the right edge.
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 50 {
		t.Errorf("crop dims = %dx%d, want 100x50", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCropTruncatesOverhang(t *testing.T) {
	f := testFrame(100, 100, 1.0)
	img, err := Crop(f, Region{X: 80, Y: 90, Width: 50, Height: 50})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("crop dims = %dx%d, want 20x10", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCropFractionalRatioRounds(t *testing.T) {
	f := testFrame(400, 300, 1.5)
	img, err := Crop(f, Region{X: 1, Y: 1, Width: 11, Height: 11})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	// 1×1.5 rounds to 2, 11×1.5 rounds to 17 (round half away handled by math.Round).
	if img.Bounds().Dx() != 17 || img.Bounds().Dy() != 17 {
		t.Errorf("crop dims = %dx%d, want 17x17", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestCropZeroRatioTreatedAsUnity(t *testing.T) {
	f := testFrame(100, 100, 1.0)
	f.DevicePixelRatio = 0
	img, err := Crop(f, Region{X: 10, Y: 10, Width: 20, Height: 20})
	if err != nil {
		t.Fatalf("Crop failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 20 {
		t.Errorf("crop dims = %dx%d, want 20x20", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestFrameScale(t *testing.T) {
	if got := (Frame{DevicePixelRatio: 2.0}).Scale(); got != 2.0 {
		t.Errorf("Scale = %v, want 2.0", got)
	}
	if got := (Frame{DevicePixelRatio: -1}).Scale(); got != 1.0 {
		t.Errorf("Scale of negative ratio = %v, want 1.0", got)
	}
}
