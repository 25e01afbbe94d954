// Package artifact persists the cropped selection. The output contract is
// deliberately rigid: one lossless PNG at a fixed, predictable path,
// overwritten on every successful run, so the invoking process never has to
// parse anything beyond a single absolute path on stdout.
package artifact

import (
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileName is the fixed artifact name inside the output directory.
const FileName = "spatial_capture.png"

// Save encodes img as PNG at dir/FileName and returns the absolute path.
// An empty dir means the system temp directory. Any encode or write failure
// is returned as-is; the caller treats it as fatal and produces no output.
func Save(img image.Image, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}

	path, err := filepath.Abs(filepath.Join(dir, FileName))
	if err != nil {
		return "", errors.Wrap(err, "resolve artifact path")
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", errors.Wrap(err, "encode PNG")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrapf(err, "close %s", path)
	}

	return path, nil
}
