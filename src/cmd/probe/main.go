// Command probe is a diagnostic for display topology and capture. It never
// opens a window, so it is safe to run over SSH while debugging why the
// interactive tool misplaces an overlay.
package main

import (
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"spatial-capture/src/display"
	"spatial-capture/src/screenshot"
)

type displayReport struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type frameReport struct {
	displayReport
	PhysicalWidth    int     `json:"physicalWidth"`
	PhysicalHeight   int     `json:"physicalHeight"`
	DevicePixelRatio float64 `json:"devicePixelRatio"`
}

func displayReports(displays []display.Display) []displayReport {
	out := make([]displayReport, 0, len(displays))
	for i, d := range displays {
		out = append(out, displayReport{
			Index:  i,
			Name:   d.Name,
			X:      d.Geometry.Min.X,
			Y:      d.Geometry.Min.Y,
			Width:  d.Geometry.Dx(),
			Height: d.Geometry.Dy(),
		})
	}
	return out
}

func frameReports(frames []screenshot.Frame) []frameReport {
	out := make([]frameReport, 0, len(frames))
	for _, f := range frames {
		out = append(out, frameReport{
			displayReport: displayReport{
				Index:  f.Index,
				Name:   f.Name,
				X:      f.Geometry.Min.X,
				Y:      f.Geometry.Min.Y,
				Width:  f.Geometry.Dx(),
				Height: f.Geometry.Dy(),
			},
			PhysicalWidth:    f.Img.Bounds().Dx(),
			PhysicalHeight:   f.Img.Bounds().Dy(),
			DevicePixelRatio: f.DevicePixelRatio,
		})
	}
	return out
}

func emit(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	root := &cobra.Command{
		Use:          "probe",
		Short:        "Inspect display topology and capture without opening windows",
		SilenceUsage: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "displays",
		Short: "List displays as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return emit(displayReports(display.List()))
		},
	})

	var save bool
	frames := &cobra.Command{
		Use:   "frames",
		Short: "Capture every display and report frame metadata as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			captured, err := screenshot.CaptureAll()
			if err != nil {
				return err
			}
			if save {
				for _, f := range captured {
					path := filepath.Join(os.TempDir(), fmt.Sprintf("spatial_capture_probe_%d.png", f.Index))
					if err := writePNG(path, f); err != nil {
						return err
					}
					fmt.Fprintln(os.Stderr, path)
				}
			}
			return emit(frameReports(captured))
		},
	}
	frames.Flags().BoolVar(&save, "save", false, "also write each frame as PNG to the temp directory")
	root.AddCommand(frames)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func writePNG(path string, f screenshot.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, f.Img)
}
