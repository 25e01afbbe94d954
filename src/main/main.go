// Command spatial-capture is a screen-region capture sidecar. It freezes
// every display, lets the user draw one selection across any of them, writes
// the cropped PNG to a fixed path, and prints that path as its only stdout
// output. Exit status is the whole protocol: 0 with a path, or 1 with
// nothing.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"fyne.io/fyne/v2/app"

	"spatial-capture/src/config"
	"spatial-capture/src/logutil"
	"spatial-capture/src/orchestrator"
	"spatial-capture/src/session"
	"spatial-capture/src/singleinstance"
)

func init() {
	// the UI driver requires the main OS thread
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	enableDPIAwareness()

	opts := parseFlags(os.Args[1:])

	cfg, err := config.LoadWithOptions(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	logutil.Setup(cfg.EnableFileLogging)

	lock, err := singleinstance.Acquire()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer lock.Release()
	log.Printf("instance lock held on port %d", lock.Port())

	outcome := orchestrator.Run(context.Background(), app.New(), cfg)

	switch outcome.Kind {
	case session.Committed:
		fmt.Println(outcome.Path)
		return 0
	case session.Cancelled:
		log.Printf("cancelled: %v", outcome.Err)
		return 1
	default:
		fmt.Fprintf(os.Stderr, "capture failed: %v\n", outcome.Err)
		return 1
	}
}

// parseFlags reads the mode flags. Both single-dash and GNU double-dash
// spellings are accepted; the invoking process is not ours to retrain.
func parseFlags(args []string) config.LoadOptions {
	fs := flag.NewFlagSet("spatial-capture", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var rect, free bool
	var output string
	fs.BoolVar(&rect, "rectangle", false, "select with a rectangle")
	fs.BoolVar(&rect, "r", false, "shorthand for -rectangle")
	fs.BoolVar(&free, "freeshape", false, "select with a freehand outline")
	fs.BoolVar(&free, "f", false, "shorthand for -freeshape")
	fs.StringVar(&output, "output-dir", "", "directory for the captured PNG")

	if err := fs.Parse(normalizeFlagDashes(args)); err != nil {
		// unknown flags are ignored rather than fatal; the capture still runs
		log.Printf("flag parsing: %v", err)
	}

	opts := config.LoadOptions{OutputDirOverride: output}
	// an explicit flag beats the environment; rectangle beats freeshape if
	// the caller manages to pass both
	switch {
	case rect:
		opts.DefaultModeOverride = config.DefaultModeRectangle
	case free:
		opts.DefaultModeOverride = config.DefaultModeFreeshape
	}
	return opts
}

// normalizeFlagDashes folds GNU-style --flag spellings into the single-dash
// form the flag package expects.
func normalizeFlagDashes(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "--") && a != "--" {
			a = a[1:]
		}
		out = append(out, a)
	}
	return out
}
