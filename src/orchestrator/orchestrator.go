// Package orchestrator runs one capture session end to end: capture every
// display, raise one overlay per display, wait for the single terminal
// signal, then crop and persist. It is the only package that sees all the
// moving parts at once.
package orchestrator

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"

	"spatial-capture/src/artifact"
	"spatial-capture/src/canvas"
	"spatial-capture/src/config"
	"spatial-capture/src/display"
	"spatial-capture/src/hotplug"
	"spatial-capture/src/overlay"
	"spatial-capture/src/screenshot"
	"spatial-capture/src/session"
)

// Run executes a full capture session on app's main loop and returns the
// resolved outcome. Capture happens before any window exists, so no overlay
// ever appears in its own screenshot.
func Run(ctx context.Context, app fyne.App, cfg *config.Config) session.Outcome {
	sess := session.New()

	frames, err := screenshot.CaptureAll()
	if err != nil {
		sess.Fail(errors.Wrap(err, "capture"))
		return sess.Outcome()
	}
	log.Printf("captured %d display(s)", len(frames))

	displays := display.List()
	if len(displays) == 0 {
		// placement degrades to captured bounds; selection still works
		log.Print("display enumeration came back empty, overlays use captured bounds")
	}

	mode := canvas.ParseMode(cfg.DefaultMode)
	suppressor := overlay.NewSuppressor(cfg.SuppressOpenAnimation)

	windows := make([]*overlay.Window, 0, len(frames))
	for _, frame := range frames {
		sel := canvas.New(mode, frame, canvas.Callbacks{
			OnCommit: func(region screenshot.Region) {
				commit(sess, cfg, frame, region)
			},
			OnCancel: func() {
				sess.Cancel(session.ErrUserCancelled)
			},
		})

		disp, ok := display.Reconcile(frame.Name, frame.Geometry, displays)
		geometry := overlay.PlacementFor(frame, disp.Geometry, ok)

		win, err := overlay.New(app, frame, geometry, sel, suppressor)
		if err != nil {
			sess.Fail(errors.Wrapf(err, "overlay for %s", frame.Name))
			for _, w := range windows {
				w.Close()
			}
			return sess.Outcome()
		}
		windows = append(windows, win)
	}

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	watcher := hotplug.New(cfg.HotplugPoll, nil, func() {
		sess.Cancel(session.ErrDisplayChanged)
	})
	watcher.Start(watchCtx)

	// one goroutine waits for the terminal signal and unwinds the UI; every
	// other path just resolves the session
	go func() {
		select {
		case <-sess.Done():
		case <-ctx.Done():
			sess.Cancel(ctx.Err())
		}
		fyne.Do(func() {
			for _, w := range windows {
				w.Close()
			}
			app.Quit()
		})
	}()

	for _, w := range windows {
		w.Show(func() {
			sess.Cancel(session.ErrWindowClosed)
		})
	}

	app.Run()

	<-sess.Done()
	return sess.Outcome()
}

// commit crops the committed region from its frame and persists the
// artifact. Degenerate selections and persistence failures both resolve the
// session as failed; the session drops whichever signal arrives second.
func commit(sess *session.Session, cfg *config.Config, frame screenshot.Frame, region screenshot.Region) {
	if sess.Resolved() {
		return
	}

	cropped, err := screenshot.Crop(frame, region)
	if err != nil {
		sess.Fail(errors.Wrapf(err, "crop from %s", frame.Name))
		return
	}

	path, err := artifact.Save(cropped, cfg.OutputDir)
	if err != nil {
		sess.Fail(errors.Wrap(err, "persist artifact"))
		return
	}

	sess.Commit(path)
}
