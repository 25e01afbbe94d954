// Package hotplug watches for display-configuration changes while overlays
// are showing. Captured frames are stale the moment a display is added,
// removed, or rearranged, so the orchestrator cancels the whole run on the
// first change.
package hotplug

import (
	"context"
	"image"
	"time"

	kbinani "github.com/kbinani/screenshot"
)

// Snapshot is the display topology at one instant: per-display logical
// bounds in index order.
type Snapshot []image.Rectangle

// Take records the current topology.
func Take() Snapshot {
	n := kbinani.NumActiveDisplays()
	s := make(Snapshot, 0, n)
	for i := 0; i < n; i++ {
		s = append(s, kbinani.GetDisplayBounds(i))
	}
	return s
}

// Equal reports whether two snapshots describe the same topology.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Watcher polls the display topology and fires onChange once when it drifts
// from the baseline taken at start.
type Watcher struct {
	interval time.Duration
	snapshot func() Snapshot
	onChange func()
}

// New creates a watcher. snapshot may be nil, in which case the live
// topology is polled.
func New(interval time.Duration, snapshot func() Snapshot, onChange func()) *Watcher {
	if snapshot == nil {
		snapshot = Take
	}
	return &Watcher{interval: interval, snapshot: snapshot, onChange: onChange}
}

// Start begins polling in a background goroutine until ctx is cancelled or
// a change fires. The baseline is taken synchronously so a change racing
// with startup is still caught.
func (w *Watcher) Start(ctx context.Context) {
	baseline := w.snapshot()
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !w.snapshot().Equal(baseline) {
					w.onChange()
					return
				}
			}
		}
	}()
}
