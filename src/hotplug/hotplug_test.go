package hotplug

import (
	"context"
	"image"
	"sync/atomic"
	"testing"
	"time"
)

func TestSnapshotEqual(t *testing.T) {
	a := Snapshot{image.Rect(0, 0, 1920, 1080), image.Rect(1920, 0, 3840, 1080)}
	b := Snapshot{image.Rect(0, 0, 1920, 1080), image.Rect(1920, 0, 3840, 1080)}
	if !a.Equal(b) {
		t.Error("identical snapshots should be equal")
	}

	moved := Snapshot{image.Rect(0, 0, 1920, 1080), image.Rect(1920, 100, 3840, 1180)}
	if a.Equal(moved) {
		t.Error("rearranged snapshot should differ")
	}

	removed := Snapshot{image.Rect(0, 0, 1920, 1080)}
	if a.Equal(removed) {
		t.Error("snapshot with fewer displays should differ")
	}
}

func TestWatcherFiresOnChange(t *testing.T) {
	var flips atomic.Int64
	snapshot := func() Snapshot {
		if flips.Add(1) > 2 {
			return Snapshot{image.Rect(0, 0, 800, 600)}
		}
		return Snapshot{image.Rect(0, 0, 1920, 1080)}
	}

	fired := make(chan struct{})
	w := New(5*time.Millisecond, snapshot, func() { close(fired) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not fire on topology change")
	}
}

func TestWatcherQuietWhenStable(t *testing.T) {
	var fired atomic.Bool
	stable := func() Snapshot { return Snapshot{image.Rect(0, 0, 1024, 768)} }
	w := New(5*time.Millisecond, stable, func() { fired.Store(true) })

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	time.Sleep(50 * time.Millisecond)
	cancel()

	if fired.Load() {
		t.Error("watcher fired with a stable topology")
	}
}
