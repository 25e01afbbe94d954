// Package session owns the process-wide termination decision. N overlay
// windows share one write-once outcome: the first commit or cancellation
// wins, every later signal is a no-op. This replaces ad hoc cross-window
// flags with a single one-shot result any event handler can resolve.
package session

import (
	"errors"
	"sync"
	"sync/atomic"
)

// Cancellation reasons. All of them map to exit status 1.
var (
	ErrUserCancelled  = errors.New("selection cancelled by user")
	ErrWindowClosed   = errors.New("overlay window closed before commit")
	ErrDisplayChanged = errors.New("display configuration changed during selection")
)

// Kind classifies how the run ended.
type Kind int

const (
	// Committed: a selection was cropped and persisted; Path holds the artifact.
	Committed Kind = iota
	// Cancelled: the user or a display change aborted the run.
	Cancelled
	// Failed: capture, crop, or persist failed.
	Failed
)

// Outcome is the single result of a capture run.
type Outcome struct {
	Kind Kind
	Path string
	Err  error
}

// Session is the write-once outcome shared by all overlays.
type Session struct {
	once     sync.Once
	resolved atomic.Bool
	outcome  Outcome
	done     chan struct{}
}

func New() *Session {
	return &Session{done: make(chan struct{})}
}

// Commit resolves the session with a persisted artifact path. Returns true
// if this call won the race to resolve.
func (s *Session) Commit(path string) bool {
	return s.resolve(Outcome{Kind: Committed, Path: path})
}

// Cancel resolves the session as a user/system cancellation.
func (s *Session) Cancel(reason error) bool {
	return s.resolve(Outcome{Kind: Cancelled, Err: reason})
}

// Fail resolves the session as a fatal error (degenerate crop, persist failure).
func (s *Session) Fail(err error) bool {
	return s.resolve(Outcome{Kind: Failed, Err: err})
}

func (s *Session) resolve(o Outcome) bool {
	won := false
	s.once.Do(func() {
		s.outcome = o
		s.resolved.Store(true)
		close(s.done)
		won = true
	})
	return won
}

// Resolved reports whether an outcome exists yet. Event handlers use it to
// drop input that races with a terminal signal in the same event pass.
func (s *Session) Resolved() bool { return s.resolved.Load() }

// Done is closed once the session resolves.
func (s *Session) Done() <-chan struct{} { return s.done }

// Outcome returns the resolved outcome. Valid only after Done is closed.
func (s *Session) Outcome() Outcome { return s.outcome }
