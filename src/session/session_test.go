package session

import (
	"sync"
	"testing"
)

func TestFirstCommitWins(t *testing.T) {
	s := New()

	if !s.Commit("/tmp/a.png") {
		t.Fatal("first Commit should win")
	}
	if s.Commit("/tmp/b.png") {
		t.Error("second Commit should lose")
	}
	if s.Cancel(ErrUserCancelled) {
		t.Error("Cancel after Commit should lose")
	}

	<-s.Done()
	out := s.Outcome()
	if out.Kind != Committed || out.Path != "/tmp/a.png" {
		t.Errorf("outcome = %+v, want first commit", out)
	}
}

func TestCancelBlocksLaterCommit(t *testing.T) {
	s := New()
	if !s.Cancel(ErrWindowClosed) {
		t.Fatal("Cancel should win on fresh session")
	}
	if s.Commit("/tmp/late.png") {
		t.Error("Commit after Cancel should lose")
	}
	out := s.Outcome()
	if out.Kind != Cancelled || out.Err != ErrWindowClosed {
		t.Errorf("outcome = %+v, want cancellation", out)
	}
}

func TestConcurrentResolutionExactlyOneWinner(t *testing.T) {
	s := New()

	const contenders = 32
	var wins int
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var won bool
			if i%2 == 0 {
				won = s.Commit("/tmp/race.png")
			} else {
				won = s.Cancel(ErrUserCancelled)
			}
			if won {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("%d winners, want exactly 1", wins)
	}
	if !s.Resolved() {
		t.Error("session should be resolved")
	}
}

func TestResolvedBeforeAndAfter(t *testing.T) {
	s := New()
	if s.Resolved() {
		t.Error("fresh session should not be resolved")
	}
	s.Fail(ErrDisplayChanged)
	if !s.Resolved() {
		t.Error("session should be resolved after Fail")
	}
	if out := s.Outcome(); out.Kind != Failed {
		t.Errorf("outcome kind = %v, want Failed", out.Kind)
	}
}
