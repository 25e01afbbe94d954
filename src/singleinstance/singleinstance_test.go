package singleinstance

import "testing"

func TestAcquireRelease(t *testing.T) {
	t.Setenv("SINGLEINSTANCE_PORT", "49731")

	first, err := Acquire()
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	defer first.Release()

	if first.Port() != 49731 {
		t.Errorf("port = %d, want 49731", first.Port())
	}

	if _, err := Acquire(); err != ErrAlreadyRunning {
		t.Errorf("second Acquire: got err %v, want ErrAlreadyRunning", err)
	}

	first.Release()

	third, err := Acquire()
	if err != nil {
		t.Fatalf("Acquire after Release failed: %v", err)
	}
	third.Release()
}

func TestLockPortClamping(t *testing.T) {
	t.Setenv("SINGLEINSTANCE_PORT", "80")
	if p := lockPort(); p != 1024 {
		t.Errorf("low port clamped to %d, want 1024", p)
	}
	t.Setenv("SINGLEINSTANCE_PORT", "99999")
	if p := lockPort(); p != 65535 {
		t.Errorf("high port clamped to %d, want 65535", p)
	}
	t.Setenv("SINGLEINSTANCE_PORT", "not-a-number")
	if p := lockPort(); p != defaultLockPort {
		t.Errorf("invalid port fell back to %d, want %d", p, defaultLockPort)
	}
}
