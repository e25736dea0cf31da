package engine

import (
	"testing"
	"time"
)

// TestPausableClockExcludesPauses verifies elapsed time freezes during pause
func TestPausableClockExcludesPauses(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(1000, 0))
	pc := NewPausableClock(mock)

	mock.Advance(2 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Fatalf("Expected 2s elapsed, got %s", got)
	}

	pc.Pause()
	mock.Advance(5 * time.Second)
	if got := pc.Elapsed(); got != 2*time.Second {
		t.Errorf("Expected elapsed frozen at 2s during pause, got %s", got)
	}
	if !pc.IsPaused() {
		t.Error("Expected clock to report paused")
	}

	pc.Pause() // Double pause keeps the first pause start
	pc.Resume()
	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after resume, got %s", got)
	}

	pc.Resume() // Double resume is a no-op
	if got := pc.Elapsed(); got != 3*time.Second {
		t.Errorf("Expected 3s elapsed after second resume, got %s", got)
	}
}

// TestPausableClockReset verifies reset zeroes elapsed time
func TestPausableClockReset(t *testing.T) {
	mock := NewMockTimeProvider(time.Unix(0, 0))
	pc := NewPausableClock(mock)

	mock.Advance(10 * time.Second)
	pc.Reset()
	if got := pc.Elapsed(); got != 0 {
		t.Errorf("Expected 0 after reset, got %s", got)
	}

	mock.Advance(time.Second)
	if got := pc.Elapsed(); got != time.Second {
		t.Errorf("Expected 1s after reset, got %s", got)
	}
}
