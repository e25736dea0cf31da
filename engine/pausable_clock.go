package engine

import "time"

// PausableClock measures match time that stands still while the match is paused
// Not safe for concurrent use; owned by the game loop
type PausableClock struct {
	provider TimeProvider

	startTime       time.Time     // Real time at (re)start
	isPaused        bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative pause duration since start
}

// NewPausableClock creates a running clock reading from provider
func NewPausableClock(provider TimeProvider) *PausableClock {
	return &PausableClock{
		provider:  provider,
		startTime: provider.Now(),
	}
}

// Elapsed returns match time since the last Reset, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	now := pc.provider.Now()
	if pc.isPaused {
		now = pc.pauseStartTime
	}
	return now.Sub(pc.startTime) - pc.totalPausedTime
}

// Pause stops match time advancement, no-op if already paused
func (pc *PausableClock) Pause() {
	if pc.isPaused {
		return
	}
	pc.isPaused = true
	pc.pauseStartTime = pc.provider.Now()
}

// Resume continues match time advancement, no-op if running
func (pc *PausableClock) Resume() {
	if !pc.isPaused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.isPaused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused
}

// Reset restarts elapsed time from zero, preserving pause state
func (pc *PausableClock) Reset() {
	now := pc.provider.Now()
	pc.startTime = now
	pc.totalPausedTime = 0
	if pc.isPaused {
		pc.pauseStartTime = now
	}
}
