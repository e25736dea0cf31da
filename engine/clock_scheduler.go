package engine

import (
	"sync"
	"time"
)

// ClockScheduler drives the fixed-timestep loop
// Each firing runs exactly one simulation pass followed by one present pass
// Fire is non-reentrant; a firing that arrives while one is in progress is dropped
type ClockScheduler struct {
	tickInterval time.Duration

	simulate func()
	present  func()
	isPaused func() bool

	ticker   *time.Ticker
	stopOnce sync.Once

	firing     bool
	tickCount  uint64 // Simulation passes run
	frameCount uint64 // Present passes run
	dropped    uint64 // Re-entrant firings refused
}

// NewClockScheduler creates a scheduler; simulate and present must be non-nil
func NewClockScheduler(tickInterval time.Duration, simulate, present func()) *ClockScheduler {
	return &ClockScheduler{
		tickInterval: tickInterval,
		simulate:     simulate,
		present:      present,
		isPaused:     func() bool { return false },
	}
}

// SetPauseCheck installs a predicate; while it reports true, firings only present
func (cs *ClockScheduler) SetPauseCheck(isPaused func() bool) {
	cs.isPaused = isPaused
}

// Start arms the ticker, safe to call once
func (cs *ClockScheduler) Start() {
	if cs.ticker == nil {
		cs.ticker = time.NewTicker(cs.tickInterval)
	}
}

// Stop disarms the ticker
func (cs *ClockScheduler) Stop() {
	cs.stopOnce.Do(func() {
		if cs.ticker != nil {
			cs.ticker.Stop()
		}
	})
}

// C returns the tick channel, nil before Start so a select on it blocks
func (cs *ClockScheduler) C() <-chan time.Time {
	if cs.ticker == nil {
		return nil
	}
	return cs.ticker.C
}

// Fire runs one tick: simulate (unless paused) then present
// Returns false if the call was dropped because a firing is already in progress
func (cs *ClockScheduler) Fire() bool {
	if cs.firing {
		cs.dropped++
		return false
	}
	cs.firing = true
	defer func() { cs.firing = false }()

	if !cs.isPaused() {
		cs.simulate()
		cs.tickCount++
	}
	cs.present()
	cs.frameCount++
	return true
}

// TickInterval returns the configured period
func (cs *ClockScheduler) TickInterval() time.Duration {
	return cs.tickInterval
}

// TickCount returns simulation passes run
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// FrameCount returns present passes run
func (cs *ClockScheduler) FrameCount() uint64 {
	return cs.frameCount
}

// DroppedCount returns re-entrant firings refused
func (cs *ClockScheduler) DroppedCount() uint64 {
	return cs.dropped
}
