package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/decred/slog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/events"
)

const speakerBuffer = 50 * time.Millisecond

// SoundManager plays synthesized effects for match events
// Every method degrades to a no-op when the speaker could not be opened
type SoundManager struct {
	mu          sync.Mutex
	settings    *Settings
	log         slog.Logger
	mixer       *beep.Mixer
	output      *beep.Ctrl
	initialized bool
	muted       bool
	played      [soundTypeCount]uint64
}

// NewSoundManager creates a sound manager; log may be nil
func NewSoundManager(settings *Settings, log slog.Logger) *SoundManager {
	if log == nil {
		log = slog.Disabled
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		settings: settings,
		log:      log,
		mixer:    mixer,
		output:   &beep.Ctrl{Streamer: mixer},
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.settings.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.settings.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("%w: %v", ErrSpeakerInit, err)
	}

	sm.output.Paused = sm.muted
	speaker.Play(sm.output)
	sm.initialized = true
	sm.log.Infof("Speaker open at %d Hz", sm.settings.SampleRate)
	return nil
}

// Cleanup drops pending sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	sm.initialized = false
	sm.log.Debugf("Speaker closed")
}

// Play queues one effect on the mixer
func (sm *SoundManager) Play(st SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	streamer := GetSoundEffect(st, sm.settings)
	if streamer == nil {
		sm.log.Warnf("Unknown sound type %d", int(st))
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[st]++
}

// ToggleMute flips the mute flag and returns the new state
// Sounds already ringing are cut while muted
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.output.Paused = sm.muted
		if sm.muted {
			sm.mixer.Clear()
		}
		speaker.Unlock()
	}
	sm.log.Debugf("Mute %t", sm.muted)
	return sm.muted
}

// SetMuted forces the mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	if sm.IsMuted() != muted {
		sm.ToggleMute()
	}
}

// IsMuted reports the mute flag
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayedCount returns how many times st reached the mixer
func (sm *SoundManager) PlayedCount(st SoundType) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}

// SoundForEvent maps a match event to its effect
func SoundForEvent(ev events.MatchEvent) (SoundType, bool) {
	switch ev.Type {
	case events.EventPaddleHit:
		return SoundPaddle, true
	case events.EventWallBounce:
		return SoundWall, true
	case events.EventGoal:
		return SoundGoal, true
	case events.EventMatchOver:
		if ev.Side == engine.SideHuman {
			return SoundWin, true
		}
		return SoundLose, true
	default:
		return 0, false
	}
}

// HandleEvent implements events.Handler
func (sm *SoundManager) HandleEvent(ev events.MatchEvent) {
	if st, ok := SoundForEvent(ev); ok {
		sm.Play(st)
	}
}

// EventTypes implements events.Handler
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventPaddleHit,
		events.EventWallBounce,
		events.EventGoal,
		events.EventMatchOver,
	}
}
