package modes

import (
	"time"

	"github.com/decred/slog"
	"github.com/gdamore/tcell/v2"
)

// MatchControl is the part of the match the keyboard drives
type MatchControl interface {
	SetMoveUp(held bool)
	SetMoveDown(held bool)
	Restart() bool
	TogglePause() bool
	IsPaused() bool
}

// MuteControl toggles sound output
type MuteControl interface {
	ToggleMute() bool
}

// InputHandler processes user input events
// Terminals report presses and auto-repeats but never releases, so each press holds
// its latch for a fixed window that ReleaseExpired closes
type InputHandler struct {
	match MatchControl
	mute  MuteControl
	hold  time.Duration
	log   slog.Logger

	upUntil   time.Time
	downUntil time.Time
	upHeld    bool
	downHeld  bool

	// OnResize is called for terminal resize events
	OnResize func()
}

// NewInputHandler creates a new input handler; mute and log may be nil
func NewInputHandler(match MatchControl, mute MuteControl, hold time.Duration, log slog.Logger) *InputHandler {
	if log == nil {
		log = slog.Disabled
	}
	return &InputHandler{
		match: match,
		mute:  mute,
		hold:  hold,
		log:   log,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *InputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.HandleKey(ev.Key(), ev.Rune(), ev.When())
	case *tcell.EventResize:
		if h.OnResize != nil {
			h.OnResize()
		}
	}
	return true
}

// HandleKey applies one key press at time now and returns false on quit
func (h *InputHandler) HandleKey(key tcell.Key, r rune, now time.Time) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		h.pressUp(now)
		return true
	case tcell.KeyDown:
		h.pressDown(now)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q', 'Q':
		return false
	case 'k', 'w', 'K', 'W':
		h.pressUp(now)
	case 'j', 's', 'J', 'S':
		h.pressDown(now)
	case ' ':
		if h.match.Restart() {
			h.releaseAll()
			h.log.Debugf("Restart accepted")
		}
	case 'p', 'P':
		paused := h.match.TogglePause()
		if paused {
			h.releaseAll()
		}
		h.log.Debugf("Pause %t", paused)
	case 'm', 'M':
		if h.mute != nil {
			h.log.Debugf("Mute %t", h.mute.ToggleMute())
		}
	}
	return true
}

// ReleaseExpired drops latches whose hold window ended before now
// Call once per tick before the simulation step
func (h *InputHandler) ReleaseExpired(now time.Time) {
	if h.upHeld && !now.Before(h.upUntil) {
		h.upHeld = false
		h.match.SetMoveUp(false)
	}
	if h.downHeld && !now.Before(h.downUntil) {
		h.downHeld = false
		h.match.SetMoveDown(false)
	}
}

// Held reports the current latch state
func (h *InputHandler) Held() (up, down bool) {
	return h.upHeld, h.downHeld
}

// A press in one direction releases the other; a terminal repeats only the last key
func (h *InputHandler) pressUp(now time.Time) {
	if h.match.IsPaused() {
		return
	}
	if h.downHeld {
		h.downHeld = false
		h.match.SetMoveDown(false)
	}
	h.upHeld = true
	h.upUntil = now.Add(h.hold)
	h.match.SetMoveUp(true)
}

func (h *InputHandler) pressDown(now time.Time) {
	if h.match.IsPaused() {
		return
	}
	if h.upHeld {
		h.upHeld = false
		h.match.SetMoveUp(false)
	}
	h.downHeld = true
	h.downUntil = now.Add(h.hold)
	h.match.SetMoveDown(true)
}

func (h *InputHandler) releaseAll() {
	h.upHeld = false
	h.downHeld = false
	h.match.SetMoveUp(false)
	h.match.SetMoveDown(false)
}
