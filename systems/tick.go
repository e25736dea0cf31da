package systems

import (
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/events"
)

// Match bundles the state with its collaborators for the game loop
// All methods run on the loop goroutine
type Match struct {
	State  *engine.MatchState
	Config *config.Config
	Dice   Dice
	Queue  *events.EventQueue
}

// NewMatch creates a running match and serves in a random direction
func NewMatch(cfg *config.Config, dice Dice, queue *events.EventQueue) *Match {
	m := &Match{
		State:  engine.NewMatchState(cfg),
		Config: cfg,
		Dice:   dice,
		Queue:  queue,
	}
	receiver := dice.Side()
	Serve(m.State, receiver, cfg, dice)
	queue.Push(events.MatchEvent{Type: events.EventServe, Side: receiver})
	return m
}

// Tick advances the simulation by one fixed step
// Order: human paddle, AI paddle, ball integration, collision resolution
// No-op once the match is over or while paused
func Tick(s *engine.MatchState, cfg *config.Config, dice Dice, queue *events.EventQueue) {
	if !s.Running || s.Paused {
		return
	}
	s.Ticks++

	UpdateHumanPaddle(s, cfg)
	UpdateAIPaddle(s, cfg)
	IntegrateBall(s)
	CollideBall(s, cfg, dice, queue)
}

// Tick advances the match by one fixed step
func (m *Match) Tick() {
	Tick(m.State, m.Config, m.Dice, m.Queue)
}

// Restart begins a fresh match if the current one has ended
// Scores are zeroed, paddles recentred and the opening serve direction is random
// Returns false, leaving state untouched, while a match is still in progress
func (m *Match) Restart() bool {
	s := m.State
	if s.Running {
		return false
	}

	s.ScoreAI = 0
	s.ScoreHuman = 0
	s.Running = true
	s.Paused = false
	s.Winner = engine.SideNone
	s.ClearLatches()
	s.CenterPaddles(m.Config)

	receiver := m.Dice.Side()
	Serve(s, receiver, m.Config, m.Dice)

	m.Queue.Push(events.MatchEvent{Type: events.EventRestart, Tick: s.Ticks})
	m.Queue.Push(events.MatchEvent{Type: events.EventServe, Side: receiver, Tick: s.Ticks})
	return true
}

// TogglePause flips the pause flag of a running match and returns the new state
// A finished match cannot be paused
func (m *Match) TogglePause() bool {
	s := m.State
	if !s.Running {
		return s.Paused
	}
	s.Paused = !s.Paused
	if s.Paused {
		s.ClearLatches()
	}
	m.Queue.Push(events.MatchEvent{Type: events.EventPauseToggled, Paused: s.Paused, Tick: s.Ticks})
	return s.Paused
}

// SetMoveUp sets or clears the up latch
func (m *Match) SetMoveUp(held bool) { m.State.MoveUp = held }

// SetMoveDown sets or clears the down latch
func (m *Match) SetMoveDown(held bool) { m.State.MoveDown = held }

// IsPaused reports whether the simulation is suspended
func (m *Match) IsPaused() bool { return m.State.Paused }
