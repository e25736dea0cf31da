package events

import (
	"fmt"

	"github.com/lixenwraith/term-pong/engine"
)

// EventType represents the type of match event
type EventType int

const (
	// EventPaddleHit signals a ball reflection off a paddle
	// Trigger: ball physics | Side: paddle owner, Speed: post-bounce speed
	EventPaddleHit EventType = iota

	// EventWallBounce signals a reflection off the top or bottom wall
	EventWallBounce

	// EventGoal signals a point scored
	// Side: scorer, ScoreAI/ScoreHuman: tally after the point
	EventGoal

	// EventMatchOver signals the winning score was reached
	// Side: winner
	EventMatchOver

	// EventServe signals a new rally; Side is the receiving side
	EventServe

	// EventRestart signals a fresh match after a restart command
	EventRestart

	// EventPauseToggled signals a pause state change; Paused holds the new state
	EventPauseToggled

	eventTypeCount
)

var eventTypeName = [eventTypeCount]string{
	EventPaddleHit:    "paddle_hit",
	EventWallBounce:   "wall_bounce",
	EventGoal:         "goal",
	EventMatchOver:    "match_over",
	EventServe:        "serve",
	EventRestart:      "restart",
	EventPauseToggled: "pause_toggled",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return fmt.Sprintf("event(%d)", int(t))
	}
	return eventTypeName[t]
}

// MatchEvent is a single notification emitted by the simulation or input layer
type MatchEvent struct {
	Type       EventType
	Side       engine.Side
	ScoreAI    int
	ScoreHuman int
	Speed      float64
	Paused     bool
	Tick       uint64
}

func (e MatchEvent) String() string {
	switch e.Type {
	case EventPaddleHit:
		return fmt.Sprintf("%s side=%s speed=%.2f tick=%d", e.Type, e.Side, e.Speed, e.Tick)
	case EventGoal, EventMatchOver:
		return fmt.Sprintf("%s side=%s score=%d-%d tick=%d", e.Type, e.Side, e.ScoreAI, e.ScoreHuman, e.Tick)
	case EventPauseToggled:
		return fmt.Sprintf("%s paused=%t", e.Type, e.Paused)
	default:
		return fmt.Sprintf("%s side=%s tick=%d", e.Type, e.Side, e.Tick)
	}
}
