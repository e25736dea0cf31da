package systems

import (
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/events"
)

// newTestState returns default config and a centred, motionless running state
func newTestState() (*engine.MatchState, *config.Config) {
	cfg := config.Default()
	return engine.NewMatchState(cfg), cfg
}

// straightDice serves horizontally toward the human
var straightDice = FixedDice{FixedAngle: 0, FixedSide: engine.SideHuman}

// eventTypes extracts the types of all queued events
func eventTypes(q *events.EventQueue) []events.EventType {
	var types []events.EventType
	for _, ev := range q.Consume() {
		types = append(types, ev.Type)
	}
	return types
}

func newTestConfig() *config.Config {
	return config.Default()
}
