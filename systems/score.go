package systems

import (
	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/events"
)

// ScorePoint credits scorer, then either ends the match or serves the next rally
// At match end the ball is left where it crossed the goal line
func ScorePoint(s *engine.MatchState, scorer engine.Side, cfg *config.Config, dice Dice, queue *events.EventQueue) {
	switch scorer {
	case engine.SideAI:
		s.ScoreAI++
	case engine.SideHuman:
		s.ScoreHuman++
	default:
		return
	}

	queue.Push(events.MatchEvent{
		Type:       events.EventGoal,
		Side:       scorer,
		ScoreAI:    s.ScoreAI,
		ScoreHuman: s.ScoreHuman,
		Tick:       s.Ticks,
	})

	if s.Score(scorer) >= cfg.Match.WinningScore {
		s.Running = false
		s.Winner = scorer
		queue.Push(events.MatchEvent{
			Type:       events.EventMatchOver,
			Side:       scorer,
			ScoreAI:    s.ScoreAI,
			ScoreHuman: s.ScoreHuman,
			Tick:       s.Ticks,
		})
		return
	}

	ResetBall(s, scorer, cfg, dice)
	queue.Push(events.MatchEvent{Type: events.EventServe, Side: scorer.Opponent(), Tick: s.Ticks})
}
