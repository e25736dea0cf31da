package systems

import (
	"math"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
)

// UpdateHumanPaddle applies the movement latches to the human paddle
// Up is applied before down; with both latches set both steps run in that order
func UpdateHumanPaddle(s *engine.MatchState, cfg *config.Config) {
	if s.MoveUp {
		s.HumanY = math.Min(s.HumanY+cfg.Paddle.Speed, cfg.PaddleMaxY())
	}
	if s.MoveDown {
		s.HumanY = math.Max(s.HumanY-cfg.Paddle.Speed, cfg.PaddleMinY())
	}
}

// ClampPaddle bounds a paddle centre to the court
func ClampPaddle(y float64, cfg *config.Config) float64 {
	y = math.Min(y, cfg.PaddleMaxY())
	return math.Max(y, cfg.PaddleMinY())
}
