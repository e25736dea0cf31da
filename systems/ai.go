package systems

import (
	"math"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
)

// AITarget returns the blend of ball height and court centre the AI steers toward
func AITarget(ballY float64, cfg *config.Config) float64 {
	return ballY*cfg.AI.Lag + cfg.CenterY()*(1-cfg.AI.Lag)
}

// UpdateAIPaddle moves the AI paddle toward its target while the ball approaches
// Moving away, the paddle holds its position. Steps are capped at AI speed and
// never overshoot; distances within the dead zone are ignored
func UpdateAIPaddle(s *engine.MatchState, cfg *config.Config) {
	if s.BallVelX < 0 {
		diff := AITarget(s.BallY, cfg) - s.AIY

		if math.Abs(diff) > cfg.AI.DeadZone {
			step := math.Min(cfg.AI.Speed, math.Abs(diff))
			if diff > 0 {
				s.AIY += step
			} else {
				s.AIY -= step
			}
		}
	}

	s.AIY = ClampPaddle(s.AIY, cfg)
}
