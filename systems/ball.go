package systems

import (
	"math"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
	"github.com/lixenwraith/term-pong/events"
)

// MaxBounceAngle is the steepest exit angle off a paddle edge
const MaxBounceAngle = math.Pi / 4

// IntegrateBall advances the ball by one tick of velocity
func IntegrateBall(s *engine.MatchState) {
	s.BallX += s.BallVelX
	s.BallY += s.BallVelY
}

// CollideWalls reflects the ball off the top and bottom edges
// Returns true if a bounce occurred
func CollideWalls(s *engine.MatchState, cfg *config.Config) bool {
	r := cfg.Ball.Radius
	h := cfg.Court.Height
	if s.BallY+r > h || s.BallY-r < 0 {
		s.BallVelY = -s.BallVelY
		s.BallY = math.Max(r, math.Min(s.BallY, h-r))
		return true
	}
	return false
}

// CollideAIPaddle reflects a ball reaching the AI paddle band
// Returns true if the paddle was hit
func CollideAIPaddle(s *engine.MatchState, cfg *config.Config) bool {
	if s.BallVelX >= 0 || s.BallX-cfg.Ball.Radius >= cfg.AIPaddleX()+cfg.Paddle.Width {
		return false
	}
	if !withinPaddle(s.BallY, s.AIY, cfg) {
		return false
	}
	reflect(s, s.AIY, engine.SideHuman, cfg)
	return true
}

// CollideHumanPaddle reflects a ball reaching the human paddle face
// Returns true if the paddle was hit
func CollideHumanPaddle(s *engine.MatchState, cfg *config.Config) bool {
	if s.BallVelX <= 0 || s.BallX+cfg.Ball.Radius <= cfg.HumanPaddleX() {
		return false
	}
	if !withinPaddle(s.BallY, s.HumanY, cfg) {
		return false
	}
	reflect(s, s.HumanY, engine.SideAI, cfg)
	return true
}

// withinPaddle tests the ball centre against the paddle's open vertical extent
func withinPaddle(ballY, paddleY float64, cfg *config.Config) bool {
	half := cfg.Paddle.Height / 2
	return ballY < paddleY+half && ballY > paddleY-half
}

// reflect re-angles the ball by its offset from the paddle centre and adds the speed increment
// toward selects the exit direction
func reflect(s *engine.MatchState, paddleY float64, toward engine.Side, cfg *config.Config) {
	offset := (s.BallY - paddleY) / (cfg.Paddle.Height / 2)
	angle := offset * MaxBounceAngle
	speed := s.BallSpeed() + cfg.Ball.SpeedIncrement

	s.BallVelX = toward.Direction() * math.Abs(math.Cos(angle)*speed)
	s.BallVelY = math.Sin(angle) * speed
	s.Rally++
}

// CollideBall runs collision resolution in fixed order: walls, AI paddle, human paddle, goals
// Events are pushed to queue for every bounce, point and match end
func CollideBall(s *engine.MatchState, cfg *config.Config, dice Dice, queue *events.EventQueue) {
	if CollideWalls(s, cfg) {
		queue.Push(events.MatchEvent{Type: events.EventWallBounce, Tick: s.Ticks})
	}
	if CollideAIPaddle(s, cfg) {
		queue.Push(events.MatchEvent{Type: events.EventPaddleHit, Side: engine.SideAI, Speed: s.BallSpeed(), Tick: s.Ticks})
	}
	if CollideHumanPaddle(s, cfg) {
		queue.Push(events.MatchEvent{Type: events.EventPaddleHit, Side: engine.SideHuman, Speed: s.BallSpeed(), Tick: s.Ticks})
	}

	// Left edge is the AI goal
	if s.BallX-cfg.Ball.Radius < 0 {
		ScorePoint(s, engine.SideHuman, cfg, dice, queue)
	}
	// Right edge is the human goal
	if s.BallX+cfg.Ball.Radius > cfg.Court.Width {
		ScorePoint(s, engine.SideAI, cfg, dice, queue)
	}
}
