package engine

import (
	"math"

	"github.com/lixenwraith/term-pong/config"
)

// MatchState is the single mutable record of a match
// Owned by the game loop; systems mutate it once per tick, the renderer only reads
//
// Coordinates: origin bottom-left, Y grows upward
type MatchState struct {
	// Paddle centres, always within [PaddleHeight/2, CourtHeight-PaddleHeight/2]
	AIY    float64
	HumanY float64

	// Ball centre and velocity; BallVelX < 0 travels toward the AI
	BallX, BallY       float64
	BallVelX, BallVelY float64

	ScoreAI    int
	ScoreHuman int

	// Running is false once a side reaches the winning score
	Running bool
	Paused  bool
	Winner  Side

	// Input latches, set by the input handler between ticks
	MoveUp   bool
	MoveDown bool

	// Rally counts paddle hits since the last serve
	Rally int
	// Ticks counts simulation ticks applied this process
	Ticks uint64
}

// NewMatchState creates a running match with centred paddles and a motionless centred ball
// Serve must be called before the first tick to launch the ball
func NewMatchState(cfg *config.Config) *MatchState {
	s := &MatchState{Running: true}
	s.CenterPaddles(cfg)
	s.CenterBall(cfg)
	return s
}

// CenterPaddles places both paddles at the court's vertical midpoint
func (s *MatchState) CenterPaddles(cfg *config.Config) {
	s.AIY = cfg.CenterY()
	s.HumanY = cfg.CenterY()
}

// CenterBall places the ball at the court midpoint with zero velocity
func (s *MatchState) CenterBall(cfg *config.Config) {
	s.BallX = cfg.Court.Width / 2
	s.BallY = cfg.Court.Height / 2
	s.BallVelX = 0
	s.BallVelY = 0
}

// ClearLatches releases both movement latches
func (s *MatchState) ClearLatches() {
	s.MoveUp = false
	s.MoveDown = false
}

// BallSpeed returns the magnitude of the ball velocity
func (s *MatchState) BallSpeed() float64 {
	return math.Hypot(s.BallVelX, s.BallVelY)
}

// Heading returns the side the ball is travelling toward
func (s *MatchState) Heading() Side {
	switch {
	case s.BallVelX < 0:
		return SideAI
	case s.BallVelX > 0:
		return SideHuman
	default:
		return SideNone
	}
}

// Score returns the points held by side
func (s *MatchState) Score(side Side) int {
	switch side {
	case SideAI:
		return s.ScoreAI
	case SideHuman:
		return s.ScoreHuman
	default:
		return 0
	}
}

// Snapshot returns a value copy for read-only consumers such as the renderer
func (s *MatchState) Snapshot() MatchState {
	return *s
}
