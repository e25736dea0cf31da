package systems

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/term-pong/config"
	"github.com/lixenwraith/term-pong/engine"
)

// MaxServeAngleDeg bounds the serve launch angle either side of horizontal
const MaxServeAngleDeg = 45

// Dice supplies the random choices made at serve time
type Dice interface {
	// Angle returns a launch angle in radians within ±45° of horizontal
	Angle() float64
	// Side returns a random player, used to pick the opening receiver
	Side() engine.Side
}

// RandDice draws whole-degree angles in [-45°, 44°] and fair sides from math/rand
type RandDice struct {
	rng *rand.Rand
}

// NewRandDice creates dice from a seed
func NewRandDice(seed int64) *RandDice {
	return &RandDice{rng: rand.New(rand.NewSource(seed))}
}

func (d *RandDice) Angle() float64 {
	deg := d.rng.Intn(2*MaxServeAngleDeg) - MaxServeAngleDeg
	return float64(deg) * math.Pi / 180
}

func (d *RandDice) Side() engine.Side {
	if d.rng.Intn(2) == 0 {
		return engine.SideAI
	}
	return engine.SideHuman
}

// FixedDice returns preset values, for tests and scripted demos
type FixedDice struct {
	FixedAngle float64
	FixedSide  engine.Side
}

func (d FixedDice) Angle() float64    { return d.FixedAngle }
func (d FixedDice) Side() engine.Side { return d.FixedSide }

// Serve recentres the ball and launches it at base speed toward receiver
// The horizontal sign always points at receiver; speed is split by cos/sin of the drawn angle
func Serve(s *engine.MatchState, receiver engine.Side, cfg *config.Config, dice Dice) {
	s.CenterBall(cfg)
	s.Rally = 0

	speed := cfg.Ball.BaseSpeed
	angle := dice.Angle()
	s.BallVelX = math.Cos(angle) * receiver.Direction() * speed
	s.BallVelY = math.Sin(angle) * speed
}

// ResetBall serves the next rally after scorer took a point
// The serve goes to the side that was scored upon
func ResetBall(s *engine.MatchState, scorer engine.Side, cfg *config.Config, dice Dice) {
	Serve(s, scorer.Opponent(), cfg, dice)
}
