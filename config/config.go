// Package config loads match tuning from an embedded YAML default,
// an optional user file and environment overrides.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultYAML []byte

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config contains all tunables for a match
type Config struct {
	Court  CourtConfig  `yaml:"court"`
	Paddle PaddleConfig `yaml:"paddle"`
	AI     AIConfig     `yaml:"ai"`
	Ball   BallConfig   `yaml:"ball"`
	Match  MatchConfig  `yaml:"match"`
	Input  InputConfig  `yaml:"input"`
	Audio  AudioConfig  `yaml:"audio"`
}

// CourtConfig defines the playfield in court units
type CourtConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and the human paddle speed
type PaddleConfig struct {
	Height float64 `yaml:"height"`
	Width  float64 `yaml:"width"`
	Speed  float64 `yaml:"speed"`
}

// AIConfig tunes the computer paddle
// Lag 0 always centres, 1 tracks the ball exactly
type AIConfig struct {
	Lag      float64 `yaml:"lag"`
	Speed    float64 `yaml:"speed"`
	DeadZone float64 `yaml:"dead_zone"`
}

// BallConfig defines ball size and speed policy
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
}

// MatchConfig defines scoring and loop timing
type MatchConfig struct {
	WinningScore int           `yaml:"winning_score"`
	TickInterval time.Duration `yaml:"tick_interval"`
}

// InputConfig tunes terminal key handling
// KeyHold is how long a press keeps a movement latch set without a repeat
type InputConfig struct {
	KeyHold time.Duration `yaml:"key_hold"`
}

// AudioConfig controls sound effect playback
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled"`
	MasterVolume float64            `yaml:"master_volume"`
	SampleRate   int                `yaml:"sample_rate"`
	Effects      map[string]float64 `yaml:"effects"`
}

// Default returns the embedded default configuration
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		panic(fmt.Sprintf("embedded defaults.yaml is malformed: %v", err))
	}
	return cfg
}

// DefaultYAML returns the embedded default document, e.g. for writing a template file
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

// Load returns the defaults overlaid with the YAML file at path
// An empty path yields the defaults. The result is validated
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.Merge(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge decodes a YAML document on top of the current values
// Keys absent from data keep their current value
func (c *Config) Merge(data []byte) error {
	return yaml.Unmarshal(data, c)
}

// Validate asserts the geometric and tuning invariants the simulation relies on
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Court.Width > 0 && c.Court.Height > 0, "court must be positive, got %gx%g", c.Court.Width, c.Court.Height)
	check(c.Paddle.Height > 0 && c.Paddle.Width > 0, "paddle must be positive, got %gx%g", c.Paddle.Width, c.Paddle.Height)
	check(c.Paddle.Height < c.Court.Height, "paddle height %g must be below court height %g", c.Paddle.Height, c.Court.Height)
	check(c.Paddle.Width*4 < c.Court.Width, "paddle width %g leaves no court between paddles", c.Paddle.Width)
	check(c.Paddle.Speed > 0, "paddle speed must be positive, got %g", c.Paddle.Speed)
	check(c.AI.Lag > 0 && c.AI.Lag < 1, "ai lag must be in (0,1), got %g", c.AI.Lag)
	check(c.AI.Speed > 0, "ai speed must be positive, got %g", c.AI.Speed)
	check(c.AI.DeadZone >= 0, "ai dead zone must not be negative, got %g", c.AI.DeadZone)
	check(c.Ball.Radius > 0 && c.Ball.Radius*2 < c.Court.Height, "ball radius %g does not fit the court", c.Ball.Radius)
	check(c.Ball.BaseSpeed > 0, "ball base speed must be positive, got %g", c.Ball.BaseSpeed)
	check(c.Ball.SpeedIncrement >= 0, "ball speed increment must not be negative, got %g", c.Ball.SpeedIncrement)
	check(c.Match.WinningScore > 0, "winning score must be positive, got %d", c.Match.WinningScore)
	check(c.Match.TickInterval > 0, "tick interval must be positive, got %s", c.Match.TickInterval)
	check(c.Input.KeyHold > 0, "key hold must be positive, got %s", c.Input.KeyHold)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "master volume must be in [0,1], got %g", c.Audio.MasterVolume)
	check(c.Audio.SampleRate > 0, "sample rate must be positive, got %d", c.Audio.SampleRate)

	return errors.Join(errs...)
}

// CenterY returns the vertical midpoint of the court
func (c *Config) CenterY() float64 {
	return c.Court.Height / 2
}

// PaddleMinY returns the lowest legal paddle centre
func (c *Config) PaddleMinY() float64 {
	return c.Paddle.Height / 2
}

// PaddleMaxY returns the highest legal paddle centre
func (c *Config) PaddleMaxY() float64 {
	return c.Court.Height - c.Paddle.Height/2
}

// AIPaddleX returns the x of the AI paddle's left edge
func (c *Config) AIPaddleX() float64 {
	return c.Paddle.Width * 2
}

// HumanPaddleX returns the x of the human paddle's left edge
func (c *Config) HumanPaddleX() float64 {
	return c.Court.Width - c.Paddle.Width*3
}
