package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultMatchesClassicTuning verifies the embedded defaults
func TestDefaultMatchesClassicTuning(t *testing.T) {
	cfg := Default()

	if cfg.Court.Width != 800 || cfg.Court.Height != 600 {
		t.Errorf("Expected 800x600 court, got %gx%g", cfg.Court.Width, cfg.Court.Height)
	}
	if cfg.Paddle.Height != 100 || cfg.Paddle.Width != 15 || cfg.Paddle.Speed != 10 {
		t.Errorf("Unexpected paddle defaults: %+v", cfg.Paddle)
	}
	if cfg.AI.Lag != 0.75 || cfg.AI.Speed != 8 || cfg.AI.DeadZone != 0.1 {
		t.Errorf("Unexpected ai defaults: %+v", cfg.AI)
	}
	if cfg.Ball.Radius != 10 || cfg.Ball.BaseSpeed != 5 || cfg.Ball.SpeedIncrement != 0.5 {
		t.Errorf("Unexpected ball defaults: %+v", cfg.Ball)
	}
	if cfg.Match.WinningScore != 10 {
		t.Errorf("Expected winning score 10, got %d", cfg.Match.WinningScore)
	}
	if cfg.Match.TickInterval != 16*time.Millisecond {
		t.Errorf("Expected 16ms tick, got %s", cfg.Match.TickInterval)
	}
	if cfg.Input.KeyHold != 150*time.Millisecond {
		t.Errorf("Expected 150ms key hold, got %s", cfg.Input.KeyHold)
	}
	if !cfg.Audio.Enabled || cfg.Audio.SampleRate != 44100 {
		t.Errorf("Unexpected audio defaults: %+v", cfg.Audio)
	}
	if cfg.Audio.Effects["paddle"] != 0.8 {
		t.Errorf("Expected paddle effect volume 0.8, got %g", cfg.Audio.Effects["paddle"])
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults should validate, got %v", err)
	}
}

// TestDefaultReturnsIndependentCopies verifies callers cannot corrupt shared defaults
func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Court.Width = 1
	a.Audio.Effects["paddle"] = 0

	b := Default()
	if b.Court.Width != 800 {
		t.Errorf("Expected fresh court width 800, got %g", b.Court.Width)
	}
	if b.Audio.Effects["paddle"] != 0.8 {
		t.Errorf("Expected fresh paddle volume 0.8, got %g", b.Audio.Effects["paddle"])
	}
}

// TestDerivedGeometry verifies paddle bounds and faces
func TestDerivedGeometry(t *testing.T) {
	cfg := Default()

	if got := cfg.PaddleMinY(); got != 50 {
		t.Errorf("Expected min paddle y 50, got %g", got)
	}
	if got := cfg.PaddleMaxY(); got != 550 {
		t.Errorf("Expected max paddle y 550, got %g", got)
	}
	if got := cfg.CenterY(); got != 300 {
		t.Errorf("Expected centre 300, got %g", got)
	}
	if got := cfg.AIPaddleX(); got != 30 {
		t.Errorf("Expected ai paddle x 30, got %g", got)
	}
	if got := cfg.HumanPaddleX(); got != 755 {
		t.Errorf("Expected human paddle x 755, got %g", got)
	}
}

// TestMergePartialDocument verifies absent keys keep defaults
func TestMergePartialDocument(t *testing.T) {
	cfg := Default()
	doc := []byte("ai:\n  lag: 0.5\nmatch:\n  winning_score: 3\n")

	if err := cfg.Merge(doc); err != nil {
		t.Fatalf("Merge failed: %v", err)
	}

	if cfg.AI.Lag != 0.5 {
		t.Errorf("Expected lag 0.5, got %g", cfg.AI.Lag)
	}
	if cfg.AI.Speed != 8 {
		t.Errorf("Expected untouched ai speed 8, got %g", cfg.AI.Speed)
	}
	if cfg.Match.WinningScore != 3 {
		t.Errorf("Expected winning score 3, got %d", cfg.Match.WinningScore)
	}
	if cfg.Match.TickInterval != 16*time.Millisecond {
		t.Errorf("Expected untouched tick interval, got %s", cfg.Match.TickInterval)
	}
}

// TestValidateRejectsBadTuning verifies each invariant is asserted
func TestValidateRejectsBadTuning(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"paddle taller than court", func(c *Config) { c.Paddle.Height = 600 }},
		{"lag zero", func(c *Config) { c.AI.Lag = 0 }},
		{"lag one", func(c *Config) { c.AI.Lag = 1 }},
		{"negative ai speed", func(c *Config) { c.AI.Speed = -1 }},
		{"zero court", func(c *Config) { c.Court.Width = 0 }},
		{"huge ball", func(c *Config) { c.Ball.Radius = 400 }},
		{"zero base speed", func(c *Config) { c.Ball.BaseSpeed = 0 }},
		{"zero winning score", func(c *Config) { c.Match.WinningScore = 0 }},
		{"zero tick", func(c *Config) { c.Match.TickInterval = 0 }},
		{"loud master", func(c *Config) { c.Audio.MasterVolume = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

// TestLoadFromFile verifies file overlay and validation on load
func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("ball:\n  base_speed: 7\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	cfg, err := Load(good)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ball.BaseSpeed != 7 {
		t.Errorf("Expected base speed 7, got %g", cfg.Ball.BaseSpeed)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ai:\n  lag: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for lag 2, got %v", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	if cfg, err := Load(""); err != nil || cfg.Court.Width != 800 {
		t.Errorf("Expected defaults for empty path, got %v, %v", cfg, err)
	}
}
