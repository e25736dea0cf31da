package audio

import (
	"testing"

	"github.com/lixenwraith/term-pong/config"
)

// TestNewSettingsFromConfig verifies the config section maps onto sound types
func TestNewSettingsFromConfig(t *testing.T) {
	s := NewSettings(config.Default().Audio)

	if !s.Enabled {
		t.Error("Expected audio enabled by default")
	}
	if s.MasterVolume != 0.5 {
		t.Errorf("Expected master volume 0.5, got %f", s.MasterVolume)
	}
	if s.SampleRate != 44100 {
		t.Errorf("Expected sample rate 44100, got %d", s.SampleRate)
	}

	expected := map[SoundType]float64{
		SoundPaddle: 0.8,
		SoundWall:   0.5,
		SoundGoal:   0.9,
		SoundWin:    1.0,
		SoundLose:   0.8,
	}
	for st, want := range expected {
		if got := s.EffectVolumes[st]; got != want {
			t.Errorf("Expected %s volume %f, got %f", st, want, got)
		}
	}
}

// TestNewSettingsMissingEffect verifies unlisted effects default to full volume
func TestNewSettingsMissingEffect(t *testing.T) {
	cfg := config.Default().Audio
	delete(cfg.Effects, "goal")

	s := NewSettings(cfg)
	if s.EffectVolumes[SoundGoal] != 1.0 {
		t.Errorf("Expected missing effect at 1.0, got %f", s.EffectVolumes[SoundGoal])
	}
}

// TestApplyEnvOverrides verifies each environment variable is applied
func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("PONG_AUDIO_ENABLED", "false")
	t.Setenv("PONG_MASTER_VOLUME", "75")
	t.Setenv("PONG_SFX_VOLUMES", `{"paddle":0.3,"lose":0,"bogus":9}`)
	t.Setenv("PONG_SAMPLE_RATE", "22050")

	s := NewSettings(config.Default().Audio)
	ApplyEnv(s)

	if s.Enabled {
		t.Error("Expected audio disabled")
	}
	if s.MasterVolume != 0.75 {
		t.Errorf("Expected master volume 0.75, got %f", s.MasterVolume)
	}
	if s.EffectVolumes[SoundPaddle] != 0.3 {
		t.Errorf("Expected paddle 0.3, got %f", s.EffectVolumes[SoundPaddle])
	}
	if s.EffectVolumes[SoundLose] != 0 {
		t.Errorf("Expected lose 0, got %f", s.EffectVolumes[SoundLose])
	}
	if s.EffectVolumes[SoundWall] != 0.5 {
		t.Errorf("Unlisted wall volume should be untouched, got %f", s.EffectVolumes[SoundWall])
	}
	if s.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", s.SampleRate)
	}
}

// TestApplyEnvClampsAndIgnoresGarbage verifies bad values never corrupt settings
func TestApplyEnvClampsAndIgnoresGarbage(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		verify func(*testing.T, *Settings)
	}{
		{"volume above range", "PONG_MASTER_VOLUME", "250", func(t *testing.T, s *Settings) {
			if s.MasterVolume != 1 {
				t.Errorf("Expected clamp to 1, got %f", s.MasterVolume)
			}
		}},
		{"volume below range", "PONG_MASTER_VOLUME", "-10", func(t *testing.T, s *Settings) {
			if s.MasterVolume != 0 {
				t.Errorf("Expected clamp to 0, got %f", s.MasterVolume)
			}
		}},
		{"volume not a number", "PONG_MASTER_VOLUME", "loud", func(t *testing.T, s *Settings) {
			if s.MasterVolume != 0.5 {
				t.Errorf("Expected default 0.5, got %f", s.MasterVolume)
			}
		}},
		{"enabled not a bool", "PONG_AUDIO_ENABLED", "maybe", func(t *testing.T, s *Settings) {
			if !s.Enabled {
				t.Error("Expected enabled to stay true")
			}
		}},
		{"bad json", "PONG_SFX_VOLUMES", "{paddle", func(t *testing.T, s *Settings) {
			if s.EffectVolumes[SoundPaddle] != 0.8 {
				t.Errorf("Expected paddle 0.8, got %f", s.EffectVolumes[SoundPaddle])
			}
		}},
		{"zero sample rate", "PONG_SAMPLE_RATE", "0", func(t *testing.T, s *Settings) {
			if s.SampleRate != 44100 {
				t.Errorf("Expected 44100, got %d", s.SampleRate)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			s := NewSettings(config.Default().Audio)
			ApplyEnv(s)
			tt.verify(t, s)
		})
	}
}
