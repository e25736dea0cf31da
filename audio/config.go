package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/term-pong/config"
)

// Settings is the resolved audio configuration used by the sound manager
type Settings struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// NewSettings converts the config file section into playback settings
// Effects missing from the file play at full volume
func NewSettings(cfg config.AudioConfig) *Settings {
	s := &Settings{
		Enabled:       cfg.Enabled,
		MasterVolume:  cfg.MasterVolume,
		SampleRate:    cfg.SampleRate,
		EffectVolumes: make(map[SoundType]float64, soundTypeCount),
	}
	for st := SoundType(0); st < soundTypeCount; st++ {
		s.EffectVolumes[st] = 1.0
		if v, ok := cfg.Effects[st.String()]; ok {
			s.EffectVolumes[st] = v
		}
	}
	return s
}

// ApplyEnv overlays PONG_* environment overrides onto the settings
// Malformed values are ignored
func ApplyEnv(s *Settings) {
	if enabled := os.Getenv("PONG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			s.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv("PONG_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			s.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if effectVols := os.Getenv("PONG_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := SoundType(0); st < soundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					s.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("PONG_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			s.SampleRate = val
		}
	}
}

func (s *Settings) effectVolume(st SoundType) float64 {
	return s.EffectVolumes[st] * s.MasterVolume
}
