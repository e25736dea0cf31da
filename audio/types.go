package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundPaddle SoundType = iota // Ball off a paddle
	SoundWall                    // Ball off the top or bottom wall
	SoundGoal                    // Point scored
	SoundWin                     // Human took the match
	SoundLose                    // AI took the match
	soundTypeCount
)

// soundKeys are the names used for per-effect volumes in config files and env overrides
var soundKeys = [soundTypeCount]string{
	SoundPaddle: "paddle",
	SoundWall:   "wall",
	SoundGoal:   "goal",
	SoundWin:    "win",
	SoundLose:   "lose",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundKeys[s]
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrSpeakerInit   = errors.New("speaker initialization failed")
)
