package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// Effect timing
const (
	paddleDuration = 60 * time.Millisecond
	paddleAttack   = 2 * time.Millisecond
	paddleRelease  = 30 * time.Millisecond

	wallDuration = 35 * time.Millisecond
	wallAttack   = 1 * time.Millisecond
	wallRelease  = 25 * time.Millisecond

	goalDuration = 320 * time.Millisecond
	goalAttack   = 5 * time.Millisecond
	goalRelease  = 120 * time.Millisecond

	chimeNoteDuration = 180 * time.Millisecond
	chimeAttack       = 4 * time.Millisecond
	chimeRelease      = 90 * time.Millisecond
)

// Tone describes one enveloped note; EndFreq of zero holds Freq for the whole duration
type Tone struct {
	Freq     float64
	EndFreq  float64
	Wave     WaveType
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
}

// tone is a single-shot oscillator with a linear attack/release envelope and optional pitch sweep
type tone struct {
	Tone
	rate     beep.SampleRate
	phase    float64
	position int
	total    int
	attack   int
	release  int
}

// NewTone creates a finite streamer for t
func NewTone(t Tone, rate beep.SampleRate) beep.Streamer {
	total := rate.N(t.Duration)
	att := min(rate.N(t.Attack), total)
	rel := min(rate.N(t.Release), total-att)
	return &tone{Tone: t, rate: rate, total: total, attack: att, release: rel}
}

func (o *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.total {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.total {
			return i, true
		}

		val := o.sample() * o.gain()
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.frequency() / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *tone) Err() error { return nil }

func (o *tone) sample() float64 {
	switch o.Wave {
	case WaveSquare:
		if o.phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSaw:
		return 2.0 * (o.phase - 0.5)
	case WaveTriangle:
		return 1.0 - 4.0*math.Abs(o.phase-0.5)
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

func (o *tone) frequency() float64 {
	if o.EndFreq == 0 || o.total == 0 {
		return o.Freq
	}
	p := float64(o.position) / float64(o.total)
	return o.Freq + (o.EndFreq-o.Freq)*p
}

func (o *tone) gain() float64 {
	if o.attack > 0 && o.position < o.attack {
		return float64(o.position) / float64(o.attack)
	}
	if o.release > 0 && o.position >= o.total-o.release {
		return float64(o.total-o.position) / float64(o.release)
	}
	return 1.0
}

// newVolume wraps s in a linear volume control
// Log2(0) is -Inf, so zero volume maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreatePaddleSound generates a short square blip for paddle hits
func CreatePaddleSound(s *Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)
	blip := NewTone(Tone{Freq: 440, Wave: WaveSquare, Duration: paddleDuration, Attack: paddleAttack, Release: paddleRelease}, rate)
	// Square is harsh at full scale
	return newVolume(blip, 0.4*s.effectVolume(SoundPaddle))
}

// CreateWallSound generates a soft high tick for wall bounces
func CreateWallSound(s *Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)
	tick := NewTone(Tone{Freq: 880, Wave: WaveSine, Duration: wallDuration, Attack: wallAttack, Release: wallRelease}, rate)
	return newVolume(tick, s.effectVolume(SoundWall))
}

// CreateGoalSound generates a falling saw buzz
func CreateGoalSound(s *Settings) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)

	buzz := NewTone(Tone{Freq: 220, EndFreq: 110, Wave: WaveSaw, Duration: goalDuration, Attack: goalAttack, Release: goalRelease}, rate)
	sub := NewTone(Tone{Freq: 110, EndFreq: 55, Wave: WaveSine, Duration: goalDuration, Attack: goalAttack, Release: goalRelease}, rate)

	mixed := beep.Mix(newVolume(buzz, 0.5), newVolume(sub, 0.5))
	return newVolume(mixed, s.effectVolume(SoundGoal))
}

// CreateWinSound generates a rising two-note chime
func CreateWinSound(s *Settings) beep.Streamer {
	return chime(s, SoundWin, 659.25, 987.77) // E5, B5
}

// CreateLoseSound generates a falling two-note chime
func CreateLoseSound(s *Settings) beep.Streamer {
	return chime(s, SoundLose, 392.00, 261.63) // G4, C4
}

func chime(s *Settings, st SoundType, first, second float64) beep.Streamer {
	rate := beep.SampleRate(s.SampleRate)
	note := func(freq float64) beep.Streamer {
		return NewTone(Tone{Freq: freq, Wave: WaveTriangle, Duration: chimeNoteDuration, Attack: chimeAttack, Release: chimeRelease}, rate)
	}
	return newVolume(beep.Seq(note(first), note(second)), s.effectVolume(st))
}

// GetSoundEffect returns a fresh streamer for soundType, nil if unknown
func GetSoundEffect(soundType SoundType, s *Settings) beep.Streamer {
	switch soundType {
	case SoundPaddle:
		return CreatePaddleSound(s)
	case SoundWall:
		return CreateWallSound(s)
	case SoundGoal:
		return CreateGoalSound(s)
	case SoundWin:
		return CreateWinSound(s)
	case SoundLose:
		return CreateLoseSound(s)
	default:
		return nil
	}
}
