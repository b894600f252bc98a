package music

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pserwylo/beat-game/parameter"
)

// Sound synthesizes percussion and effect tones through the speaker. All
// voices are generated sine tones; nothing is decoded from disk. A Sound
// whose speaker failed to open (or a disabled Sound) turns every call into a
// no-op so the game runs silent.
type Sound struct {
	sampleRate beep.SampleRate
	ready      bool
	muted      bool
}

// NewSound opens the speaker. On failure the returned Sound is usable but
// silent, and the error is reported so the caller can log it.
func NewSound() (*Sound, error) {
	s := &Sound{sampleRate: beep.SampleRate(parameter.AudioSampleRate)}
	err := speaker.Init(s.sampleRate, s.sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return s, err
	}
	s.ready = true
	return s, nil
}

// NewDisabled returns a Sound that never touches the speaker. Used by tests
// and headless runs.
func NewDisabled() *Sound {
	return &Sound{sampleRate: beep.SampleRate(parameter.AudioSampleRate)}
}

// ToggleMute flips the mute state and returns the new value.
func (s *Sound) ToggleMute() bool {
	s.muted = !s.muted
	return s.muted
}

// Muted reports whether output is currently muted.
func (s *Sound) Muted() bool {
	return s.muted
}

// Beat plays the percussion voice for a beat boundary: a kick on the
// downbeat, a short high tick elsewhere.
func (s *Sound) Beat(beat int) {
	if Downbeat(beat) {
		s.play(s.tone(parameter.KickFreq, parameter.KickDuration, parameter.KickGain))
		return
	}
	s.play(s.tone(parameter.HatFreq, parameter.HatDuration, parameter.HatGain))
}

// Hit plays the damage blip.
func (s *Sound) Hit() {
	s.play(s.tone(parameter.HitFreq, parameter.HitDuration, parameter.HitGain))
}

// Death plays a short descending sting.
func (s *Sound) Death() {
	s.play(beep.Seq(
		s.tone(440, parameter.DeathStingNoteDuration, parameter.DeathStingGain),
		s.tone(330, parameter.DeathStingNoteDuration, parameter.DeathStingGain),
		s.tone(220, 2*parameter.DeathStingNoteDuration, parameter.DeathStingGain),
	))
}

// tone builds a fixed-length sine voice with gain shaping.
func (s *Sound) tone(freq float64, d time.Duration, gain float64) beep.Streamer {
	sine, err := generators.SineTone(s.sampleRate, freq)
	if err != nil {
		return beep.Silence(s.sampleRate.N(d))
	}
	return &effects.Gain{
		Streamer: beep.Take(s.sampleRate.N(d), sine),
		Gain:     gain,
	}
}

func (s *Sound) play(streamer beep.Streamer) {
	if !s.ready || s.muted {
		return
	}
	speaker.Play(streamer)
}

// Close releases the speaker.
func (s *Sound) Close() {
	if s.ready {
		speaker.Close()
	}
}
