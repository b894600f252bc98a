package parameter

import "time"

// Beat grid
const (
	// BeatsPerMinute is the fixed track tempo
	BeatsPerMinute = 120.0

	// BeatsPerBar groups beats for the downbeat accent and spawn pattern
	BeatsPerBar = 4
)

// Synth output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = time.Second / 10
)

// Percussion voices, sine tones
const (
	KickFreq     = 110.0
	KickDuration = 60 * time.Millisecond
	KickGain     = 0.4

	HatFreq     = 1760.0
	HatDuration = 25 * time.Millisecond
	HatGain     = -0.6
)

// One-shot effects
const (
	HitFreq     = 196.0
	HitDuration = 90 * time.Millisecond
	HitGain     = 0.2

	// DeathStingFreqs is descended through on death, one note each
	DeathStingNoteDuration = 160 * time.Millisecond
	DeathStingGain         = 0.3
)
