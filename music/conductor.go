package music

import "github.com/pserwylo/beat-game/parameter"

// Conductor keeps the track's beat grid. It is advanced by the simulation
// tick, not by the audio backend, so the beat position stays valid when the
// speaker is unavailable.
type Conductor struct {
	bpm  float64
	pos  float64 // position in beats, fractional
	beat int     // completed beat boundaries
}

// NewConductor creates a conductor at beat zero.
func NewConductor(bpm float64) *Conductor {
	return &Conductor{bpm: bpm}
}

// SecondsPerBeat returns the beat period.
func (c *Conductor) SecondsPerBeat() float64 {
	return 60.0 / c.bpm
}

// Advance moves the grid forward by dt seconds and returns how many beat
// boundaries were crossed, usually 0 or 1.
func (c *Conductor) Advance(dt float64) int {
	c.pos += dt * c.bpm / 60.0
	crossed := 0
	for float64(c.beat+1) <= c.pos {
		c.beat++
		crossed++
	}
	return crossed
}

// Beat returns the index of the last completed beat boundary.
func (c *Conductor) Beat() int {
	return c.beat
}

// Downbeat reports whether beat opens a bar.
func Downbeat(beat int) bool {
	return beat%parameter.BeatsPerBar == 0
}

// Phase returns the fraction elapsed within the current beat, [0, 1).
func (c *Conductor) Phase() float64 {
	return c.pos - float64(c.beat)
}
