package world

import (
	"math/rand"

	"github.com/pserwylo/beat-game/parameter"
)

// Floating platform shape, spawned once per two bars to give the runner a
// streak-landing target off the ground.
const (
	platformMinY   = 0.8
	platformMaxY   = 1.2
	platformWidth  = 1.6
	platformHeight = 0.3

	offbeatSpawnChance = 0.6
)

// World owns the obstacle set ahead of and around the runner. The broad phase
// lives here; the runner only ever sees the obstacles near its own column.
type World struct {
	obstacles []*Obstacle
	rng       *rand.Rand

	// OnRetire is invoked for every obstacle removed behind the runner,
	// before it is dropped from the set.
	OnRetire func(*Obstacle)
}

// New creates an empty world. The rng drives obstacle geometry; tests pass a
// seeded source for deterministic layouts.
func New(rng *rand.Rand) *World {
	return &World{rng: rng}
}

// Add inserts a pre-built obstacle. Fixed layouts and tests use this; the
// beat spawner goes through SpawnForBeat.
func (w *World) Add(o *Obstacle) {
	w.obstacles = append(w.obstacles, o)
}

// Obstacles returns the live obstacle set, nearest first is not guaranteed.
func (w *World) Obstacles() []*Obstacle {
	return w.obstacles
}

// Near returns the obstacles whose horizontal extent intersects the window
// [x-reach, x+reach]. This is the per-tick candidate set for collision.
func (w *World) Near(x, reach float64) []*Obstacle {
	var near []*Obstacle
	for _, o := range w.obstacles {
		if o.Right() > x-reach && o.X < x+reach {
			near = append(near, o)
		}
	}
	return near
}

// GroundHeight returns the terrain height at x. The track is flat in this
// design; the runner's ground check generalizes through this hook.
func (w *World) GroundHeight(x float64) float64 {
	return 0
}

// SpawnForBeat places the obstacles owed for one beat of the track, ahead of
// the runner at aheadX. Downbeats always carry a ground obstacle, the bar's
// third beat carries one by chance, and every other bar opens with a floating
// platform above the downbeat obstacle.
func (w *World) SpawnForBeat(beat int, aheadX float64) {
	switch beat % parameter.BeatsPerBar {
	case 0:
		w.spawnGround(aheadX)
		if beat%(2*parameter.BeatsPerBar) == 0 && beat > 0 {
			w.spawnPlatform(aheadX)
		}
	case 2:
		if w.rng.Float64() < offbeatSpawnChance {
			w.spawnGround(aheadX)
		}
	}
}

func (w *World) spawnGround(x float64) {
	o := &Obstacle{
		X: x,
		Y: 0,
		W: w.between(parameter.ObstacleMinWidth, parameter.ObstacleMaxWidth),
		H: w.between(parameter.ObstacleMinHeight, parameter.ObstacleMaxHeight),
	}
	w.obstacles = append(w.obstacles, o)
}

func (w *World) spawnPlatform(x float64) {
	o := &Obstacle{
		X: x + platformWidth/2,
		Y: w.between(platformMinY, platformMaxY),
		W: platformWidth,
		H: platformHeight,
	}
	w.obstacles = append(w.obstacles, o)
}

func (w *World) between(lo, hi float64) float64 {
	return lo + w.rng.Float64()*(hi-lo)
}

// Retire drops every obstacle entirely behind behindX and reports each one
// through OnRetire so the runner can release its hit bookkeeping.
func (w *World) Retire(behindX float64) {
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Right() < behindX-parameter.RetireMarginUnits {
			if w.OnRetire != nil {
				w.OnRetire(o)
			}
			continue
		}
		kept = append(kept, o)
	}
	// Zero the tail so retired obstacles do not linger in the backing array
	for i := len(kept); i < len(w.obstacles); i++ {
		w.obstacles[i] = nil
	}
	w.obstacles = kept
}
