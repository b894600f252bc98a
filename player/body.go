package player

import (
	"math"
	"time"

	"github.com/pserwylo/beat-game/parameter"
	"github.com/pserwylo/beat-game/world"
)

// State is the runner's simulation state. Dead is absorbing: no operation
// leaves it.
type State uint8

const (
	StateRunning State = iota
	StateJumping
	StateDead
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// Body is the player-controlled runner: a square of side parameter.PlayerSize
// anchored at (X, Y) as bottom-left, subject to gravity, jump impulses,
// obstacle collision, area-scaled damage and airborne scoring.
//
// Body is owned exclusively by the game stepper and is not safe for
// concurrent use.
type Body struct {
	X, Y       float64
	VelX, VelY float64

	state      State
	health     int
	score      float64
	multiplier float64
	jumps      int

	// hit holds the obstacles already charged for damage, keyed by
	// identity; a continuous overlap never charges twice.
	hit map[*world.Obstacle]struct{}

	hitTimer      float64
	pendingDamage int
	diedAt        time.Time

	clock Clock
}

// NewBody creates a runner at the origin with full health, running forward at
// the track scroll speed.
func NewBody(clock Clock) *Body {
	return &Body{
		VelX:       parameter.ScrollSpeed,
		state:      StateRunning,
		health:     parameter.PlayerMaxHealth,
		multiplier: 1,
		hit:        make(map[*world.Obstacle]struct{}),
		clock:      clock,
	}
}

// State returns the current simulation state.
func (b *Body) State() State { return b.state }

// Health returns the remaining health, 0..parameter.PlayerMaxHealth.
func (b *Body) Health() int { return b.health }

// Score returns the accumulated score.
func (b *Body) Score() float64 { return b.score }

// Multiplier returns the current streak multiplier, always >= 1.
func (b *Body) Multiplier() float64 { return b.multiplier }

// HitFlash reports whether a hit is currently being shown.
func (b *Body) HitFlash() bool { return b.hitTimer > 0 }

// DiedAt returns the clock time of death; zero while alive.
func (b *Body) DiedAt() time.Time { return b.diedAt }

// RequestJump launches a jump if one is available. A second jump is only
// granted near the apex of the first, where |vy| falls under the threshold;
// at ground launch vy is already near zero so the gate passes. Safe to call
// at any time; out-of-budget or dead calls are no-ops.
func (b *Body) RequestJump() {
	if b.state == StateDead {
		return
	}
	if b.jumps >= parameter.PlayerMaxJumps {
		return
	}
	if math.Abs(b.VelY) > parameter.DoubleJumpThreshold {
		return
	}
	b.VelY = parameter.JumpVelocity
	b.state = StateJumping
	b.jumps++
}

// Step advances the simulation by dt seconds: hit-flash decay, gravity,
// explicit Euler integration, ground landing, and airborne score accrual.
// Score accrues only while Jumping. While Dead the body is frozen and Step
// is a no-op.
func (b *Body) Step(dt float64) {
	if b.state == StateDead {
		return
	}
	if b.hitTimer > 0 {
		b.hitTimer -= dt
	}
	b.VelY += parameter.Gravity * dt
	b.X += b.VelX * dt
	b.Y += b.VelY * dt
	if b.Y < 0 {
		b.land(0)
	} else if b.state == StateJumping {
		b.score += parameter.ScorePerSecond * dt * b.multiplier
	}
}

// land resolves a landing at the given height. Ground landings reset the
// streak; landing on an elevated surface mid-jump extends it.
func (b *Body) land(height float64) {
	if height <= 0 {
		b.multiplier = 1
	} else if b.state == StateJumping {
		b.multiplier += parameter.StreakLandingBonus
	}
	b.state = StateRunning
	b.VelY = 0
	b.Y = height
	b.jumps = 0
}

// ResolveCollision tests the runner's bounding box against the obstacle and
// resolves the benign cases. It returns false when there is no overlap, and
// false after resolving a top landing: the runner's feet are within the climb
// threshold of the obstacle's top while not rising, so the obstacle acts as a
// step, not a wall. Every other overlap returns true and the caller should
// follow up with ApplyHit.
func (b *Body) ResolveCollision(o *world.Obstacle) bool {
	if b.state == StateDead {
		return false
	}
	if !o.Overlaps(b.X, b.Y, parameter.PlayerSize) {
		return false
	}
	if b.VelY <= 0 && b.Y > o.Top()-parameter.ClimbThreshold {
		b.land(o.Top())
		return false
	}
	return true
}

// ApplyHit charges the obstacle for damage. The hit flash restarts on every
// call, but a given obstacle deals damage at most once while the runner
// tracks it: repeat overlaps are free. Damage is the obstacle area scaled to
// points and floored at MinDamage; a rising runner grazing the upper part of
// an obstacle takes proportionally less than a head-on hit near its base.
// Any damaging hit resets the streak multiplier. Health floors at zero and
// zero health is terminal: velocity is zeroed, the death time recorded, and
// the body stops responding.
func (b *Body) ApplyHit(o *world.Obstacle) {
	if b.state == StateDead {
		return
	}
	b.hitTimer = parameter.HitAnimationDuration
	if _, seen := b.hit[o]; seen {
		return
	}
	b.hit[o] = struct{}{}
	b.multiplier = 1

	damage := int(math.Round(o.Area() * parameter.AreaToDamage))
	if damage < parameter.MinDamage {
		damage = parameter.MinDamage
	}
	if b.VelY > 0 {
		scale := 1 - (b.Y-o.Y)/o.H
		damage = int(math.Round(float64(damage) * scale))
		if damage < parameter.MinDamage {
			damage = parameter.MinDamage
		}
	}

	b.pendingDamage = damage
	b.health -= damage
	if b.health <= 0 {
		b.health = 0
		b.VelX, b.VelY = 0, 0
		b.diedAt = b.clock.Now()
		b.state = StateDead
	}
}

// ConsumeHitSignal returns the damage dealt since the last call and clears
// it, so the presentation layer reacts exactly once per hit.
func (b *Body) ConsumeHitSignal() int {
	d := b.pendingDamage
	b.pendingDamage = 0
	return d
}

// Forget releases the damage bookkeeping for an obstacle the world has
// retired. Without this the hit set would grow for the whole run and a
// pooled obstacle could inherit a stale already-damaged entry. Only call for
// obstacles that can no longer overlap the runner.
func (b *Body) Forget(o *world.Obstacle) {
	delete(b.hit, o)
}
