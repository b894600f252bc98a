package parameter

import "time"

// Game loop
const (
	// TickInterval is the simulation/render tick period (~60 FPS)
	TickInterval = 16 * time.Millisecond

	// MaxTickSeconds clamps a single step after a stall (terminal suspend,
	// debugger) so the body does not tunnel through obstacles
	MaxTickSeconds = 0.1
)

// World scrolling
const (
	// ScrollSpeed is the constant forward velocity of the runner
	ScrollSpeed = 4.0

	// CollisionReach is the half-width of the broad-phase window around the
	// runner, in world units
	CollisionReach = 2.0

	// SpawnLeadUnits is how far ahead of the runner obstacles are placed
	SpawnLeadUnits = 24.0

	// RetireMarginUnits is how far behind the runner an obstacle must be
	// before it is retired
	RetireMarginUnits = 4.0
)

// Obstacle geometry ranges, world units
const (
	ObstacleMinWidth  = 0.4
	ObstacleMaxWidth  = 1.0
	ObstacleMinHeight = 0.4
	ObstacleMaxHeight = 1.6
)

// HUD feedback
const (
	// DamagePopupDuration is how long the damage number stays on screen
	DamagePopupDuration = 600 * time.Millisecond
)
