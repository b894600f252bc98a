package parameter

// Runner body tuning. Positions and sizes are in world units, velocities in
// world units per second, y=0 is ground level.
const (
	// PlayerMaxHealth is the starting and maximum health of the runner
	PlayerMaxHealth = 1000

	// PlayerMaxJumps is the number of jumps available before a landing resets them
	PlayerMaxJumps = 2

	// PlayerSize is the side length of the runner's square bounding box,
	// anchored at the position as bottom-left
	PlayerSize = 0.8

	// Gravity is the vertical acceleration applied every step
	Gravity = -39.2

	// JumpVelocity is the vertical velocity set by a jump
	JumpVelocity = 10.0

	// DoubleJumpThreshold gates the second jump: |vy| must be at or below
	// this, which only holds near the apex of the first jump
	DoubleJumpThreshold = 6.0

	// ClimbThreshold lets the runner step onto an obstacle whose top is
	// within this distance above its feet instead of treating it as a wall
	ClimbThreshold = 0.4
)

// Scoring
const (
	// ScorePerSecond is the base score rate while airborne
	ScorePerSecond = 100.0

	// StreakLandingBonus is added to the score multiplier when a jump ends
	// on top of an obstacle instead of the ground
	StreakLandingBonus = 0.5
)

// Damage model
const (
	// AreaToDamage converts obstacle area to damage points
	AreaToDamage = 15.0

	// MinDamage is the floor for any single hit
	MinDamage = 1

	// HitAnimationDuration is how long the hit flash is shown, in seconds
	HitAnimationDuration = 0.1
)
