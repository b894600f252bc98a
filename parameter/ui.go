package parameter

// World-to-screen projection
const (
	// CellsPerUnitX is the horizontal cell density of the projection
	CellsPerUnitX = 3

	// CellsPerUnitY is the vertical cell density; terminal cells are roughly
	// twice as tall as wide, so this stays above CellsPerUnitX
	CellsPerUnitY = 4

	// PlayerScreenUnits is how far into the screen, in world units, the
	// runner column sits from the left edge
	PlayerScreenUnits = 6.0
)

// HUD layout
const (
	// HUDRows is the number of rows reserved at the top of the screen
	HUDRows = 2

	// HealthBarCells is the width of the HUD health bar
	HealthBarCells = 20

	// BeatPulsePhase is the beat fraction during which the pulse marker is lit
	BeatPulsePhase = 0.15
)
