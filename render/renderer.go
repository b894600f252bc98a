package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pserwylo/beat-game/parameter"
	"github.com/pserwylo/beat-game/player"
	"github.com/pserwylo/beat-game/world"
)

const (
	groundRune   = '─'
	obstacleRune = '█'
	deadRune     = '×'
	pulseRune    = '♪'

	// runFrameInterval alternates the running pose
	runFrameInterval = 150 * time.Millisecond
)

var (
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorDarkOrange)
	styleRunner   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleAirborne = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleHitFlash = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleDead     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDamage   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePulse    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleOverlay  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// Frame is one tick's worth of presentation state. The renderer reads it and
// never mutates simulation state.
type Frame struct {
	Body      *player.Body
	Obstacles []*world.Obstacle
	BeatPhase float64
	// DamagePopup is the damage figure currently shown, 0 for none
	DamagePopup int
	Muted       bool
	GameOver    bool
	Now         time.Time
}

// Renderer projects the side-scrolling world onto a tcell screen. The runner
// sits at a fixed column; the camera follows its world x.
type Renderer struct {
	screen        tcell.Screen
	width, height int
}

// New creates a renderer for the screen.
func New(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen}
	r.Resize()
	return r
}

// Resize re-reads the screen dimensions after a terminal resize.
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
}

// Draw renders one frame and flushes it to the terminal.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()

	groundRow := r.height - 2
	camX := f.Body.X - parameter.PlayerScreenUnits

	r.drawGround(groundRow)
	for _, o := range f.Obstacles {
		r.drawObstacle(o, camX, groundRow)
	}
	r.drawRunner(f, camX, groundRow)
	r.drawHUD(f)
	if f.GameOver {
		r.drawGameOver(f)
	}

	r.screen.Show()
}

func (r *Renderer) drawGround(groundRow int) {
	for col := 0; col < r.width; col++ {
		r.screen.SetContent(col, groundRow, groundRune, nil, styleGround)
	}
}

func (r *Renderer) drawObstacle(o *world.Obstacle, camX float64, groundRow int) {
	left := r.toCol(o.X, camX)
	right := r.toCol(o.Right(), camX)
	if right <= left {
		right = left + 1
	}
	cells := int(math.Round(o.H * parameter.CellsPerUnitY))
	if cells < 1 {
		cells = 1
	}
	baseRow := groundRow - 1 - int(math.Round(o.Y*parameter.CellsPerUnitY))

	for col := left; col < right; col++ {
		if col < 0 || col >= r.width {
			continue
		}
		for i := 0; i < cells; i++ {
			row := baseRow - i
			if row >= parameter.HUDRows && row < groundRow {
				r.screen.SetContent(col, row, obstacleRune, nil, styleObstacle)
			}
		}
	}
}

func (r *Renderer) drawRunner(f Frame, camX float64, groundRow int) {
	col := r.toCol(f.Body.X, camX)
	row := groundRow - 1 - int(math.Round(f.Body.Y*parameter.CellsPerUnitY))
	if col < 0 || col >= r.width || row < 0 || row >= r.height {
		return
	}

	glyph, style := r.runnerFrame(f)
	r.screen.SetContent(col, row, glyph, nil, style)

	if f.DamagePopup > 0 && row-1 >= parameter.HUDRows {
		r.drawText(col, row-1, styleDamage, fmt.Sprintf("-%d", f.DamagePopup))
	}
}

// runnerFrame selects the visual frame from simulation state, hit flash and
// the global clock.
func (r *Renderer) runnerFrame(f Frame) (rune, tcell.Style) {
	switch {
	case f.Body.State() == player.StateDead:
		return deadRune, styleDead
	case f.Body.HitFlash():
		return '@', styleHitFlash
	case f.Body.State() == player.StateJumping:
		return '@', styleAirborne
	default:
		// Alternate the running pose on the wall clock
		if f.Now.UnixMilli()/runFrameInterval.Milliseconds()%2 == 0 {
			return '@', styleRunner
		}
		return 'a', styleRunner
	}
}

func (r *Renderer) drawHUD(f Frame) {
	bar := healthBar(f.Body.Health())
	r.drawText(0, 0, styleHUD, fmt.Sprintf("HP %s %4d", bar, f.Body.Health()))

	status := fmt.Sprintf("SCORE %06d  x%.1f", int(f.Body.Score()), f.Body.Multiplier())
	r.drawText(0, 1, styleHUD, status)

	if f.BeatPhase < parameter.BeatPulsePhase {
		r.screen.SetContent(r.width-2, 0, pulseRune, nil, stylePulse)
	}
	if f.Muted {
		r.drawText(r.width-8, 1, styleHUD, "[muted]")
	}
}

func healthBar(health int) string {
	filled := health * parameter.HealthBarCells / parameter.PlayerMaxHealth
	bar := make([]rune, parameter.HealthBarCells)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '░'
		}
	}
	return string(bar)
}

func (r *Renderer) drawGameOver(f Frame) {
	lines := []string{
		"  GAME OVER  ",
		fmt.Sprintf("  score %d  ", int(f.Body.Score())),
		"  r restart · q quit  ",
	}
	top := r.height/2 - len(lines)/2
	for i, line := range lines {
		r.drawText((r.width-len([]rune(line)))/2, top+i, styleOverlay, line)
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, s string) {
	if y < 0 || y >= r.height {
		return
	}
	for i, ch := range []rune(s) {
		if x+i < 0 || x+i >= r.width {
			continue
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) toCol(wx, camX float64) int {
	return int(math.Round((wx - camX) * parameter.CellsPerUnitX))
}
