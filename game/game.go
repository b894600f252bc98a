package game

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pserwylo/beat-game/input"
	"github.com/pserwylo/beat-game/music"
	"github.com/pserwylo/beat-game/parameter"
	"github.com/pserwylo/beat-game/player"
	"github.com/pserwylo/beat-game/render"
	"github.com/pserwylo/beat-game/world"
)

// Game is the external stepper: it owns the runner, the world and the beat
// grid, advances them once per tick, resolves collisions, and feeds the
// presentation layer. Single-threaded; all mutation happens on the loop
// goroutine.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	sound    *music.Sound
	clock    player.Clock
	rng      *rand.Rand

	body      *player.Body
	world     *world.World
	conductor *music.Conductor

	last       time.Time
	over       bool
	popup      int
	popupUntil time.Time
}

// New creates a game on the screen. The sound may be a silent one; the clock
// and rng are injected so tests can drive the loop deterministically.
func New(screen tcell.Screen, sound *music.Sound, clock player.Clock, rng *rand.Rand) *Game {
	g := &Game{
		screen:   screen,
		renderer: render.New(screen),
		sound:    sound,
		clock:    clock,
		rng:      rng,
	}
	g.reset()
	g.last = clock.Now()
	return g
}

// reset starts a fresh run: new body, empty world, beat zero.
func (g *Game) reset() {
	g.body = player.NewBody(g.clock)
	g.world = world.New(g.rng)
	g.world.OnRetire = g.body.Forget
	g.conductor = music.NewConductor(parameter.BeatsPerMinute)
	g.over = false
	g.popup = 0
	g.popupUntil = time.Time{}
}

// Body exposes the current runner, read-only by convention.
func (g *Game) Body() *player.Body { return g.body }

// Over reports whether the current run has ended.
func (g *Game) Over() bool { return g.over }

// Run drives the ticker/event loop until a quit intent arrives.
func (g *Game) Run() {
	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- g.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if !g.Handle(input.Map(ev)) {
				return
			}
		case <-ticker.C:
			g.Tick(g.clock.Now())
		}
	}
}

// Handle applies one intent and reports whether the game should keep running.
func (g *Game) Handle(in input.Intent) bool {
	switch in.Type {
	case input.IntentQuit:
		return false
	case input.IntentJump:
		g.body.RequestJump()
	case input.IntentRestart:
		if g.over {
			g.reset()
			g.last = g.clock.Now()
		}
	case input.IntentToggleMusic:
		g.sound.ToggleMute()
	case input.IntentResize:
		g.screen.Sync()
		g.renderer.Resize()
	}
	return true
}

// Tick advances the simulation to now and draws the frame. One tick is: step
// the body, resolve every nearby obstacle, advance the beat grid (spawning
// and percussion per crossed beat), retire obstacles behind the runner, and
// surface the hit signal.
func (g *Game) Tick(now time.Time) {
	dt := now.Sub(g.last).Seconds()
	g.last = now
	if dt > parameter.MaxTickSeconds {
		dt = parameter.MaxTickSeconds
	}

	if dt > 0 && !g.over {
		g.body.Step(dt)

		for _, o := range g.world.Near(g.body.X, parameter.CollisionReach) {
			if g.body.ResolveCollision(o) {
				g.body.ApplyHit(o)
			}
		}

		crossed := g.conductor.Advance(dt)
		for beat := g.conductor.Beat() - crossed + 1; beat <= g.conductor.Beat(); beat++ {
			g.world.SpawnForBeat(beat, g.body.X+parameter.SpawnLeadUnits)
			g.sound.Beat(beat)
		}

		g.world.Retire(g.body.X)
	}

	if !g.popupUntil.IsZero() && now.After(g.popupUntil) {
		g.popup = 0
	}
	if damage := g.body.ConsumeHitSignal(); damage > 0 {
		g.sound.Hit()
		g.popup = damage
		g.popupUntil = now.Add(parameter.DamagePopupDuration)
	}

	if g.body.State() == player.StateDead && !g.over {
		g.over = true
		g.sound.Death()
	}

	g.renderer.Draw(render.Frame{
		Body:        g.body,
		Obstacles:   g.world.Obstacles(),
		BeatPhase:   g.conductor.Phase(),
		DamagePopup: g.popup,
		Muted:       g.sound.Muted(),
		GameOver:    g.over,
		Now:         now,
	})
}
