package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pserwylo/beat-game/input"
	"github.com/pserwylo/beat-game/music"
	"github.com/pserwylo/beat-game/parameter"
	"github.com/pserwylo/beat-game/player"
	"github.com/pserwylo/beat-game/world"
)

func newTestGame(t *testing.T) (*Game, *player.MockClock) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	clock := player.NewMockClock(time.Unix(1000, 0))
	g := New(screen, music.NewDisabled(), clock, rand.New(rand.NewSource(1)))
	return g, clock
}

// tick advances the mock clock by one tick interval and runs the step.
func tick(g *Game, clock *player.MockClock) {
	clock.Advance(parameter.TickInterval)
	g.Tick(clock.Now())
}

func TestTickAdvancesRunner(t *testing.T) {
	g, clock := newTestGame(t)

	for i := 0; i < 10; i++ {
		tick(g, clock)
	}

	want := parameter.ScrollSpeed * 10 * parameter.TickInterval.Seconds()
	if got := g.Body().X; got < want*0.99 || got > want*1.01 {
		t.Errorf("runner x = %v, want about %v", got, want)
	}
}

func TestJumpIntentAccruesScore(t *testing.T) {
	g, clock := newTestGame(t)

	if !g.Handle(input.Intent{Type: input.IntentJump}) {
		t.Fatal("jump intent stopped the game")
	}
	tick(g, clock)

	if g.Body().State() != player.StateJumping {
		t.Fatalf("state = %v, want jumping", g.Body().State())
	}
	if g.Body().Score() <= 0 {
		t.Error("expected airborne score accrual")
	}
}

func TestBeatsSpawnObstacles(t *testing.T) {
	g, clock := newTestGame(t)

	// Two seconds at 120 BPM crosses the first downbeat of bar two
	for i := 0; i < 130; i++ {
		tick(g, clock)
	}

	if len(g.world.Obstacles()) == 0 {
		t.Error("expected obstacles spawned by the beat grid")
	}
	for _, o := range g.world.Obstacles() {
		if o.W <= 0 || o.H <= 0 {
			t.Errorf("degenerate obstacle %+v", o)
		}
		if o.X <= g.Body().X {
			t.Errorf("obstacle spawned behind the runner at x=%v", o.X)
		}
	}
}

func TestDeathEndsRunAndRestartResets(t *testing.T) {
	g, clock := newTestGame(t)

	// Lethal hit: area 70 * 15 damage per unit is well past max health
	g.Body().ApplyHit(&world.Obstacle{X: 0, Y: 0, W: 10, H: 7})
	tick(g, clock)

	if !g.Over() {
		t.Fatal("expected run over after death")
	}

	// Restart only works once the run is over, and yields a fresh body
	if !g.Handle(input.Intent{Type: input.IntentRestart}) {
		t.Fatal("restart intent stopped the game")
	}
	if g.Over() {
		t.Error("expected new run after restart")
	}
	if g.Body().Health() != parameter.PlayerMaxHealth {
		t.Errorf("health = %d after restart, want %d", g.Body().Health(), parameter.PlayerMaxHealth)
	}
	if g.Body().State() != player.StateRunning {
		t.Errorf("state = %v after restart, want running", g.Body().State())
	}
}

func TestRestartIgnoredMidRun(t *testing.T) {
	g, clock := newTestGame(t)

	for i := 0; i < 10; i++ {
		tick(g, clock)
	}
	moved := g.Body().X

	g.Handle(input.Intent{Type: input.IntentRestart})
	if g.Body().X != moved {
		t.Error("restart mid-run replaced the body")
	}
}

func TestQuitIntentStopsGame(t *testing.T) {
	g, _ := newTestGame(t)

	if g.Handle(input.Intent{Type: input.IntentQuit}) {
		t.Error("expected quit intent to stop the game")
	}
}

func TestCollisionDamagesRunner(t *testing.T) {
	g, clock := newTestGame(t)

	// Plant a wall directly in the runner's path
	wall := &world.Obstacle{X: g.Body().X + 0.5, Y: 0, W: 0.6, H: 1.2}
	g.world = worldWith(g, wall)

	for i := 0; i < 30 && g.Body().Health() == parameter.PlayerMaxHealth; i++ {
		tick(g, clock)
	}

	if g.Body().Health() == parameter.PlayerMaxHealth {
		t.Fatal("expected wall collision to deal damage")
	}
	if g.Body().Multiplier() != 1 {
		t.Errorf("multiplier = %v after hit, want 1", g.Body().Multiplier())
	}
}

// worldWith rebuilds the game's world around a fixed obstacle set.
func worldWith(g *Game, obstacles ...*world.Obstacle) *world.World {
	w := world.New(rand.New(rand.NewSource(1)))
	w.OnRetire = g.Body().Forget
	for _, o := range obstacles {
		w.Add(o)
	}
	return w
}
