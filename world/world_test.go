package world

import (
	"math/rand"
	"testing"

	"github.com/pserwylo/beat-game/parameter"
)

func newTestWorld() *World {
	return New(rand.New(rand.NewSource(1)))
}

func TestObstacleGeometry(t *testing.T) {
	o := &Obstacle{X: 2, Y: 1, W: 3, H: 0.5}

	if o.Top() != 1.5 {
		t.Errorf("Top() = %v, want 1.5", o.Top())
	}
	if o.Right() != 5 {
		t.Errorf("Right() = %v, want 5", o.Right())
	}
	if o.Area() != 1.5 {
		t.Errorf("Area() = %v, want 1.5", o.Area())
	}
}

func TestObstacleOverlaps(t *testing.T) {
	o := &Obstacle{X: 1, Y: 0, W: 1, H: 1}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"Inside", 1.2, 0.2, true},
		{"Left of", -1, 0, false},
		{"Right of", 2.5, 0, false},
		{"Above", 1.2, 1.0, false},
		{"Edge contact", 0.2, 0, false},
		{"Corner overlap", 0.5, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := o.Overlaps(tt.x, tt.y, parameter.PlayerSize); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestNearFiltersByWindow(t *testing.T) {
	w := newTestWorld()
	nearby := &Obstacle{X: 10, Y: 0, W: 1, H: 1}
	far := &Obstacle{X: 100, Y: 0, W: 1, H: 1}
	w.Add(nearby)
	w.Add(far)

	near := w.Near(10, parameter.CollisionReach)

	if len(near) != 1 || near[0] != nearby {
		t.Fatalf("Near returned %d obstacles, want only the close one", len(near))
	}
}

func TestSpawnForBeatPattern(t *testing.T) {
	w := newTestWorld()

	// A full bar: only the downbeat is guaranteed to spawn
	w.SpawnForBeat(4, 50)
	if len(w.Obstacles()) == 0 {
		t.Fatal("expected downbeat spawn")
	}

	for _, o := range w.Obstacles() {
		if o.W < parameter.ObstacleMinWidth || o.W > parameter.ObstacleMaxWidth {
			t.Errorf("width %v outside configured range", o.W)
		}
		if o.H < parameter.ObstacleMinHeight || o.H > parameter.ObstacleMaxHeight {
			t.Errorf("height %v outside configured range", o.H)
		}
		if o.X < 50 {
			t.Errorf("obstacle at %v, want at or past the lead point", o.X)
		}
	}
}

func TestSpawnForBeatPlatformEveryOtherBar(t *testing.T) {
	w := newTestWorld()

	w.SpawnForBeat(8, 50)

	elevated := 0
	for _, o := range w.Obstacles() {
		if o.Y > 0 {
			elevated++
		}
	}
	if elevated != 1 {
		t.Errorf("expected one floating platform on bar boundary, got %d", elevated)
	}
}

func TestRetireReportsAndDrops(t *testing.T) {
	w := newTestWorld()
	behind := &Obstacle{X: 0, Y: 0, W: 1, H: 1}
	ahead := &Obstacle{X: 50, Y: 0, W: 1, H: 1}
	w.Add(behind)
	w.Add(ahead)

	var retired []*Obstacle
	w.OnRetire = func(o *Obstacle) { retired = append(retired, o) }

	w.Retire(20)

	if len(retired) != 1 || retired[0] != behind {
		t.Fatalf("retired %d obstacles, want only the one behind", len(retired))
	}
	if len(w.Obstacles()) != 1 || w.Obstacles()[0] != ahead {
		t.Fatalf("kept %d obstacles, want only the one ahead", len(w.Obstacles()))
	}
}

func TestRetireKeepsRecentlyPassed(t *testing.T) {
	w := newTestWorld()
	// Just behind the runner, inside the retire margin
	o := &Obstacle{X: 18, Y: 0, W: 1, H: 1}
	w.Add(o)

	w.Retire(20)

	if len(w.Obstacles()) != 1 {
		t.Error("obstacle inside the retire margin was dropped")
	}
}

func TestGroundHeightFlat(t *testing.T) {
	w := newTestWorld()
	for _, x := range []float64{-10, 0, 1e6} {
		if h := w.GroundHeight(x); h != 0 {
			t.Errorf("GroundHeight(%v) = %v, want 0", x, h)
		}
	}
}
