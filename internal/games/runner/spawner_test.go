package runner

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestSpawner(samples ...float64) (*Spawner, *Field) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(&scriptedSource{values: samples}, NewLanes(cfg.World), cfg.Spawn)
	return s, NewField(cfg)
}

func TestSpawnObstacle(t *testing.T) {
	tests := []struct {
		name      string
		samples   []float64
		spawned   bool
		lane      int
		variant   Variant
		height    float64
		expectedX float64
	}{
		{"below chance, center, tall", []float64{0.01, 0.5, 0.2}, true, LaneCenter, VariantTall, 80, 400},
		{"zero sample, left, normal", []float64{0, 0, 0.3}, true, LaneLeft, VariantNormal, 50, 325},
		{"right lane", []float64{0.019, 0.9999, 0.9}, true, LaneRight, VariantNormal, 50, 475},
		{"at chance", []float64{0.02}, false, 0, 0, 0, 0},
		{"well above chance", []float64{0.5}, false, 0, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, f := newTestSpawner(tc.samples...)
			got := s.MaybeSpawnObstacle(f)
			if got != tc.spawned {
				t.Fatalf("MaybeSpawnObstacle() = %v, expected %v", got, tc.spawned)
			}
			if !tc.spawned {
				if len(f.Obstacles) != 0 {
					t.Errorf("no obstacle expected, got %d", len(f.Obstacles))
				}
				return
			}

			o := f.Obstacles[0]
			if o.Lane != tc.lane || o.X != tc.expectedX {
				t.Errorf("obstacle lane/x = %d/%v, expected %d/%v", o.Lane, o.X, tc.lane, tc.expectedX)
			}
			if o.Variant != tc.variant || o.Height != tc.height {
				t.Errorf("obstacle variant/height = %v/%v, expected %v/%v", o.Variant, o.Height, tc.variant, tc.height)
			}
			if o.Y != -50 || o.Width != 40 {
				t.Errorf("obstacle should spawn above the top edge with width 40, got y=%v w=%v", o.Y, o.Width)
			}
		})
	}
}

func TestSpawnCoin(t *testing.T) {
	s, f := newTestSpawner(0.029, 0.7, 0.03)

	if !s.MaybeSpawnCoin(f) {
		t.Fatal("sample below 0.03 should spawn a coin")
	}
	c := f.Coins[0]
	if c.Lane != LaneRight || c.X != 475 || c.Y != -30 || c.Size != 30 || c.Rotation != 0 {
		t.Errorf("unexpected coin %+v", c)
	}

	if s.MaybeSpawnCoin(f) {
		t.Error("sample equal to the chance should not spawn")
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Spawn.MaxActive = 2
	src := &scriptedSource{values: []float64{0, 0, 0, 0, 0, 0, 0}}
	s := NewSpawner(src, NewLanes(cfg.World), cfg.Spawn)
	f := NewField(cfg)

	if !s.MaybeSpawnObstacle(f) { // trigger, lane, variant
		t.Fatal("first spawn should succeed")
	}
	if !s.MaybeSpawnCoin(f) { // trigger, lane
		t.Fatal("second spawn should succeed")
	}
	if s.MaybeSpawnCoin(f) { // trigger only
		t.Error("spawn at the cap should be suppressed")
	}
	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	if src.next != 6 {
		t.Errorf("capped spawn should consume only its trigger sample, used %d samples", src.next)
	}
}

func TestSpawnRates(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	s := NewSpawner(rand.New(rand.NewSource(7)), NewLanes(cfg.World), cfg.Spawn)
	f := NewField(cfg)

	const trials = 200_000
	var obstacles, coins, tall int
	var lanes [LaneCount]int
	for range trials {
		f.Reset()
		if s.MaybeSpawnObstacle(f) {
			obstacles++
			lanes[f.Obstacles[0].Lane]++
			if f.Obstacles[0].Variant == VariantTall {
				tall++
			}
		}
		if s.MaybeSpawnCoin(f) {
			coins++
		}
	}

	checkRate := func(name string, got, n int, expected, tolerance float64) {
		t.Helper()
		rate := float64(got) / float64(n)
		if math.Abs(rate-expected) > tolerance {
			t.Errorf("%s rate = %.4f, expected %.4f ± %.4f", name, rate, expected, tolerance)
		}
	}
	checkRate("obstacle", obstacles, trials, 0.02, 0.002)
	checkRate("coin", coins, trials, 0.03, 0.002)
	checkRate("tall", tall, obstacles, 0.3, 0.03)
	for lane, n := range lanes {
		checkRate(fmt.Sprintf("lane %d", lane), n, obstacles, 1.0/3, 0.03)
	}
}
