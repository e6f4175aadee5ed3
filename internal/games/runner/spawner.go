package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// RandomSource yields uniform samples in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// Spawner places new obstacles and coins just above the top edge.
// Each call draws one Bernoulli sample; obstacle and coin trials are
// independent, so both can spawn on the same tick.
type Spawner struct {
	rng   RandomSource
	lanes Lanes
	cfg   config.SpawnConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng RandomSource, lanes Lanes, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		rng:   rng,
		lanes: lanes,
		cfg:   cfg,
	}
}

// SetSource replaces the random source.
func (s *Spawner) SetSource(rng RandomSource) {
	s.rng = rng
}

// MaybeSpawnObstacle adds an obstacle with the configured probability.
// Draws: trigger, lane, then variant. Returns whether one was added.
func (s *Spawner) MaybeSpawnObstacle(f *Field) bool {
	if s.rng.Float64() >= s.cfg.ObstacleChance {
		return false
	}
	if s.full(f) {
		return false
	}

	lane := s.pickLane()
	o := Obstacle{
		X:       s.lanes.TargetX(lane),
		Y:       s.cfg.ObstacleSpawnY,
		Width:   s.cfg.ObstacleWidth,
		Height:  s.cfg.ObstacleHeight,
		Lane:    lane,
		Variant: VariantNormal,
	}
	if s.rng.Float64() < s.cfg.TallChance {
		o.Variant = VariantTall
		o.Height = s.cfg.TallHeight
	}

	f.Obstacles = append(f.Obstacles, o)
	return true
}

// MaybeSpawnCoin adds a coin with the configured probability.
// Draws: trigger, then lane. Returns whether one was added.
func (s *Spawner) MaybeSpawnCoin(f *Field) bool {
	if s.rng.Float64() >= s.cfg.CoinChance {
		return false
	}
	if s.full(f) {
		return false
	}

	lane := s.pickLane()
	f.Coins = append(f.Coins, Coin{
		X:    s.lanes.TargetX(lane),
		Y:    s.cfg.CoinSpawnY,
		Size: s.cfg.CoinSize,
		Lane: lane,
	})
	return true
}

// full reports whether the optional active-entity cap is reached.
func (s *Spawner) full(f *Field) bool {
	return s.cfg.MaxActive > 0 && f.Len() >= s.cfg.MaxActive
}

// pickLane maps one uniform sample onto a lane.
func (s *Spawner) pickLane() int {
	lane := int(s.rng.Float64() * LaneCount)
	return min(max(lane, 0), LaneCount-1)
}
