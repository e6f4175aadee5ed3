package runner

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Collision is the outcome of one collision pass.
type Collision struct {
	Ended          bool // Player hit an obstacle
	CoinsCollected int  // Coins removed from the field this pass
}

// CollisionResolver tests the player against the field.
// Only the horizontal distance between centers is compared against a
// threshold; vertical spans must genuinely intersect.
type CollisionResolver struct {
	obstacleThreshold float64
	coinThreshold     float64
}

// NewCollisionResolver creates a resolver with the configured thresholds.
func NewCollisionResolver(cfg config.CollisionConfig) CollisionResolver {
	return CollisionResolver{
		obstacleThreshold: cfg.ObstacleThreshold,
		coinThreshold:     cfg.CoinThreshold,
	}
}

// CheckCollisions ends the run on the first obstacle hit, without looking at
// coins. Otherwise every coin within reach is collected and removed.
func (r CollisionResolver) CheckCollisions(p *Player, f *Field) Collision {
	for _, o := range f.Obstacles {
		if math.Abs(p.X-o.X) < r.obstacleThreshold &&
			core.SpansOverlap(p.Y, p.Height, o.Y, o.Height) {
			return Collision{Ended: true}
		}
	}

	var collected int
	kept := f.Coins[:0]
	for _, c := range f.Coins {
		if math.Abs(p.X-c.X) < r.coinThreshold &&
			core.SpansOverlap(p.Y, p.Height, c.Y, c.Size) {
			collected++
			continue
		}
		kept = append(kept, c)
	}
	f.Coins = kept

	return Collision{CoinsCollected: collected}
}
