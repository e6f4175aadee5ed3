package runner

import (
	"github.com/vovakirdan/tui-runner/internal/config"
)

// Variant selects an obstacle's hitbox height.
type Variant int

const (
	VariantNormal Variant = iota
	VariantTall
)

// String returns the variant name.
func (v Variant) String() string {
	if v == VariantTall {
		return "tall"
	}
	return "normal"
}

// Obstacle ends the run on contact. X is the horizontal center, Y the top edge.
type Obstacle struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	Lane    int
	Variant Variant
}

// Coin is collected on contact. Rotation only affects rendering.
type Coin struct {
	X        float64
	Y        float64
	Size     float64
	Rotation float64
	Lane     int
}

// Field holds every active obstacle and coin.
type Field struct {
	Obstacles []Obstacle
	Coins     []Coin

	bottom float64 // Entities with Y beyond this are off-screen
	spin   float64
}

// NewField creates an empty field for the given world.
func NewField(cfg config.RunnerConfig) *Field {
	return &Field{
		Obstacles: make([]Obstacle, 0, 16),
		Coins:     make([]Coin, 0, 16),
		bottom:    cfg.World.Height,
		spin:      cfg.Spawn.CoinSpin,
	}
}

// Reset removes all entities.
func (f *Field) Reset() {
	f.Obstacles = f.Obstacles[:0]
	f.Coins = f.Coins[:0]
}

// Len returns the number of active entities.
func (f *Field) Len() int {
	return len(f.Obstacles) + len(f.Coins)
}

// Advance moves every entity down by speed, spins coins, and drops entities
// that have passed the bottom edge. Returns how many entities were dropped.
func (f *Field) Advance(speed float64) int {
	before := f.Len()

	kept := f.Obstacles[:0]
	for _, o := range f.Obstacles {
		o.Y += speed
		if o.Y > f.bottom {
			continue
		}
		kept = append(kept, o)
	}
	f.Obstacles = kept

	keptCoins := f.Coins[:0]
	for _, c := range f.Coins {
		c.Y += speed
		c.Rotation += f.spin
		if c.Y > f.bottom {
			continue
		}
		keptCoins = append(keptCoins, c)
	}
	f.Coins = keptCoins

	return before - f.Len()
}
