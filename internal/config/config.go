// Package config provides YAML-based configuration loading for the runner
// and the linear speed ramp derived from it.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of the runner simulation.
// Distances are in world units (the world is 800x600 by default).
type RunnerConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Input     InputConfig     `yaml:"input"`
}

// WorldConfig defines the playfield geometry.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	LaneSpacing  float64 `yaml:"lane_spacing"`
	GroundOffset float64 `yaml:"ground_offset"` // Player top sits at height - ground_offset when grounded
}

// GroundY returns the player's resting y coordinate.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundOffset
}

// PlayerConfig defines the player's hitbox and lane smoothing.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	LaneSmoothing float64 `yaml:"lane_smoothing"` // Fraction of remaining distance covered per tick
}

// PhysicsConfig defines jump physics and the speed ramp.
type PhysicsConfig struct {
	JumpImpulse  float64 `yaml:"jump_impulse"`
	Gravity      float64 `yaml:"gravity"`
	BaseSpeed    float64 `yaml:"base_speed"`
	RampInterval int     `yaml:"ramp_interval"` // Ticks per +1 speed
}

// SpawnConfig defines spawn probabilities and entity dimensions.
type SpawnConfig struct {
	ObstacleChance float64 `yaml:"obstacle_chance"`
	CoinChance     float64 `yaml:"coin_chance"`
	TallChance     float64 `yaml:"tall_chance"`
	ObstacleWidth  float64 `yaml:"obstacle_width"`
	ObstacleHeight float64 `yaml:"obstacle_height"`
	TallHeight     float64 `yaml:"tall_height"`
	ObstacleSpawnY float64 `yaml:"obstacle_spawn_y"`
	CoinSize       float64 `yaml:"coin_size"`
	CoinSpawnY     float64 `yaml:"coin_spawn_y"`
	CoinSpin       float64 `yaml:"coin_spin"`  // Radians per tick, visual only
	MaxActive      int     `yaml:"max_active"` // 0 = unbounded
}

// CollisionConfig defines the horizontal hit thresholds.
type CollisionConfig struct {
	ObstacleThreshold float64 `yaml:"obstacle_threshold"`
	CoinThreshold     float64 `yaml:"coin_threshold"`
}

// ScoringConfig defines how distance and coins turn into score.
type ScoringConfig struct {
	DistanceDivisor int `yaml:"distance_divisor"` // Ticks per distance unit
	CoinPoints      int `yaml:"coin_points"`
}

// InputConfig defines swipe gesture thresholds in terminal cells.
type InputConfig struct {
	SwipeVertical   float64 `yaml:"swipe_vertical"`
	SwipeHorizontal float64 `yaml:"swipe_horizontal"`
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid runner config")

// Validate checks that the configuration can drive a simulation.
func (c RunnerConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.World.LaneSpacing <= 0:
		return fmt.Errorf("%w: lane_spacing must be positive", ErrInvalidConfig)
	case c.World.GroundOffset <= 0 || c.World.GroundOffset >= c.World.Height:
		return fmt.Errorf("%w: ground_offset must be inside the world", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.LaneSmoothing <= 0 || c.Player.LaneSmoothing > 1:
		return fmt.Errorf("%w: lane_smoothing must be in (0, 1]", ErrInvalidConfig)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("%w: jump_impulse must be negative (y grows downward)", ErrInvalidConfig)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalidConfig)
	case c.Physics.BaseSpeed <= 0:
		return fmt.Errorf("%w: base_speed must be positive", ErrInvalidConfig)
	case c.Physics.RampInterval <= 0:
		return fmt.Errorf("%w: ramp_interval must be positive", ErrInvalidConfig)
	case !isChance(c.Spawn.ObstacleChance) || !isChance(c.Spawn.CoinChance) || !isChance(c.Spawn.TallChance):
		return fmt.Errorf("%w: spawn chances must be in [0, 1]", ErrInvalidConfig)
	case c.Spawn.ObstacleWidth <= 0 || c.Spawn.ObstacleHeight <= 0 || c.Spawn.TallHeight <= 0 || c.Spawn.CoinSize <= 0:
		return fmt.Errorf("%w: entity sizes must be positive", ErrInvalidConfig)
	case c.Spawn.MaxActive < 0:
		return fmt.Errorf("%w: max_active must not be negative", ErrInvalidConfig)
	case c.Collision.ObstacleThreshold <= 0 || c.Collision.CoinThreshold <= 0:
		return fmt.Errorf("%w: collision thresholds must be positive", ErrInvalidConfig)
	case c.Scoring.DistanceDivisor <= 0:
		return fmt.Errorf("%w: distance_divisor must be positive", ErrInvalidConfig)
	case c.Scoring.CoinPoints < 0:
		return fmt.Errorf("%w: coin_points must not be negative", ErrInvalidConfig)
	case c.Input.SwipeVertical < 0 || c.Input.SwipeHorizontal < 0:
		return fmt.Errorf("%w: swipe thresholds must not be negative", ErrInvalidConfig)
	}
	return nil
}

func isChance(p float64) bool {
	return p >= 0 && p <= 1
}
