package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       600,
			LaneSpacing:  75,
			GroundOffset: 150,
		},
		Player: PlayerConfig{
			Width:         50,
			Height:        50,
			LaneSmoothing: 0.2,
		},
		Physics: PhysicsConfig{
			JumpImpulse:  -15,
			Gravity:      0.8,
			BaseSpeed:    5,
			RampInterval: 500,
		},
		Spawn: SpawnConfig{
			ObstacleChance: 0.02,
			CoinChance:     0.03,
			TallChance:     0.3,
			ObstacleWidth:  40,
			ObstacleHeight: 50,
			TallHeight:     80,
			ObstacleSpawnY: -50,
			CoinSize:       30,
			CoinSpawnY:     -30,
			CoinSpin:       0.1,
			MaxActive:      0,
		},
		Collision: CollisionConfig{
			ObstacleThreshold: 35,
			CoinThreshold:     30,
		},
		Scoring: ScoringConfig{
			DistanceDivisor: 10,
			CoinPoints:      10,
		},
		Input: InputConfig{
			SwipeVertical:   2,
			SwipeHorizontal: 4,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
