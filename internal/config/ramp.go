package config

// SpeedRamp computes the scroll speed for a given tick of a run.
// Speed grows by exactly 1 every RampInterval ticks and is never capped.
type SpeedRamp struct {
	base     float64
	interval int
}

// NewSpeedRamp creates a speed ramp from the physics configuration.
func NewSpeedRamp(cfg PhysicsConfig) *SpeedRamp {
	interval := cfg.RampInterval
	if interval <= 0 {
		interval = 1 // Prevent division by zero
	}
	return &SpeedRamp{
		base:     cfg.BaseSpeed,
		interval: interval,
	}
}

// Level returns how many ramp steps have been reached at the given tick.
func (r *SpeedRamp) Level(frame int) int {
	if frame < 0 {
		return 0
	}
	return frame / r.interval
}

// Speed returns base + floor(frame / interval).
func (r *SpeedRamp) Speed(frame int) float64 {
	return r.base + float64(r.Level(frame))
}

// Base returns the speed at the start of a run.
func (r *SpeedRamp) Base() float64 {
	return r.base
}
