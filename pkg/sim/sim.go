package sim

import (
	"fmt"
	"math"
)

// State is the vehicle as seen by the renderer. The zero value is a parked
// car in the middle of the road with nothing on the odometer.
type State struct {
	Distance float64 // Scroll phase fed to the road banding, only grows
	Speed    float64 // Fraction of top speed, always within [0,1]
	Offset   float64 // Horizontal position relative to the road centre
	Odometer float64 // Kilometres driven
}

// Controls is a snapshot of the held actions for one frame
type Controls struct {
	Accelerate bool
	SteerLeft  bool
	SteerRight bool
}

// Tuning holds the per-second rates used by Update
type Tuning struct {
	MaxKmPerHour float64 `mapstructure:"maxKmPerHour"`
	Acceleration float64 `mapstructure:"acceleration"` // Speed gained (or lost when coasting) per second
	OffroadLimit float64 `mapstructure:"offroadLimit"` // |Offset| beyond which the car is on the shoulder
	OffroadBrake float64 `mapstructure:"offroadBrake"` // Extra speed lost per second off the road
	SteerRate    float64 `mapstructure:"steerRate"`
	Drift        float64 `mapstructure:"drift"` // Camber pull, always applied while moving
	ScrollRate   float64 `mapstructure:"scrollRate"`
}

// DefaultTuning returns the stock Desert Bus handling
func DefaultTuning() Tuning {
	return Tuning{
		MaxKmPerHour: 60,
		Acceleration: 0.35,
		OffroadLimit: 0.45,
		OffroadBrake: 2.1,
		SteerRate:    0.05,
		Drift:        0.007,
		ScrollRate:   20.0,
	}
}

// Validate rejects rates that would make the simulation run backwards or
// produce non-finite state.
func (t Tuning) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"maxKmPerHour", t.MaxKmPerHour},
		{"acceleration", t.Acceleration},
		{"offroadLimit", t.OffroadLimit},
		{"offroadBrake", t.OffroadBrake},
		{"steerRate", t.SteerRate},
		{"drift", t.Drift},
		{"scrollRate", t.ScrollRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("tuning %s is not finite", f.name)
		}
		if f.value < 0 {
			return fmt.Errorf("tuning %s must not be negative, got %v", f.name, f.value)
		}
	}
	return nil
}

// Update advances the state by dt seconds.
func Update(s State, c Controls, dt float64, t Tuning) State {
	// accelerate, or coast down
	if c.Accelerate {
		s.Speed += t.Acceleration * dt
	} else {
		s.Speed -= t.Acceleration * dt
	}

	// shoulder braking applies even with the pedal down
	if math.Abs(s.Offset) > t.OffroadLimit {
		s.Speed -= t.OffroadBrake * dt
	}

	// steering is tested against the unclamped speed
	if s.Speed > 0 {
		if c.SteerLeft {
			s.Offset += t.SteerRate * dt
		}
		if c.SteerRight {
			s.Offset -= t.SteerRate * dt
		}
		s.Offset += t.Drift * dt
	}

	if s.Speed < 0 {
		s.Speed = 0
	}
	if s.Speed > 1 {
		s.Speed = 1
	}

	s.Distance += t.ScrollRate * s.Speed * dt
	s.Odometer += t.MaxKmPerHour / 3600 * s.Speed * dt

	return s
}

// KmPerHour is the speedometer reading
func (s State) KmPerHour(t Tuning) float64 {
	return t.MaxKmPerHour * s.Speed
}

// Offroad reports whether the shoulder penalty is in effect
func (s State) Offroad(t Tuning) bool {
	return math.Abs(s.Offset) > t.OffroadLimit
}
