package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_FirstSecondFromRest(t *testing.T) {
	s := Update(State{}, Controls{Accelerate: true}, 1.0, DefaultTuning())

	assert.InDelta(t, 0.35, s.Speed, 1e-12)
	assert.InDelta(t, 0.007, s.Offset, 1e-12)
	assert.InDelta(t, 7.0, s.Distance, 1e-12)
	assert.InDelta(t, 60.0/3600*0.35, s.Odometer, 1e-12)
}

func TestUpdate_AcceleratesToTopSpeed(t *testing.T) {
	tuning := DefaultTuning()
	s := State{}
	prev := s.Speed
	for i := 0; i < 60*10; i++ {
		s = Update(s, Controls{Accelerate: true}, 1.0/60, tuning)
		// keep the car on the road so only the pedal matters
		s.Offset = 0
		require.GreaterOrEqual(t, s.Speed, prev)
		require.LessOrEqual(t, s.Speed, 1.0)
		prev = s.Speed
	}
	assert.Equal(t, 1.0, s.Speed)
}

func TestUpdate_CoastsToStop(t *testing.T) {
	tuning := DefaultTuning()
	s := State{Speed: 1}
	prev := s.Speed
	for i := 0; i < 60*10; i++ {
		s = Update(s, Controls{}, 1.0/60, tuning)
		require.LessOrEqual(t, s.Speed, prev)
		require.GreaterOrEqual(t, s.Speed, 0.0)
		prev = s.Speed
	}
	assert.Equal(t, 0.0, s.Speed)
}

func TestUpdate_OdometerNeverDecreases(t *testing.T) {
	tuning := DefaultTuning()
	inputs := []Controls{
		{Accelerate: true},
		{Accelerate: true, SteerLeft: true},
		{SteerRight: true},
		{},
		{Accelerate: true, SteerLeft: true, SteerRight: true},
	}
	steps := []float64{0, 0.001, 1.0 / 60, 0.1, 0.5}

	s := State{}
	for i := 0; i < 500; i++ {
		next := Update(s, inputs[i%len(inputs)], steps[i%len(steps)], tuning)
		require.GreaterOrEqual(t, next.Odometer, s.Odometer)
		require.GreaterOrEqual(t, next.Distance, s.Distance)
		s = next
	}
}

func TestUpdate_OffroadBrakesDespiteAccelerator(t *testing.T) {
	tuning := DefaultTuning()
	for _, dt := range []float64{0.001, 1.0 / 60, 0.1} {
		s := State{Speed: 0.8, Offset: 0.5}
		next := Update(s, Controls{Accelerate: true}, dt, tuning)
		assert.Less(t, next.Speed, s.Speed, "dt=%v", dt)
		assert.True(t, s.Offroad(tuning))
	}
}

func TestUpdate_OffroadLimitIsExclusive(t *testing.T) {
	tuning := DefaultTuning()
	s := Update(State{Speed: 0.5, Offset: 0.45}, Controls{Accelerate: true}, 0.1, tuning)

	assert.InDelta(t, 0.535, s.Speed, 1e-12)
}

func TestUpdate_Steering(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		name     string
		controls Controls
		want     float64
	}{
		{"left", Controls{Accelerate: true, SteerLeft: true}, 0.05 + 0.007},
		{"right", Controls{Accelerate: true, SteerRight: true}, -0.05 + 0.007},
		{"both cancel", Controls{Accelerate: true, SteerLeft: true, SteerRight: true}, 0.007},
		{"drift only", Controls{Accelerate: true}, 0.007},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Update(State{Speed: 0.5}, tt.controls, 1.0, tuning)
			assert.InDelta(t, tt.want, s.Offset, 1e-12)
		})
	}
}

func TestUpdate_NoSteeringWhenStopped(t *testing.T) {
	s := Update(State{}, Controls{SteerLeft: true}, 1.0, DefaultTuning())

	assert.Equal(t, 0.0, s.Offset)
	assert.Equal(t, 0.0, s.Speed)
	assert.Equal(t, 0.0, s.Distance)
}

func TestUpdate_SteeringGateUsesUnclampedSpeed(t *testing.T) {
	// 0.9 + 0.35 overshoots to 1.25 before the clamp, still > 0
	s := Update(State{Speed: 0.9}, Controls{Accelerate: true, SteerRight: true}, 1.0, DefaultTuning())

	assert.Equal(t, 1.0, s.Speed)
	assert.InDelta(t, -0.05+0.007, s.Offset, 1e-12)
}

func TestUpdate_ZeroStepIsIdentity(t *testing.T) {
	in := State{Distance: 3, Speed: 0.4, Offset: -0.1, Odometer: 12}
	out := Update(in, Controls{Accelerate: true, SteerLeft: true}, 0, DefaultTuning())

	assert.Equal(t, in, out)
}

func TestState_KmPerHour(t *testing.T) {
	assert.InDelta(t, 30.0, State{Speed: 0.5}.KmPerHour(DefaultTuning()), 1e-12)
}

func TestTuning_Validate(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())

	bad := DefaultTuning()
	bad.Drift = math.NaN()
	assert.ErrorContains(t, bad.Validate(), "drift")

	bad = DefaultTuning()
	bad.Acceleration = -1
	assert.ErrorContains(t, bad.Validate(), "acceleration")

	bad = DefaultTuning()
	bad.ScrollRate = math.Inf(1)
	assert.Error(t, bad.Validate())
}
