package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatParams() LevelParams {
	return GetLevelSpec(1).Params(DefaultMultipliers())
}

func newTestRig(p LevelParams) (*Terrain, *Car, *Stepper) {
	tr := NewTerrain(p.Seed, p.Tier)
	tr.EnsureRange(0, PrefetchAhead)
	car := NewCar(tr, 10, p)
	return tr, car, NewStepper(p, tr)
}

func TestCarSpawnsAtRest(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)

	x0, y0 := car.X, car.Y
	for i := 0; i < 1200; i++ {
		st.Step(car)
		assert.GreaterOrEqual(t, car.Front.Compression, 0.0)
		assert.LessOrEqual(t, car.Front.Compression, 1.0)
	}

	assert.InDelta(t, x0, car.X, 1e-6)
	assert.InDelta(t, y0, car.Y, 1e-6)
	assert.InDelta(t, 0, car.VX, 1e-6)
	assert.InDelta(t, 0, car.VY, 1e-6)
	assert.InDelta(t, 0, car.Distance, 1e-6)
	assert.Equal(t, MaxHealth, car.Health.Current)
	assert.Equal(t, MaxFuel, car.Fuel.Current)
}

func TestDisturbedSuspensionSettles(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	y0 := car.Y
	car.VY = -2

	for i := 0; i < 600; i++ {
		st.Step(car)
	}

	assert.InDelta(t, y0, car.Y, 0.02, "suspension must damp back to equilibrium")
	assert.InDelta(t, 0, car.VY, 0.05, "vertical oscillation must die out")
	assert.Equal(t, MaxHealth, car.Health.Current)
}

func TestFlatAcceleration(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.ApplyInput(Input{Accelerate: true})

	x0 := car.X
	lastFuel := car.Fuel.Current
	for i := 0; i < 60; i++ {
		st.Step(car)
		assert.Less(t, car.Fuel.Current, lastFuel, "fuel must drain while accelerating")
		lastFuel = car.Fuel.Current
	}

	assert.Greater(t, car.X, x0, "car should move forward")
	assert.Positive(t, car.VX)
	assert.Positive(t, car.Distance)
	assert.Equal(t, MaxHealth, car.Health.Current, "driving on flat ground must not damage the car")
	assert.LessOrEqual(t, car.State().Speed(), TopSpeedBase*p.Multipliers.TopSpeed+1e-9)
}

func TestTopSpeedCap(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.ApplyInput(Input{Accelerate: true})

	limit := TopSpeedBase * p.Multipliers.TopSpeed
	for i := 0; i < 600; i++ {
		st.Step(car)
		assert.LessOrEqual(t, car.State().Speed(), limit+1e-9, "step %d", i)
	}
}

func TestFreeFall(t *testing.T) {
	t.Parallel()

	p := flatParams()
	p.AirResistance = 0
	tr := NewTerrain(p.Seed, p.Tier)
	car := NewCar(tr, 10, p)
	car.Y += 50
	st := NewStepper(p, tr)

	y0 := car.Y
	const steps = 30
	for i := 0; i < steps; i++ {
		st.Step(car)
	}

	g := BaseGravity * p.GravityScale
	wantVY := -g * steps * StepDT
	wantDY := -g * StepDT * StepDT * steps * (steps + 1) / 2
	assert.InDelta(t, wantVY, car.VY, 1e-9)
	assert.InDelta(t, wantDY, car.Y-y0, 1e-6)
	assert.False(t, car.Grounded())
}

func TestBrakeNeverReverses(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.VX = 5
	car.ApplyInput(Input{Brake: true})

	for i := 0; i < 300; i++ {
		st.Step(car)
		assert.GreaterOrEqual(t, car.VX, 0.0, "braking must not reverse the car")
	}
	assert.InDelta(t, 0, car.VX, 0.01)
}

func TestDistanceMonotonic(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.ApplyInput(Input{Accelerate: true})

	last := car.Distance
	for i := 0; i < 300; i++ {
		st.Step(car)
		assert.GreaterOrEqual(t, car.Distance, last, "distance never decreases")
		last = car.Distance
	}
	assert.Positive(t, car.Distance)
}

func TestHardLandingDamages(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.Y += 30

	for i := 0; i < 600; i++ {
		st.Step(car)
	}

	assert.Less(t, car.Health.Current, MaxHealth, "a hard drop must cost health")
	assert.GreaterOrEqual(t, car.Health.Current, 0.0)
}

func TestGentleLandingIsSafe(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.Y += 0.5

	for i := 0; i < 300; i++ {
		st.Step(car)
	}

	assert.Equal(t, MaxHealth, car.Health.Current, "a small hop must not damage the car")
	assert.True(t, car.Grounded())
}

func TestAirborneSteering(t *testing.T) {
	t.Parallel()

	p := flatParams()
	p.AirResistance = 0
	tr := NewTerrain(p.Seed, p.Tier)
	car := NewCar(tr, 10, p)
	car.Y += 50
	st := NewStepper(p, tr)

	car.ApplyInput(Input{SteerLeft: true})
	for i := 0; i < 30; i++ {
		st.Step(car)
	}
	assert.Positive(t, car.AngVel, "steer left spins counter-clockwise in the air")

	car.AngVel = 0
	car.ApplyInput(Input{SteerRight: true})
	for i := 0; i < 30; i++ {
		st.Step(car)
	}
	assert.Negative(t, car.AngVel, "steer right spins clockwise in the air")
}

func TestFuelExhaustionCutsEngine(t *testing.T) {
	t.Parallel()

	p := flatParams()
	_, car, st := newTestRig(p)
	car.Fuel.Drain(MaxFuel)
	require.True(t, car.Fuel.IsEmpty())

	car.ApplyInput(Input{Accelerate: true})
	for i := 0; i < 60; i++ {
		st.Step(car)
	}

	assert.InDelta(t, 0, car.VX, 1e-6, "an empty tank produces no thrust")
}

func TestWorldEdgeClamp(t *testing.T) {
	t.Parallel()

	p := flatParams()
	tr := NewTerrain(p.Seed, p.Tier)
	car := NewCar(tr, 1, p)
	car.VX = -20
	st := NewStepper(p, tr)

	for i := 0; i < 120; i++ {
		st.Step(car)
		assert.GreaterOrEqual(t, car.X, 0.0)
	}
	assert.Zero(t, car.X)
	assert.GreaterOrEqual(t, car.VX, 0.0)
}
