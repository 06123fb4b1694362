package game

import "math"

// CarState is the fully consistent kinematic snapshot published after each
// step. Readers never see partial updates.
type CarState struct {
	X, Y     float64
	VX, VY   float64
	Angle    float64
	AngVel   float64
	Health   float64
	Fuel     float64
	Distance float64
	Coins    int
	Grounded bool
}

func (s CarState) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Car owns the mutable vehicle state. Only the stepper and the event
// detector touch it; everything downstream reads snapshots.
type Car struct {
	X, Y   float64
	VX, VY float64
	Angle  float64
	AngVel float64

	Health Gauge
	Fuel   Gauge

	Distance float64
	Coins    int

	Front Wheel
	Rear  Wheel

	Mult  UpgradeMultipliers
	input Input

	damageCooldown int

	// Impact recorded by the most recent step, read by the event detector.
	impactSpeed float64
	impactHard  bool
}

// NewCar places the car at x on the terrain with the suspension settled at
// its static equilibrium, so a car spawned at rest stays at rest.
func NewCar(t *Terrain, x float64, p LevelParams) *Car {
	c := &Car{
		Health: NewGauge(MaxHealth),
		Fuel:   NewGauge(MaxFuel),
		Front:  Wheel{OffsetX: WheelBase / 2},
		Rear:   Wheel{OffsetX: -WheelBase / 2},
		Mult:   p.Multipliers,
	}
	g := BaseGravity * p.GravityScale
	eq := g / (2 * SpringStiffness * p.Multipliers.Suspension)
	c.X = x
	c.Y = t.HeightAt(x) + WheelRestLength*(1-eq)
	c.Angle = t.SlopeAt(x)
	c.Front.Compression = eq
	c.Rear.Compression = eq
	c.Front.prevCompression = eq
	c.Rear.prevCompression = eq
	return c
}

// ApplyInput records the driver intent for the next fixed step.
func (c *Car) ApplyInput(in Input) {
	c.input = in
}

func (c *Car) Grounded() bool {
	return c.Front.Contact || c.Rear.Contact
}

func (c *Car) contactCount() int {
	n := 0
	if c.Front.Contact {
		n++
	}
	if c.Rear.Contact {
		n++
	}
	return n
}

// State returns the published snapshot.
func (c *Car) State() CarState {
	return CarState{
		X:        c.X,
		Y:        c.Y,
		VX:       c.VX,
		VY:       c.VY,
		Angle:    c.Angle,
		AngVel:   c.AngVel,
		Health:   c.Health.Current,
		Fuel:     c.Fuel.Current,
		Distance: c.Distance,
		Coins:    c.Coins,
		Grounded: c.Grounded(),
	}
}
