package game

import "math"

// Fixed-step integration.
const (
	StepDT      = 1.0 / 60.0
	MaxSubSteps = 4
)

// Chassis geometry (world units). The chassis is treated as unit mass, so
// forces below are accelerations.
const (
	WheelBase        = 3.0
	WheelRestLength  = 1.0
	ChassisInertia   = 2.0
	ChassisClearance = 0.2
)

// Suspension. Stiffness is per unit compression fraction; with unit mass the
// undamped frequency is sqrt(2*SpringStiffness) ~ 42 rad/s, well inside the
// stability bound for a 1/60 s step.
const (
	SpringStiffness = 900.0
	SpringDamping   = 18.0
	// Compression at which the suspension bottoms out against the chassis
	// clearance stop.
	BottomOutCompression = 1 - ChassisClearance/WheelRestLength
)

// Drive and control.
const (
	EngineAccel   = 20.0
	BrakeAccel    = 30.0
	TopSpeedBase  = 40.0
	AirSteerAccel = 6.0
	FuelDrainRate = 2.0 // fuel units per second at full throttle, efficiency 1.0
)

// Drag and grip response rates (per second).
const (
	AirDragRate       = 0.8
	RollingRate       = 1.5
	LateralGripRate   = 6.0
	SlopeAlignRate    = 8.0
	GroundAngularDamp = 6.0
)

// Gravity at gravityScale 1.0.
const BaseGravity = 30.0

// Impact damage. Tuned in headless runs: landings below SafeImpactSpeed are
// routine on Medium terrain; CrashImpactSpeed matches a fall from roughly
// twice the tallest Extreme hill.
const (
	SafeImpactSpeed     = 10.0
	CrashImpactSpeed    = 18.0
	ImpactDamageScale   = 4.0
	MaxImpactDamage     = 60.0
	SpikeDamage         = 15.0
	DamageCooldownSteps = 30
)

// Flip detection. A landing within FlipUprightTolerance of the surface angle
// and spinning slower than FlipCrashSpinRate counts as a clean flip; anything
// harder is handled by impact damage.
const (
	FlipAngle            = math.Pi / 2
	FlipUprightTolerance = 0.5
	FlipCrashSpinRate    = 12.0
)

// Pickups and hazards.
const (
	CoinPickupRadius = 3.0
	FuelPickupRadius = 3.0
	FuelCanRefill    = 35.0
	BoostImpulse     = 12.0
	HazardRadius     = 2.0
)

// Gauges.
const (
	MaxHealth = 100.0
	MaxFuel   = 100.0
)

// Upgrade multiplier domain.
const (
	MinMultiplier = 1.0
	MaxMultiplier = 3.0
)

// Terrain sampling.
const (
	SampleStep    = 2.0
	ChunkSamples  = 64
	ChunkSpan     = SampleStep * ChunkSamples
	MaxSlopeAngle = 1.1 // rad; near-vertical segments report at most this
	FlatZoneEnd   = 100.0
	FlatZoneRamp  = 50.0
	BumpLattice   = 8.0
	CoinHover     = 3.0
	PrefetchAhead = 2 * ChunkSpan
)
