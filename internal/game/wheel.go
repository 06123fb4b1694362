package game

import "math"

// Wheel is one suspension spring attached to the chassis. Compression is the
// fraction of rest length the spring is shortened by, always in [0,1].
type Wheel struct {
	OffsetX float64 // attachment offset from chassis centre, local x

	Compression float64
	Contact     bool
	NormalX     float64
	NormalY     float64

	prevCompression float64
}

// wheelForce is the contact response for one step.
type wheelForce struct {
	FX, FY    float64
	Saturated bool // suspension bottomed out: hard-collision candidate
}

// Resolve probes the terrain below the wheel's attachment point and computes
// the suspension response. Airborne wheels report zero force.
func (w *Wheel) Resolve(t *Terrain, px, py, angle, suspensionMul, dt float64) wheelForce {
	ax := px + math.Cos(angle)*w.OffsetX
	ay := py + math.Sin(angle)*w.OffsetX

	dist := ay - t.HeightAt(ax)
	w.prevCompression = w.Compression

	if dist >= WheelRestLength {
		w.Compression = 0
		w.Contact = false
		w.NormalX, w.NormalY = 0, 1
		return wheelForce{}
	}

	raw := (WheelRestLength - dist) / WheelRestLength
	c := clampF(raw, 0, 1)
	w.Compression = c
	w.Contact = true

	slope := t.SlopeAt(ax)
	w.NormalX = -math.Sin(slope)
	w.NormalY = math.Cos(slope)

	comprVel := 0.0
	if dt > 0 {
		comprVel = (c - w.prevCompression) / dt
	}
	// Damping opposes the compression rate: it stiffens the response while
	// compressing and bleeds energy out of the rebound.
	f := SpringStiffness*suspensionMul*c + SpringDamping*comprVel
	if f < 0 {
		// Springs push, never pull.
		f = 0
	}
	return wheelForce{
		FX:        f * w.NormalX,
		FY:        f * w.NormalY,
		Saturated: raw >= BottomOutCompression,
	}
}
