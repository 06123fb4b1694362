package game

import "math"

// Stepper advances the car by one fixed timestep at a time. The order inside
// Step is load-bearing: gravity, wheel resolution, drag, friction,
// integration, distance, damage. Reordering injects energy.
type Stepper struct {
	params  LevelParams
	terrain *Terrain
}

func NewStepper(p LevelParams, t *Terrain) *Stepper {
	return &Stepper{params: p, terrain: t}
}

// Step advances the car by exactly StepDT.
func (s *Stepper) Step(car *Car) {
	const dt = StepDT
	p := s.params
	m := car.Mult
	in := car.input
	g := BaseGravity * p.GravityScale

	// Gravity.
	car.VY -= g * dt
	impactSpeed := -car.VY // downward speed entering contact resolution

	// Wheel contact forces and torques.
	prevContacts := car.contactCount()
	var torque float64
	saturated := false
	for _, w := range [2]*Wheel{&car.Front, &car.Rear} {
		f := w.Resolve(s.terrain, car.X, car.Y, car.Angle, m.Suspension, dt)
		car.VX += f.FX * dt
		car.VY += f.FY * dt
		dx := math.Cos(car.Angle) * w.OffsetX
		dy := math.Sin(car.Angle) * w.OffsetX
		torque += dx*f.FY - dy*f.FX
		if f.Saturated {
			saturated = true
		}
	}
	car.AngVel += torque / ChassisInertia * dt

	// Drive forces transmit only through wheels in contact.
	contacts := car.contactCount()
	if in.Accelerate && !car.Fuel.IsEmpty() && contacts > 0 {
		frac := float64(contacts) / 2
		a := EngineAccel * m.Acceleration * frac
		car.VX += math.Cos(car.Angle) * a * dt
		car.VY += math.Sin(car.Angle) * a * dt
		car.Fuel.Drain(FuelDrainRate * frac / m.FuelEfficiency * dt)
	}
	if in.Brake && contacts > 0 {
		frac := float64(contacts) / 2
		sp := math.Hypot(car.VX, car.VY)
		if sp > 0 {
			// Clamp at the zero crossing, never reverse within a step.
			ns := math.Max(0, sp-BrakeAccel*frac*dt)
			car.VX *= ns / sp
			car.VY *= ns / sp
		}
	}
	if contacts == 0 {
		// Mid-air tilt control.
		if in.SteerLeft {
			car.AngVel += AirSteerAccel * dt
		}
		if in.SteerRight {
			car.AngVel -= AirSteerAccel * dt
		}
	}

	limit := TopSpeedBase * m.TopSpeed
	if sp := math.Hypot(car.VX, car.VY); sp > limit {
		car.VX *= limit / sp
		car.VY *= limit / sp
	}

	// Air resistance: velocity-proportional drag.
	drag := clampF(p.AirResistance*AirDragRate*dt, 0, 0.95)
	car.VX -= car.VX * drag
	car.VY -= car.VY * drag

	// Ground friction. Rolling resistance plus lateral grip; the traction
	// multiplier scales the lateral coefficient, reducing side-slip.
	if contacts > 0 {
		roll := clampF(p.Friction*RollingRate*dt, 0, 0.95)
		car.VX -= car.VX * roll

		hx, hy := math.Cos(car.Angle), math.Sin(car.Angle)
		lat := -car.VX*hy + car.VY*hx
		grip := clampF(p.Friction*m.Traction*LateralGripRate*dt, 0, 1)
		car.VX -= -hy * lat * grip
		car.VY -= hx * lat * grip
	}

	// Semi-implicit Euler: velocities settled above, positions here.
	car.X += car.VX * dt
	car.Y += car.VY * dt
	car.Angle += car.AngVel * dt
	if contacts > 0 {
		// Grounded chassis tracks the surface; direct ground steering is
		// suppressed by the heavy angular damping.
		slope := s.terrain.SlopeAt(car.X)
		car.Angle += angDiff(car.Angle, slope) * clampF(SlopeAlignRate*dt, 0, 1)
		car.AngVel -= car.AngVel * clampF(GroundAngularDamp*dt, 0, 1)
	}
	if car.X < 0 {
		car.X = 0
		if car.VX < 0 {
			car.VX = 0
		}
	}
	ground := s.terrain.HeightAt(car.X)
	if car.Y < ground+ChassisClearance {
		// Hard floor so a fast drop cannot tunnel through the surface.
		// Hitting it is a bottom-out: the chassis met the stop at whatever
		// downward speed it still carried, so feed that speed into the
		// damage check below before the clamp erases it.
		if -car.VY > impactSpeed {
			impactSpeed = -car.VY
		}
		saturated = true
		car.Y = ground + ChassisClearance
		if car.VY < 0 {
			car.VY = 0
		}
	}

	// Distance traveled.
	car.Distance += math.Abs(car.VX) * dt

	// An impact is the step the wheels regain contact, or a bottom-out while
	// already in contact. The entry speed was captured before the suspension
	// and the floor clamp ate it; recording both here lets the event detector
	// tell a survivable landing from a catastrophic one.
	landed := prevContacts == 0 && car.contactCount() > 0
	car.impactSpeed = impactSpeed
	car.impactHard = saturated || landed

	// Impact damage from landings and bottom-outs.
	if car.damageCooldown > 0 {
		car.damageCooldown--
	}
	if car.impactHard && car.damageCooldown == 0 {
		spin := math.Abs(car.AngVel)
		if impactSpeed > SafeImpactSpeed || spin > FlipCrashSpinRate {
			dmg := (impactSpeed - SafeImpactSpeed) * ImpactDamageScale
			if spin > FlipCrashSpinRate {
				dmg += (spin - FlipCrashSpinRate) * 2
			}
			dmg = clampF(dmg, 0, MaxImpactDamage)
			if dmg > 0 {
				car.Health.Drain(dmg)
				car.damageCooldown = DamageCooldownSteps
			}
		}
	}
}
