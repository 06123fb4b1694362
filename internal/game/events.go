package game

import "math"

type EventType int

const (
	EventCrashed EventType = iota
	EventFlipped
	EventCoinCollected
	EventFuelEmpty
	EventLevelComplete
)

func (t EventType) String() string {
	switch t {
	case EventCrashed:
		return "crashed"
	case EventFlipped:
		return "flipped"
	case EventCoinCollected:
		return "coin_collected"
	case EventFuelEmpty:
		return "fuel_empty"
	case EventLevelComplete:
		return "level_complete"
	}
	return "unknown"
}

// Event is a discrete gameplay occurrence derived from physics state.
// Events are emitted, never applied; progression decides what they mean.
type Event struct {
	Type EventType
	X, Y float64

	CoinID   uint64  // EventCoinCollected
	Value    int     // EventCoinCollected
	Distance float64 // EventLevelComplete
	Coins    int     // EventLevelComplete
	Elapsed  float64 // EventLevelComplete
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers a handler for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventCrashed; t <= EventLevelComplete; t++ {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// Detector derives events from the just-stepped car state. It owns the
// per-run dedup state: each coin fires at most once; crash, fuel-empty and
// level-complete each fire at most once per run.
type Detector struct {
	bus *EventBus

	collected     map[uint64]bool
	usedCans      map[uint64]bool
	usedBoosts    map[uint64]bool
	spikeCooldown int

	crashed     bool
	fuelEmpty   bool
	completed   bool
	overRotated bool
	wasGrounded bool
}

func NewDetector(bus *EventBus) *Detector {
	return &Detector{
		bus:         bus,
		collected:   make(map[uint64]bool),
		usedCans:    make(map[uint64]bool),
		usedBoosts:  make(map[uint64]bool),
		wasGrounded: true,
	}
}

// Observe inspects the car after a physics step, applies pickups, and emits
// any events the step produced.
func (d *Detector) Observe(car *Car, t *Terrain, p LevelParams, elapsed float64) {
	d.pickups(car, t)
	d.hazards(car, t)
	d.flips(car, t)

	if !d.fuelEmpty && car.Fuel.IsEmpty() {
		d.fuelEmpty = true
		d.bus.Emit(Event{Type: EventFuelEmpty, X: car.X, Y: car.Y})
	}
	// A crash is either the health gauge running out or a bottom-out at a
	// speed no suspension survives, whichever comes first.
	if !d.crashed && (car.Health.IsEmpty() || (car.impactHard && car.impactSpeed > CrashImpactSpeed)) {
		d.crashed = true
		d.bus.Emit(Event{Type: EventCrashed, X: car.X, Y: car.Y})
	}
	if !d.completed && car.Distance >= p.TargetDistance {
		d.completed = true
		d.bus.Emit(Event{
			Type:     EventLevelComplete,
			X:        car.X,
			Y:        car.Y,
			Distance: car.Distance,
			Coins:    car.Coins,
			Elapsed:  elapsed,
		})
	}

	d.wasGrounded = car.Grounded()
}

func (d *Detector) pickups(car *Car, t *Terrain) {
	x0, x1 := car.X-CoinPickupRadius, car.X+CoinPickupRadius
	for _, coin := range t.CoinsIn(x0, x1) {
		if d.collected[coin.ID] {
			continue
		}
		if math.Hypot(car.X-coin.X, car.Y-coin.Y) > CoinPickupRadius {
			continue
		}
		d.collected[coin.ID] = true
		car.Coins += coin.Value
		d.bus.Emit(Event{Type: EventCoinCollected, X: coin.X, Y: coin.Y, CoinID: coin.ID, Value: coin.Value})
	}
	for _, can := range t.FuelCansIn(x0, x1) {
		if d.usedCans[can.ID] {
			continue
		}
		if math.Hypot(car.X-can.X, car.Y-can.Y) > FuelPickupRadius {
			continue
		}
		d.usedCans[can.ID] = true
		car.Fuel.Refill(can.Refill)
	}
}

func (d *Detector) hazards(car *Car, t *Terrain) {
	if d.spikeCooldown > 0 {
		d.spikeCooldown--
	}
	if !car.Grounded() {
		return
	}
	for _, h := range t.HazardsIn(car.X-HazardRadius, car.X+HazardRadius) {
		switch h.Kind {
		case HazardSpike:
			if d.spikeCooldown == 0 {
				car.Health.Drain(SpikeDamage)
				d.spikeCooldown = DamageCooldownSteps
			}
		case HazardBoost:
			if !d.usedBoosts[h.ID] {
				d.usedBoosts[h.ID] = true
				car.VX += BoostImpulse
			}
		}
	}
}

// flips tracks over-rotation while airborne. Landing upright within
// tolerance and below the crash spin rate is a successful flip; a harder
// landing is left to impact damage and, eventually, the crash event.
func (d *Detector) flips(car *Car, t *Terrain) {
	grounded := car.Grounded()
	if !grounded {
		tilt := math.Abs(angDiff(t.SlopeAt(car.X), car.Angle))
		if tilt > FlipAngle {
			d.overRotated = true
		}
		return
	}
	if d.wasGrounded || !d.overRotated {
		return
	}
	d.overRotated = false
	tilt := math.Abs(angDiff(t.SlopeAt(car.X), car.Angle))
	if tilt < FlipUprightTolerance && math.Abs(car.AngVel) < FlipCrashSpinRate && !car.Health.IsEmpty() {
		d.bus.Emit(Event{Type: EventFlipped, X: car.X, Y: car.Y})
	}
}
