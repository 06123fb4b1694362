package game

import (
	"fmt"
	"math"
)

type SessionState int

const (
	StatePlaying SessionState = iota
	StatePaused
	StateGameOver      // crashed, or out of fuel and rolled to a stop
	StateLevelComplete // target distance reached
)

func (s SessionState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateLevelComplete:
		return "level_complete"
	}
	return "unknown"
}

// idleSpeed is the speed below which a fuel-starved car counts as stopped.
const idleSpeed = 0.5

// HUDSnapshot is the read-only per-frame view for UI clients.
type HUDSnapshot struct {
	State         string  `json:"state"`
	Level         int     `json:"level"`
	LevelName     string  `json:"levelName"`
	Speed         float64 `json:"speed"`
	FuelPercent   float64 `json:"fuelPercent"`
	HealthPercent float64 `json:"healthPercent"`
	Distance      float64 `json:"distance"`
	CoinsThisRun  int     `json:"coinsThisRun"`
	Elapsed       float64 `json:"elapsed"`
	CameraX       float64 `json:"cameraX"`
	CameraY       float64 `json:"cameraY"`
}

// Session owns one run: car, wheels, terrain cache, event dedup state and
// run telemetry. It is created at level start and discarded on restart;
// nothing survives it except what progression persisted.
type Session struct {
	State   SessionState
	Level   int
	Spec    LevelSpec
	Params  LevelParams
	Terrain *Terrain
	Car     *Car
	Bus     *EventBus
	Cam     Camera
	Stats   *RunStats

	stepper  *Stepper
	detector *Detector
	Elapsed  float64

	accum float64
}

// carSpawnX leaves room to roll back without hitting the world edge.
const carSpawnX = 10.0

// NewSession validates the level configuration and builds a fresh run.
// Configuration errors are returned before any simulation step.
func NewSession(level int, mult UpgradeMultipliers) (*Session, error) {
	spec := GetLevelSpec(level)
	params := spec.Params(mult)
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("level %d (%s): %w", level, spec.Name, err)
	}

	terrain := NewTerrain(params.Seed, params.Tier)
	terrain.EnsureRange(0, PrefetchAhead)

	s := &Session{
		State:   StatePlaying,
		Level:   level,
		Spec:    spec,
		Params:  params,
		Terrain: terrain,
		Car:     NewCar(terrain, carSpawnX, params),
		Bus:     NewEventBus(),
		Cam:     NewCamera(),
		Stats:   NewRunStats(),
		stepper: NewStepper(params, terrain),
	}
	s.detector = NewDetector(s.Bus)
	s.Cam.X = s.Car.X
	s.Cam.Y = s.Car.Y

	s.Bus.Subscribe(EventCrashed, func(Event) {
		s.State = StateGameOver
		s.Cam.AddShake(3, 0.6)
	})
	s.Bus.Subscribe(EventLevelComplete, func(Event) {
		s.State = StateLevelComplete
	})
	s.Bus.Subscribe(EventFlipped, func(Event) {
		s.Stats.AddFlip()
	})
	return s, nil
}

// Step consumes frameDT of wall time in fixed sub-steps (capped at
// MaxSubSteps) and returns the published snapshot. Input is sampled once per
// sub-step; terrain ahead of the car is prefetched before stepping so the
// physics path never generates more than the range it immediately needs.
func (s *Session) Step(in Input, frameDT float64) CarState {
	if s.State != StatePlaying {
		return s.Car.State()
	}

	s.Terrain.EnsureRange(s.Car.X, s.Car.X+PrefetchAhead)
	s.Car.ApplyInput(in)

	s.accum += frameDT
	if limit := float64(MaxSubSteps) * StepDT; s.accum > limit {
		s.accum = limit
	}
	for n := 0; s.accum >= StepDT && n < MaxSubSteps; n++ {
		s.stepper.Step(s.Car)
		s.Elapsed += StepDT
		s.detector.Observe(s.Car, s.Terrain, s.Params, s.Elapsed)
		s.Stats.Sample(s.Car.State())
		s.accum -= StepDT
		if s.State != StatePlaying {
			break
		}
	}

	// Out of fuel and rolled to a stop: the run cannot continue.
	if s.State == StatePlaying && s.Car.Fuel.IsEmpty() &&
		s.Car.Grounded() && math.Abs(s.Car.VX) < idleSpeed {
		s.State = StateGameOver
	}

	st := s.Car.State()
	s.Cam.Follow(st, frameDT)
	s.Cam.UpdateShake(frameDT, s.Params.Seed)
	return st
}

func (s *Session) Pause() {
	if s.State == StatePlaying {
		s.State = StatePaused
	}
}

func (s *Session) Resume() {
	if s.State == StatePaused {
		s.State = StatePlaying
	}
}

// HUD returns the read-only per-frame view for UI clients.
func (s *Session) HUD() HUDSnapshot {
	st := s.Car.State()
	cx, cy := s.Cam.EffectivePos()
	return HUDSnapshot{
		State:         s.State.String(),
		Level:         s.Level,
		LevelName:     s.Spec.Name,
		Speed:         st.Speed(),
		FuelPercent:   s.Car.Fuel.Percent(),
		HealthPercent: s.Car.Health.Percent(),
		Distance:      st.Distance,
		CoinsThisRun:  st.Coins,
		Elapsed:       s.Elapsed,
		CameraX:       cx,
		CameraY:       cy,
	}
}
