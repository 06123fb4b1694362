package game

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig wraps all level-start configuration rejections.
var ErrInvalidConfig = errors.New("invalid level configuration")

// UpgradeMultipliers are the five persistent upgrade factors, each in
// [1.0, 3.0]. They are read-only to the physics core.
type UpgradeMultipliers struct {
	Acceleration   float64
	TopSpeed       float64
	Traction       float64
	FuelEfficiency float64
	Suspension     float64
}

func DefaultMultipliers() UpgradeMultipliers {
	return UpgradeMultipliers{
		Acceleration:   1.0,
		TopSpeed:       1.0,
		Traction:       1.0,
		FuelEfficiency: 1.0,
		Suspension:     1.0,
	}
}

func (m UpgradeMultipliers) Validate() error {
	check := func(name string, v float64) error {
		if v < MinMultiplier || v > MaxMultiplier {
			return fmt.Errorf("%w: %s multiplier %.2f outside [%.1f, %.1f]",
				ErrInvalidConfig, name, v, MinMultiplier, MaxMultiplier)
		}
		return nil
	}
	if err := check("acceleration", m.Acceleration); err != nil {
		return err
	}
	if err := check("topSpeed", m.TopSpeed); err != nil {
		return err
	}
	if err := check("traction", m.Traction); err != nil {
		return err
	}
	if err := check("fuelEfficiency", m.FuelEfficiency); err != nil {
		return err
	}
	return check("suspension", m.Suspension)
}

// LevelParams is the configuration the core consumes once at level start.
// Validation rejects bad configuration outright; the core never silently
// clamps configuration inputs, only runtime-computed quantities.
type LevelParams struct {
	Seed           uint64
	Tier           DifficultyTier
	GravityScale   float64
	Friction       float64
	AirResistance  float64
	TargetDistance float64
	Multipliers    UpgradeMultipliers
}

func (p LevelParams) Validate() error {
	if p.GravityScale <= 0 {
		return fmt.Errorf("%w: gravityScale %.2f must be > 0", ErrInvalidConfig, p.GravityScale)
	}
	if p.Friction < 0 || p.Friction > 1 {
		return fmt.Errorf("%w: frictionCoefficient %.2f outside [0,1]", ErrInvalidConfig, p.Friction)
	}
	if p.AirResistance < 0 || p.AirResistance > 1 {
		return fmt.Errorf("%w: airResistance %.2f outside [0,1]", ErrInvalidConfig, p.AirResistance)
	}
	if p.TargetDistance <= 0 {
		return fmt.Errorf("%w: targetDistance %.2f must be > 0", ErrInvalidConfig, p.TargetDistance)
	}
	if p.Tier < TierEasy || p.Tier > TierExtreme {
		return fmt.Errorf("%w: unknown difficulty tier %d", ErrInvalidConfig, p.Tier)
	}
	return p.Multipliers.Validate()
}

// Input is the boolean driver intent sampled once per fixed step.
type Input struct {
	Accelerate bool
	Brake      bool
	SteerLeft  bool
	SteerRight bool
}
