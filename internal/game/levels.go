package game

// LevelSpec is the static definition of a playable level.
type LevelSpec struct {
	Name           string
	Tier           DifficultyTier
	Seed           uint64
	TargetDistance float64
	GravityScale   float64
	Friction       float64
	AirResistance  float64
}

// GetLevelSpec returns settings for a given level (1-based).
// Levels 1-5 are hand-crafted; beyond that difficulty and distance scale up
// procedurally on the Extreme band.
func GetLevelSpec(level int) LevelSpec {
	switch level {
	case 1:
		return LevelSpec{Name: "Mountain Valley", Tier: TierEasy, Seed: 42, TargetDistance: 5000, GravityScale: 1.0, Friction: 0.5, AirResistance: 0.3}
	case 2:
		return LevelSpec{Name: "Rocky Hills", Tier: TierMedium, Seed: 123, TargetDistance: 8000, GravityScale: 1.0, Friction: 0.55, AirResistance: 0.3}
	case 3:
		return LevelSpec{Name: "Desert Dunes", Tier: TierHard, Seed: 456, TargetDistance: 12000, GravityScale: 1.0, Friction: 0.4, AirResistance: 0.35}
	case 4:
		return LevelSpec{Name: "Alpine Peak", Tier: TierVeryHard, Seed: 789, TargetDistance: 15000, GravityScale: 1.1, Friction: 0.6, AirResistance: 0.3}
	case 5:
		return LevelSpec{Name: "Volcanic Crater", Tier: TierExtreme, Seed: 999, TargetDistance: 20000, GravityScale: 1.15, Friction: 0.5, AirResistance: 0.4}
	default:
		if level < 1 {
			return GetLevelSpec(1)
		}
		extra := level - 5
		return LevelSpec{
			Name:           "Endless Ridge",
			Tier:           TierExtreme,
			Seed:           splitmix64(uint64(level) * 0xA11CE5ED),
			TargetDistance: 20000 + float64(extra)*2500,
			GravityScale:   1.15,
			Friction:       0.5,
			AirResistance:  0.4,
		}
	}
}

// LevelCount is the number of hand-crafted levels.
const LevelCount = 5

// Params builds the validated core configuration for this level.
func (s LevelSpec) Params(mult UpgradeMultipliers) LevelParams {
	return LevelParams{
		Seed:           s.Seed,
		Tier:           s.Tier,
		GravityScale:   s.GravityScale,
		Friction:       s.Friction,
		AirResistance:  s.AirResistance,
		TargetDistance: s.TargetDistance,
		Multipliers:    mult,
	}
}
