package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpgradeMultipliersValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultMultipliers().Validate())

	max := UpgradeMultipliers{
		Acceleration:   MaxMultiplier,
		TopSpeed:       MaxMultiplier,
		Traction:       MaxMultiplier,
		FuelEfficiency: MaxMultiplier,
		Suspension:     MaxMultiplier,
	}
	require.NoError(t, max.Validate())

	t.Run("each field is range checked", func(t *testing.T) {
		t.Parallel()
		mutate := []func(*UpgradeMultipliers){
			func(m *UpgradeMultipliers) { m.Acceleration = 0 },
			func(m *UpgradeMultipliers) { m.TopSpeed = MaxMultiplier + 1 },
			func(m *UpgradeMultipliers) { m.Traction = -1 },
			func(m *UpgradeMultipliers) { m.FuelEfficiency = 0.99 },
			func(m *UpgradeMultipliers) { m.Suspension = 3.01 },
		}
		for i, fn := range mutate {
			m := DefaultMultipliers()
			fn(&m)
			err := m.Validate()
			require.Error(t, err, "case %d", i)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		}
	})
}

func TestLevelParamsValidate(t *testing.T) {
	t.Parallel()

	base := GetLevelSpec(2).Params(DefaultMultipliers())
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*LevelParams)
	}{
		{"zero gravity", func(p *LevelParams) { p.GravityScale = 0 }},
		{"negative gravity", func(p *LevelParams) { p.GravityScale = -1 }},
		{"friction above one", func(p *LevelParams) { p.Friction = 1.5 }},
		{"negative friction", func(p *LevelParams) { p.Friction = -0.1 }},
		{"air resistance above one", func(p *LevelParams) { p.AirResistance = 2 }},
		{"negative air resistance", func(p *LevelParams) { p.AirResistance = -0.5 }},
		{"zero target distance", func(p *LevelParams) { p.TargetDistance = 0 }},
		{"unknown tier", func(p *LevelParams) { p.Tier = DifficultyTier(99) }},
		{"bad multiplier", func(p *LevelParams) { p.Multipliers.TopSpeed = 10 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := base
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
