package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevelSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level  int
		name   string
		tier   DifficultyTier
		seed   uint64
		target float64
	}{
		{1, "Mountain Valley", TierEasy, 42, 5000},
		{2, "Rocky Hills", TierMedium, 123, 8000},
		{3, "Desert Dunes", TierHard, 456, 12000},
		{4, "Alpine Peak", TierVeryHard, 789, 15000},
		{5, "Volcanic Crater", TierExtreme, 999, 20000},
	}
	for _, tt := range tests {
		spec := GetLevelSpec(tt.level)
		assert.Equal(t, tt.name, spec.Name)
		assert.Equal(t, tt.tier, spec.Tier)
		assert.Equal(t, tt.seed, spec.Seed)
		assert.Equal(t, tt.target, spec.TargetDistance)
		require.NoError(t, spec.Params(DefaultMultipliers()).Validate())
	}
}

func TestEndlessLevels(t *testing.T) {
	t.Parallel()

	six := GetLevelSpec(6)
	seven := GetLevelSpec(7)

	assert.Equal(t, "Endless Ridge", six.Name)
	assert.Equal(t, TierExtreme, six.Tier)
	assert.Greater(t, six.TargetDistance, GetLevelSpec(5).TargetDistance)
	assert.Greater(t, seven.TargetDistance, six.TargetDistance)
	assert.NotEqual(t, six.Seed, seven.Seed, "endless levels reseed per level")
	require.NoError(t, six.Params(DefaultMultipliers()).Validate())
}

func TestLevelSpecClampsBelowOne(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GetLevelSpec(1), GetLevelSpec(0))
	assert.Equal(t, GetLevelSpec(1), GetLevelSpec(-3))
}
