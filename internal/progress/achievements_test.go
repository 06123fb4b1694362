package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hillclimb/internal/game"
)

func TestEarnedBy(t *testing.T) {
	t.Parallel()

	t.Run("first run earns first blood", func(t *testing.T) {
		t.Parallel()
		ids := earnedBy(game.RunReport{}, true)
		assert.Contains(t, ids, "first_blood")
	})

	t.Run("short slow run earns nothing", func(t *testing.T) {
		t.Parallel()
		r := game.RunReport{
			Final:   game.CarState{Distance: 100},
			Summary: game.RunSummary{TopSpeed: 20},
		}
		assert.Empty(t, earnedBy(r, false))
	})

	t.Run("distance tiers stack", func(t *testing.T) {
		t.Parallel()
		r := game.RunReport{Final: game.CarState{Distance: 21000}}
		ids := earnedBy(r, false)
		assert.Contains(t, ids, "distance_5k")
		assert.Contains(t, ids, "distance_10k")
		assert.Contains(t, ids, "distance_20k")
	})

	t.Run("speed and flips", func(t *testing.T) {
		t.Parallel()
		r := game.RunReport{
			Summary: game.RunSummary{TopSpeed: 75, Flips: 3},
		}
		ids := earnedBy(r, false)
		assert.Contains(t, ids, "speed_demon")
		assert.Contains(t, ids, "flipped_master")
	})

	t.Run("eco driver needs a completed run", func(t *testing.T) {
		t.Parallel()
		frugal := game.RunSummary{FuelUsed: 40}
		assert.Contains(t,
			earnedBy(game.RunReport{Completed: true, Summary: frugal}, false),
			"fuel_efficient")
		assert.NotContains(t,
			earnedBy(game.RunReport{Completed: false, Summary: frugal}, false),
			"fuel_efficient")
	})
}

func TestRewardFor(t *testing.T) {
	t.Parallel()

	assert.Zero(t, rewardFor(nil))
	assert.Equal(t, 100, rewardFor([]string{"first_blood"}))
	assert.Equal(t, 600, rewardFor([]string{"first_blood", "speed_demon"}))
	assert.Zero(t, rewardFor([]string{"not_an_achievement"}))
}

func TestAchievementByID(t *testing.T) {
	t.Parallel()

	a, ok := AchievementByID("distance_20k")
	require.True(t, ok)
	assert.Equal(t, 1000, a.Reward)

	_, ok = AchievementByID("nope")
	assert.False(t, ok)
}
