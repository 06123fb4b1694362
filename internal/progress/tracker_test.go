package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hillclimb/internal/game"
)

func newTestTracker(t *testing.T) (*Tracker, *Store) {
	t.Helper()
	s := openTestStore(t)
	return NewTracker(s, zap.NewNop()), s
}

func TestTrackerBanksCoins(t *testing.T) {
	t.Parallel()

	tr, s := newTestTracker(t)

	tr.HandleEvent(game.Event{Type: game.EventCoinCollected, Value: 3})
	tr.HandleEvent(game.Event{Type: game.EventCoinCollected, Value: 2})
	tr.HandleEvent(game.Event{Type: game.EventCrashed}) // ignored

	coins, err := s.Balance()
	require.NoError(t, err)
	assert.Equal(t, 5, coins)
}

func TestTrackerRunEnd(t *testing.T) {
	t.Parallel()

	tr, s := newTestTracker(t)

	tr.HandleRunEnd(game.RunReport{
		Level:     1,
		LevelName: "Mountain Valley",
		Completed: true,
		Final:     game.CarState{Distance: 5200, Coins: 10},
		Elapsed:   200,
		Summary:   game.RunSummary{TopSpeed: 30, FuelUsed: 90},
	})

	n, err := s.RunCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	d, err := s.HighScore(1)
	require.NoError(t, err)
	assert.Equal(t, 5200.0, d)

	ids, err := s.UnlockedAchievements()
	require.NoError(t, err)
	assert.Contains(t, ids, "first_blood")
	assert.Contains(t, ids, "distance_5k")

	// Completion bonus 100 plus first_blood 100 plus distance_5k 250.
	coins, err := s.Balance()
	require.NoError(t, err)
	assert.Equal(t, 450, coins)

	// A second identical run re-earns nothing and pays only the bonus. The
	// fuel figure keeps it out of eco-driver range, matching the first run.
	tr.HandleRunEnd(game.RunReport{
		Level:     1,
		Completed: true,
		Final:     game.CarState{Distance: 5200},
		Summary:   game.RunSummary{FuelUsed: 90},
	})
	coins, err = s.Balance()
	require.NoError(t, err)
	assert.Equal(t, 550, coins)
}

func TestTrackerBuy(t *testing.T) {
	t.Parallel()

	tr, s := newTestTracker(t)
	require.NoError(t, s.AddCoins(1000))

	require.NoError(t, tr.Buy("speed_boost")) // 800

	coins, err := s.Balance()
	require.NoError(t, err)
	assert.Equal(t, 200, coins)

	m := tr.Multipliers()
	assert.InDelta(t, 1.20, m.TopSpeed, 1e-9)

	err = tr.Buy("speed_boost")
	assert.ErrorIs(t, err, ErrInsufficientCoins)

	err = tr.Buy("warp_drive")
	assert.Error(t, err)
}

func TestTrackerSnapshot(t *testing.T) {
	t.Parallel()

	tr, s := newTestTracker(t)
	require.NoError(t, s.AddCoins(400))
	require.NoError(t, tr.Buy("traction_boost"))
	tr.HandleRunEnd(game.RunReport{Level: 2, Final: game.CarState{Distance: 900}})

	snap, err := tr.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 100, snap.Coins) // 400 - 400 cost + 100 first_blood
	assert.Equal(t, map[string]int{EffectTraction: 1}, snap.Upgrades)
	assert.Contains(t, snap.Achievements, "first_blood")
	assert.Equal(t, 1, snap.Runs)
	assert.Equal(t, 900.0, snap.HighScores[2])
}
