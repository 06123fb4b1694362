package progress

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"hillclimb/internal/game"
)

const completionBonusPerLevel = 100

// Tracker ties the live game to the save store: it banks coins as they are
// collected, settles runs, unlocks achievements and serves the upgrade
// multipliers for the next level start.
type Tracker struct {
	mu    sync.Mutex
	store *Store
	log   *zap.Logger
}

func NewTracker(store *Store, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{store: store, log: log}
}

// HandleEvent banks coin pickups as they happen.
func (t *Tracker) HandleEvent(ev game.Event) {
	if ev.Type != game.EventCoinCollected {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.store.AddCoins(ev.Value); err != nil {
		t.log.Error("bank coins", zap.Error(err))
	}
}

// HandleRunEnd settles a finished run: history row, high score, completion
// bonus and any newly earned achievements.
func (t *Tracker) HandleRunEnd(r game.RunReport) {
	t.mu.Lock()
	defer t.mu.Unlock()

	count, err := t.store.RunCount()
	if err != nil {
		t.log.Error("run count", zap.Error(err))
	}
	firstRun := count == 0

	err = t.store.RecordRun(RunRecord{
		Level:     r.Level,
		LevelName: r.LevelName,
		Completed: r.Completed,
		Distance:  r.Final.Distance,
		Coins:     r.Final.Coins,
		Duration:  r.Elapsed,
		TopSpeed:  r.Summary.TopSpeed,
		Flips:     r.Summary.Flips,
	})
	if err != nil {
		t.log.Error("record run", zap.Error(err))
	}

	if err := t.store.RecordHighScore(r.Level, r.Final.Distance); err != nil {
		t.log.Error("record high score", zap.Error(err))
	}

	reward := 0
	if r.Completed {
		reward += completionBonusPerLevel * r.Level
	}

	var unlocked []string
	for _, id := range earnedBy(r, firstRun) {
		fresh, err := t.store.UnlockAchievement(id)
		if err != nil {
			t.log.Error("unlock achievement", zap.String("id", id), zap.Error(err))
			continue
		}
		if fresh {
			unlocked = append(unlocked, id)
		}
	}
	reward += rewardFor(unlocked)

	if reward > 0 {
		if err := t.store.AddCoins(reward); err != nil {
			t.log.Error("bank reward", zap.Error(err))
		}
	}

	t.log.Info("run settled",
		zap.Int("level", r.Level),
		zap.Bool("completed", r.Completed),
		zap.Float64("distance", r.Final.Distance),
		zap.Int("coins", r.Final.Coins),
		zap.Int("reward", reward),
		zap.Strings("achievements", unlocked))
}

// Multipliers builds the upgrade multipliers from purchased levels.
func (t *Tracker) Multipliers() game.UpgradeMultipliers {
	t.mu.Lock()
	defer t.mu.Unlock()
	levels, err := t.store.UpgradeLevels()
	if err != nil {
		t.log.Error("load upgrades", zap.Error(err))
		return game.DefaultMultipliers()
	}
	return MultipliersFrom(levels)
}

// Buy purchases one level of a shop item, spending from the balance.
func (t *Tracker) Buy(itemID string) error {
	item, ok := ItemByID(itemID)
	if !ok {
		return fmt.Errorf("unknown shop item %q", itemID)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.store.SpendCoins(item.Cost); err != nil {
		return err
	}
	if err := t.store.IncrementUpgrade(item.Effect); err != nil {
		return err
	}
	t.log.Info("upgrade purchased", zap.String("item", item.ID), zap.Int("cost", item.Cost))
	return nil
}

// ProgressSnapshot is the persisted progression state in one view.
type ProgressSnapshot struct {
	Coins        int             `json:"coins"`
	Upgrades     map[string]int  `json:"upgrades"`
	Achievements []string        `json:"achievements"`
	Runs         int             `json:"runs"`
	HighScores   map[int]float64 `json:"highScores"`
}

func (t *Tracker) Snapshot() (ProgressSnapshot, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := ProgressSnapshot{HighScores: make(map[int]float64)}
	var err error
	if snap.Coins, err = t.store.Balance(); err != nil {
		return snap, err
	}
	if snap.Upgrades, err = t.store.UpgradeLevels(); err != nil {
		return snap, err
	}
	if snap.Achievements, err = t.store.UnlockedAchievements(); err != nil {
		return snap, err
	}
	if snap.Runs, err = t.store.RunCount(); err != nil {
		return snap, err
	}
	for lvl := 1; lvl <= game.LevelCount; lvl++ {
		d, err := t.store.HighScore(lvl)
		if err != nil {
			return snap, err
		}
		if d > 0 {
			snap.HighScores[lvl] = d
		}
	}
	return snap, nil
}
