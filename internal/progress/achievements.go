package progress

import (
	"github.com/samber/lo"

	"hillclimb/internal/game"
)

// Achievement is a one-time unlock paying a coin reward.
type Achievement struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reward int    `json:"reward"`
}

var achievements = []Achievement{
	{ID: "first_blood", Title: "First Run", Reward: 100},
	{ID: "speed_demon", Title: "Speed Demon", Reward: 500},
	{ID: "distance_5k", Title: "5K Explorer", Reward: 250},
	{ID: "distance_10k", Title: "10K Warrior", Reward: 500},
	{ID: "distance_20k", Title: "20K Legend", Reward: 1000},
	{ID: "flipped_master", Title: "Flip Master", Reward: 300},
	{ID: "fuel_efficient", Title: "Eco Driver", Reward: 200},
}

// Unlock thresholds.
const (
	speedDemonSpeed  = 70.0
	flipMasterFlips  = 3
	ecoDriverFuelMax = 60.0
)

// Achievements returns the full achievement list.
func Achievements() []Achievement {
	out := make([]Achievement, len(achievements))
	copy(out, achievements)
	return out
}

// AchievementByID looks up an achievement.
func AchievementByID(id string) (Achievement, bool) {
	return lo.Find(achievements, func(a Achievement) bool { return a.ID == id })
}

// earnedBy returns the achievement IDs a finished run qualifies for.
// firstRun reflects whether this was the player's first recorded run.
func earnedBy(r game.RunReport, firstRun bool) []string {
	var out []string
	if firstRun {
		out = append(out, "first_blood")
	}
	if r.Summary.TopSpeed >= speedDemonSpeed {
		out = append(out, "speed_demon")
	}
	if r.Final.Distance >= 5000 {
		out = append(out, "distance_5k")
	}
	if r.Final.Distance >= 10000 {
		out = append(out, "distance_10k")
	}
	if r.Final.Distance >= 20000 {
		out = append(out, "distance_20k")
	}
	if r.Summary.Flips >= flipMasterFlips {
		out = append(out, "flipped_master")
	}
	if r.Completed && r.Summary.FuelUsed <= ecoDriverFuelMax {
		out = append(out, "fuel_efficient")
	}
	return out
}

// rewardFor sums the coin rewards for the given achievement IDs.
func rewardFor(ids []string) int {
	return lo.SumBy(ids, func(id string) int {
		a, ok := AchievementByID(id)
		if !ok {
			return 0
		}
		return a.Reward
	})
}
