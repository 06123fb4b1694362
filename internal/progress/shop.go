package progress

import (
	"hillclimb/internal/game"
)

// Upgrade effect keys, matching the multiplier each item boosts.
const (
	EffectAcceleration   = "acceleration"
	EffectTopSpeed       = "speed"
	EffectTraction       = "traction"
	EffectFuelEfficiency = "fuel_efficiency"
	EffectSuspension     = "suspension"
)

// ShopItem is a purchasable upgrade. Each purchase raises the matching
// multiplier by Boost, capped at the multiplier domain maximum.
type ShopItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cost        int     `json:"cost"`
	Effect      string  `json:"effect"`
	Boost       float64 `json:"boost"`
	Description string  `json:"description"`
}

var catalog = []ShopItem{
	{ID: "acceleration_boost", Name: "Engine Upgrade", Cost: 500, Effect: EffectAcceleration, Boost: 0.15, Description: "Increases acceleration by 15%"},
	{ID: "speed_boost", Name: "Turbo Kit", Cost: 800, Effect: EffectTopSpeed, Boost: 0.20, Description: "Increases top speed by 20%"},
	{ID: "traction_boost", Name: "Racing Tires", Cost: 400, Effect: EffectTraction, Boost: 0.18, Description: "Improves traction by 18%"},
	{ID: "fuel_boost", Name: "Fuel Tank", Cost: 600, Effect: EffectFuelEfficiency, Boost: 0.22, Description: "Better fuel efficiency by 22%"},
	{ID: "suspension", Name: "Suspension System", Cost: 700, Effect: EffectSuspension, Boost: 0.25, Description: "Smoother ride and better stability"},
}

// Catalog returns the purchasable upgrades.
func Catalog() []ShopItem {
	out := make([]ShopItem, len(catalog))
	copy(out, catalog)
	return out
}

// ItemByID looks up a shop item.
func ItemByID(id string) (ShopItem, bool) {
	for _, it := range catalog {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// MultipliersFrom converts persisted upgrade purchase counts into the five
// physics multipliers, capped at the domain maximum.
func MultipliersFrom(levels map[string]int) game.UpgradeMultipliers {
	m := game.DefaultMultipliers()
	apply := func(dst *float64, effect string) {
		for _, it := range catalog {
			if it.Effect != effect {
				continue
			}
			v := 1.0 + it.Boost*float64(levels[it.Effect])
			if v > game.MaxMultiplier {
				v = game.MaxMultiplier
			}
			*dst = v
		}
	}
	apply(&m.Acceleration, EffectAcceleration)
	apply(&m.TopSpeed, EffectTopSpeed)
	apply(&m.Traction, EffectTraction)
	apply(&m.FuelEfficiency, EffectFuelEfficiency)
	apply(&m.Suspension, EffectSuspension)
	return m
}
