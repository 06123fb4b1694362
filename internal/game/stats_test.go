package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStats(t *testing.T) {
	t.Parallel()

	rs := NewRunStats()
	for i := 0; i < 100; i++ {
		rs.Sample(CarState{
			VX:       10,
			Fuel:     MaxFuel - float64(i)*0.1,
			Grounded: i%4 != 0, // a quarter of the steps airborne
		})
	}
	rs.AddFlip()
	rs.AddFlip()

	s := rs.Summary()
	assert.Equal(t, 10.0, s.TopSpeed)
	assert.InDelta(t, 10.0, s.MeanSpeed, 1e-9)
	assert.InDelta(t, 0.0, s.SpeedStdDev, 1e-9)
	assert.InDelta(t, 25*StepDT, s.AirTime, 1e-9)
	assert.Equal(t, 2, s.Flips)
	assert.InDelta(t, 9.9, s.FuelUsed, 1e-6)
}

func TestRunStatsRefillDoesNotCountAsUsage(t *testing.T) {
	t.Parallel()

	rs := NewRunStats()
	rs.Sample(CarState{Fuel: 90})
	rs.Sample(CarState{Fuel: 80})
	rs.Sample(CarState{Fuel: 95}) // refill pickup
	rs.Sample(CarState{Fuel: 85})

	// 100 -> 90 -> 80, then the refill to 95 is ignored, then 95 -> 85.
	assert.InDelta(t, 30.0, rs.Summary().FuelUsed, 1e-9)
}

func TestRunStatsEmpty(t *testing.T) {
	t.Parallel()

	s := NewRunStats().Summary()
	assert.Zero(t, s.TopSpeed)
	assert.Zero(t, s.MeanSpeed)
	assert.Zero(t, s.Flips)
}
