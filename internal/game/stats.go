package game

import "gonum.org/v1/gonum/stat"

// statSampleEvery thins speed sampling to one in N steps to bound memory on
// long runs.
const statSampleEvery = 10

// RunStats accumulates per-run telemetry for achievements and the HUD.
type RunStats struct {
	speeds   []float64
	steps    uint64
	topSpeed float64
	airTime  float64
	flips    int
	fuelUsed float64
	lastFuel float64
}

func NewRunStats() *RunStats {
	return &RunStats{lastFuel: MaxFuel}
}

// Sample records one fixed step of car state.
func (rs *RunStats) Sample(st CarState) {
	sp := st.Speed()
	if sp > rs.topSpeed {
		rs.topSpeed = sp
	}
	if rs.steps%statSampleEvery == 0 {
		rs.speeds = append(rs.speeds, sp)
	}
	rs.steps++
	if !st.Grounded {
		rs.airTime += StepDT
	}
	if st.Fuel < rs.lastFuel {
		rs.fuelUsed += rs.lastFuel - st.Fuel
	}
	rs.lastFuel = st.Fuel
}

func (rs *RunStats) AddFlip() {
	rs.flips++
}

// RunSummary is the aggregate view of a finished (or in-progress) run.
type RunSummary struct {
	TopSpeed    float64
	MeanSpeed   float64
	SpeedStdDev float64
	AirTime     float64
	Flips       int
	FuelUsed    float64
}

func (rs *RunStats) Summary() RunSummary {
	s := RunSummary{
		TopSpeed: rs.topSpeed,
		AirTime:  rs.airTime,
		Flips:    rs.flips,
		FuelUsed: rs.fuelUsed,
	}
	if len(rs.speeds) > 0 {
		s.MeanSpeed = stat.Mean(rs.speeds, nil)
		s.SpeedStdDev = stat.StdDev(rs.speeds, nil)
	}
	return s
}
