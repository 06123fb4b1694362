package game

import "math"

// DifficultyTier selects the terrain amplitude/frequency band and hazard
// density for a level.
type DifficultyTier int

const (
	TierEasy DifficultyTier = iota
	TierMedium
	TierHard
	TierVeryHard
	TierExtreme
)

func (t DifficultyTier) String() string {
	switch t {
	case TierEasy:
		return "Easy"
	case TierMedium:
		return "Medium"
	case TierHard:
		return "Hard"
	case TierVeryHard:
		return "Very Hard"
	case TierExtreme:
		return "Extreme"
	}
	return "Unknown"
}

type tierParams struct {
	Amplitude  float64
	Wavelength float64
	BumpAmp    float64
	HazardRate float64 // probability of a hazard per chunk
	BoostRate  float64
	CoinRate   float64 // probability per flat sample
	FuelRate   float64
}

func paramsFor(t DifficultyTier) tierParams {
	switch t {
	case TierEasy:
		return tierParams{Amplitude: 6, Wavelength: 70, BumpAmp: 0.8, HazardRate: 0, BoostRate: 0.1, CoinRate: 0.05, FuelRate: 0.012}
	case TierMedium:
		return tierParams{Amplitude: 12, Wavelength: 55, BumpAmp: 1.5, HazardRate: 0.08, BoostRate: 0.12, CoinRate: 0.05, FuelRate: 0.012}
	case TierHard:
		return tierParams{Amplitude: 20, Wavelength: 45, BumpAmp: 2.2, HazardRate: 0.18, BoostRate: 0.15, CoinRate: 0.06, FuelRate: 0.010}
	case TierVeryHard:
		return tierParams{Amplitude: 28, Wavelength: 38, BumpAmp: 3.0, HazardRate: 0.28, BoostRate: 0.15, CoinRate: 0.06, FuelRate: 0.009}
	default: // TierExtreme
		return tierParams{Amplitude: 38, Wavelength: 32, BumpAmp: 3.8, HazardRate: 0.4, BoostRate: 0.18, CoinRate: 0.07, FuelRate: 0.008}
	}
}

// Coin is a collectible overlaid on the terrain.
type Coin struct {
	ID    uint64
	X, Y  float64
	Value int
}

// FuelCan refills part of the fuel gauge on pickup.
type FuelCan struct {
	ID     uint64
	X, Y   float64
	Refill float64
}

type HazardKind int

const (
	HazardSpike HazardKind = iota
	HazardBoost
)

// Hazard is a sparse surface effect checked separately from the base height
// function.
type Hazard struct {
	ID   uint64
	Kind HazardKind
	X    float64
}

type terrainChunk struct {
	samples [ChunkSamples]float64
	coins   []Coin
	fuel    []FuelCan
	hazards []Hazard
}

// Terrain produces a continuous, deterministic height function over
// horizontal distance. Chunks of samples are generated lazily on first query
// and cached; re-querying a visited range always returns identical values.
type Terrain struct {
	seed   uint64
	tier   DifficultyTier
	params tierParams

	phase1, phase2, phase3 float64

	chunks map[int]*terrainChunk
}

func NewTerrain(seed uint64, tier DifficultyTier) *Terrain {
	t := &Terrain{
		seed:   seed,
		tier:   tier,
		params: paramsFor(tier),
		chunks: make(map[int]*terrainChunk),
	}
	t.phase1 = NewRand(seed ^ 0x7E11A5E1).RangeF(0, 2*math.Pi)
	t.phase2 = NewRand(seed ^ 0x7E11A5E2).RangeF(0, 2*math.Pi)
	t.phase3 = NewRand(seed ^ 0x7E11A5E3).RangeF(0, 2*math.Pi)
	return t
}

func (t *Terrain) Seed() uint64         { return t.seed }
func (t *Terrain) Tier() DifficultyTier { return t.tier }

// baseHeight is the closed-form layered profile before chunk-level carving.
func (t *Terrain) baseHeight(x float64) float64 {
	p := t.params
	h := math.Sin(x/p.Wavelength+t.phase1)*0.5 +
		math.Sin(x/(p.Wavelength*0.43)+t.phase2)*0.3 +
		math.Sin(x/(p.Wavelength*2.7)+t.phase3)*0.2
	h *= p.Amplitude
	h += t.bumpNoise(x) * p.BumpAmp
	// Flat launch zone so every run starts on drivable ground.
	return h * smoothstep(FlatZoneEnd, FlatZoneEnd+FlatZoneRamp, x)
}

// bumpNoise is smoothed value noise on a fixed lattice, in [-1,1].
func (t *Terrain) bumpNoise(x float64) float64 {
	fi := math.Floor(x / BumpLattice)
	i := int(fi)
	u := smoothstep(0, 1, x/BumpLattice-fi)
	return lerp(noiseVal(t.seed, i, 0xB0), noiseVal(t.seed, i+1, 0xB0), u)
}

func (t *Terrain) chunk(ci int) *terrainChunk {
	if c, ok := t.chunks[ci]; ok {
		return c
	}
	c := t.generateChunk(ci)
	t.chunks[ci] = c
	return c
}

func (t *Terrain) generateChunk(ci int) *terrainChunk {
	c := &terrainChunk{}
	x0 := float64(ci) * ChunkSpan
	for i := 0; i < ChunkSamples; i++ {
		c.samples[i] = t.baseHeight(x0 + float64(i)*SampleStep)
	}

	r := NewRand(hash2D(t.seed, ci, 0xC4A7))

	// Hazard carving: a short notch whose per-sample drop stays under the
	// slope cap. Interior samples only, so chunk edges keep the closed form.
	if t.params.HazardRate > 0 && r.Float64() < t.params.HazardRate && x0 > FlatZoneEnd+FlatZoneRamp {
		at := r.Range(4, ChunkSamples-8)
		width := r.Range(2, 4)
		maxDrop := math.Tan(MaxSlopeAngle) * SampleStep * 0.8
		depth := r.RangeF(maxDrop*0.5, maxDrop) * float64(width)
		for i := 0; i < width; i++ {
			frac := math.Sin(math.Pi * float64(i+1) / float64(width+1))
			c.samples[at+i] -= depth * frac / float64(width)
		}
		c.hazards = append(c.hazards, Hazard{
			ID:   hash2D(t.seed, ci, at),
			Kind: HazardSpike,
			X:    x0 + float64(at)*SampleStep,
		})
	}
	if r.Float64() < t.params.BoostRate && x0 > FlatZoneEnd {
		at := r.Range(2, ChunkSamples-2)
		c.hazards = append(c.hazards, Hazard{
			ID:   hash2D(t.seed, ci, at) ^ 0xB005,
			Kind: HazardBoost,
			X:    x0 + float64(at)*SampleStep,
		})
	}

	// Coins and fuel cans spawn on near-flat ground.
	for i := 2; i < ChunkSamples-1; i++ {
		if math.Abs(c.samples[i+1]-c.samples[i-1]) > 0.8 {
			continue
		}
		x := x0 + float64(i)*SampleStep
		if x <= CoinPickupRadius {
			continue
		}
		roll := r.Float64()
		switch {
		case roll < t.params.CoinRate:
			c.coins = append(c.coins, Coin{
				ID:    uint64(uint32(ci))<<16 | uint64(i),
				X:     x,
				Y:     c.samples[i] + CoinHover,
				Value: 1,
			})
		case roll < t.params.CoinRate+t.params.FuelRate:
			c.fuel = append(c.fuel, FuelCan{
				ID:     uint64(uint32(ci))<<16 | uint64(i),
				X:      x,
				Y:      c.samples[i] + CoinHover,
				Refill: FuelCanRefill,
			})
		}
	}
	return c
}

// HeightAt returns the terrain height at x, interpolated between cached
// samples. Querying beyond the generated range extends it transparently.
func (t *Terrain) HeightAt(x float64) float64 {
	si := int(math.Floor(x / SampleStep))
	frac := x/SampleStep - math.Floor(x/SampleStep)
	h0 := t.sample(si)
	h1 := t.sample(si + 1)
	return lerp(h0, h1, frac)
}

// SlopeAt returns the surface angle at x, capped at MaxSlopeAngle so
// near-vertical carvings stay drivable.
func (t *Terrain) SlopeAt(x float64) float64 {
	si := int(math.Floor(x / SampleStep))
	dy := t.sample(si+1) - t.sample(si-1)
	a := math.Atan2(dy, 2*SampleStep)
	return clampF(a, -MaxSlopeAngle, MaxSlopeAngle)
}

func (t *Terrain) sample(si int) float64 {
	ci := floorDiv(si, ChunkSamples)
	return t.chunk(ci).samples[si-ci*ChunkSamples]
}

// EnsureRange generates all chunks overlapping [x0,x1]. The session calls
// this ahead of the car each frame; the work is bounded by the chunks newly
// entered, so a miss falls back to the same on-demand path HeightAt uses.
func (t *Terrain) EnsureRange(x0, x1 float64) {
	c0 := floorDiv(int(math.Floor(x0/SampleStep)), ChunkSamples)
	c1 := floorDiv(int(math.Floor(x1/SampleStep)), ChunkSamples)
	for ci := c0; ci <= c1; ci++ {
		t.chunk(ci)
	}
}

// CoinsIn returns coins with X in [x0,x1].
func (t *Terrain) CoinsIn(x0, x1 float64) []Coin {
	var out []Coin
	t.eachChunkIn(x0, x1, func(c *terrainChunk) {
		for _, coin := range c.coins {
			if coin.X >= x0 && coin.X <= x1 {
				out = append(out, coin)
			}
		}
	})
	return out
}

// FuelCansIn returns fuel cans with X in [x0,x1].
func (t *Terrain) FuelCansIn(x0, x1 float64) []FuelCan {
	var out []FuelCan
	t.eachChunkIn(x0, x1, func(c *terrainChunk) {
		for _, can := range c.fuel {
			if can.X >= x0 && can.X <= x1 {
				out = append(out, can)
			}
		}
	})
	return out
}

// HazardsIn returns hazards with X in [x0,x1].
func (t *Terrain) HazardsIn(x0, x1 float64) []Hazard {
	var out []Hazard
	t.eachChunkIn(x0, x1, func(c *terrainChunk) {
		for _, h := range c.hazards {
			if h.X >= x0 && h.X <= x1 {
				out = append(out, h)
			}
		}
	})
	return out
}

func (t *Terrain) eachChunkIn(x0, x1 float64, fn func(*terrainChunk)) {
	c0 := floorDiv(int(math.Floor(x0/SampleStep)), ChunkSamples)
	c1 := floorDiv(int(math.Floor(x1/SampleStep)), ChunkSamples)
	for ci := c0; ci <= c1; ci++ {
		fn(t.chunk(ci))
	}
}
