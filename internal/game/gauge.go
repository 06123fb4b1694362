package game

// Gauge tracks a clamped quantity such as health or fuel.
type Gauge struct {
	Current float64
	Max     float64
}

func NewGauge(max float64) Gauge {
	return Gauge{Current: max, Max: max}
}

func (g *Gauge) Drain(amount float64) {
	g.Current -= amount
	if g.Current < 0 {
		g.Current = 0
	}
}

func (g *Gauge) Refill(amount float64) {
	g.Current += amount
	if g.Current > g.Max {
		g.Current = g.Max
	}
}

func (g *Gauge) Fraction() float64 {
	if g.Max <= 0 {
		return 0
	}
	return clampF(g.Current/g.Max, 0, 1)
}

func (g *Gauge) Percent() float64 {
	return g.Fraction() * 100
}

func (g *Gauge) IsEmpty() bool {
	return g.Current <= 0
}
