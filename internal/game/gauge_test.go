package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGauge(t *testing.T) {
	t.Parallel()

	g := NewGauge(100)
	assert.Equal(t, 100.0, g.Current)
	assert.False(t, g.IsEmpty())

	g.Drain(30)
	assert.Equal(t, 70.0, g.Current)
	assert.InDelta(t, 0.7, g.Fraction(), 1e-9)
	assert.InDelta(t, 70.0, g.Percent(), 1e-9)

	g.Drain(1000)
	assert.Zero(t, g.Current, "drain clamps at zero")
	assert.True(t, g.IsEmpty())

	g.Refill(40)
	assert.Equal(t, 40.0, g.Current)
	g.Refill(1000)
	assert.Equal(t, 100.0, g.Current, "refill clamps at max")
}
