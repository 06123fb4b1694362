package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandDeterministic(t *testing.T) {
	t.Parallel()

	a := NewRand(12345)
	b := NewRand(12345)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextU64(), b.NextU64())
	}

	c := NewRand(12345)
	for i := 0; i < 100; i++ {
		v := c.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandRange(t *testing.T) {
	t.Parallel()

	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Range(3, 9)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 9)
	}
	assert.Equal(t, 5, r.Range(5, 5))
}

func TestFloorDiv(t *testing.T) {
	t.Parallel()

	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-4, 2, -2},
		{0, 5, 0},
		{-1, 64, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d,%d)", tt.a, tt.b)
	}
}

func TestAngDiff(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, angDiff(0, 0.5), 1e-12)
	assert.InDelta(t, -0.5, angDiff(0.5, 0), 1e-12)
	// Shortest way across the wrap.
	assert.InDelta(t, 0.2, angDiff(math.Pi-0.1, -math.Pi+0.1), 1e-9)
	assert.InDelta(t, 2*math.Pi-6.0, angDiff(3.0, -3.0), 1e-9)
}

func TestSmoothstep(t *testing.T) {
	t.Parallel()

	assert.Zero(t, smoothstep(0, 1, -1))
	assert.Zero(t, smoothstep(0, 1, 0))
	assert.Equal(t, 1.0, smoothstep(0, 1, 1))
	assert.Equal(t, 1.0, smoothstep(0, 1, 2))
	assert.InDelta(t, 0.5, smoothstep(0, 1, 0.5), 1e-12)

	// Monotone on the ramp.
	last := 0.0
	for x := 0.0; x <= 1.0; x += 0.05 {
		v := smoothstep(0, 1, x)
		assert.GreaterOrEqual(t, v, last)
		last = v
	}
}
