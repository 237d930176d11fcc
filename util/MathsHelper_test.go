package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxMin(t *testing.T) {
	tests := []struct {
		args        []float64
		expectedMax float64
		expectedMin float64
	}{
		{[]float64{0.64, 0.30, 0.15}, 0.64, 0.15},
		{[]float64{-1, 0, 1}, 1, -1},
		{[]float64{0.3127}, 0.3127, 0.3127},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expectedMax, Max(tt.args...))
		assert.Equal(t, tt.expectedMin, Min(tt.args...))
	}

	assert.Equal(t, 0.0, Max[float64]())
	assert.True(t, math.IsNaN(Max(math.NaN(), 1.0)))
	assert.True(t, math.IsNaN(Min(1.0, math.NaN())))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v        float64
		expected float64
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
	}

	for _, tt := range tests {
		if result := Clamp(tt.v, 0, 1); result != tt.expected {
			t.Errorf("Clamp(%f, 0, 1) = %f; want %f", tt.v, result, tt.expected)
		}
	}
}

func TestAlmostEqual(t *testing.T) {
	assert.True(t, AlmostEqual(0.1+0.2, 0.3, Epsilon))
	assert.False(t, AlmostEqual(0.31, 0.3127, Epsilon))
	assert.True(t, AlmostEqual(float32(1.0), float32(1.0000001), 1e-6))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, IsFinite(0.3))
	assert.False(t, IsFinite(math.NaN()))
	assert.False(t, IsFinite(math.Inf(1)))
	assert.False(t, IsFinite(math.Inf(-1)))
}

func TestRadians(t *testing.T) {
	assert.InDelta(t, -math.Pi/18, Radians(-10.0), 1e-15)
	assert.InDelta(t, math.Pi, Radians(180.0), 1e-15)
}
