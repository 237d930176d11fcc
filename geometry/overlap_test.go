package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOverlap(t *testing.T) {
	sh := NewSutherlandHodgman()

	for _, tc := range []struct {
		name             string
		measured         []Point
		expectedCoverage float64
		expectedRelative float64
	}{
		{
			name:             "identical",
			measured:         srgbTriangle,
			expectedCoverage: 100,
			expectedRelative: 100,
		},
		{
			name:             "identical rotated start",
			measured:         []Point{srgbTriangle[1], srgbTriangle[2], srgbTriangle[0]},
			expectedCoverage: 100,
			expectedRelative: 100,
		},
		{
			name:             "disjoint",
			measured:         []Point{{0.6, 0.0}, {0.8, 0.0}, {0.7, 0.1}},
			expectedCoverage: 0,
			expectedRelative: 0.01 / 0.11205 * 100,
		},
		{
			name:             "enclosing",
			measured:         []Point{{0.708, 0.292}, {0.170, 0.797}, {0.131, 0.046}},
			expectedCoverage: 100,
			expectedRelative: 0.2118665 / 0.11205 * 100,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			o := ComputeOverlap(sh, tc.measured, srgbTriangle)
			assert.InDelta(t, 0.11205, o.ReferenceArea, 1e-12)
			assert.InDelta(t, tc.expectedCoverage, o.CoveragePct, 1e-6)
			assert.InDelta(t, tc.expectedRelative, o.RelativeAreaPct, 1e-6)
		})
	}
}
