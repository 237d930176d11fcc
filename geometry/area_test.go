package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var srgbTriangle = []Point{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}}

func TestPolygonArea(t *testing.T) {

	for _, tc := range []struct {
		name         string
		points       []Point
		expectedArea float64
	}{
		{
			name:         "srgb primaries",
			points:       srgbTriangle,
			expectedArea: 0.11205,
		},
		{
			name:         "explicitly closed",
			points:       []Point{{0.64, 0.33}, {0.30, 0.60}, {0.15, 0.06}, {0.64, 0.33}},
			expectedArea: 0.11205,
		},
		{
			name:         "unit square",
			points:       []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			expectedArea: 1,
		},
		{
			name:         "collinear",
			points:       []Point{{0, 0}, {0.5, 0}, {1, 0}},
			expectedArea: 0,
		},
		{
			name:         "too few points",
			points:       []Point{{0, 0}, {0.5, 0.5}},
			expectedArea: 0,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expectedArea, PolygonArea(tc.points), 1e-12)
		})
	}
}

func TestPolygonAreaRotationAndWinding(t *testing.T) {
	expected := PolygonArea(srgbTriangle)

	rotated := []Point{srgbTriangle[1], srgbTriangle[2], srgbTriangle[0]}
	assert.InDelta(t, expected, PolygonArea(rotated), 1e-15)

	reversedWinding := []Point{srgbTriangle[2], srgbTriangle[1], srgbTriangle[0]}
	assert.InDelta(t, expected, PolygonArea(reversedWinding), 1e-15)

	assert.Greater(t, SignedArea(srgbTriangle), 0.0)
	assert.Less(t, SignedArea(reversedWinding), 0.0)
}

func TestClose(t *testing.T) {
	closed := Close(srgbTriangle)
	assert.Len(t, closed, 4)
	assert.Equal(t, closed[0], closed[3])
	assert.Len(t, srgbTriangle, 3)

	assert.Len(t, Close(closed), 4)
	assert.Empty(t, Close(nil))
}
