package color

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func srgbReadings() []Reading {
	return []Reading{
		{Channel: Red, XY: NewCIEXY(0.64, 0.33), Luminance: 53},
		{Channel: Green, XY: NewCIEXY(0.30, 0.60), Luminance: 179},
		{Channel: Blue, XY: NewCIEXY(0.15, 0.06), Luminance: 18},
		{Channel: White, XY: NewCIEXY(0.3127, 0.3290), Luminance: 250},
	}
}

func TestNewMeasurementSet(t *testing.T) {
	ms, err := NewMeasurementSet(srgbReadings())
	require.NoError(t, err)

	assert.Equal(t, NewCIEXY(0.3127, 0.3290), ms.White())
	assert.Equal(t, 250.0, ms.Luminance())
	assert.Equal(t, 179.0, ms.ChannelLuminance(Green))
	assert.Equal(t, NewCIEXY(0.64, 0.33), ms.Get(Red))
	assert.Len(t, ms.Polygon(), 3)
	assert.Equal(t, srgbReadings(), ms.Readings())
}

func TestNewMeasurementSetMissingChannel(t *testing.T) {

	for _, tc := range []struct {
		name            string
		readings        []Reading
		expectedMissing []Channel
	}{
		{
			name:            "no white",
			readings:        srgbReadings()[:3],
			expectedMissing: []Channel{White},
		},
		{
			name:            "only white",
			readings:        srgbReadings()[3:],
			expectedMissing: []Channel{Red, Green, Blue},
		},
		{
			name:            "empty",
			expectedMissing: []Channel{Red, Green, Blue, White},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ms, err := NewMeasurementSet(tc.readings)
			assert.Nil(t, ms)
			require.ErrorIs(t, err, ErrMissingChannel)

			var mce *MissingChannelError
			require.True(t, errors.As(err, &mce))
			assert.Equal(t, tc.expectedMissing, mce.Missing)
		})
	}
}

func TestNewMeasurementSetRejectsInvalidChromaticity(t *testing.T) {
	readings := srgbReadings()
	readings[1].XY = NewCIEXY(0.9, 0.9)
	_, err := NewMeasurementSet(readings)
	assert.ErrorIs(t, err, ErrInvalidChromaticity)
}

func TestNewMeasurementSetLastReadingWins(t *testing.T) {
	readings := append(srgbReadings(), Reading{Channel: White, XY: NewCIEXY(0.31, 0.33), Luminance: 240})
	ms, err := NewMeasurementSet(readings)
	require.NoError(t, err)
	assert.Equal(t, NewCIEXY(0.31, 0.33), ms.White())
	assert.Equal(t, 240.0, ms.Luminance())
}

func TestNilMeasurementSetValidate(t *testing.T) {
	var ms *MeasurementSet
	assert.ErrorIs(t, ms.Validate(), ErrMissingChannel)
}
