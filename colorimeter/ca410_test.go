package colorimeter

import (
	"errors"
	"testing"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/testcommon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {

	for _, tc := range []struct {
		name           string
		line           string
		expectedResult Measurement
		expectErr      bool
	}{
		{
			name:           "full response",
			line:           "250.1,0.3127,0.3290,6504,0.0032",
			expectedResult: Measurement{Luminance: 250.1, X: 0.3127, Y: 0.3290, CCT: 6504, Duv: 0.0032, HasCCT: true},
		},
		{
			name:           "xyY only",
			line:           "53.2,0.6400,0.3300\r\n",
			expectedResult: Measurement{Luminance: 53.2, X: 0.64, Y: 0.33},
		},
		{
			name:           "blank cct",
			line:           "18.0,0.15,0.06,,",
			expectedResult: Measurement{Luminance: 18, X: 0.15, Y: 0.06},
		},
		{
			name:      "too short",
			line:      "250.1,0.3127",
			expectErr: true,
		},
		{
			name:      "garbage",
			line:      "ER10,0.3,0.3",
			expectErr: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ParseResponse(tc.line)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedResult, *m)
		})
	}
}

func TestParseResponseShort(t *testing.T) {
	_, err := ParseResponse("1,2")
	assert.True(t, errors.Is(err, ErrShortResponse))
}

func TestCA410Measure(t *testing.T) {
	port := testcommon.NewFakeSerialPort("250.1,0.3127,0.3290,6504,0.0032\r", "53.2,0.64,0.33\r\n")
	ca := NewCA410(port, WithSettleDelay(0))

	m, err := ca.Measure()
	require.NoError(t, err)
	assert.Equal(t, 0.3127, m.X)
	assert.Equal(t, 250.1, m.Luminance)

	m, err = ca.Measure()
	require.NoError(t, err)
	assert.Equal(t, 0.64, m.X)

	assert.Equal(t, []string{"RMT 1", "MES", "MDA 1", "MES", "MDA 1"}, port.Commands)

	_, err = ca.Measure()
	assert.Error(t, err)
}

func TestCA410MeasureNoResponse(t *testing.T) {
	port := testcommon.NewFakeSerialPort("\r\n")
	ca := NewCA410(port, WithSettleDelay(0))
	_, err := ca.Measure()
	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestCA410MeasureWriteError(t *testing.T) {
	port := testcommon.NewFakeSerialPort()
	port.WriteErr = errors.New("port gone")
	ca := NewCA410(port, WithSettleDelay(0))
	_, err := ca.Measure()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RMT 1")
}

func TestMeasurementReading(t *testing.T) {
	m := &Measurement{X: 0.3127, Y: 0.3290, Luminance: 250}
	r, err := m.Reading(color.White)
	require.NoError(t, err)
	assert.Equal(t, color.Reading{Channel: color.White, XY: color.NewCIEXY(0.3127, 0.3290), Luminance: 250}, r)

	bad := &Measurement{X: 0.9, Y: 0.9}
	_, err = bad.Reading(color.Red)
	assert.ErrorIs(t, err, color.ErrInvalidChromaticity)
}
