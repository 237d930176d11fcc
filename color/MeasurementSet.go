package color

import "github.com/kpfaulkner/gamutcheck/geometry"

// Reading is a single colorimeter reading for one channel. Luminance is in
// cd/m².
type Reading struct {
	Channel   Channel
	XY        CIEXY
	Luminance float64
}

// MeasurementSet holds a validated reading for every channel.
type MeasurementSet struct {
	points    map[Channel]CIEXY
	luminance map[Channel]float64
}

// NewMeasurementSet builds a set from readings. Every channel must be
// present, when a channel appears more than once the last reading wins.
// Chromaticities are revalidated so readings built by hand can't sneak past.
func NewMeasurementSet(readings []Reading) (*MeasurementSet, error) {
	ms := &MeasurementSet{
		points:    make(map[Channel]CIEXY, len(Channels)),
		luminance: make(map[Channel]float64, len(Channels)),
	}

	for _, r := range readings {
		if !r.Channel.Valid() {
			return nil, &UnknownChannelError{Name: r.Channel.String()}
		}
		if err := ValidateXY(r.Channel, r.XY.X, r.XY.Y); err != nil {
			return nil, err
		}
		ms.points[r.Channel] = r.XY
		ms.luminance[r.Channel] = r.Luminance
	}

	if err := ms.Validate(); err != nil {
		return nil, err
	}
	return ms, nil
}

// Validate reports a MissingChannelError naming every absent channel.
func (ms *MeasurementSet) Validate() error {
	var missing []Channel
	for _, c := range Channels {
		if ms == nil {
			missing = append(missing, c)
			continue
		}
		if _, ok := ms.points[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingChannelError{Missing: missing}
	}
	return nil
}

func (ms *MeasurementSet) Get(c Channel) CIEXY {
	return ms.points[c]
}

func (ms *MeasurementSet) White() CIEXY {
	return ms.points[White]
}

// Luminance of the white channel.
func (ms *MeasurementSet) Luminance() float64 {
	return ms.luminance[White]
}

func (ms *MeasurementSet) ChannelLuminance(c Channel) float64 {
	return ms.luminance[c]
}

func (ms *MeasurementSet) Primaries() CIEPrimaries {
	return NewCIEPrimaries(ms.points[Red], ms.points[Green], ms.points[Blue])
}

// Polygon is the measured gamut triangle in R, G, B order.
func (ms *MeasurementSet) Polygon() []geometry.Point {
	return ms.Primaries().Polygon()
}

// Readings returns the set back as readings in R, G, B, W order.
func (ms *MeasurementSet) Readings() []Reading {
	readings := make([]Reading, 0, len(Channels))
	for _, c := range Channels {
		readings = append(readings, Reading{Channel: c, XY: ms.points[c], Luminance: ms.luminance[c]})
	}
	return readings
}
