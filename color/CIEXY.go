package color

import (
	"strconv"
	"strings"

	"github.com/kpfaulkner/gamutcheck/geometry"
	"github.com/kpfaulkner/gamutcheck/util"
)

// CIEXY is a CIE 1931 chromaticity coordinate. Values built through
// NewValidCIEXY or ParseCIEXY are guaranteed to lie inside the chromaticity
// triangle.
type CIEXY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NewCIEXY does not validate. Used for the built in reference tables.
func NewCIEXY(x float64, y float64) CIEXY {
	return CIEXY{X: x, Y: y}
}

// NewValidCIEXY validates (x,y) for the given channel.
func NewValidCIEXY(channel Channel, x float64, y float64) (CIEXY, error) {
	if err := ValidateXY(channel, x, y); err != nil {
		return CIEXY{}, err
	}
	return CIEXY{X: x, Y: y}, nil
}

// ParseCIEXY parses textual coordinates, as found in a CSV row or a serial
// response, and validates them.
func ParseCIEXY(channel Channel, x string, y string) (CIEXY, error) {
	fx, errX := strconv.ParseFloat(strings.TrimSpace(x), 64)
	fy, errY := strconv.ParseFloat(strings.TrimSpace(y), 64)
	if errX != nil || errY != nil {
		return CIEXY{}, &InvalidChromaticityError{Channel: channel, X: x, Y: y}
	}
	return NewValidCIEXY(channel, fx, fy)
}

// ValidateXY succeeds iff both values are finite, 0 <= x,y <= 1 and x+y <= 1.
func ValidateXY(channel Channel, x float64, y float64) error {
	if !util.IsFinite(x) || !util.IsFinite(y) ||
		x < 0 || x > 1 || y < 0 || y > 1 || x+y > 1 {
		return &InvalidChromaticityError{
			Channel: channel,
			X:       strconv.FormatFloat(x, 'g', -1, 64),
			Y:       strconv.FormatFloat(y, 'g', -1, 64),
		}
	}
	return nil
}

// Delta returns c - other.
func (c CIEXY) Delta(other CIEXY) (dx float64, dy float64) {
	return c.X - other.X, c.Y - other.Y
}

func (c CIEXY) Point() geometry.Point {
	return geometry.NewPoint(c.X, c.Y)
}
