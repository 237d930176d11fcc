package color

import (
	"math"

	"github.com/kpfaulkner/gamutcheck/util"
	"github.com/lucasb-eyer/go-colorful"
)

// Swatch converts a reading to a displayable sRGB colour. Luminance is
// normalised against whiteLuminance so the white channel maps to Y=1 and
// brighter readings clip there; pass 0 to render at full brightness.
func Swatch(xy CIEXY, luminance float64, whiteLuminance float64) colorful.Color {
	Y := 1.0
	if whiteLuminance > 0 {
		Y = util.Clamp(luminance/whiteLuminance, 0, 1)
	}
	if xy.Y == 0 {
		return colorful.Color{}
	}
	return colorful.Xyy(xy.X, xy.Y, Y).Clamped()
}

// SwatchHex is Swatch formatted as #rrggbb.
func SwatchHex(xy CIEXY, luminance float64, whiteLuminance float64) string {
	return Swatch(xy, luminance, whiteLuminance).Hex()
}

// CorrelatedColourTemperature uses McCamy's cubic approximation. Only
// meaningful near the Planckian locus, roughly 2000K to 12500K.
func CorrelatedColourTemperature(xy CIEXY) float64 {
	denom := 0.1858 - xy.Y
	if denom == 0 {
		return math.Inf(1)
	}
	n := (xy.X - 0.3320) / denom
	return 449*n*n*n + 3525*n*n + 6823.3*n + 5520.33
}
