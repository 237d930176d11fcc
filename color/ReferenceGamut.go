package color

import "github.com/kpfaulkner/gamutcheck/geometry"

const (
	REF_NTSC    = "ntsc"
	REF_SRGB    = "srgb"
	REF_DCIP3   = "dcip3"
	REF_REC709  = "rec709"
	REF_REC2020 = "rec2020"
)

var (
	// CIE Illuminant C
	WP_C   = NewCIEXY(0.3101, 0.3162)
	WP_D65 = NewCIEXY(0.3127, 0.3290)
)

// ReferenceGamut is a named standard. Values are never mutated after the
// registry is built.
type ReferenceGamut struct {
	Name      string       `yaml:"-"`
	Label     string       `yaml:"label"`
	Primaries CIEPrimaries `yaml:"primaries"`
	White     CIEXY        `yaml:"white"`
}

func (rg ReferenceGamut) Polygon() []geometry.Point {
	return rg.Primaries.Polygon()
}

func (rg ReferenceGamut) Area() float64 {
	return geometry.PolygonArea(rg.Polygon())
}

func defaultReferenceGamuts() []ReferenceGamut {
	bt709 := NewCIEPrimaries(NewCIEXY(0.64, 0.33), NewCIEXY(0.30, 0.60), NewCIEXY(0.15, 0.06))
	return []ReferenceGamut{
		{
			Name:      REF_NTSC,
			Label:     "NTSC 1953",
			Primaries: NewCIEPrimaries(NewCIEXY(0.67, 0.33), NewCIEXY(0.21, 0.71), NewCIEXY(0.14, 0.08)),
			White:     WP_C,
		},
		{
			Name:      REF_SRGB,
			Label:     "sRGB",
			Primaries: bt709,
			White:     WP_D65,
		},
		{
			// DCI-P3-D65, not the theatrical DCI white
			Name:      REF_DCIP3,
			Label:     "DCI-P3",
			Primaries: NewCIEPrimaries(NewCIEXY(0.68, 0.32), NewCIEXY(0.265, 0.69), NewCIEXY(0.15, 0.06)),
			White:     WP_D65,
		},
		{
			Name:      REF_REC709,
			Label:     "Rec.709",
			Primaries: bt709,
			White:     WP_D65,
		},
		{
			Name:      REF_REC2020,
			Label:     "Rec.2020",
			Primaries: NewCIEPrimaries(NewCIEXY(0.708, 0.292), NewCIEXY(0.170, 0.797), NewCIEXY(0.131, 0.046)),
			White:     WP_D65,
		},
	}
}
