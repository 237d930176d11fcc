package color

import "github.com/kpfaulkner/gamutcheck/geometry"

// CIEPrimaries are the red, green and blue corners of a gamut triangle.
type CIEPrimaries struct {
	Red   CIEXY `yaml:"red"`
	Green CIEXY `yaml:"green"`
	Blue  CIEXY `yaml:"blue"`
}

func NewCIEPrimaries(red CIEXY, green CIEXY, blue CIEXY) CIEPrimaries {
	return CIEPrimaries{
		Red:   red,
		Green: green,
		Blue:  blue,
	}
}

// Polygon returns the gamut triangle in R, G, B order, implicitly closed.
func (cp CIEPrimaries) Polygon() []geometry.Point {
	return []geometry.Point{cp.Red.Point(), cp.Green.Point(), cp.Blue.Point()}
}
