package color

import (
	"math"

	"github.com/kpfaulkner/gamutcheck/geometry"
	"github.com/kpfaulkner/gamutcheck/util"
)

const (
	// major axis is this multiple of the tolerance, minor axis is 1x
	ToleranceMajorScale = 1.2

	ToleranceRotationDegrees = -10.0
)

// ToleranceEllipse is the acceptance region for a measured white point,
// centred on the reference white. SemiAxisX (minor) and SemiAxisY (major)
// are the semi axes before rotation.
type ToleranceEllipse struct {
	Center    CIEXY
	Tolerance float64
	SemiAxisX float64
	SemiAxisY float64

	// RotationDegrees is applied to the drawn ellipse and by ContainsRotated.
	// Contains ignores it.
	RotationDegrees float64
}

// ToleranceResult is the verdict for one measured white point. Distance is in
// tolerance radii, 1.0 lies on the boundary.
type ToleranceResult struct {
	Distance float64
	Within   bool
}

func NewToleranceEllipse(reference CIEXY, tolerance float64) (*ToleranceEllipse, error) {
	if !util.IsFinite(tolerance) || tolerance <= 0 {
		return nil, &InvalidToleranceError{Tolerance: tolerance}
	}
	return &ToleranceEllipse{
		Center:          reference,
		Tolerance:       tolerance,
		SemiAxisX:       tolerance,
		SemiAxisY:       ToleranceMajorScale * tolerance,
		RotationDegrees: ToleranceRotationDegrees,
	}, nil
}

// Contains tests the raw displacement against the axis aligned ellipse
// equation. The rotation is NOT applied to the displacement, so the accepted
// region is the unrotated ellipse. ContainsRotated is the geometric test.
func (te *ToleranceEllipse) Contains(measured CIEXY) ToleranceResult {
	dx, dy := measured.Delta(te.Center)
	return te.evaluate(dx, dy)
}

// ContainsRotated rotates the displacement into the ellipse frame before
// testing, so the accepted region matches the drawn ellipse.
func (te *ToleranceEllipse) ContainsRotated(measured CIEXY) ToleranceResult {
	dx, dy := measured.Delta(te.Center)
	theta := util.Radians(te.RotationDegrees)
	cos, sin := math.Cos(theta), math.Sin(theta)
	return te.evaluate(dx*cos+dy*sin, -dx*sin+dy*cos)
}

func (te *ToleranceEllipse) evaluate(dx float64, dy float64) ToleranceResult {
	nx := dx / te.SemiAxisX
	ny := dy / te.SemiAxisY
	sq := nx*nx + ny*ny

	// points on the boundary pass, rounding can push them just past 1
	return ToleranceResult{
		Distance: math.Sqrt(sq),
		Within:   sq <= 1+util.Epsilon,
	}
}

// Outline samples n points on the rotated ellipse boundary, counter
// clockwise starting at the end of the x semi axis.
func (te *ToleranceEllipse) Outline(n int) []geometry.Point {
	if n < 3 {
		n = 3
	}
	theta := util.Radians(te.RotationDegrees)
	cos, sin := math.Cos(theta), math.Sin(theta)

	points := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		ex := te.SemiAxisX * math.Cos(t)
		ey := te.SemiAxisY * math.Sin(t)
		points[i] = geometry.NewPoint(
			te.Center.X+ex*cos-ey*sin,
			te.Center.Y+ex*sin+ey*cos,
		)
	}
	return points
}
