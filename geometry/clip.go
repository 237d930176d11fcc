package geometry

import (
	"github.com/kpfaulkner/gamutcheck/util"
)

// Intersector computes the overlap between two gamut polygons. The clip
// polygon is a reference gamut and is always convex.
type Intersector interface {
	Intersection(subject []Point, clip []Point) []Point
	IntersectionArea(subject []Point, clip []Point) float64
}

// SutherlandHodgman clips an arbitrary subject polygon against a convex clip
// polygon. Either polygon may be wound in either direction.
type SutherlandHodgman struct{}

func NewSutherlandHodgman() *SutherlandHodgman {
	return &SutherlandHodgman{}
}

func (sh *SutherlandHodgman) IntersectionArea(subject []Point, clip []Point) float64 {
	return PolygonArea(sh.Intersection(subject, clip))
}

// Intersection returns the clipped polygon, or nil if the polygons share no
// interior.
func (sh *SutherlandHodgman) Intersection(subject []Point, clip []Point) []Point {
	subject = open(subject)
	clip = open(clip)
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	orientation := SignedArea(clip)
	if util.AlmostEqual(orientation, 0, util.Epsilon) {
		return nil
	}
	if orientation < 0 {
		clip = reversed(clip)
	}

	output := append([]Point(nil), subject...)
	for i := range clip {
		if len(output) == 0 {
			return nil
		}
		a := clip[i]
		b := clip[(i+1)%len(clip)]

		input := output
		output = make([]Point, 0, len(input)+1)
		prev := input[len(input)-1]
		prevInside := inside(a, b, prev)
		for _, cur := range input {
			curInside := inside(a, b, cur)
			switch {
			case curInside && prevInside:
				output = append(output, cur)
			case curInside && !prevInside:
				output = append(output, lineIntersection(prev, cur, a, b), cur)
			case !curInside && prevInside:
				output = append(output, lineIntersection(prev, cur, a, b))
			}
			prev = cur
			prevInside = curInside
		}
	}

	if len(output) < 3 || util.AlmostEqual(PolygonArea(output), 0, util.Epsilon) {
		return nil
	}
	return output
}

// inside is true when p lies on or to the left of the directed edge a->b.
func inside(a Point, b Point, p Point) bool {
	return b.Sub(a).Cross(p.Sub(a)) >= -util.Epsilon
}

// lineIntersection of segment p->q with the infinite line through a->b. Only
// called when p and q straddle the line so the denominator is non zero.
func lineIntersection(p Point, q Point, a Point, b Point) Point {
	edge := b.Sub(a)
	d := q.Sub(p)
	denom := edge.Cross(d)
	if denom == 0 {
		return q
	}
	t := edge.Cross(a.Sub(p)) / denom
	return p.Add(d.Scale(t))
}

func reversed(points []Point) []Point {
	r := make([]Point, len(points))
	for i, p := range points {
		r[len(points)-1-i] = p
	}
	return r
}
