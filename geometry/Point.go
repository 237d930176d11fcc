package geometry

// Point is a location in the chromaticity plane.
type Point struct {
	X float64
	Y float64
}

func NewPoint(x float64, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Cross is the z component of the 3D cross product of p and o.
func (p Point) Cross(o Point) float64 {
	return p.X*o.Y - p.Y*o.X
}
