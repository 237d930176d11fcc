package geometry

import "math"

// SignedArea returns the shoelace area of the implicitly closed polygon.
// Counter clockwise winding is positive. A repeated closing point adds a
// zero term so callers may pass polygons either open or closed.
func SignedArea(points []Point) float64 {
	n := len(points)
	if n < 3 {
		return 0
	}

	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += points[i].X*points[j].Y - points[j].X*points[i].Y
	}
	return 0.5 * sum
}

// PolygonArea is the unsigned area of the polygon. Collinear points give 0.
func PolygonArea(points []Point) float64 {
	return math.Abs(SignedArea(points))
}

// Close returns points with the first point repeated at the end, unless it
// already is.
func Close(points []Point) []Point {
	if len(points) == 0 || points[0] == points[len(points)-1] {
		return points
	}
	closed := make([]Point, 0, len(points)+1)
	closed = append(closed, points...)
	return append(closed, points[0])
}

// open strips a repeated closing point.
func open(points []Point) []Point {
	if len(points) > 1 && points[0] == points[len(points)-1] {
		return points[:len(points)-1]
	}
	return points
}
