package geometry

// Overlap compares a measured gamut polygon with a reference one.
// Percentages are relative to the reference area.
type Overlap struct {
	MeasuredArea    float64
	ReferenceArea   float64
	OverlapArea     float64
	CoveragePct     float64
	RelativeAreaPct float64
}

// ComputeOverlap requires a reference polygon with non zero area, the
// percentages are not finite otherwise. An empty intersection gives 0
// coverage.
func ComputeOverlap(intersector Intersector, measured []Point, reference []Point) Overlap {
	o := Overlap{
		MeasuredArea:  PolygonArea(measured),
		ReferenceArea: PolygonArea(reference),
		OverlapArea:   intersector.IntersectionArea(measured, reference),
	}
	o.CoveragePct = o.OverlapArea / o.ReferenceArea * 100
	o.RelativeAreaPct = o.MeasuredArea / o.ReferenceArea * 100
	return o
}
