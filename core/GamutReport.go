package core

import (
	"fmt"
	"io"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/geometry"
	"github.com/kpfaulkner/gamutcheck/util"
)

const (
	WARM = "warm"
	COLD = "cold"
)

// AnalysisResult is the outcome for one measurement set. Percentages are
// relative to the reference gamut area.
type AnalysisResult struct {
	Label string

	// measured R, G, B triangle, implicitly closed
	MeasuredPolygon []geometry.Point

	MeasuredArea    float64
	ReferenceArea   float64
	OverlapArea     float64
	CoveragePct     float64
	RelativeAreaPct float64

	White     color.CIEXY
	DeltaX    float64
	DeltaY    float64
	Luminance float64
	WhiteCCT  float64

	// nil when no tolerance was requested
	Tolerance *color.ToleranceResult
}

// GamutReport carries everything a renderer needs without recomputing
// geometry.
type GamutReport struct {
	Reference        color.ReferenceGamut
	ReferencePolygon []geometry.Point
	Warm             *AnalysisResult
	Cold             *AnalysisResult

	// nil when no tolerance was requested
	Ellipse *color.ToleranceEllipse
}

// Results returns the warm result followed by the cold one if present.
func (gr *GamutReport) Results() []*AnalysisResult {
	if gr.Cold == nil {
		return []*AnalysisResult{gr.Warm}
	}
	return []*AnalysisResult{gr.Warm, gr.Cold}
}

// Summary writes the numerical analysis in plain text.
func (gr *GamutReport) Summary(w io.Writer) error {
	ew := &errWriter{w: w}
	ref := gr.Reference
	res := gr.Warm

	ew.printf("Numerical Analysis:\n")
	ew.printf("Reference Gamut: %s\n", ref.Label)
	ew.printf("Measured Gamut Area: %.6f\n", res.MeasuredArea)
	ew.printf("Reference Gamut Area: %.6f\n", res.ReferenceArea)
	ew.printf("Overlap Area: %.6f\n", res.OverlapArea)
	ew.printf("Coverage: %.1f%%\n", res.CoveragePct)
	ew.printf("Relative Area: %.1f%%\n", res.RelativeAreaPct)
	ew.printf("Luminance: %.1f cd/m²\n", res.Luminance)
	ew.printf("\nWhite Point Analysis:\n")
	ew.printf("Measured White: (%.4f, %.4f)\n", res.White.X, res.White.Y)
	ew.printf("Reference White: (%.4f, %.4f)\n", ref.White.X, ref.White.Y)
	ew.printf("Δx: %+.4f\n", res.DeltaX)
	ew.printf("Δy: %+.4f\n", res.DeltaY)
	ew.printf("CCT: %.0f K\n", res.WhiteCCT)

	if gr.Ellipse != nil && res.Tolerance != nil {
		ew.printf("\nWhite Point Tolerance Analysis:\n")
		ew.printf("Tolerance Setting: ±%.3f\n", gr.Ellipse.Tolerance)
		ew.printf("Distance (in tolerance units): %.3f\n", res.Tolerance.Distance)
		ew.printf("Within Tolerance: %s\n", util.IfThenElse(res.Tolerance.Within, "Yes", "No"))
	}

	if cold := gr.Cold; cold != nil {
		ew.printf("\nCold Measurement Analysis:\n")
		ew.printf("Luminance: %.1f cd/m²\n", cold.Luminance)
		ew.printf("Coverage: %.1f%%\n", cold.CoveragePct)
		ew.printf("Relative Area: %.1f%%\n", cold.RelativeAreaPct)
		ew.printf("\nCold White Point Analysis:\n")
		ew.printf("Cold White: (%.4f, %.4f)\n", cold.White.X, cold.White.Y)
		ew.printf("Δx: %+.4f\n", cold.DeltaX)
		ew.printf("Δy: %+.4f\n", cold.DeltaY)
		if cold.Tolerance != nil {
			ew.printf("Distance (in tolerance units): %.3f\n", cold.Tolerance.Distance)
			ew.printf("Within Tolerance: %s\n", util.IfThenElse(cold.Tolerance.Within, "Yes", "No"))
		}
	}
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
