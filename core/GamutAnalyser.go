package core

import (
	"sync"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/geometry"
	"github.com/kpfaulkner/gamutcheck/options"
	log "github.com/sirupsen/logrus"
)

type GamutAnalyserOption func(ga *GamutAnalyser) error

// WithTolerance enables the white point tolerance test. The value is
// validated when a report is produced.
func WithTolerance(tolerance float64) GamutAnalyserOption {
	return func(ga *GamutAnalyser) error {
		ga.tolerance = &tolerance
		return nil
	}
}

func WithIntersector(intersector geometry.Intersector) GamutAnalyserOption {
	return func(ga *GamutAnalyser) error {
		ga.intersector = intersector
		return nil
	}
}

func WithOptions(opts *options.GamutOptions) GamutAnalyserOption {
	return func(ga *GamutAnalyser) error {
		ga.options = options.NewGamutOptions(opts)
		return nil
	}
}

// GamutAnalyser compares measurement sets against reference gamuts held in a
// registry. It holds no per run state and is safe for concurrent use.
type GamutAnalyser struct {
	registry *color.Registry

	// nil when no tolerance test was requested
	tolerance *float64

	intersector geometry.Intersector
	options     *options.GamutOptions
}

// NewGamutAnalyser uses the built in registry when registry is nil.
func NewGamutAnalyser(registry *color.Registry, opts ...GamutAnalyserOption) (*GamutAnalyser, error) {
	if registry == nil {
		registry = color.DefaultRegistry()
	}
	ga := &GamutAnalyser{
		registry:    registry,
		intersector: geometry.NewSutherlandHodgman(),
		options:     options.NewGamutOptions(nil),
	}

	for _, opt := range opts {
		if err := opt(ga); err != nil {
			return nil, err
		}
	}
	return ga, nil
}

// Analyse produces a report for the warm set and, when cold is not nil, the
// cold set against the named reference. All input errors are reported before
// any geometry is computed.
func (ga *GamutAnalyser) Analyse(warm *color.MeasurementSet, cold *color.MeasurementSet, referenceName string) (*GamutReport, error) {
	if err := warm.Validate(); err != nil {
		return nil, err
	}
	if cold != nil {
		if err := cold.Validate(); err != nil {
			return nil, err
		}
	}

	ref, err := ga.registry.Lookup(referenceName)
	if err != nil {
		return nil, err
	}

	var ellipse *color.ToleranceEllipse
	if ga.tolerance != nil {
		if ellipse, err = color.NewToleranceEllipse(ref.White, *ga.tolerance); err != nil {
			return nil, err
		}
	}

	report := &GamutReport{
		Reference:        ref,
		ReferencePolygon: ref.Polygon(),
		Ellipse:          ellipse,
	}
	report.Warm = ga.analyseSet(WARM, warm, ref, ellipse)
	if cold != nil {
		report.Cold = ga.analyseSet(COLD, cold, ref, ellipse)
	}
	return report, nil
}

func (ga *GamutAnalyser) analyseSet(label string, ms *color.MeasurementSet, ref color.ReferenceGamut, ellipse *color.ToleranceEllipse) *AnalysisResult {
	measured := ms.Polygon()
	overlap := geometry.ComputeOverlap(ga.intersector, measured, ref.Polygon())

	// reference gamuts are non degenerate, enforced by the registry
	res := &AnalysisResult{
		Label:           label,
		MeasuredPolygon: measured,
		MeasuredArea:    overlap.MeasuredArea,
		ReferenceArea:   overlap.ReferenceArea,
		OverlapArea:     overlap.OverlapArea,
		CoveragePct:     overlap.CoveragePct,
		RelativeAreaPct: overlap.RelativeAreaPct,
		White:           ms.White(),
		Luminance:       ms.Luminance(),
	}
	res.DeltaX, res.DeltaY = res.White.Delta(ref.White)
	res.WhiteCCT = color.CorrelatedColourTemperature(res.White)

	if ellipse != nil {
		var verdict color.ToleranceResult
		if ga.options.RotatedToleranceTest {
			verdict = ellipse.ContainsRotated(res.White)
		} else {
			verdict = ellipse.Contains(res.White)
		}
		res.Tolerance = &verdict
	}

	if ga.options.Debug {
		log.Debugf("%s: measured %.6f reference %.6f overlap %.6f coverage %.1f%%",
			label, res.MeasuredArea, res.ReferenceArea, res.OverlapArea, res.CoveragePct)
	}
	return res
}

// BatchJob is one independent analysis run.
type BatchJob struct {
	Name      string
	Warm      *color.MeasurementSet
	Cold      *color.MeasurementSet
	Reference string
}

type BatchResult struct {
	Name   string
	Report *GamutReport
	Err    error
}

// AnalyseBatch runs jobs over MaxGoroutines workers. Results are in job
// order, a failing job does not stop the others.
func (ga *GamutAnalyser) AnalyseBatch(jobs []BatchJob) []BatchResult {
	results := make([]BatchResult, len(jobs))

	inputChan := make(chan int, len(jobs))
	for i := range jobs {
		inputChan <- i
	}
	close(inputChan)

	numWorkers := ga.options.MaxGoroutines
	if numWorkers < 1 {
		numWorkers = 1
	}

	wg := sync.WaitGroup{}
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ga.startWorker(inputChan, jobs, results)
		}()
	}
	wg.Wait()

	return results
}

func (ga *GamutAnalyser) startWorker(inputChan chan int, jobs []BatchJob, results []BatchResult) {
	for idx := range inputChan {
		job := jobs[idx]
		report, err := ga.Analyse(job.Warm, job.Cold, job.Reference)
		if err != nil {
			log.Errorf("Error analysing %s %v", job.Name, err)
		}
		results[idx] = BatchResult{Name: job.Name, Report: report, Err: err}
	}
}
