package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/core"
	"github.com/kpfaulkner/gamutcheck/options"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

// jitter moves a primary by up to +-spread in x and y, staying valid.
func jitter(rnd *rand.Rand, xy color.CIEXY, spread float64) color.CIEXY {
	for {
		x := xy.X + (rnd.Float64()*2-1)*spread
		y := xy.Y + (rnd.Float64()*2-1)*spread
		if color.ValidateXY(color.White, x, y) == nil {
			return color.NewCIEXY(x, y)
		}
	}
}

func main() {
	numJobs := flag.Int("n", 100000, "number of measurement sets")
	workers := flag.Int("workers", 0, "worker goroutines (0 = number of CPUs)")
	flag.Parse()

	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	ref, err := color.DefaultRegistry().Lookup(color.REF_SRGB)
	if err != nil {
		log.Fatalf("boomage %v", err)
	}

	rnd := rand.New(rand.NewSource(1))
	jobs := make([]core.BatchJob, *numJobs)
	for i := range jobs {
		ms, err := color.NewMeasurementSet([]color.Reading{
			{Channel: color.Red, XY: jitter(rnd, ref.Primaries.Red, 0.05)},
			{Channel: color.Green, XY: jitter(rnd, ref.Primaries.Green, 0.05)},
			{Channel: color.Blue, XY: jitter(rnd, ref.Primaries.Blue, 0.05)},
			{Channel: color.White, XY: jitter(rnd, ref.White, 0.01), Luminance: 250},
		})
		if err != nil {
			log.Fatalf("boomage %v", err)
		}
		jobs[i] = core.BatchJob{Name: fmt.Sprintf("set%d", i), Warm: ms, Reference: color.REF_SRGB}
	}

	ga, err := core.NewGamutAnalyser(nil,
		core.WithTolerance(0.01),
		core.WithOptions(&options.GamutOptions{MaxGoroutines: *workers}))
	if err != nil {
		log.Fatalf("boomage %v", err)
	}

	start := time.Now()
	results := ga.AnalyseBatch(jobs)
	fmt.Printf("analysing %d sets took %d ms\n", len(results), time.Since(start).Milliseconds())

	within := 0
	for _, res := range results {
		if res.Err == nil && res.Report.Warm.Tolerance.Within {
			within++
		}
	}
	fmt.Printf("%d within tolerance\n", within)
}
