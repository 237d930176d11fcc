package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/core"
	"github.com/kpfaulkner/gamutcheck/measurement"
	"github.com/kpfaulkner/gamutcheck/options"
	"github.com/kpfaulkner/gamutcheck/plot"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
)

// tolerance flag that records whether it was set, 0 is rejected by the
// analyser rather than meaning "off"
type toleranceFlag struct {
	value float64
	set   bool
}

func (tf *toleranceFlag) String() string {
	if !tf.set {
		return ""
	}
	return fmt.Sprintf("%g", tf.value)
}

func (tf *toleranceFlag) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	tf.value = v
	tf.set = true
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit code so deferred cleanup (the profiler in
// particular) happens before main exits.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("gamutcheck", flag.ContinueOnError)
	inputCSV := fs.String("inputcsv", "", "measurement CSV file")
	inputCSVCold := fs.String("inputcsvcold", "", "cold measurement CSV file (optional, initial startup)")
	reference := fs.String("reference", "", "reference standard")
	referencesFile := fs.String("references", "", "YAML file of extra reference gamuts (optional)")
	output := fs.String("output", "", "output plot filename (png)")
	title := fs.String("title", "", "custom title for the plot")
	rotated := fs.Bool("rotatedtol", false, "rotate the white point displacement into the tolerance ellipse frame")
	debug := fs.Bool("debug", false, "debug logging")
	doProfile := fs.Bool("profile", false, "write a CPU profile to the current directory")
	var tolerance toleranceFlag
	fs.Var(&tolerance, "whitepointtol", "white point tolerance (if not specified, tolerance analysis is skipped)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	if *doProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	registry := color.DefaultRegistry()
	if *referencesFile != "" {
		extra, err := loadRegistry(*referencesFile)
		if err != nil {
			log.Errorf("Error loading references: %v", err)
			return 1
		}
		registry = registry.Merge(extra)
	}

	if *inputCSV == "" && fs.NArg() == 0 {
		fmt.Fprintf(stdout, "-inputcsv or one or more CSV files must be specified\n")
		return 1
	}
	if *reference == "" {
		fmt.Fprintf(stdout, "-reference must be one of %s\n", strings.Join(registry.Names(), ", "))
		return 1
	}

	opts := []core.GamutAnalyserOption{
		core.WithOptions(&options.GamutOptions{Debug: *debug, RotatedToleranceTest: *rotated}),
	}
	if tolerance.set {
		opts = append(opts, core.WithTolerance(tolerance.value))
	}
	ga, err := core.NewGamutAnalyser(registry, opts...)
	if err != nil {
		log.Errorf("Error creating analyser: %v", err)
		return 1
	}

	// positional arguments are analysed as a batch, one warm set each
	if fs.NArg() > 0 {
		if err := runBatch(stdout, ga, fs.Args(), *reference); err != nil {
			return 1
		}
		return 0
	}

	warm, err := measurement.ReadCSVFile(*inputCSV)
	if err != nil {
		log.Errorf("Error: %v", err)
		return 1
	}
	var cold *color.MeasurementSet
	if *inputCSVCold != "" {
		if cold, err = measurement.ReadCSVFile(*inputCSVCold); err != nil {
			log.Errorf("Error: %v", err)
			return 1
		}
	}

	report, err := ga.Analyse(warm, cold, *reference)
	if err != nil {
		log.Errorf("Error: %v", err)
		return 1
	}

	if err := report.Summary(stdout); err != nil {
		log.Errorf("Error writing summary: %v", err)
		return 1
	}

	if *output != "" {
		if err := writePlot(*output, report, *title); err != nil {
			log.Errorf("Error writing plot: %v", err)
			return 1
		}
		fmt.Fprintf(stdout, "\nplot written to %s\n", *output)
	}
	return 0
}

func loadRegistry(filename string) (*color.Registry, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return color.LoadRegistry(f)
}

func writePlot(filename string, report *core.GamutReport, title string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := plot.Render(f, report, plot.Options{Title: title}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runBatch(stdout io.Writer, ga *core.GamutAnalyser, files []string, reference string) error {
	jobs := make([]core.BatchJob, 0, len(files))
	var failed error
	for _, fn := range files {
		ms, err := measurement.ReadCSVFile(fn)
		if err != nil {
			log.Errorf("Error reading %s: %v", fn, err)
			failed = err
			continue
		}
		jobs = append(jobs, core.BatchJob{Name: filepath.Base(fn), Warm: ms, Reference: reference})
	}

	fmt.Fprintf(stdout, "%-30s %10s %10s %10s %10s %8s\n", "file", "coverage", "relative", "Δx", "Δy", "within")
	for _, res := range ga.AnalyseBatch(jobs) {
		if res.Err != nil {
			failed = res.Err
			continue
		}
		w := res.Report.Warm
		within := "-"
		if w.Tolerance != nil {
			within = fmt.Sprintf("%v", w.Tolerance.Within)
		}
		fmt.Fprintf(stdout, "%-30s %9.1f%% %9.1f%% %+10.4f %+10.4f %8s\n",
			res.Name, w.CoveragePct, w.RelativeAreaPct, w.DeltaX, w.DeltaY, within)
	}
	return failed
}
