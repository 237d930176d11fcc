package gamutcheck

import (
	"github.com/kpfaulkner/gamutcheck/color"
	"github.com/kpfaulkner/gamutcheck/core"
	"github.com/kpfaulkner/gamutcheck/measurement"
)

// AnalyseFiles reads the warm and, if coldFilename is not empty, the cold
// measurement CSV and analyses them against the named built in reference.
func AnalyseFiles(warmFilename string, coldFilename string, reference string, opts ...core.GamutAnalyserOption) (*core.GamutReport, error) {
	warm, err := measurement.ReadCSVFile(warmFilename)
	if err != nil {
		return nil, err
	}

	var cold *color.MeasurementSet
	if coldFilename != "" {
		if cold, err = measurement.ReadCSVFile(coldFilename); err != nil {
			return nil, err
		}
	}

	ga, err := core.NewGamutAnalyser(nil, opts...)
	if err != nil {
		return nil, err
	}
	return ga.Analyse(warm, cold, reference)
}

// ReferenceNames lists the built in reference gamuts.
func ReferenceNames() []string {
	return color.DefaultRegistry().Names()
}
