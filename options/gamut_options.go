package options

import "runtime"

type GamutOptions struct {
	Debug bool

	// RotatedToleranceTest selects the geometric (de-rotated) white point
	// test instead of the literal axis aligned one.
	RotatedToleranceTest bool

	// MaxGoroutines bounds batch analysis workers.
	MaxGoroutines int
}

func NewGamutOptions(options *GamutOptions) *GamutOptions {

	opt := &GamutOptions{
		MaxGoroutines: runtime.NumCPU(),
	}
	if options != nil {
		opt.Debug = options.Debug
		opt.RotatedToleranceTest = options.RotatedToleranceTest
		if options.MaxGoroutines > 0 {
			opt.MaxGoroutines = options.MaxGoroutines
		}
	}
	return opt
}
