package util

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the tolerance used when comparing chromaticity values. Readings
// from a colorimeter carry 4 significant decimals so this is well below that.
const Epsilon = 1e-12

func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Float](v T, lo T, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AlmostEqual reports whether a and b differ by no more than eps.
func AlmostEqual[T constraints.Float](a T, b T, eps T) bool {
	return T(math.Abs(float64(a-b))) <= eps
}

// IsFinite is false for NaN and both infinities.
func IsFinite[T constraints.Float](v T) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func Radians[T constraints.Float](degrees T) T {
	return degrees * math.Pi / 180
}
