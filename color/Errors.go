package color

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChromaticity = errors.New("invalid chromaticity")
	ErrMissingChannel      = errors.New("missing channel")
	ErrReferenceNotFound   = errors.New("reference gamut not found")
	ErrInvalidTolerance    = errors.New("invalid tolerance")
	ErrUnknownChannel      = errors.New("unknown channel")
)

// InvalidChromaticityError is returned when an (x,y) pair is not numeric or
// lies outside the chromaticity triangle x,y >= 0, x+y <= 1.
type InvalidChromaticityError struct {
	Channel Channel

	// raw values as supplied, may not be numeric
	X string
	Y string
}

func (e *InvalidChromaticityError) Error() string {
	return fmt.Sprintf("invalid measurement for %s: invalid chromaticity coordinates x=%s, y=%s", e.Channel, e.X, e.Y)
}

func (e *InvalidChromaticityError) Is(target error) bool {
	return target == ErrInvalidChromaticity
}

type MissingChannelError struct {
	Missing []Channel
}

func (e *MissingChannelError) Error() string {
	return fmt.Sprintf("missing measurements for: %v", e.Missing)
}

func (e *MissingChannelError) Is(target error) bool {
	return target == ErrMissingChannel
}

type ReferenceNotFoundError struct {
	Name string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("reference gamut %q not found", e.Name)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}

type InvalidToleranceError struct {
	Tolerance float64
}

func (e *InvalidToleranceError) Error() string {
	return fmt.Sprintf("white point tolerance must be positive, got %v", e.Tolerance)
}

func (e *InvalidToleranceError) Is(target error) bool {
	return target == ErrInvalidTolerance
}

type UnknownChannelError struct {
	Name string
}

func (e *UnknownChannelError) Error() string {
	return fmt.Sprintf("unknown color channel %q, expected one of R, G, B, W", e.Name)
}

func (e *UnknownChannelError) Is(target error) bool {
	return target == ErrUnknownChannel
}
