package model

import "errors"

// Sentinel errors for parameter validation. Callers wrap them with
// fmt.Errorf("...: %w", err) and tests match with errors.Is.
var (
	// ErrInvalidAngle reports a heading outside the open interval (-2π, 2π).
	// Recoverable: the would-be point is undefined and must not be used.
	ErrInvalidAngle = errors.New("angle outside (-2π, 2π)")

	// ErrInvalidParameter reports a parameter a generator cannot work with,
	// such as a non-positive side length or a fractal count below one.
	ErrInvalidParameter = errors.New("invalid parameter")
)
