package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNegativeExtent = errors.New("negative extent")
	ErrShapeMismatch  = errors.New("data length does not match shape")
	ErrRagged         = errors.New("ragged nested sequence")
)

// RaggedError reports a nested sequence whose sub-sequences differ in length.
type RaggedError struct {
	Path []int // Position of the offending sub-sequence, outermost first
	Want int   // Length taken from the first sub-sequence at that level
	Got  int   // Actual length
}

// Error implements the error interface.
func (e *RaggedError) Error() string {
	return fmt.Sprintf("%s: element %v has length %d, want %d", ErrRagged, e.Path, e.Got, e.Want)
}

// Unwrap lets errors.Is match ErrRagged.
func (e *RaggedError) Unwrap() error {
	return ErrRagged
}
