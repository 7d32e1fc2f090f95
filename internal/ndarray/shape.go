// Package ndarray implements the core N-dimensional integer array used by quota.
package ndarray

import "fmt"

// Shape represents the extent of each axis of an array.
type Shape []int

// NumElements returns the total number of elements described by the shape.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of axes.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that every extent is non-negative.
// Zero extents are allowed and describe an empty array.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("axis %d has extent %d: %w", i, dim, ErrNegativeExtent)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// Strides returns the per-axis multipliers used by Offset.
// stride[i] is the product of the extents of all axes preceding i.
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	acc := 1
	for i, dim := range s {
		strides[i] = acc
		acc *= dim
	}
	return strides
}
