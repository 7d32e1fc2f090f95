// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/quota/internal/ndarray"
)

// Shape represents the extent of each axis of an array.
// Example: Shape{2, 3, 4} describes a 2×3×4 array of 24 elements.
type Shape = ndarray.Shape

// Array is an N-dimensional array of signed integers stored in one flat buffer.
//
// Arrays are created by the builders or by From and are not modified
// afterwards. Shape and Data return copies.
//
// Example:
//
//	a := ndarray.Full(ndarray.Shape{2, 2}, 7)
//	v, ok := a.Index(0, 1)  // 7, true
type Array = ndarray.Array

// Nested is the set of nested slices accepted by From: []int, [][]int, [][][]int.
type Nested = ndarray.Nested

// RaggedError reports a nested slice whose sub-slices differ in length.
type RaggedError = ndarray.RaggedError

// Errors returned by FromSlice and From.
var (
	ErrNegativeExtent = ndarray.ErrNegativeExtent
	ErrShapeMismatch  = ndarray.ErrShapeMismatch
	ErrRagged         = ndarray.ErrRagged
)

// Creation functions

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a := ndarray.Zeros(ndarray.Shape{1, 2, 3})
func Zeros(shape Shape) *Array {
	return ndarray.Zeros(shape)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return ndarray.Ones(shape)
}

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := ndarray.Full(ndarray.Shape{10}, 5)
func Full(shape Shape, value int) *Array {
	return ndarray.Full(shape, value)
}

// Identity creates an n×n identity matrix.
//
// Example:
//
//	a := ndarray.Identity(3)
func Identity(n int) *Array {
	return ndarray.Identity(n)
}

// Eye is an alias for Identity.
func Eye(n int) *Array {
	return ndarray.Eye(n)
}

// Arange creates a 1D array with values from start to end (exclusive).
func Arange(start, end int) *Array {
	return ndarray.Arange(start, end)
}

// FromSlice creates an array of the given shape from a flat slice.
//
// Example:
//
//	a, err := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice(data []int, shape Shape) (*Array, error) {
	return ndarray.FromSlice(data, shape)
}

// Conversion functions

// From converts a nested slice of rank 1, 2 or 3 to an Array, inferring the
// shape from the nesting depth and the first element on each level.
//
// Example:
//
//	a, err := ndarray.From([][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
//	// a.Shape() = [2 2 2], a.Data() = [1 2 3 4 5 6 7 8]
func From[N Nested](n N) (*Array, error) {
	return ndarray.From(n)
}

// MustFrom is like From but panics on ragged input.
func MustFrom[N Nested](n N) *Array {
	return ndarray.MustFrom(n)
}

// Utility functions

// Offset maps coordinates to a position in the flat buffer of an array with
// the given shape, without bounds checking.
//
// Example:
//
//	off := ndarray.Offset(ndarray.Shape{2, 4, 3}, []int{1, 2, 1})  // 13
func Offset(shape Shape, coords []int) int {
	return ndarray.Offset(shape, coords)
}
