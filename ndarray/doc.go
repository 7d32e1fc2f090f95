// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a minimal N-dimensional array of signed integers.
//
// # Overview
//
// An Array pairs a flat buffer with a Shape, one extent per axis. This package provides:
//   - Builders: Zeros, Ones, Full, Identity, Arange
//   - Conversion from nested slices of rank 1 to 3 via From
//   - Checked element access via Array.Index
//   - The unchecked Offset primitive that Index and Identity share
//
// # Basic Usage
//
//	import "github.com/born-ml/quota/ndarray"
//
//	func main() {
//	    z := ndarray.Zeros(ndarray.Shape{1, 2, 3})   // six zeros
//	    i := ndarray.Identity(2)                     // data [1 0 0 1]
//	    m, err := ndarray.From([][]int{{1, 2}, {3, 4}})
//
//	    v, ok := i.Index(1, 1)   // 1, true
//	    _, ok = z.Index(0, 0)    // rank mismatch: 0, false
//	}
//
// # Layout
//
// Offset scales each coordinate by the product of the extents of the axes
// before it:
//
//	shape   [2, 4, 3]
//	strides [1, 2, 8]
//	Offset(shape, [1, 2, 1]) = 1*1 + 2*2 + 1*8 = 13
//
// From flattens nested slices outermost first, so From([][]int{{1, 2}, {3, 4}})
// stores [1 2 3 4].
//
// # Absence
//
// Index never panics. A coordinate list of the wrong length, or any
// coordinate outside its axis, yields (0, false).
//
// # Ragged input
//
// From rejects nested slices whose sub-slices differ in length on the same
// level and returns a *RaggedError wrapping ErrRagged.
package ndarray
