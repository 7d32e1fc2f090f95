// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/quota/ndarray"
)

// TestPublicAPI exercises the facade end to end.
func TestPublicAPI(t *testing.T) {
	a, err := ndarray.FromSlice(ndarray.Arange(1, 25).Data(), ndarray.Shape{2, 4, 3})
	require.NoError(t, err)

	v, ok := a.Index(1, 2, 1)
	require.True(t, ok)
	assert.Equal(t, 14, v)

	v, ok = a.Index(0, 2, 2)
	require.True(t, ok)
	assert.Equal(t, 21, v)

	_, ok = a.Index(1, 2)
	assert.False(t, ok)

	assert.Equal(t, 13, ndarray.Offset(a.Shape(), []int{1, 2, 1}))
}

func TestPublicErrors(t *testing.T) {
	_, err := ndarray.FromSlice([]int{1}, ndarray.Shape{2})
	assert.True(t, errors.Is(err, ndarray.ErrShapeMismatch))

	_, err = ndarray.From([][]int{{1, 2}, {3}})
	var ragged *ndarray.RaggedError
	require.True(t, errors.As(err, &ragged))
	assert.Equal(t, []int{1}, ragged.Path)
	assert.ErrorIs(t, err, ndarray.ErrRagged)
}

func ExampleZeros() {
	a := ndarray.Zeros(ndarray.Shape{1, 2, 3})
	fmt.Println(a.Shape(), a.Data())
	// Output: [1 2 3] [0 0 0 0 0 0]
}

func ExampleFull() {
	fmt.Println(ndarray.Full(ndarray.Shape{10}, 5).Data())
	// Output: [5 5 5 5 5 5 5 5 5 5]
}

func ExampleIdentity() {
	fmt.Println(ndarray.Identity(2))
	fmt.Println(ndarray.Identity(0))
	// Output:
	// Array(shape=[2 2], data=[1 0 0 1])
	// Array(shape=[0 0], data=[])
}

func ExampleFrom() {
	m := ndarray.MustFrom([][]int{{1, 2}, {3, 4}})
	c := ndarray.MustFrom([][][]int{{{1, 2}, {3, 4}}, {{5, 6}, {7, 8}}})
	fmt.Println(m)
	fmt.Println(c)
	// Output:
	// Array(shape=[2 2], data=[1 2 3 4])
	// Array(shape=[2 2 2], data=[1 2 3 4 5 6 7 8])
}

func ExampleArray_Index() {
	a := ndarray.Identity(3)

	v, ok := a.Index(1, 1)
	fmt.Println(v, ok)

	_, ok = a.Index(3, 0)
	fmt.Println(ok)

	_, ok = a.Index(1)
	fmt.Println(ok)
	// Output:
	// 1 true
	// false
	// false
}
