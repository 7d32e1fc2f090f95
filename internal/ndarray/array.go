package ndarray

import "fmt"

// Array is an N-dimensional array of signed integers backed by a single flat
// buffer. The buffer always holds exactly Shape().NumElements() elements.
//
// An Array is not modified after a builder or converter returns it, so it may
// be read from several goroutines at once.
//
// Example:
//
//	a := ndarray.Identity(2)
//	v, ok := a.Index(1, 1) // 1, true
//	_, ok = a.Index(2, 0)  // 0, false
type Array struct {
	shape Shape
	data  []int
}

// newArray wraps data without copying. Callers guarantee the length invariant.
func newArray(shape Shape, data []int) *Array {
	return &Array{
		shape: shape.Clone(),
		data:  data,
	}
}

// FromSlice creates an array of the given shape from a flat slice.
// The slice is copied into the array's buffer.
func FromSlice(data []int, shape Shape) (*Array, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d: %w",
			shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}

	buf := make([]int, len(data))
	copy(buf, data)
	return newArray(shape, buf), nil
}

// Index returns the element at coords.
// The second result is false when the number of coordinates differs from the
// rank or any coordinate lies outside its axis.
func (a *Array) Index(coords ...int) (int, bool) {
	if !inBounds(a.shape, coords) {
		return 0, false
	}
	return a.data[Offset(a.shape, coords)], true
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() Shape {
	return a.shape.Clone()
}

// Data returns a copy of the flat element buffer.
func (a *Array) Data() []int {
	data := make([]int, len(a.data))
	copy(data, a.data)
	return data
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// NumElements returns the number of elements in the buffer.
func (a *Array) NumElements() int {
	return len(a.data)
}

// Equal reports whether both arrays have the same shape and elements.
func (a *Array) Equal(other *Array) bool {
	if a == nil || other == nil {
		return a == other
	}
	if !a.shape.Equal(other.shape) || len(a.data) != len(other.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (a *Array) String() string {
	return fmt.Sprintf("Array(shape=%v, data=%v)", []int(a.shape), a.data)
}
