package ndarray

// Full creates an array filled with a specific value.
//
// Example:
//
//	a := ndarray.Full(Shape{10}, 5) // ten fives
func Full(shape Shape, value int) *Array {
	if err := shape.Validate(); err != nil {
		panic(err) // Only non-negative extents describe an array
	}

	data := make([]int, shape.NumElements())
	if value != 0 {
		for i := range data {
			data[i] = value
		}
	}
	return newArray(shape, data)
}

// Zeros creates an array filled with zeros.
//
// Example:
//
//	a := ndarray.Zeros(Shape{1, 2, 3}) // six zeros
func Zeros(shape Shape) *Array {
	return Full(shape, 0)
}

// Ones creates an array filled with ones.
func Ones(shape Shape) *Array {
	return Full(shape, 1)
}

// Identity creates an n×n identity matrix.
// Identity(0) has shape [0 0] and no elements.
//
// Example:
//
//	a := ndarray.Identity(2) // data [1 0 0 1]
func Identity(n int) *Array {
	a := Zeros(Shape{n, n})

	coords := make([]int, 2)
	for k := 0; k < n; k++ {
		coords[0], coords[1] = k, k
		a.data[Offset(a.shape, coords)] = 1
	}
	return a
}

// Eye is an alias for Identity.
func Eye(n int) *Array {
	return Identity(n)
}

// Arange creates a 1D array with values from start to end (exclusive).
// The result is empty when end <= start.
//
// Example:
//
//	a := ndarray.Arange(1, 25) // [1, 2, ..., 24]
func Arange(start, end int) *Array {
	n := max(end-start, 0)
	data := make([]int, n)
	for i := range data {
		data[i] = start + i
	}
	return newArray(Shape{n}, data)
}
