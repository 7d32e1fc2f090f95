package ndarray

// Nested is the closed set of nested sequences that can be converted to an
// Array: a vector, a matrix, or a rank-3 cube.
type Nested interface {
	[]int | [][]int | [][][]int
}

// From converts a nested sequence to an Array. The shape is inferred from the
// nesting depth and from the first element on each level; an empty level
// contributes an extent of 0. Elements are flattened outermost first, in
// iteration order.
//
// Every sub-sequence must have the same length as the first one on its level,
// otherwise From returns a *RaggedError.
//
// Example:
//
//	a, err := ndarray.From([][]int{{1, 2}, {3, 4}}) // shape [2 2], data [1 2 3 4]
func From[N Nested](n N) (*Array, error) {
	switch v := any(n).(type) {
	case []int:
		return fromVector(v), nil
	case [][]int:
		return fromMatrix(v)
	case [][][]int:
		return fromCube(v)
	default:
		panic("unreachable: Nested is a closed set")
	}
}

// MustFrom is like From but panics on ragged input.
func MustFrom[N Nested](n N) *Array {
	a, err := From(n)
	if err != nil {
		panic(err)
	}
	return a
}

func fromVector(v []int) *Array {
	data := make([]int, len(v))
	copy(data, v)
	return newArray(Shape{len(v)}, data)
}

func fromMatrix(m [][]int) (*Array, error) {
	cols := 0
	if len(m) > 0 {
		cols = len(m[0])
	}

	data := make([]int, 0, len(m)*cols)
	for i, row := range m {
		if len(row) != cols {
			return nil, &RaggedError{Path: []int{i}, Want: cols, Got: len(row)}
		}
		data = append(data, row...)
	}
	return newArray(Shape{len(m), cols}, data), nil
}

func fromCube(c [][][]int) (*Array, error) {
	l2, l3 := 0, 0
	if len(c) > 0 {
		l2 = len(c[0])
		if l2 > 0 {
			l3 = len(c[0][0])
		}
	}

	data := make([]int, 0, len(c)*l2*l3)
	for i, plane := range c {
		if len(plane) != l2 {
			return nil, &RaggedError{Path: []int{i}, Want: l2, Got: len(plane)}
		}
		for j, row := range plane {
			if len(row) != l3 {
				return nil, &RaggedError{Path: []int{i, j}, Want: l3, Got: len(row)}
			}
			data = append(data, row...)
		}
	}
	return newArray(Shape{len(c), l2, l3}, data), nil
}
