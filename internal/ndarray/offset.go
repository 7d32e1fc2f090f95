package ndarray

// Offset maps coordinates to a position in the flat buffer of an array with
// the given shape. Each coordinate is scaled by the product of the extents of
// the axes before it and the terms are summed.
//
// Offset does no bounds checking and accepts any coordinate values, including
// fewer coordinates than axes. Use Array.Index for checked access.
//
// Example:
//
//	ndarray.Offset(Shape{2, 4, 3}, []int{1, 2, 1}) // 1*1 + 2*2 + 1*8 = 13
func Offset(shape Shape, coords []int) int {
	offset := 0
	stride := 1
	for i, c := range coords {
		offset += c * stride
		if i < len(shape) {
			stride *= shape[i]
		}
	}
	return offset
}

// inBounds reports whether coords address an element of shape.
func inBounds(shape Shape, coords []int) bool {
	if len(coords) != len(shape) {
		return false
	}
	for axis, c := range coords {
		if c < 0 || c >= shape[axis] {
			return false
		}
	}
	return true
}
