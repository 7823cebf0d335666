// Package tensor implements the dense row-major N-dimensional arrays the
// transform API operates on, together with the axis-wise kernels: applying
// an N x N operator along one axis of a batch, weighted contractions, and
// the supporting permutation and scaling primitives.
//
// Matrix products are delegated to gonum; complex data is handled by
// splitting into planar real and imaginary parts so a single float64
// operator serves both element types.
package tensor

import "errors"

// Sentinel errors shared with the public API, which re-exports them.
var (
	// ErrNilArray is returned when a nil array is passed to an operation.
	ErrNilArray = errors.New("algohankel: nil array")

	// ErrInvalidSize is returned when an array shape has no dimensions or a
	// non-positive extent, or when a data slice does not match its shape.
	ErrInvalidSize = errors.New("algohankel: invalid array size")

	// ErrInvalidAxis is returned when an axis is outside [0, rank).
	ErrInvalidAxis = errors.New("algohankel: invalid axis")

	// ErrShapeMismatch is returned when an array extent does not match what
	// the operation expects.
	ErrShapeMismatch = errors.New("algohankel: shape mismatch")

	// ErrAliasedBuffers is returned when the destination of an Into-style
	// operation shares its backing storage with the source.
	ErrAliasedBuffers = errors.New("algohankel: destination aliases source")
)

// Scalar constrains the element types arrays can hold.
type Scalar interface {
	float64 | complex128
}

// Array is a dense N-dimensional array in row-major order.
type Array[T Scalar] struct {
	shape []int
	data  []T
}

// New allocates a zero-filled array with the given shape. Every extent must
// be positive and at least one dimension is required.
func New[T Scalar](shape ...int) (*Array[T], error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	return &Array[T]{
		shape: append([]int(nil), shape...),
		data:  make([]T, n),
	}, nil
}

// FromSlice wraps data in an array with the given shape without copying;
// the array shares the backing slice with the caller. len(data) must equal
// the product of the extents.
func FromSlice[T Scalar](data []T, shape ...int) (*Array[T], error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, ErrNilArray
	}

	if len(data) != n {
		return nil, ErrInvalidSize
	}

	return &Array[T]{
		shape: append([]int(nil), shape...),
		data:  data,
	}, nil
}

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrInvalidSize
	}

	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrInvalidSize
		}

		n *= d
	}

	return n, nil
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int { return len(a.shape) }

// Shape returns a copy of the array's extents.
func (a *Array[T]) Shape() []int { return append([]int(nil), a.shape...) }

// Len returns the total number of elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Data returns the backing slice in row-major order. Mutating it mutates
// the array.
func (a *Array[T]) Data() []T { return a.data }

// Dim returns the extent along the given axis.
func (a *Array[T]) Dim(axis int) int { return a.shape[axis] }

// At returns the element at the given multi-index. It panics when the
// index has the wrong rank or is out of range.
func (a *Array[T]) At(idx ...int) T { return a.data[a.offset(idx)] }

// Set stores v at the given multi-index. It panics when the index has the
// wrong rank or is out of range.
func (a *Array[T]) Set(v T, idx ...int) { a.data[a.offset(idx)] = v }

func (a *Array[T]) offset(idx []int) int {
	if len(idx) != len(a.shape) {
		panic("tensor: index rank mismatch")
	}

	off := 0
	for d, i := range idx {
		if i < 0 || i >= a.shape[d] {
			panic("tensor: index out of range")
		}

		off = off*a.shape[d] + i
	}

	return off
}

// Clone returns a deep copy.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		shape: append([]int(nil), a.shape...),
		data:  append([]T(nil), a.data...),
	}
}

// SameShape reports whether b has identical extents.
func (a *Array[T]) SameShape(b *Array[T]) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}

	for d := range a.shape {
		if a.shape[d] != b.shape[d] {
			return false
		}
	}

	return true
}

// Scalar returns the sole element of a one-element array. It panics when
// the array holds more than one element.
func (a *Array[T]) Scalar() T {
	if len(a.data) != 1 {
		panic("tensor: array is not a scalar")
	}

	return a.data[0]
}

// split factors the shape around an axis: the flattened extents before it,
// the axis extent itself, and the flattened extents after it.
func (a *Array[T]) split(axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for d := 0; d < axis; d++ {
		outer *= a.shape[d]
	}

	n = a.shape[axis]
	for d := axis + 1; d < len(a.shape); d++ {
		inner *= a.shape[d]
	}

	return outer, n, inner
}

// CheckAxis validates an axis against the array's rank.
func (a *Array[T]) CheckAxis(axis int) error {
	if axis < 0 || axis >= len(a.shape) {
		return ErrInvalidAxis
	}

	return nil
}
