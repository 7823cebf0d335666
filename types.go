// Package algohankel implements the quasi-discrete Hankel transform (QDHT)
// and its hyperspherical generalization (QDSHT) on grids derived from
// Bessel-function zeros, together with the matching radial integration
// rules and hand-derived adjoints for gradient-based optimization.
//
// A Transform is built once from order, dimension, aperture radius and
// sample count; construction dominates the cost (an O(N^2) operator build)
// and every subsequent application is a dense matrix product along one
// axis of the input array. Transforms are immutable and safe for
// concurrent use.
package algohankel

import "github.com/cwbudde/algo-hankel/internal/tensor"

// Scalar is the type constraint for array element types supported by the
// transform. The canonical definition is in internal/tensor.
type Scalar = tensor.Scalar

// Array is a dense row-major N-dimensional array. The canonical definition
// is in internal/tensor.
type Array[T Scalar] = tensor.Array[T]

// NewArray allocates a zero-filled array with the given shape.
func NewArray[T Scalar](shape ...int) (*Array[T], error) {
	return tensor.New[T](shape...)
}

// NewArrayFrom wraps data in an array with the given shape without
// copying; len(data) must equal the product of the extents.
func NewArrayFrom[T Scalar](data []T, shape ...int) (*Array[T], error) {
	return tensor.FromSlice(data, shape...)
}
