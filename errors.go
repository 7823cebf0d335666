package algohankel

import (
	"errors"

	"github.com/cwbudde/algo-hankel/internal/tensor"
)

// Sentinel errors returned by transform construction and application.
// Errors originating in the array kernels are defined in internal/tensor
// and re-exported here under the same values.
var (
	// ErrNilArray is returned when a nil array is passed to an operation.
	ErrNilArray = tensor.ErrNilArray

	// ErrInvalidSize is returned when a transform size or an array shape is
	// not positive, or when a data slice does not match its declared shape.
	ErrInvalidSize = tensor.ErrInvalidSize

	// ErrInvalidAxis is returned when an axis lies outside [0, rank) for
	// the array at hand, or is negative at construction time.
	ErrInvalidAxis = tensor.ErrInvalidAxis

	// ErrShapeMismatch is returned when the array extent along the
	// transform axis does not equal the transform size, or when the
	// destination of an Into-variant has a different shape than the source.
	ErrShapeMismatch = tensor.ErrShapeMismatch

	// ErrAliasedBuffers is returned when the destination of an Into-variant
	// shares backing storage with the source. The underlying matrix product
	// cannot run in place.
	ErrAliasedBuffers = tensor.ErrAliasedBuffers

	// ErrInvalidOrder is returned when a transform order is negative, NaN
	// or infinite.
	ErrInvalidOrder = errors.New("algohankel: invalid transform order")

	// ErrInvalidDimension is returned when the spherical dimension is less
	// than one.
	ErrInvalidDimension = errors.New("algohankel: invalid spherical dimension")

	// ErrInvalidRadius is returned when the aperture radius is not a
	// positive finite number.
	ErrInvalidRadius = errors.New("algohankel: invalid radius")

	// ErrInvalidFactor is returned when an oversampling factor is less
	// than one.
	ErrInvalidFactor = errors.New("algohankel: invalid oversampling factor")

	// ErrUnsupportedOrder is returned by operations that are only defined
	// for a restricted set of orders: on-axis evaluation needs order zero,
	// symmetric extension an integer order.
	ErrUnsupportedOrder = errors.New("algohankel: unsupported order for this operation")

	// ErrNonDifferentiable is returned when a gradient is requested with
	// respect to a transform. The derivative is undefined, not zero; the
	// distinct error keeps callers from treating it as a vanishing
	// gradient.
	ErrNonDifferentiable = errors.New("algohankel: gradient with respect to a transform is undefined")

	// ErrInvalidFormat is returned when serialized transform data has a
	// bad magic number, an unsupported version, or inconsistent fields.
	ErrInvalidFormat = errors.New("algohankel: invalid transform file format")
)
