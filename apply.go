package algohankel

import "github.com/cwbudde/algo-hankel/internal/tensor"

// Apply computes the forward transform of a along q's axis and returns
// the result as a new array. The extent of a along that axis must equal
// q.Len(); every other axis is an independent batch axis.
func Apply[T Scalar](q *Transform, a *Array[T]) (*Array[T], error) {
	out, err := tensor.MulAxis[T](q.op, a, q.axis)
	if err != nil {
		return nil, err
	}

	tensor.Scale(out.Data(), q.scaleRK)

	return out, nil
}

// ApplyInto computes the forward transform of src into dst. dst must have
// the shape of src and must not share its backing storage. No data-sized
// allocation happens when q's axis is the leading axis of src.
func ApplyInto[T Scalar](q *Transform, dst, src *Array[T]) error {
	if err := tensor.MulAxisInto[T](q.op, dst, src, q.axis); err != nil {
		return err
	}

	tensor.Scale(dst.Data(), q.scaleRK)

	return nil
}

// ApplyInverse computes the inverse transform of a along q's axis and
// returns the result as a new array. Apply followed by ApplyInverse
// reproduces the input to floating-point round-trip accuracy; the two are
// exact matrix inverses of one another.
func ApplyInverse[T Scalar](q *Transform, a *Array[T]) (*Array[T], error) {
	out, err := tensor.MulAxis[T](q.op, a, q.axis)
	if err != nil {
		return nil, err
	}

	tensor.Scale(out.Data(), 1/q.scaleRK)

	return out, nil
}

// ApplyInverseInto computes the inverse transform of src into dst, under
// the same buffer rules as ApplyInto.
func ApplyInverseInto[T Scalar](q *Transform, dst, src *Array[T]) error {
	if err := tensor.MulAxisInto[T](q.op, dst, src, q.axis); err != nil {
		return err
	}

	tensor.Scale(dst.Data(), 1/q.scaleRK)

	return nil
}
