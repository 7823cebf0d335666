package tensor

import (
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// Scale multiplies every element of data by c in place. Scaling by 1 is a
// no-op.
func Scale[T Scalar](data []T, c float64) {
	if c == 1 || len(data) == 0 {
		return
	}

	switch d := any(data).(type) {
	case []float64:
		floats.Scale(c, d)
	case []complex128:
		cmplxs.Scale(complex(c, 0), d)
	}
}

// Promote widens a float64 vector to the scalar type T.
func Promote[T Scalar](v []float64) []T {
	out := make([]T, len(v))

	switch o := any(out).(type) {
	case []float64:
		copy(o, v)
	case []complex128:
		for i, x := range v {
			o[i] = complex(x, 0)
		}
	}

	return out
}

// conjScalar returns the complex conjugate for complex128 elements and the
// value unchanged for float64.
func conjScalar[T Scalar](v T) T {
	switch x := any(v).(type) {
	case complex128:
		return any(complex(real(x), -imag(x))).(T)
	default:
		return v
	}
}
