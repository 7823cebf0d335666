package tensor

import (
	"math"
	"math/rand"
	"testing"
)

func randomFloats(n int, seed int64) []float64 {
	r := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = r.NormFloat64()
	}

	return out
}

func randomComplexes(n int, seed int64) []complex128 {
	r := rand.New(rand.NewSource(seed))

	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(r.NormFloat64(), r.NormFloat64())
	}

	return out
}

func absScalar[T Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return math.Hypot(real(x), imag(x))
	}

	return 0
}

func assertArraysClose[T Scalar](t *testing.T, got, want *Array[T], tol float64) {
	t.Helper()

	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %v, want %v", got.Shape(), want.Shape())
	}

	gd, wd := got.Data(), want.Data()
	for i := range gd {
		if absScalar(gd[i]-wd[i]) > tol {
			t.Fatalf("element %d: got %v, want %v", i, gd[i], wd[i])
		}
	}
}

func assertSlicesClose[T Scalar](t *testing.T, got, want []T, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if absScalar(got[i]-want[i]) > tol {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// refMulAxis is an index-by-index reference for MulAxis, sharing no code
// with the production path.
func refMulAxis[T Scalar](op []T, n int, src *Array[T], axis int) *Array[T] {
	shape := src.Shape()
	rank := len(shape)

	strides := make([]int, rank)
	s := 1
	for d := rank - 1; d >= 0; d-- {
		strides[d] = s
		s *= shape[d]
	}

	out, err := New[T](shape...)
	if err != nil {
		panic(err)
	}

	idx := make([]int, rank)
	for flat := 0; flat < src.Len(); flat++ {
		rem := flat
		for d := 0; d < rank; d++ {
			idx[d] = rem / strides[d]
			rem %= strides[d]
		}

		if idx[axis] != 0 {
			continue
		}

		for i := 0; i < n; i++ {
			var acc T
			for j := 0; j < n; j++ {
				acc += op[i*n+j] * src.Data()[flat+j*strides[axis]]
			}

			out.Data()[flat+i*strides[axis]] = acc
		}
	}

	return out
}

// refContractAxis is an index-by-index reference for ContractAxis.
func refContractAxis[T Scalar](v []T, src *Array[T], axis int) *Array[T] {
	shape := src.Shape()
	n := shape[axis]
	shape[axis] = 1

	out, err := New[T](shape...)
	if err != nil {
		panic(err)
	}

	rank := src.Rank()
	idx := make([]int, rank)

	var walk func(d int)

	walk = func(d int) {
		if d == rank {
			var acc T

			full := append([]int(nil), idx...)
			for j := 0; j < n; j++ {
				full[axis] = j
				acc += v[j] * src.At(full...)
			}

			out.Set(acc, idx...)

			return
		}

		lim := out.Shape()[d]
		for i := 0; i < lim; i++ {
			idx[d] = i
			walk(d + 1)
		}
	}

	walk(0)

	return out
}
