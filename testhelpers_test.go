package algohankel

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

// assertArraysClose fails the test when got and want differ anywhere by
// more than tol relative to the largest magnitude in want.
func assertArraysClose[T Scalar](t *testing.T, got, want *Array[T], tol float64) {
	t.Helper()

	if !got.SameShape(want) {
		t.Fatalf("shape mismatch: got %v, want %v", got.Shape(), want.Shape())
	}

	scale := 0.0
	for _, v := range want.Data() {
		if a := absScalar(v); a > scale {
			scale = a
		}
	}

	if scale == 0 {
		scale = 1
	}

	gd, wd := got.Data(), want.Data()
	for i := range gd {
		if absScalar(gd[i]-wd[i]) > tol*scale {
			t.Fatalf("element %d: got %v, want %v (tol %g, scale %g)", i, gd[i], wd[i], tol, scale)
		}
	}
}

func checkClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	scale := math.Abs(want)
	if scale == 0 {
		scale = 1
	}

	if math.Abs(got-want) > tol*scale {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

// gaussianAt samples exp(-x^2/2) at the given coordinates.
func gaussianAt(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Exp(-0.5 * v * v)
	}

	return out
}

func prodInts(s []int) int {
	p := 1
	for _, v := range s {
		p *= v
	}

	return p
}
