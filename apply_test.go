package algohankel

import (
	"errors"
	"fmt"
	"testing"
)

var roundTripTransforms = []struct {
	name  string
	order float64
	dim   int
}{
	{"p0n1", 0, 1},
	{"p0n2", 0, 2},
	{"p0.5n2", 0.5, 2},
	{"p1n3", 1, 3},
	{"p4n1", 4, 1},
}

var roundTripShapes = []struct {
	shape func(n int) []int
	axis  int
}{
	{func(n int) []int { return []int{n} }, 0},
	{func(n int) []int { return []int{n, 5} }, 0},
	{func(n int) []int { return []int{4, n} }, 1},
	{func(n int) []int { return []int{n, 3, 2} }, 0},
	{func(n int) []int { return []int{3, n, 2} }, 1},
	{func(n int) []int { return []int{2, 3, n} }, 2},
}

func TestRoundTripFloat64(t *testing.T) {
	t.Parallel()

	const n = 64

	for _, tq := range roundTripTransforms {
		for si, ts := range roundTripShapes {
			shape := ts.shape(n)

			q, err := NewQDSHT(tq.order, tq.dim, 2.5, n, WithAxis(ts.axis))
			if err != nil {
				t.Fatal(err)
			}

			a, err := NewArrayFrom(randomFloats(prodInts(shape), int64(10+si)), shape...)
			if err != nil {
				t.Fatal(err)
			}

			ak, err := Apply(q, a)
			if err != nil {
				t.Fatalf("%s shape %v: %v", tq.name, shape, err)
			}

			back, err := ApplyInverse(q, ak)
			if err != nil {
				t.Fatal(err)
			}

			assertArraysClose(t, back, a, 1e-9)
		}
	}
}

func TestRoundTripComplex128(t *testing.T) {
	t.Parallel()

	const n = 64

	q, err := NewQDSHT(1, 2, 4.0, n, WithAxis(1))
	if err != nil {
		t.Fatal(err)
	}

	a, err := NewArrayFrom(randomComplexes(3*n*2, 7), 3, n, 2)
	if err != nil {
		t.Fatal(err)
	}

	ak, err := Apply(q, a)
	if err != nil {
		t.Fatal(err)
	}

	back, err := ApplyInverse(q, ak)
	if err != nil {
		t.Fatal(err)
	}

	assertArraysClose(t, back, a, 1e-9)
}

func TestApplyIntoMatchesApply(t *testing.T) {
	t.Parallel()

	const n = 12

	for _, axis := range []int{0, 1} {
		q, err := NewQDHT(0, 3.0, n, WithAxis(axis))
		if err != nil {
			t.Fatal(err)
		}

		shape := []int{n, 4}
		if axis == 1 {
			shape = []int{4, n}
		}

		src, err := NewArrayFrom(randomFloats(4*n, 21), shape...)
		if err != nil {
			t.Fatal(err)
		}

		want, err := Apply(q, src)
		if err != nil {
			t.Fatal(err)
		}

		dst, err := NewArray[float64](shape...)
		if err != nil {
			t.Fatal(err)
		}

		if err := ApplyInto(q, dst, src); err != nil {
			t.Fatal(err)
		}

		assertArraysClose(t, dst, want, 1e-12)

		wantInv, err := ApplyInverse(q, src)
		if err != nil {
			t.Fatal(err)
		}

		if err := ApplyInverseInto(q, dst, src); err != nil {
			t.Fatal(err)
		}

		assertArraysClose(t, dst, wantInv, 1e-12)
	}
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()

	const n = 8

	q, err := NewQDHT(0, 1.0, n)
	if err != nil {
		t.Fatal(err)
	}

	// Extent along the transform axis differs from the transform size.
	wrong, err := NewArrayFrom(randomFloats(n+1, 1), n+1)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Apply(q, wrong); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Apply with wrong extent: got %v, want ErrShapeMismatch", err)
	}

	// Axis outside the array rank.
	q1, err := NewQDHT(0, 1.0, n, WithAxis(1))
	if err != nil {
		t.Fatal(err)
	}

	vec, err := NewArrayFrom(randomFloats(n, 2), n)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Apply(q1, vec); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("Apply with axis 1 on a vector: got %v, want ErrInvalidAxis", err)
	}

	// Destination shape differs from the source shape.
	dst, err := NewArray[float64](n, 2)
	if err != nil {
		t.Fatal(err)
	}

	if err := ApplyInto(q, dst, vec); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("ApplyInto with mismatched dst: got %v, want ErrShapeMismatch", err)
	}

	// Destination sharing storage with the source.
	if err := ApplyInto(q, vec, vec); !errors.Is(err, ErrAliasedBuffers) {
		t.Errorf("ApplyInto aliased: got %v, want ErrAliasedBuffers", err)
	}

	if _, err := Apply[float64](q, nil); !errors.Is(err, ErrNilArray) {
		t.Errorf("Apply(nil): got %v, want ErrNilArray", err)
	}
}

func BenchmarkApply(b *testing.B) {
	for _, n := range []int{64, 256} {
		q, err := NewQDHT(0, 10, n)
		if err != nil {
			b.Fatal(err)
		}

		src, err := NewArrayFrom(randomFloats(n*64, 3), n, 64)
		if err != nil {
			b.Fatal(err)
		}

		dst, err := NewArray[float64](n, 64)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(fmt.Sprintf("n%d", n), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				if err := ApplyInto(q, dst, src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
