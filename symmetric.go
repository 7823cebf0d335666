package algohankel

import (
	"math"

	"github.com/cwbudde/algo-hankel/internal/specfun"
	"github.com/cwbudde/algo-hankel/internal/tensor"
)

// OnAxis evaluates the transformed function at r = 0 from its frequency
// samples: f(0) = j_p^n(0)/c_n · ∫ f̃(k) k^n dk. The transform axis is
// collapsed to extent one. Only order-0 transforms are supported; at any
// other order f(0) is identically zero by symmetry and the quadrature
// carries no information about it, so ErrUnsupportedOrder is returned.
func OnAxis[T Scalar](ak *Array[T], q *Transform) (*Array[T], error) {
	if q.p != 0 {
		return nil, ErrUnsupportedOrder
	}

	out, err := IntegrateK(ak, q)
	if err != nil {
		return nil, err
	}

	tensor.Scale(out.Data(), specfun.SphBesselJ(q.p, q.n, 0)/specfun.SphScale(q.n))

	return out, nil
}

// Symmetric extends the real-space samples in a across the origin,
// producing extent 2N+1 along the transform axis: the mirrored samples
// with parity f(-r) = (-1)^p f(r), the on-axis value at r = 0, then the
// original samples. For order 0 the on-axis value comes from OnAxis of
// the forward transform; for integer orders p >= 1 it is exactly zero.
// Non-integer orders have no single-valued extension and are rejected.
func Symmetric[T Scalar](a *Array[T], q *Transform) (*Array[T], error) {
	if a == nil {
		return nil, ErrNilArray
	}

	if q.p != math.Trunc(q.p) {
		return nil, ErrUnsupportedOrder
	}

	if err := a.CheckAxis(q.axis); err != nil {
		return nil, err
	}

	if a.Dim(q.axis) != q.size {
		return nil, ErrShapeMismatch
	}

	var center *Array[T]

	if q.p == 0 {
		ak, err := Apply(q, a)
		if err != nil {
			return nil, err
		}

		center, err = OnAxis(ak, q)
		if err != nil {
			return nil, err
		}
	}

	negate := int(q.p)%2 == 1

	return tensor.SymmetricExtendAxis(a, center, q.axis, negate)
}

// RSymmetric returns the coordinates the output of Symmetric is sampled
// on: [-r_N .. -r_1, 0, r_1 .. r_N].
func RSymmetric(q *Transform) []float64 {
	out := make([]float64, 2*q.size+1)

	for i, r := range q.r {
		out[q.size-1-i] = -r
		out[q.size+1+i] = r
	}

	return out
}
