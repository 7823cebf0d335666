package algohankel

import "github.com/cwbudde/algo-hankel/internal/tensor"

// IntegrateR approximates the radial integral of the samples in a over
// [0, inf):
//
//	∫ f(r) r^n dr
//
// where a holds f evaluated at q's real-space nodes and n is q's
// spherical dimension. The reduction runs along q's axis, which is kept
// with extent one in the result.
//
// The quadrature is exact in the Parseval sense for |f|^2 at every order;
// for the integral of f itself it is only faithful for order-0
// transforms, because the underlying expansion of f in j_p^n modes does
// not reproduce the plain integral at other orders.
func IntegrateR[T Scalar](a *Array[T], q *Transform) (*Array[T], error) {
	return tensor.ContractAxis(tensor.Promote[T](q.scaleR), a, q.axis)
}

// IntegrateK is the frequency-space analogue of IntegrateR: it
// approximates ∫ f(k) k^n dk for samples of f at q's frequency nodes,
// under the same order-0 caveat.
func IntegrateK[T Scalar](a *Array[T], q *Transform) (*Array[T], error) {
	return tensor.ContractAxis(tensor.Promote[T](q.scaleK), a, q.axis)
}

// DimDot contracts the vector v against the given axis of a:
//
//	out[..., 0, ...] = Σ_j v[j] a[..., j, ...]
//
// collapsing that axis to extent one. The product is bilinear; neither
// operand is conjugated. It is the weighted-reduction primitive behind
// IntegrateR and IntegrateK.
func DimDot[T Scalar](v []T, a *Array[T], axis int) (*Array[T], error) {
	return tensor.ContractAxis(v, a, axis)
}
