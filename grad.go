package algohankel

import "github.com/cwbudde/algo-hankel/internal/tensor"

// Vector-Jacobian products for the differentiable operations. Each VJP
// entry point returns the normal result together with a pullback that
// maps an output-space gradient to input-space gradients, for
// registration with an external reverse-mode differentiation engine.
//
// The transform argument is not a differentiation target: its pullback
// method reports ErrNonDifferentiable so callers can tell "undefined"
// apart from "zero".

// ApplyPullback is the backward map of Apply or ApplyInverse.
type ApplyPullback[T Scalar] struct {
	q     *Transform
	scale float64
}

// ApplyVJP computes the forward transform and returns it with its
// pullback.
func ApplyVJP[T Scalar](q *Transform, a *Array[T]) (*Array[T], *ApplyPullback[T], error) {
	y, err := Apply(q, a)
	if err != nil {
		return nil, nil, err
	}

	return y, &ApplyPullback[T]{q: q, scale: q.scaleRK}, nil
}

// ApplyInverseVJP computes the inverse transform and returns it with its
// pullback.
func ApplyInverseVJP[T Scalar](q *Transform, a *Array[T]) (*Array[T], *ApplyPullback[T], error) {
	y, err := ApplyInverse(q, a)
	if err != nil {
		return nil, nil, err
	}

	return y, &ApplyPullback[T]{q: q, scale: 1 / q.scaleRK}, nil
}

// WrtArray maps a gradient with respect to the output back to a gradient
// with respect to the array argument: the transposed operator applied
// along the same axis with the same scalar scale the forward pass used.
// dy must have the shape of the forward output.
func (pb *ApplyPullback[T]) WrtArray(dy *Array[T]) (*Array[T], error) {
	out, err := tensor.MulAxis[T](pb.q.op.T(), dy, pb.q.axis)
	if err != nil {
		return nil, err
	}

	tensor.Scale(out.Data(), pb.scale)

	return out, nil
}

// WrtTransform reports that the transform argument is not a
// differentiation target.
func (pb *ApplyPullback[T]) WrtTransform() error { return ErrNonDifferentiable }

// DimDotPullback is the backward map of DimDot. It retains a reference to
// the forward array argument for the vector gradient; the caller must not
// mutate that array before calling WrtVector.
type DimDotPullback[T Scalar] struct {
	v    []T
	src  *Array[T]
	axis int
}

// DimDotVJP computes the weighted reduction and returns it with its
// pullback.
func DimDotVJP[T Scalar](v []T, a *Array[T], axis int) (*Array[T], *DimDotPullback[T], error) {
	y, err := DimDot(v, a, axis)
	if err != nil {
		return nil, nil, err
	}

	pb := &DimDotPullback[T]{
		v:    append([]T(nil), v...),
		src:  a,
		axis: axis,
	}

	return y, pb, nil
}

// WrtArray maps an output gradient back to a gradient with respect to the
// array argument: dy broadcast across the collapsed axis, each slice
// scaled by the conjugated vector element.
func (pb *DimDotPullback[T]) WrtArray(dy *Array[T]) (*Array[T], error) {
	return tensor.BroadcastAxis(dy, pb.v, pb.axis, true)
}

// WrtVector maps an output gradient back to a gradient with respect to
// the vector argument: dy contracted with the conjugated array over every
// batch axis.
func (pb *DimDotPullback[T]) WrtVector(dy *Array[T]) ([]T, error) {
	return tensor.ContractBatch(dy, pb.src, pb.axis, true)
}

// IntegratePullback is the backward map of IntegrateR or IntegrateK.
type IntegratePullback[T Scalar] struct {
	scale []T
	axis  int
}

// IntegrateRVJP computes the real-space radial integral and returns it
// with its pullback.
func IntegrateRVJP[T Scalar](a *Array[T], q *Transform) (*Array[T], *IntegratePullback[T], error) {
	y, err := IntegrateR(a, q)
	if err != nil {
		return nil, nil, err
	}

	return y, &IntegratePullback[T]{scale: tensor.Promote[T](q.scaleR), axis: q.axis}, nil
}

// IntegrateKVJP computes the frequency-space radial integral and returns
// it with its pullback.
func IntegrateKVJP[T Scalar](a *Array[T], q *Transform) (*Array[T], *IntegratePullback[T], error) {
	y, err := IntegrateK(a, q)
	if err != nil {
		return nil, nil, err
	}

	return y, &IntegratePullback[T]{scale: tensor.Promote[T](q.scaleK), axis: q.axis}, nil
}

// WrtArray maps an output gradient back to a gradient with respect to the
// array argument: dy broadcast across the transform axis, weighted by the
// integration scale vector. The weights are real so conjugation is a
// no-op.
func (pb *IntegratePullback[T]) WrtArray(dy *Array[T]) (*Array[T], error) {
	return tensor.BroadcastAxis(dy, pb.scale, pb.axis, false)
}

// WrtTransform reports that the transform argument is not a
// differentiation target.
func (pb *IntegratePullback[T]) WrtTransform() error { return ErrNonDifferentiable }
