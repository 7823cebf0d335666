package tensor

import (
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"
)

// ContractAxis contracts src with the vector v along the given axis:
//
//	out[..., 0, ...] = sum_j v[j] * src[..., j, ...]
//
// The contracted axis is kept with extent one. The product is bilinear; no
// conjugation is applied to either operand.
func ContractAxis[T Scalar](v []T, src *Array[T], axis int) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilArray
	}

	if err := src.CheckAxis(axis); err != nil {
		return nil, err
	}

	outer, n, inner := src.split(axis)
	if len(v) != n {
		return nil, ErrShapeMismatch
	}

	shape := src.Shape()
	shape[axis] = 1

	out := &Array[T]{
		shape: shape,
		data:  make([]T, outer*inner),
	}

	switch sd := any(src.data).(type) {
	case []float64:
		od := any(out.data).([]float64)
		vd := any(v).([]float64)

		for o := 0; o < outer; o++ {
			run := od[o*inner : (o+1)*inner]
			for j := 0; j < n; j++ {
				base := (o*n + j) * inner
				floats.AddScaled(run, vd[j], sd[base:base+inner])
			}
		}
	case []complex128:
		od := any(out.data).([]complex128)
		vd := any(v).([]complex128)

		for o := 0; o < outer; o++ {
			run := od[o*inner : (o+1)*inner]
			for j := 0; j < n; j++ {
				base := (o*n + j) * inner
				cmplxs.AddScaled(run, vd[j], sd[base:base+inner])
			}
		}
	}

	return out, nil
}

// BroadcastAxis expands dy, whose extent along axis must be one, back to
// extent len(v), scaling each slice by the corresponding element of v:
//
//	out[..., j, ...] = v[j] * dy[..., 0, ...]
//
// With conj set the elements of v are conjugated first. This is the
// adjoint of ContractAxis with respect to the array operand.
func BroadcastAxis[T Scalar](dy *Array[T], v []T, axis int, conj bool) (*Array[T], error) {
	if dy == nil {
		return nil, ErrNilArray
	}

	if err := dy.CheckAxis(axis); err != nil {
		return nil, err
	}

	if dy.shape[axis] != 1 {
		return nil, ErrShapeMismatch
	}

	n := len(v)
	if n == 0 {
		return nil, ErrShapeMismatch
	}

	outer, _, inner := dy.split(axis)

	shape := dy.Shape()
	shape[axis] = n

	out := &Array[T]{
		shape: shape,
		data:  make([]T, outer*n*inner),
	}

	for o := 0; o < outer; o++ {
		src := dy.data[o*inner : (o+1)*inner]
		for j := 0; j < n; j++ {
			w := v[j]
			if conj {
				w = conjScalar(w)
			}

			dst := out.data[(o*n+j)*inner : (o*n+j+1)*inner]
			for b, x := range src {
				dst[b] = w * x
			}
		}
	}

	return out, nil
}

// ContractBatch reduces dy and src over every axis but the given one:
//
//	out[j] = sum dy[..., 0, ...] * src[..., j, ...]
//
// dy must have the shape of src with the given axis reduced to one. With
// conj set the elements of src are conjugated. This is the adjoint of
// ContractAxis with respect to the vector operand.
func ContractBatch[T Scalar](dy, src *Array[T], axis int, conj bool) ([]T, error) {
	if dy == nil || src == nil {
		return nil, ErrNilArray
	}

	if err := src.CheckAxis(axis); err != nil {
		return nil, err
	}

	outer, n, inner := src.split(axis)

	want := src.Shape()
	want[axis] = 1

	if len(dy.shape) != len(want) {
		return nil, ErrShapeMismatch
	}

	for d := range want {
		if dy.shape[d] != want[d] {
			return nil, ErrShapeMismatch
		}
	}

	out := make([]T, n)

	switch sd := any(src.data).(type) {
	case []float64:
		dd := any(dy.data).([]float64)
		od := any(out).([]float64)

		for o := 0; o < outer; o++ {
			run := dd[o*inner : (o+1)*inner]
			for j := 0; j < n; j++ {
				base := (o*n + j) * inner
				od[j] += floats.Dot(run, sd[base:base+inner])
			}
		}
	case []complex128:
		dd := any(dy.data).([]complex128)
		od := any(out).([]complex128)

		for o := 0; o < outer; o++ {
			run := dd[o*inner : (o+1)*inner]
			for j := 0; j < n; j++ {
				base := (o*n + j) * inner
				acc := complex(0, 0)

				if conj {
					for b, x := range run {
						acc += x * conjScalar(sd[base+b])
					}
				} else {
					for b, x := range run {
						acc += x * sd[base+b]
					}
				}

				od[j] += acc
			}
		}
	}

	return out, nil
}
