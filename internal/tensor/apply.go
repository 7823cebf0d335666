package tensor

import "gonum.org/v1/gonum/mat"

// MulAxis applies the square operator op along the given axis of src and
// returns the result as a new array. op must be n x n where n is the
// extent of src along axis.
//
// The axis is brought to the front so the whole batch reduces to a single
// matrix product; rank-one inputs use a matrix-vector product instead.
func MulAxis[T Scalar](op mat.Matrix, src *Array[T], axis int) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilArray
	}

	dst := &Array[T]{
		shape: append([]int(nil), src.shape...),
		data:  make([]T, len(src.data)),
	}

	if err := MulAxisInto(op, dst, src, axis); err != nil {
		return nil, err
	}

	return dst, nil
}

// MulAxisInto is MulAxis writing into dst, which must have the same shape
// as src and must not share its backing storage.
func MulAxisInto[T Scalar](op mat.Matrix, dst, src *Array[T], axis int) error {
	if dst == nil || src == nil {
		return ErrNilArray
	}

	if err := src.CheckAxis(axis); err != nil {
		return err
	}

	if !dst.SameShape(src) {
		return ErrShapeMismatch
	}

	if &dst.data[0] == &src.data[0] {
		return ErrAliasedBuffers
	}

	outer, n, inner := src.split(axis)

	if r, c := op.Dims(); r != n || c != n {
		return ErrShapeMismatch
	}

	switch sd := any(src.data).(type) {
	case []float64:
		mulAxisFloat(op, any(dst.data).([]float64), sd, outer, n, inner)
	case []complex128:
		mulAxisComplex(op, any(dst.data).([]complex128), sd, outer, n, inner)
	}

	return nil
}

func mulAxisFloat(op mat.Matrix, dst, src []float64, outer, n, inner int) {
	if outer == 1 {
		mulPlane(op, dst, src, n, inner)

		return
	}

	perm := getFloats(len(src))
	gem := getFloats(len(src))

	axisToFront(*perm, src, outer, n, inner)
	mulPlane(op, *gem, *perm, n, outer*inner)
	axisFromFront(dst, *gem, outer, n, inner)

	putFloats(perm)
	putFloats(gem)
}

// mulAxisComplex runs two real products on the planar real and imaginary
// parts rather than one complex product, so the float64 operator is used
// directly.
func mulAxisComplex(op mat.Matrix, dst, src []complex128, outer, n, inner int) {
	l := len(src)
	sre := getFloats(l)
	sim := getFloats(l)
	perm := getFloats(l)
	gem := getFloats(l)

	splitComplex(*sre, *sim, src)

	if outer == 1 {
		mulPlane(op, *gem, *sre, n, inner)
		mulPlane(op, *perm, *sim, n, inner)
		mergeComplex(dst, *gem, *perm)
	} else {
		rest := outer * inner

		axisToFront(*perm, *sre, outer, n, inner)
		mulPlane(op, *gem, *perm, n, rest)
		axisFromFront(*sre, *gem, outer, n, inner)

		axisToFront(*perm, *sim, outer, n, inner)
		mulPlane(op, *gem, *perm, n, rest)
		axisFromFront(*sim, *gem, outer, n, inner)

		mergeComplex(dst, *sre, *sim)
	}

	putFloats(sre)
	putFloats(sim)
	putFloats(perm)
	putFloats(gem)
}

// mulPlane computes dst = op * src with src viewed as an n x rest matrix.
func mulPlane(op mat.Matrix, dst, src []float64, n, rest int) {
	if rest == 1 {
		out := mat.NewVecDense(n, dst)
		out.MulVec(op, mat.NewVecDense(n, src))

		return
	}

	out := mat.NewDense(n, rest, dst)
	out.Mul(op, mat.NewDense(n, rest, src))
}

func splitComplex(re, im []float64, src []complex128) {
	for i, v := range src {
		re[i] = real(v)
		im[i] = imag(v)
	}
}

func mergeComplex(dst []complex128, re, im []float64) {
	for i := range dst {
		dst[i] = complex(re[i], im[i])
	}
}
