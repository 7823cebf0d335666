package tensor

// PadAxis grows src along the given axis to extent newN, zero-filling the
// tail. newN must be at least the current extent.
func PadAxis[T Scalar](src *Array[T], axis, newN int) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilArray
	}

	if err := src.CheckAxis(axis); err != nil {
		return nil, err
	}

	outer, n, inner := src.split(axis)
	if newN < n {
		return nil, ErrInvalidSize
	}

	shape := src.Shape()
	shape[axis] = newN

	out := &Array[T]{
		shape: shape,
		data:  make([]T, outer*newN*inner),
	}

	for o := 0; o < outer; o++ {
		for j := 0; j < n; j++ {
			s := (o*n + j) * inner
			d := (o*newN + j) * inner
			copy(out.data[d:d+inner], src.data[s:s+inner])
		}
	}

	return out, nil
}

// SymmetricExtendAxis mirrors src about the origin along the given axis,
// producing extent 2n+1: the reversed (and, with negate set, sign-flipped)
// samples, then the on-axis sample, then the original samples. center
// supplies the on-axis slice and must have the shape of src with the axis
// reduced to one; a nil center means zero on axis.
func SymmetricExtendAxis[T Scalar](src, center *Array[T], axis int, negate bool) (*Array[T], error) {
	if src == nil {
		return nil, ErrNilArray
	}

	if err := src.CheckAxis(axis); err != nil {
		return nil, err
	}

	outer, n, inner := src.split(axis)

	if center != nil {
		if len(center.shape) != len(src.shape) {
			return nil, ErrShapeMismatch
		}

		for d := range src.shape {
			want := src.shape[d]
			if d == axis {
				want = 1
			}

			if center.shape[d] != want {
				return nil, ErrShapeMismatch
			}
		}
	}

	m := 2*n + 1

	shape := src.Shape()
	shape[axis] = m

	out := &Array[T]{
		shape: shape,
		data:  make([]T, outer*m*inner),
	}

	for o := 0; o < outer; o++ {
		for j := 0; j < n; j++ {
			s := src.data[(o*n+j)*inner : (o*n+j+1)*inner]

			mirror := out.data[(o*m+n-1-j)*inner : (o*m+n-j)*inner]
			if negate {
				for b, x := range s {
					mirror[b] = -x
				}
			} else {
				copy(mirror, s)
			}

			copy(out.data[(o*m+n+1+j)*inner:(o*m+n+2+j)*inner], s)
		}

		if center != nil {
			copy(out.data[(o*m+n)*inner:(o*m+n+1)*inner], center.data[o*inner:(o+1)*inner])
		}
	}

	return out, nil
}
