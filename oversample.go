package algohankel

import "github.com/cwbudde/algo-hankel/internal/tensor"

// Oversample returns a Transform with factor times as many samples at the
// same order, dimension, aperture and axis. A factor of 1 returns q
// itself. The frequency nodes of q are a prefix of the new transform's
// nodes, so spectra computed with q embed exactly into the finer grid.
func Oversample(q *Transform, factor int) (*Transform, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}

	if factor == 1 {
		return q, nil
	}

	return NewQDSHT(q.p, q.n, q.rMax, factor*q.size, WithAxis(q.axis))
}

// OversampleArray resamples a onto the real-space grid of the
// factor-oversampled transform: the samples are taken to frequency
// space, zero-padded along the transform axis, and inverse-transformed
// with the larger transform. It returns the resampled array together
// with the transform it lives on. A factor of 1 returns the inputs
// unchanged.
//
// Zero-padding is exact here because the frequency nodes z_i/R do not
// depend on the sample count: the coarse spectrum is the leading block of
// the fine one.
func OversampleArray[T Scalar](a *Array[T], q *Transform, factor int) (*Array[T], *Transform, error) {
	if factor < 1 {
		return nil, nil, ErrInvalidFactor
	}

	if factor == 1 {
		return a, q, nil
	}

	qo, err := Oversample(q, factor)
	if err != nil {
		return nil, nil, err
	}

	ak, err := Apply(q, a)
	if err != nil {
		return nil, nil, err
	}

	ako, err := tensor.PadAxis(ak, q.axis, qo.size)
	if err != nil {
		return nil, nil, err
	}

	ao, err := ApplyInverse(qo, ako)
	if err != nil {
		return nil, nil, err
	}

	return ao, qo, nil
}
