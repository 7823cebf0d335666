package algohankel

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-hankel/internal/specfun"
)

// Transform is a quasi-discrete Hankel transform of a fixed order,
// spherical dimension, aperture radius and size. All fields are fixed at
// construction; a Transform is safe for concurrent use by multiple
// goroutines.
//
// The real-space nodes r and frequency nodes k are the first N zeros of
// the hyperspherical Bessel function j_p^n scaled into [0, R] and [0, K]
// respectively, with K = S/R for S the (N+1)-th zero. Applying the
// transform multiplies the dense N x N operator along one designated axis
// of the input array; all other axes are independent batch axes.
type Transform struct {
	p    float64 // transform order
	n    int     // spherical dimension, 1 = cylindrical
	size int     // number of radial samples
	axis int     // array axis the transform acts along

	op   *mat.Dense // dense transform operator, symmetric
	j1sq []float64  // squared |j_{p+1}^n| at the Bessel zeros

	rMax float64   // aperture radius R
	kMax float64   // maximum spatial frequency K = S/R
	r    []float64 // real-space nodes, strictly increasing
	k    []float64 // frequency nodes, strictly increasing

	scaleR  []float64 // real-space integration weights
	scaleK  []float64 // frequency-space integration weights
	scaleRK float64   // forward scale (R/K)^((n+1)/2); inverse uses the reciprocal
}

// Option configures transform construction.
type Option func(*Transform)

// WithAxis selects the array axis the transform acts along. Axes are
// zero-based; the default is axis 0. Validation against the array rank
// happens at application time.
func WithAxis(axis int) Option {
	return func(q *Transform) { q.axis = axis }
}

// NewQDHT creates a cylindrical quasi-discrete Hankel transform of the
// given order with aperture radius and sample count. It is the spherical
// dimension 1 case of NewQDSHT.
func NewQDHT(order, radius float64, size int, opts ...Option) (*Transform, error) {
	return NewQDSHT(order, 1, radius, size, opts...)
}

// NewQDSHT creates a quasi-discrete spherical Hankel transform of the
// given order and spherical dimension with aperture radius and sample
// count. Construction evaluates O(size^2) Bessel functions and dominates
// the total cost; the resulting Transform amortizes it over any number of
// applications.
func NewQDSHT(order float64, sphDim int, radius float64, size int, opts ...Option) (*Transform, error) {
	if order < 0 || math.IsNaN(order) || math.IsInf(order, 0) {
		return nil, ErrInvalidOrder
	}

	if sphDim < 1 {
		return nil, ErrInvalidDimension
	}

	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, ErrInvalidRadius
	}

	if size < 1 {
		return nil, ErrInvalidSize
	}

	q := &Transform{
		p:    order,
		n:    sphDim,
		size: size,
		axis: 0,
		rMax: radius,
	}

	for _, opt := range opts {
		opt(q)
	}

	if q.axis < 0 {
		return nil, ErrInvalidAxis
	}

	q.build()

	return q, nil
}

// build computes the node grids, integration weights and the dense
// operator from the Bessel zeros.
func (q *Transform) build() {
	zeros := specfun.SphBesselJZeros(q.p, q.n, q.size+1)
	s := zeros[q.size]

	q.kMax = s / q.rMax

	q.r = make([]float64, q.size)
	q.k = make([]float64, q.size)
	q.j1sq = make([]float64, q.size)

	for i, z := range zeros[:q.size] {
		q.r[i] = z * q.rMax / s
		q.k[i] = z * q.kMax / s

		j1 := math.Abs(specfun.SphBesselJ(q.p+1, q.n, z))
		q.j1sq[i] = j1 * j1
	}

	cn := specfun.SphScale(q.n)
	halfDim := 0.5 * float64(q.n+1)

	q.scaleR = make([]float64, q.size)
	q.scaleK = make([]float64, q.size)

	for i := range q.j1sq {
		q.scaleR[i] = 2 * cn * cn / (math.Pow(q.kMax, float64(q.n+1)) * q.j1sq[i])
		q.scaleK[i] = 2 * cn * cn / (math.Pow(q.rMax, float64(q.n+1)) * q.j1sq[i])
	}

	q.scaleRK = math.Pow(q.rMax/q.kMax, halfDim)

	// T_ij = 2 c_n / S^((n+1)/2) * j_p^n(z_i z_j / S) / j1sq_j. Applying T
	// twice recovers the input up to the forward and inverse scale factors.
	front := 2 * cn / math.Pow(s, halfDim)

	data := make([]float64, q.size*q.size)
	for i := 0; i < q.size; i++ {
		zi := zeros[i]
		row := data[i*q.size : (i+1)*q.size]

		for j := 0; j < q.size; j++ {
			row[j] = front * specfun.SphBesselJ(q.p, q.n, zi*zeros[j]/s) / q.j1sq[j]
		}
	}

	q.op = mat.NewDense(q.size, q.size, data)
}

// Order returns the transform order p.
func (q *Transform) Order() float64 { return q.p }

// SphDim returns the spherical dimension n; 1 is the cylindrical case.
func (q *Transform) SphDim() int { return q.n }

// Len returns the number of radial samples N.
func (q *Transform) Len() int { return q.size }

// Axis returns the array axis the transform acts along.
func (q *Transform) Axis() int { return q.axis }

// R returns the aperture radius.
func (q *Transform) R() float64 { return q.rMax }

// K returns the maximum spatial frequency S/R.
func (q *Transform) K() float64 { return q.kMax }

// RNodes returns a copy of the real-space sample coordinates.
func (q *Transform) RNodes() []float64 { return append([]float64(nil), q.r...) }

// KNodes returns a copy of the frequency sample coordinates.
func (q *Transform) KNodes() []float64 { return append([]float64(nil), q.k...) }

// ScaleR returns a copy of the real-space integration weights.
func (q *Transform) ScaleR() []float64 { return append([]float64(nil), q.scaleR...) }

// ScaleK returns a copy of the frequency-space integration weights.
func (q *Transform) ScaleK() []float64 { return append([]float64(nil), q.scaleK...) }

// WithAxis returns a Transform acting along the given axis. The grid and
// operator are shared with q; when the axis is unchanged q itself is
// returned.
func (q *Transform) WithAxis(axis int) (*Transform, error) {
	if axis < 0 {
		return nil, ErrInvalidAxis
	}

	if axis == q.axis {
		return q, nil
	}

	c := *q
	c.axis = axis

	return &c, nil
}
